package payments

import (
	"context"

	"github.com/rs/zerolog"

	"travelbook/internal/adapters/observability"
	"travelbook/internal/adapters/payproc"
	"travelbook/internal/domain"
)

// paypalPayment stages everything into PayPal's single credit-card record.
type paypalPayment struct {
	api  *payproc.PayPalClient
	info payproc.PayPalCreditCard
	log  zerolog.Logger
}

func (p *paypalPayment) SetUserInfo(t domain.TransactionInfo) {
	p.info.Name = t.Name
	p.info.Address = t.Address
}

func (p *paypalPayment) SetCardInfo(t domain.TransactionInfo) {
	p.info.ID = t.CardID
	p.info.ExpireDate = t.ExpireDate
	p.info.CCV = t.CVV
}

func (p *paypalPayment) Pay(ctx context.Context, amount float64) bool {
	p.api.SetCardInfo(p.info)
	p.api.SetUserInfo(p.info)
	ok, err := p.api.MakePayment(ctx, amount)
	if err != nil {
		p.log.Error().Err(err).Msg("paypal payment failed")
		ok = false
	}
	observability.ObservePayment(MethodPayPal, ok)
	return ok
}
