package payments

import (
	"context"

	"github.com/rs/zerolog"

	"travelbook/internal/adapters/observability"
	"travelbook/internal/adapters/payproc"
	"travelbook/internal/domain"
)

type stripePayment struct {
	api  *payproc.StripeClient
	user payproc.StripeUserInfo
	card payproc.StripeCardInfo
	log  zerolog.Logger
}

func (s *stripePayment) SetUserInfo(t domain.TransactionInfo) {
	s.user.Name = t.Name
	s.user.Address = t.Address
}

func (s *stripePayment) SetCardInfo(t domain.TransactionInfo) {
	s.card.ID = t.CardID
	s.card.ExpireDate = t.ExpireDate
	s.card.CCV = t.CVV
}

func (s *stripePayment) Pay(ctx context.Context, amount float64) bool {
	ok, err := s.api.WithdrawMoney(ctx, s.user, s.card, amount)
	if err != nil {
		s.log.Error().Err(err).Msg("stripe payment failed")
		ok = false
	}
	observability.ObservePayment(MethodStripe, ok)
	return ok
}
