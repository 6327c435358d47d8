package payments

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"travelbook/internal/adapters/observability"
	"travelbook/internal/adapters/payproc"
	"travelbook/internal/domain"
)

// squarePayment stages the transaction into the JSON document Square's
// API consumes.
type squarePayment struct {
	api   *payproc.SquareClient
	query map[string]any
	log   zerolog.Logger
}

func (s *squarePayment) ensureQuery() {
	if s.query == nil {
		s.query = map[string]any{}
	}
}

func (s *squarePayment) SetUserInfo(t domain.TransactionInfo) {
	s.ensureQuery()
	s.query["user_info"] = []any{t.Name, t.Address}
}

func (s *squarePayment) SetCardInfo(t domain.TransactionInfo) {
	s.ensureQuery()
	s.query["card_info"] = map[string]any{
		"id":          t.CardID,
		"ccv":         t.CVV,
		"expire_date": t.ExpireDate,
	}
}

func (s *squarePayment) Pay(ctx context.Context, amount float64) bool {
	s.ensureQuery()
	s.query["payment_money"] = []any{amount}
	raw, err := json.Marshal(s.query)
	if err != nil {
		s.log.Error().Err(err).Msg("square query encode failed")
		observability.ObservePayment(MethodSquare, false)
		return false
	}
	ok, err := s.api.WithdrawMoney(ctx, string(raw))
	if err != nil {
		s.log.Error().Err(err).Msg("square payment failed")
		ok = false
	}
	observability.ObservePayment(MethodSquare, ok)
	return ok
}
