package app

import (
	"context"

	"github.com/rs/zerolog"

	"travelbook/internal/domain"
	"travelbook/internal/payments"
)

// PaymentHandler resolves a strategy from the transaction's method name,
// stages the user/card fields and fires the charge. Any stage failing
// makes the whole payment fail; no processor is invoked for an unknown
// method.
type PaymentHandler struct {
	procs payments.Processors
	log   zerolog.Logger
}

func NewPaymentHandler(procs payments.Processors, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{procs: procs, log: log}
}

func (h *PaymentHandler) Pay(ctx context.Context, info domain.TransactionInfo) bool {
	strategy, err := payments.New(info.Method, h.procs, h.log)
	if err != nil {
		h.log.Warn().Err(err).Msg("payment method not resolved")
		return false
	}
	strategy.SetUserInfo(info)
	strategy.SetCardInfo(info)
	return strategy.Pay(ctx, info.Amount)
}
