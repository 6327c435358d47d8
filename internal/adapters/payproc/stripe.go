package payproc

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type StripeUserInfo struct {
	Name    string
	Address string
}

type StripeCardInfo struct {
	ID         string
	ExpireDate string
	CCV        int
}

// StripeClient charges in a single call, no staging.
type StripeClient struct {
	log zerolog.Logger
}

func NewStripe(log zerolog.Logger) *StripeClient {
	return &StripeClient{log: log.With().Str("processor", "stripe").Logger()}
}

func (c *StripeClient) WithdrawMoney(ctx context.Context, user StripeUserInfo, card StripeCardInfo, amount float64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ref := uuid.NewString()
	c.log.Info().Str("ref", ref).Float64("amount", amount).Msg("withdraw accepted")
	return true, nil
}
