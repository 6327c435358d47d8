// Package payproc holds the stubbed payment processor integrations. Every
// charge is accepted; the clients keep the staging/charge call shapes of
// the real processors so live credentials could be wired in later.
package payproc

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PayPalCreditCard is the single record PayPal stages user and card fields
// into before charging.
type PayPalCreditCard struct {
	Name       string
	Address    string
	ID         string
	ExpireDate string
	CCV        int
}

// PayPalClient mimics PayPal's stage-then-charge protocol: both info
// setters must be called before MakePayment.
type PayPalClient struct {
	card PayPalCreditCard
	log  zerolog.Logger
}

func NewPayPal(log zerolog.Logger) *PayPalClient {
	return &PayPalClient{log: log.With().Str("processor", "paypal").Logger()}
}

func (c *PayPalClient) SetUserInfo(card PayPalCreditCard) {
	c.card.Name = card.Name
	c.card.Address = card.Address
}

func (c *PayPalClient) SetCardInfo(card PayPalCreditCard) {
	c.card.ID = card.ID
	c.card.ExpireDate = card.ExpireDate
	c.card.CCV = card.CCV
}

func (c *PayPalClient) MakePayment(ctx context.Context, amount float64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ref := uuid.NewString()
	c.log.Info().Str("ref", ref).Float64("amount", amount).Msg("charge accepted")
	return true, nil
}
