package payments

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/internal/adapters/payproc"
	"travelbook/internal/domain"
)

func testProcessors() Processors {
	log := zerolog.Nop()
	return Processors{
		PayPal: payproc.NewPayPal(log),
		Stripe: payproc.NewStripe(log),
		Square: payproc.NewSquare(log),
	}
}

func sampleTransaction(method string) domain.TransactionInfo {
	return domain.TransactionInfo{
		Method:     method,
		Name:       "Nour",
		Address:    "Cairo",
		CardID:     "1234-5678",
		ExpireDate: "09/26",
		CVV:        123,
	}
}

func TestNewUnknownMethod(t *testing.T) {
	_, err := New("bitcoin", testProcessors(), zerolog.Nop())
	assert.ErrorIs(t, err, ErrUnknownMethod)

	_, err = New("", testProcessors(), zerolog.Nop())
	assert.ErrorIs(t, err, ErrUnknownMethod)

	// exact match only
	_, err = New("PayPal", testProcessors(), zerolog.Nop())
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestEveryMethodPays(t *testing.T) {
	for _, method := range []string{MethodPayPal, MethodStripe, MethodSquare} {
		t.Run(method, func(t *testing.T) {
			info := sampleTransaction(method)
			strategy, err := New(method, testProcessors(), zerolog.Nop())
			require.NoError(t, err)

			strategy.SetUserInfo(info)
			strategy.SetCardInfo(info)
			assert.True(t, strategy.Pay(context.Background(), 3600))
		})
	}
}

func TestSquareQueryShape(t *testing.T) {
	s := &squarePayment{api: payproc.NewSquare(zerolog.Nop()), log: zerolog.Nop()}
	info := sampleTransaction(MethodSquare)
	s.SetUserInfo(info)
	s.SetCardInfo(info)
	require.True(t, s.Pay(context.Background(), 99.5))

	raw, err := json.Marshal(s.query)
	require.NoError(t, err)

	var query map[string]any
	require.NoError(t, json.Unmarshal(raw, &query))
	assert.Equal(t, []any{"Nour", "Cairo"}, query["user_info"])
	assert.Equal(t, []any{99.5}, query["payment_money"])

	card, ok := query["card_info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1234-5678", card["id"])
	assert.Equal(t, "09/26", card["expire_date"])
	assert.Equal(t, 123.0, card["ccv"])
}

func TestSquareRejectsMalformedQuery(t *testing.T) {
	c := payproc.NewSquare(zerolog.Nop())
	ok, err := c.WithdrawMoney(context.Background(), "{not json")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestPayWithCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	info := sampleTransaction(MethodPayPal)
	strategy, err := New(MethodPayPal, testProcessors(), zerolog.Nop())
	require.NoError(t, err)
	strategy.SetUserInfo(info)
	strategy.SetCardInfo(info)
	assert.False(t, strategy.Pay(ctx, 10))
}
