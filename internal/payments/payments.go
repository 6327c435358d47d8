// Package payments implements the payment-method strategies and the
// factory that selects one by method name.
package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"travelbook/internal/adapters/payproc"
	"travelbook/internal/domain"
)

// Method names. TransactionInfo.Method must match one exactly.
const (
	MethodPayPal = "paypal"
	MethodStripe = "stripe"
	MethodSquare = "square"
)

// ErrUnknownMethod is returned for a method name outside the enumeration.
// The caller must treat it as a hard failure of the payment step.
var ErrUnknownMethod = errors.New("no such payment method")

// Strategy is one interchangeable payment method. SetUserInfo and
// SetCardInfo stage fields without validation; Pay delegates to the
// processor and reports acceptance.
type Strategy interface {
	SetUserInfo(domain.TransactionInfo)
	SetCardInfo(domain.TransactionInfo)
	Pay(ctx context.Context, amount float64) bool
}

// Processors bundles the processor clients the strategies delegate to.
type Processors struct {
	PayPal *payproc.PayPalClient
	Stripe *payproc.StripeClient
	Square *payproc.SquareClient
}

// New resolves a strategy by exact method name.
func New(method string, procs Processors, log zerolog.Logger) (Strategy, error) {
	switch method {
	case MethodPayPal:
		return &paypalPayment{api: procs.PayPal, log: log}, nil
	case MethodStripe:
		return &stripePayment{api: procs.Stripe, log: log}, nil
	case MethodSquare:
		return &squarePayment{api: procs.Square, log: log}, nil
	default:
		return nil, fmt.Errorf("method %q: %w", method, ErrUnknownMethod)
	}
}
