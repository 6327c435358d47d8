package payproc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SquareClient takes the whole transaction as one JSON document.
type SquareClient struct {
	log zerolog.Logger
}

func NewSquare(log zerolog.Logger) *SquareClient {
	return &SquareClient{log: log.With().Str("processor", "square").Logger()}
}

// WithdrawMoney parses the JSON query the caller staged and accepts the
// charge. A malformed document is the caller's bug and is reported as an
// error, not a decline.
func (c *SquareClient) WithdrawMoney(ctx context.Context, jsonQuery string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var query map[string]any
	if err := json.Unmarshal([]byte(jsonQuery), &query); err != nil {
		return false, fmt.Errorf("square query: %w", err)
	}
	ref := uuid.NewString()
	c.log.Info().Str("ref", ref).Msg("withdraw accepted")
	return true, nil
}
