package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned by lookups for unknown accounts.
var ErrNotFound = errors.New("not found")

// AccountRepository stores account records for the lifetime of the process.
type AccountRepository interface {
	Save(ctx context.Context, a *Account) error
	FindByUsername(ctx context.Context, username string) (*Account, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// OfferCache is a TTL cache for merged search results.
type OfferCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
