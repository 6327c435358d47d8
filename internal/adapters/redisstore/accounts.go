// Package redisstore keeps accounts and the search-offer cache in Redis.
// The process normally talks to an embedded in-memory server (see
// cmd/travelbook), so nothing survives a restart.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"travelbook/internal/domain"
)

type accountRecord struct {
	Username    string
	Password    string
	Email       string
	Itineraries []domain.Snapshot
}

// Accounts is the AccountRepository implementation. Reservations are stored
// as brand-tagged snapshots and rebuilt through the injected restore func
// (the reservations factory).
type Accounts struct {
	c       *redis.Client
	restore domain.RestoreFunc
}

func NewAccounts(c *redis.Client, restore domain.RestoreFunc) *Accounts {
	return &Accounts{c: c, restore: restore}
}

func accountKey(username string) string { return "account:" + username }

const emailsKey = "account_emails"

func (s *Accounts) Save(ctx context.Context, a *domain.Account) error {
	rec := accountRecord{
		Username:    a.Username,
		Password:    a.Password,
		Email:       a.Email,
		Itineraries: a.SnapshotItineraries(),
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode account %q: %w", a.Username, err)
	}
	if err := s.c.Set(ctx, accountKey(a.Username), b, 0).Err(); err != nil {
		return err
	}
	return s.c.SAdd(ctx, emailsKey, a.Email).Err()
}

func (s *Accounts) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	b, err := s.c.Get(ctx, accountKey(username)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var rec accountRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode account %q: %w", username, err)
	}
	a := domain.NewAccount(rec.Username, rec.Password, rec.Email)
	if err := a.RestoreItineraries(rec.Itineraries, s.restore); err != nil {
		return nil, fmt.Errorf("restore itineraries for %q: %w", username, err)
	}
	return a, nil
}

func (s *Accounts) UsernameExists(ctx context.Context, username string) (bool, error) {
	n, err := s.c.Exists(ctx, accountKey(username)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Accounts) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.c.SIsMember(ctx, emailsKey, email).Result()
}
