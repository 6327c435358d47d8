package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"travelbook/internal/domain"
)

var (
	// ErrUsernameTaken and ErrEmailTaken report duplicate registrations;
	// the match is case-sensitive and exact.
	ErrUsernameTaken = errors.New("username already registered")
	ErrEmailTaken    = errors.New("email already registered")

	// ErrNoAccount covers every authentication mismatch: unknown
	// username and wrong password look identical to the caller.
	ErrNoAccount = errors.New("no account")
)

// AccountService manages registration, the single authenticated session
// and the signed-in account's itineraries.
type AccountService struct {
	repo    domain.AccountRepository
	current *domain.Account
	log     zerolog.Logger
}

func NewAccountService(repo domain.AccountRepository, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, log: log}
}

func (s *AccountService) Register(ctx context.Context, username, password, email string) error {
	if taken, err := s.repo.UsernameExists(ctx, username); err != nil {
		return fmt.Errorf("check username: %w", err)
	} else if taken {
		return ErrUsernameTaken
	}
	if taken, err := s.repo.EmailExists(ctx, email); err != nil {
		return fmt.Errorf("check email: %w", err)
	} else if taken {
		return ErrEmailTaken
	}
	a := domain.NewAccount(username, password, email)
	if err := s.repo.Save(ctx, a); err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	s.log.Info().Str("username", username).Msg("account registered")
	return nil
}

// SignIn authenticates and makes the account the current session.
func (s *AccountService) SignIn(ctx context.Context, username, password string) error {
	a, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return ErrNoAccount
	}
	if err != nil {
		return fmt.Errorf("load account: %w", err)
	}
	if a.Password != password {
		return ErrNoAccount
	}
	s.current = a
	s.log.Info().Str("username", username).Msg("signed in")
	return nil
}

// Logout clears the session reference. Safe to call when nobody is
// signed in.
func (s *AccountService) Logout() { s.current = nil }

// Current returns the authenticated account, nil when nobody is signed in.
func (s *AccountService) Current() *domain.Account { return s.current }

// AddItinerary clones it into the authenticated account and persists the
// account. No-op when nobody is signed in.
func (s *AccountService) AddItinerary(ctx context.Context, it *domain.Itinerary) error {
	if s.current == nil {
		s.log.Debug().Msg("add itinerary ignored, no session")
		return nil
	}
	s.current.AddItinerary(it)
	return s.repo.Save(ctx, s.current)
}

// RemoveItinerary drops the i-th stored itinerary (0-based) and persists.
// No-op when nobody is signed in or i is out of range.
func (s *AccountService) RemoveItinerary(ctx context.Context, i int) error {
	if s.current == nil {
		return nil
	}
	if !s.current.RemoveItinerary(i) {
		return nil
	}
	return s.repo.Save(ctx, s.current)
}
