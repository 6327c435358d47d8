package app

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/internal/adapters/redisstore"
	"travelbook/internal/domain"
)

func newAccountService(t *testing.T) (*AccountService, *BookingService) {
	t.Helper()
	factory := testFactory()
	repo := redisstore.NewAccounts(testRedis(t), factory.Restore)
	return NewAccountService(repo, zerolog.Nop()),
		NewBookingService(factory, nil, 0, zerolog.Nop())
}

func TestRegisterAndSignIn(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "nour", "pw", "nour@mail.com"))
	require.Nil(t, svc.Current())

	require.NoError(t, svc.SignIn(ctx, "nour", "pw"))
	require.NotNil(t, svc.Current())
	assert.Equal(t, "nour", svc.Current().Username)

	svc.Logout()
	assert.Nil(t, svc.Current())
}

func TestRegisterDuplicates(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "nour", "pw", "nour@mail.com"))

	err := svc.Register(ctx, "nour", "other", "other@mail.com")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	err = svc.Register(ctx, "other", "pw", "nour@mail.com")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInFailures(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "nour", "pw", "nour@mail.com"))

	assert.ErrorIs(t, svc.SignIn(ctx, "ghost", "pw"), ErrNoAccount)
	assert.ErrorIs(t, svc.SignIn(ctx, "nour", "wrong"), ErrNoAccount)
	assert.Nil(t, svc.Current())
}

func TestAddItineraryPersistsAcrossSessions(t *testing.T) {
	svc, booking := newAccountService(t)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "nour", "pw", "nour@mail.com"))
	require.NoError(t, svc.SignIn(ctx, "nour", "pw"))

	r, err := booking.ReserveFlight(ctx, samplePassenger(), func([]domain.FlightOffer) int { return 1 })
	require.NoError(t, err)
	it := domain.NewItinerary()
	it.Add(r)
	require.NoError(t, svc.AddItinerary(ctx, it))

	svc.Logout()
	require.NoError(t, svc.SignIn(ctx, "nour", "pw"))
	require.Len(t, svc.Current().Itineraries(), 1)
	assert.Equal(t, 600.0, svc.Current().TotalCost())
}

func TestAddItineraryWithoutSession(t *testing.T) {
	svc, _ := newAccountService(t)
	it := domain.NewItinerary()
	assert.NoError(t, svc.AddItinerary(context.Background(), it))
}

func TestRemoveItineraryPersists(t *testing.T) {
	svc, booking := newAccountService(t)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "nour", "pw", "nour@mail.com"))
	require.NoError(t, svc.SignIn(ctx, "nour", "pw"))

	for i := 0; i < 2; i++ {
		r, err := booking.ReserveFlight(ctx, samplePassenger(), func([]domain.FlightOffer) int { return 1 })
		require.NoError(t, err)
		it := domain.NewItinerary()
		it.Add(r)
		require.NoError(t, svc.AddItinerary(ctx, it))
	}

	require.NoError(t, svc.RemoveItinerary(ctx, 0))
	assert.NoError(t, svc.RemoveItinerary(ctx, 9), "out of range is a no-op")

	svc.Logout()
	require.NoError(t, svc.SignIn(ctx, "nour", "pw"))
	assert.Len(t, svc.Current().Itineraries(), 1)
}
