package redisstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/internal/domain"
)

func testClient(t *testing.T) *redis.Client {
	t.Helper()
	srv := miniredis.RunT(t)
	c := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCacheRoundtrip(t *testing.T) {
	cache := NewCache(testClient(t))
	ctx := context.Background()

	type offer struct {
		Airline string
		Price   float64
	}

	var got []offer
	hit, err := cache.Get(ctx, "flights:a|b|c|d", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	want := []offer{{Airline: "Canada", Price: 200}, {Airline: "Turkish", Price: 250}}
	require.NoError(t, cache.Set(ctx, "flights:a|b|c|d", want, 60))

	hit, err = cache.Get(ctx, "flights:a|b|c|d", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, want, got)

	require.NoError(t, cache.Del(ctx, "flights:a|b|c|d"))
	hit, err = cache.Get(ctx, "flights:a|b|c|d", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestAccountsSaveAndFind(t *testing.T) {
	repo := NewAccounts(testClient(t), nil)
	ctx := context.Background()

	_, err := repo.FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	a := domain.NewAccount("nour", "pw", "nour@mail.com")
	require.NoError(t, repo.Save(ctx, a))

	got, err := repo.FindByUsername(ctx, "nour")
	require.NoError(t, err)
	assert.Equal(t, "nour", got.Username)
	assert.Equal(t, "pw", got.Password)
	assert.Equal(t, "nour@mail.com", got.Email)
	assert.Empty(t, got.Itineraries())

	taken, err := repo.UsernameExists(ctx, "nour")
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = repo.UsernameExists(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.EmailExists(ctx, "nour@mail.com")
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = repo.EmailExists(ctx, "other@mail.com")
	require.NoError(t, err)
	assert.False(t, taken)
}
