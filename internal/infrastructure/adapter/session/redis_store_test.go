package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/mytestspam8-prog/africash/internal/domain/error"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis, *testClock) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	clock := &testClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	return NewRedisStore(client, clock, quietLogger{}), mr, clock
}

func TestRedisStore_CreateAndGet(t *testing.T) {
	store, _, clock := newRedisStore(t)
	ctx := context.Background()

	session := newSession("token-1", 7, clock)
	require.NoError(t, store.Create(ctx, session))

	got, err := store.Get(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got.UserID)
	assert.Equal(t, "token-1", got.Token)

	_, err = store.Get(ctx, "unknown")
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)
}

func TestRedisStore_CreateRejectsPastExpiry(t *testing.T) {
	store, _, clock := newRedisStore(t)
	ctx := context.Background()

	session := newSession("token-1", 7, clock)
	session.ExpiresAt = clock.now.Add(-time.Minute)

	err := store.Create(ctx, session)
	assert.Error(t, err)
}

func TestRedisStore_TTLEviction(t *testing.T) {
	store, mr, clock := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newSession("token-1", 7, clock)))

	// Redis enforces expiry through the key TTL
	mr.FastForward(2 * time.Hour)

	_, err := store.Get(ctx, "token-1")
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)
}

func TestRedisStore_Touch(t *testing.T) {
	store, mr, clock := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newSession("token-1", 7, clock)))

	extended := clock.now.Add(3 * time.Hour)
	require.NoError(t, store.Touch(ctx, "token-1", extended))

	// Survives the original one hour TTL
	mr.FastForward(2 * time.Hour)
	clock.now = clock.now.Add(2 * time.Hour)

	got, err := store.Get(ctx, "token-1")
	require.NoError(t, err)
	assert.WithinDuration(t, extended, got.ExpiresAt, time.Second)
}

func TestRedisStore_Delete(t *testing.T) {
	store, _, clock := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newSession("token-1", 7, clock)))
	require.NoError(t, store.Delete(ctx, "token-1"))

	_, err := store.Get(ctx, "token-1")
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)

	// Unknown token is not an error
	assert.NoError(t, store.Delete(ctx, "unknown"))
}
