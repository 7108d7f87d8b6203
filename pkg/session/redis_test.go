package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisStoreTest(t *testing.T) (*RedisStore, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, time.Hour)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return store, mr, cleanup
}

func TestRedisStore_CreateThenResolve(t *testing.T) {
	store, _, cleanup := setupRedisStoreTest(t)
	defer cleanup()

	ctx := context.Background()

	token, err := store.Create(ctx, "principal-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principalID, ok, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "principal-1", principalID)
}

func TestRedisStore_Create_SetsTTL(t *testing.T) {
	store, mr, cleanup := setupRedisStoreTest(t)
	defer cleanup()

	token, err := store.Create(context.Background(), "principal-1")
	require.NoError(t, err)

	ttl := mr.TTL("session:" + token)
	assert.Equal(t, time.Hour, ttl)
}

func TestRedisStore_Resolve_NeverIssued(t *testing.T) {
	store, _, cleanup := setupRedisStoreTest(t)
	defer cleanup()

	principalID, ok, err := store.Resolve(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, principalID)
}

func TestRedisStore_Resolve_Expired(t *testing.T) {
	store, mr, cleanup := setupRedisStoreTest(t)
	defer cleanup()

	ctx := context.Background()

	token, err := store.Create(ctx, "principal-1")
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, ok, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_Resolve_DoesNotExtendTTL(t *testing.T) {
	store, mr, cleanup := setupRedisStoreTest(t)
	defer cleanup()

	ctx := context.Background()

	token, err := store.Create(ctx, "principal-1")
	require.NoError(t, err)

	mr.FastForward(30 * time.Minute)
	_, ok, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	require.True(t, ok)

	// Expiry remains anchored to creation, not to the last read.
	assert.Equal(t, 30*time.Minute, mr.TTL("session:"+token))
}

func TestRedisStore_RevokeThenResolve(t *testing.T) {
	store, _, cleanup := setupRedisStoreTest(t)
	defer cleanup()

	ctx := context.Background()

	token, err := store.Create(ctx, "principal-1")
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, token))

	_, ok, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_Revoke_AbsentToken(t *testing.T) {
	store, _, cleanup := setupRedisStoreTest(t)
	defer cleanup()

	assert.NoError(t, store.Revoke(context.Background(), "never-issued"))
}

func TestRedisStore_StoreUnavailable(t *testing.T) {
	store, mr, cleanup := setupRedisStoreTest(t)
	defer cleanup()

	mr.Close()

	_, err := store.Create(context.Background(), "principal-1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, _, err = store.Resolve(context.Background(), "any-token")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	err = store.Revoke(context.Background(), "any-token")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
