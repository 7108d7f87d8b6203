package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore implements Store on Redis. Expiry is delegated to Redis key TTLs:
// a single SET ... EX writes the mapping atomically and GET on an expired key
// behaves exactly like a miss.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store. A non-positive ttl falls
// back to DefaultTTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}

// Create issues a token and writes token -> principalID with the session TTL
func (s *RedisStore) Create(ctx context.Context, principalID string) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}

	if err := s.client.Set(ctx, s.key(token), principalID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%w: set failed: %v", ErrStoreUnavailable, err)
	}

	return token, nil
}

// Resolve looks up a token without refreshing its TTL
func (s *RedisStore) Resolve(ctx context.Context, token string) (string, bool, error) {
	principalID, err := s.client.Get(ctx, s.key(token)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get failed: %v", ErrStoreUnavailable, err)
	}
	return principalID, true, nil
}

// Revoke deletes a token; deleting an absent key is a no-op
func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("%w: del failed: %v", ErrStoreUnavailable, err)
	}
	return nil
}
