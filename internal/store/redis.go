package store

import (
	"context"
	"strconv"
	"time"

	"github.com/JuliusMoehring/shrinkify.app/internal/shrink"
	"github.com/redis/go-redis/v9"
)

// RedisStore is the Redis implementation of shrink.Repository. Each origin is
// a hash key holding the target and status fields; expiry uses the key TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed record store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Fetch(ctx context.Context, origin string) (map[string]string, error) {
	// HGETALL returns an empty map for a missing key, which is exactly the
	// absent-record shape callers expect.
	return r.client.HGetAll(ctx, origin).Result()
}

func (r *RedisStore) Put(ctx context.Context, origin, target string, status int) error {
	// A single HSET writes both fields atomically; a reader never observes a
	// record with only one of them.
	return r.client.HSet(ctx, origin,
		shrink.FieldTarget, target,
		shrink.FieldStatus, strconv.Itoa(status),
	).Err()
}

func (r *RedisStore) ExpireAt(ctx context.Context, origin string, at time.Time) error {
	return r.client.ExpireAt(ctx, origin, at).Err()
}

// Compile-time check.
var _ shrink.Repository = (*RedisStore)(nil)
