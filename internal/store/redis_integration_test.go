//go:build integration

package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/JuliusMoehring/shrinkify.app/internal/shrink"
	"github.com/JuliusMoehring/shrinkify.app/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

func TestRedisStoreIntegration(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr: getRedisAddr(),
	})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	s := store.NewRedisStore(client)

	t.Run("put and fetch record", func(t *testing.T) {
		origin := "itest-abc123"

		err := s.Put(ctx, origin, "https://example.com", 301)
		require.NoError(t, err)

		fields, err := s.Fetch(ctx, origin)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			shrink.FieldTarget: "https://example.com",
			shrink.FieldStatus: "301",
		}, fields)

		// Cleanup
		client.Del(ctx, origin)
	})

	t.Run("overwrite existing record", func(t *testing.T) {
		origin := "itest-overwrite"
		_ = s.Put(ctx, origin, "https://old.com", 301)

		err := s.Put(ctx, origin, "https://new.com", 302)
		require.NoError(t, err)

		fields, _ := s.Fetch(ctx, origin)
		assert.Equal(t, "https://new.com", fields[shrink.FieldTarget])
		assert.Equal(t, "302", fields[shrink.FieldStatus])

		// Cleanup
		client.Del(ctx, origin)
	})

	t.Run("fetch unbound origin returns empty map", func(t *testing.T) {
		fields, err := s.Fetch(ctx, "itest-nonexistent")

		require.NoError(t, err)
		assert.Empty(t, fields)
	})

	t.Run("expired record reads as absent", func(t *testing.T) {
		origin := "itest-expired"
		require.NoError(t, s.Put(ctx, origin, "https://example.com", 301))

		require.NoError(t, s.ExpireAt(ctx, origin, time.Now().Add(-time.Minute)))

		fields, err := s.Fetch(ctx, origin)
		require.NoError(t, err)
		assert.Empty(t, fields)
	})
}
