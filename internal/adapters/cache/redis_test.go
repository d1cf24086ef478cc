package cache

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestOptions_Addr(t *testing.T) {
	assert.Equal(t, "localhost:6379", Options{Host: "localhost", Port: "6379"}.Addr())
	assert.Equal(t, "[::1]:6380", Options{Host: "::1", Port: "6380"}.Addr())
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := NewRedisClient(ctx, Options{Host: "127.0.0.1", Port: "1"})
	assert.ErrorContains(t, err, "127.0.0.1:1")
}

// liveRedis connects to the test database or skips.
func liveRedis(t *testing.T) *redis.Client {
	t.Helper()
	_ = godotenv.Load("../../../.env")

	ctx := context.Background()
	rdb, err := NewRedisClient(ctx, Options{
		Host:     envOr("REDIS_HOST", "localhost"),
		Port:     envOr("REDIS_PORT", "6379"),
		Password: envOr("REDIS_PASSWORD", ""),
		DB:       1,
	})
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.FlushDB(ctx).Err())
	return rdb
}

func TestRedisClient_Integration(t *testing.T) {
	rdb := liveRedis(t)
	ctx := context.Background()

	t.Run("Success: Goal list round trip", func(t *testing.T) {
		const key = "tasks_profile-1"
		doc := `[{"id":"g1","name":"Read","completedDates":{"2024-03-01":true}}]`

		require.NoError(t, rdb.Set(ctx, key, doc, 0).Err())

		got, err := rdb.Get(ctx, key).Result()
		require.NoError(t, err)
		assert.JSONEq(t, doc, got)
	})

	t.Run("Success: Cached entries expire", func(t *testing.T) {
		const key = "goals:cache:profile-1"
		require.NoError(t, rdb.Set(ctx, key, "[]", time.Second).Err())

		assert.Eventually(t, func() bool {
			return rdb.Get(ctx, key).Err() == redis.Nil
		}, 3*time.Second, 100*time.Millisecond)
	})

	t.Run("Success: Rate counters are shared between clients", func(t *testing.T) {
		const key = "rate_limit:10.0.0.1"
		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, rdb.Incr(ctx, key).Err())
			}()
		}
		wg.Wait()

		n, err := rdb.Get(ctx, key).Int()
		require.NoError(t, err)
		assert.Equal(t, 20, n)
	})
}
