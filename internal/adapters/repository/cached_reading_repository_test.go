package repository

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-drift/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("KANSO_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb, err := cache.NewRedisClient(context.Background(), addr, os.Getenv("KANSO_REDIS_PASSWORD"), 2)
	if err != nil {
		t.Skipf("Skipping cached repository tests: %v", err)
	}
	require.NoError(t, rdb.FlushDB(context.Background()).Err())

	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestCachedReadingRepository(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()

	inner := NewInMemoryReadingRepository()
	repo := NewCachedReadingRepository(inner, rdb, zap.NewNop())

	require.NoError(t, repo.Upsert(ctx, scoredReading(t, "2026-03-09", 8, allFlags, "")))

	t.Run("Miss Populates Cache", func(t *testing.T) {
		recent, err := repo.ListRecent(ctx, 7)
		require.NoError(t, err)
		require.Len(t, recent, 1)

		exists, err := rdb.HExists(ctx, recentReadingsKey, "7").Result()
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Hit Skips Inner Store", func(t *testing.T) {
		// Writing behind the decorator's back leaves the cached window stale.
		require.NoError(t, inner.Upsert(ctx, scoredReading(t, "2026-03-10", 8, allFlags, "")))

		recent, err := repo.ListRecent(ctx, 7)
		require.NoError(t, err)
		assert.Len(t, recent, 1)
	})

	t.Run("Upsert Invalidates", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, scoredReading(t, "2026-03-11", 5, domain.HabitFlags{}, "")))

		exists, err := rdb.Exists(ctx, recentReadingsKey).Result()
		require.NoError(t, err)
		assert.Zero(t, exists)

		recent, err := repo.ListRecent(ctx, 7)
		require.NoError(t, err)
		assert.Len(t, recent, 3)
		assert.Equal(t, "2026-03-11", recent[0].Date)
	})

	t.Run("Corrupted Entry Falls Through", func(t *testing.T) {
		require.NoError(t, rdb.HSet(ctx, recentReadingsKey, "2", "not json").Err())

		recent, err := repo.ListRecent(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, recent, 2)
	})
}
