package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
)

var _ domain.ReadingRepository = (*CachedReadingRepository)(nil)

const (
	recentReadingsKey = "readings:recent"
	recentReadingsTTL = 30 * time.Minute
)

// CachedReadingRepository keeps ListRecent windows in a redis hash keyed by
// limit. Any write drops the whole hash.
type CachedReadingRepository struct {
	next   domain.ReadingRepository
	cache  *redis.Client
	logger *zap.Logger
}

func NewCachedReadingRepository(next domain.ReadingRepository, cache *redis.Client, logger *zap.Logger) *CachedReadingRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedReadingRepository{
		next:   next,
		cache:  cache,
		logger: logger,
	}
}

func (r *CachedReadingRepository) invalidate(ctx context.Context) {
	if err := r.cache.Del(ctx, recentReadingsKey).Err(); err != nil {
		r.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}

func (r *CachedReadingRepository) ListRecent(ctx context.Context, limit int) (domain.ReadingWindow, error) {
	field := strconv.Itoa(limit)

	val, err := r.cache.HGet(ctx, recentReadingsKey, field).Result()
	if err == nil {
		var readings domain.ReadingWindow
		if err := json.Unmarshal([]byte(val), &readings); err == nil {
			return readings, nil
		}

		r.logger.Warn("corrupted cache entry, cleaning up", zap.Int("limit", limit))
		r.invalidate(ctx)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("redis read error", zap.Error(err))
	}

	readings, err := r.next.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(readings); err == nil {
		pipe := r.cache.TxPipeline()
		pipe.HSet(ctx, recentReadingsKey, field, data)
		pipe.Expire(ctx, recentReadingsKey, recentReadingsTTL)
		if _, setErr := pipe.Exec(ctx); setErr != nil {
			r.logger.Warn("redis set error", zap.Error(setErr))
		}
	}

	return readings, nil
}

func (r *CachedReadingRepository) GetByDate(ctx context.Context, date string) (*domain.DailyHabitReading, error) {
	return r.next.GetByDate(ctx, date)
}

func (r *CachedReadingRepository) ListAll(ctx context.Context) (domain.ReadingWindow, error) {
	return r.next.ListAll(ctx)
}

func (r *CachedReadingRepository) Upsert(ctx context.Context, reading *domain.DailyHabitReading) error {
	if err := r.next.Upsert(ctx, reading); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}
