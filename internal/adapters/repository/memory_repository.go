package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
)

var (
	_ domain.ReadingRepository      = (*InMemoryReadingRepository)(nil)
	_ domain.WeeklyReviewRepository = (*InMemoryReviewRepository)(nil)
)

type InMemoryReadingRepository struct {
	store map[string]domain.DailyHabitReading

	mu sync.RWMutex
}

func NewInMemoryReadingRepository() *InMemoryReadingRepository {
	return &InMemoryReadingRepository{
		store: make(map[string]domain.DailyHabitReading),
	}
}

func (r *InMemoryReadingRepository) Upsert(ctx context.Context, reading *domain.DailyHabitReading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	reading.UpdatedAt = now
	reading.CreatedAt = now

	row := *reading
	if existing, ok := r.store[reading.Date]; ok {
		row.CreatedAt = existing.CreatedAt
		if row.Notes == "" {
			row.Notes = existing.Notes
		}
	}

	reading.CreatedAt = row.CreatedAt
	r.store[reading.Date] = row
	return nil
}

func (r *InMemoryReadingRepository) GetByDate(ctx context.Context, date string) (*domain.DailyHabitReading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.store[date]
	if !ok {
		return nil, domain.ErrReadingNotFound
	}
	return &row, nil
}

func (r *InMemoryReadingRepository) ListRecent(ctx context.Context, limit int) (domain.ReadingWindow, error) {
	all, _ := r.ListAll(ctx)
	if limit >= 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *InMemoryReadingRepository) ListAll(ctx context.Context) (domain.ReadingWindow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	readings := make(domain.ReadingWindow, 0, len(r.store))
	for _, row := range r.store {
		row := row
		readings = append(readings, &row)
	}

	sort.Slice(readings, func(i, j int) bool {
		return readings[i].Date > readings[j].Date
	})

	return readings, nil
}

type InMemoryReviewRepository struct {
	store map[string]domain.WeeklyStats

	mu sync.RWMutex
}

func NewInMemoryReviewRepository() *InMemoryReviewRepository {
	return &InMemoryReviewRepository{
		store: make(map[string]domain.WeeklyStats),
	}
}

func (r *InMemoryReviewRepository) Upsert(ctx context.Context, stats *domain.WeeklyStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[stats.WeekStart] = *stats
	return nil
}

func (r *InMemoryReviewRepository) ListRecent(ctx context.Context, limit int) ([]*domain.WeeklyStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := make([]*domain.WeeklyStats, 0, len(r.store))
	for _, s := range r.store {
		s := s
		reviews = append(reviews, &s)
	}

	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].WeekStart > reviews[j].WeekStart
	})

	if limit >= 0 && len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}
