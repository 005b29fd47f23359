package services

import (
	"context"
	"fmt"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
	"github.com/comitanigiacomo/kanso-drift/internal/observability"
)

const DefaultReviewCount = 8

type ReviewService struct {
	readings domain.ReadingRepository
	reviews  domain.WeeklyReviewRepository
	clock    domain.Clock
}

func NewReviewService(readings domain.ReadingRepository, reviews domain.WeeklyReviewRepository, clock domain.Clock) *ReviewService {
	return &ReviewService{
		readings: readings,
		reviews:  reviews,
		clock:    clock,
	}
}

// GenerateWeekly summarizes the last seven readings under the current week
// start. It returns nil, nil when there is nothing to summarize.
func (s *ReviewService) GenerateWeekly(ctx context.Context) (*domain.WeeklyStats, error) {
	return s.GenerateForWeek(ctx, s.clock.WeekStart())
}

func (s *ReviewService) GenerateForWeek(ctx context.Context, weekStart string) (*domain.WeeklyStats, error) {
	logs, err := s.readings.ListRecent(ctx, WeekWindow)
	if err != nil {
		return nil, err
	}

	stats := domain.SynthesizeWeek(logs, weekStart)
	if stats == nil {
		return nil, nil
	}

	if err := s.reviews.Upsert(ctx, stats); err != nil {
		return nil, fmt.Errorf("review service: failed to store review: %w", err)
	}
	observability.ReviewsGenerated.Inc()

	return stats, nil
}

func (s *ReviewService) Recent(ctx context.Context, limit int) ([]*domain.WeeklyStats, error) {
	if limit <= 0 {
		limit = DefaultReviewCount
	}
	return s.reviews.ListRecent(ctx, limit)
}
