package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
)

type MockReadingRepo struct {
	mock.Mock
}

func (m *MockReadingRepo) Upsert(ctx context.Context, r *domain.DailyHabitReading) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReadingRepo) GetByDate(ctx context.Context, date string) (*domain.DailyHabitReading, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyHabitReading), args.Error(1)
}

func (m *MockReadingRepo) ListRecent(ctx context.Context, limit int) (domain.ReadingWindow, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ReadingWindow), args.Error(1)
}

func (m *MockReadingRepo) ListAll(ctx context.Context) (domain.ReadingWindow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ReadingWindow), args.Error(1)
}

type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Upsert(ctx context.Context, s *domain.WeeklyStats) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockReviewRepo) ListRecent(ctx context.Context, limit int) ([]*domain.WeeklyStats, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WeeklyStats), args.Error(1)
}

// Wednesday 2026-03-11 in Honolulu.
var testNow = time.Date(2026, 3, 12, 5, 30, 0, 0, time.UTC)

func testClock(t *testing.T) *domain.ZoneClock {
	t.Helper()
	loc, err := time.LoadLocation("Pacific/Honolulu")
	require.NoError(t, err)
	return domain.NewZoneClock(loc, time.Sunday, func() time.Time { return testNow })
}

func reading(date string, total int) *domain.DailyHabitReading {
	return &domain.DailyHabitReading{
		Date:       date,
		SleepHours: 8,
		HabitFlags: domain.HabitFlags{BedOnTime: true, Workout: true, EatWindows: true, Block1: true, Block2: true, Anchor: true},
		Scores:     domain.Scores{TotalScore: total},
	}
}
