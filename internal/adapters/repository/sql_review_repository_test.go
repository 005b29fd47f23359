package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
)

func TestSQLReviewRepository_SQLite(t *testing.T) {
	runReviewRepositorySuite(t, NewSQLReviewRepository(setupSQLiteDB(t)))
}

func TestSQLReviewRepository_Postgres(t *testing.T) {
	runReviewRepositorySuite(t, NewSQLReviewRepository(setupPostgresDB(t)))
}

func TestInMemoryReviewRepository(t *testing.T) {
	runReviewRepositorySuite(t, NewInMemoryReviewRepository())
}

func runReviewRepositorySuite(t *testing.T, repo domain.WeeklyReviewRepository) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		reviews, err := repo.ListRecent(ctx, 8)
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})

	t.Run("Upsert Same Week Replaces", func(t *testing.T) {
		first := &domain.WeeklyStats{
			WeekStart: "2026-03-01", AvgScore: 4.2,
			BestDay: "2026-03-02", BestScore: 7, WorstDay: "2026-03-05", WorstScore: 1,
			BiggestDriftArea: domain.DriftSleep, SuggestedFix: domain.SuggestedFix(domain.DriftSleep),
		}
		require.NoError(t, repo.Upsert(ctx, first))

		second := *first
		second.AvgScore = 5.0
		second.BiggestDriftArea = domain.DriftNone
		second.SuggestedFix = domain.SuggestedFix(domain.DriftNone)
		require.NoError(t, repo.Upsert(ctx, &second))

		reviews, err := repo.ListRecent(ctx, 8)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, second, *reviews[0])
	})

	t.Run("Newest First With Limit", func(t *testing.T) {
		for _, week := range []string{"2026-02-22", "2026-03-08", "2026-02-15"} {
			require.NoError(t, repo.Upsert(ctx, &domain.WeeklyStats{
				WeekStart: week, BiggestDriftArea: domain.DriftNone,
			}))
		}

		reviews, err := repo.ListRecent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, "2026-03-08", reviews[0].WeekStart)
		assert.Equal(t, "2026-03-01", reviews[1].WeekStart)
	})
}
