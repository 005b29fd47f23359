package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
)

func TestSQLReadingRepository_SQLite(t *testing.T) {
	runReadingRepositorySuite(t, NewSQLReadingRepository(setupSQLiteDB(t)))
}

func TestSQLReadingRepository_Postgres(t *testing.T) {
	runReadingRepositorySuite(t, NewSQLReadingRepository(setupPostgresDB(t)))
}

func TestInMemoryReadingRepository(t *testing.T) {
	runReadingRepositorySuite(t, NewInMemoryReadingRepository())
}

func runReadingRepositorySuite(t *testing.T, repo domain.ReadingRepository) {
	ctx := context.Background()

	t.Run("Get Missing Date", func(t *testing.T) {
		_, err := repo.GetByDate(ctx, "2026-01-01")
		assert.ErrorIs(t, err, domain.ErrReadingNotFound)
	})

	t.Run("Upsert and Get", func(t *testing.T) {
		r := scoredReading(t, "2026-03-10", 7.5, allFlags, "felt great")
		require.NoError(t, repo.Upsert(ctx, r))
		assert.False(t, r.CreatedAt.IsZero())

		got, err := repo.GetByDate(ctx, "2026-03-10")
		require.NoError(t, err)
		assert.Equal(t, 7.5, got.SleepHours)
		assert.Equal(t, allFlags, got.HabitFlags)
		assert.Equal(t, domain.Scores{EnergyScore: 4, ExecScore: 2, LifeScore: 1, TotalScore: 7}, got.Scores)
		assert.Equal(t, domain.ScoringModelSevenPoint, got.ScoringModel)
		assert.Equal(t, "felt great", got.Notes)
	})

	t.Run("Upsert Replaces Scores and Keeps Notes", func(t *testing.T) {
		r := scoredReading(t, "2026-03-10", 6.0, domain.HabitFlags{Workout: true}, "")
		require.NoError(t, repo.Upsert(ctx, r))

		got, err := repo.GetByDate(ctx, "2026-03-10")
		require.NoError(t, err)
		assert.Equal(t, 6.0, got.SleepHours)
		assert.Equal(t, 1, got.TotalScore)
		assert.Equal(t, "felt great", got.Notes)

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Upsert Overwrites Notes When Given", func(t *testing.T) {
		r := scoredReading(t, "2026-03-10", 6.0, domain.HabitFlags{Workout: true}, "late meeting")
		require.NoError(t, repo.Upsert(ctx, r))

		got, err := repo.GetByDate(ctx, "2026-03-10")
		require.NoError(t, err)
		assert.Equal(t, "late meeting", got.Notes)
	})

	t.Run("List Recent Newest First", func(t *testing.T) {
		for _, date := range []string{"2026-03-08", "2026-03-11", "2026-03-09"} {
			require.NoError(t, repo.Upsert(ctx, scoredReading(t, date, 8, allFlags, "")))
		}

		recent, err := repo.ListRecent(ctx, 3)
		require.NoError(t, err)
		require.Len(t, recent, 3)
		assert.Equal(t, "2026-03-11", recent[0].Date)
		assert.Equal(t, "2026-03-10", recent[1].Date)
		assert.Equal(t, "2026-03-09", recent[2].Date)

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 4)
		assert.Equal(t, "2026-03-08", all[3].Date)
	})
}

func TestSQLReadingRepository_CheckConstraint(t *testing.T) {
	repo := NewSQLReadingRepository(setupSQLiteDB(t))

	bad := &domain.DailyHabitReading{
		Date:         "2026-03-10",
		SleepHours:   20,
		ScoringModel: domain.ScoringModelSevenPoint,
	}

	err := repo.Upsert(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrInvalidReading)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupSQLiteDB(t)

	require.NoError(t, Migrate(context.Background(), db, DriverSQLite))

	var tables []string
	err := db.Select(&tables, "SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('daily_readings', 'weekly_reviews') ORDER BY name")
	require.NoError(t, err)
	assert.Equal(t, []string{"daily_readings", "weekly_reviews"}, tables)
}

func TestOpenDatabase_UnknownDriver(t *testing.T) {
	db, err := OpenDatabase(context.Background(), "mysql", "")
	assert.Error(t, err)
	assert.Nil(t, db)
}
