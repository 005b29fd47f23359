package repository

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
)

func setupSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := OpenDatabase(context.Background(), DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupPostgresDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("KANSO_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("Skipping postgres integration tests: KANSO_TEST_DATABASE_URL not set")
	}

	db, err := OpenDatabase(context.Background(), DriverPostgres, dsn)
	if err != nil {
		t.Skipf("Skipping postgres integration tests: %v", err)
	}

	_, err = db.Exec("TRUNCATE TABLE daily_readings, weekly_reviews")
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}

func scoredReading(t *testing.T, date string, sleep float64, flags domain.HabitFlags, notes string) *domain.DailyHabitReading {
	t.Helper()

	r, err := domain.NewDailyHabitReading(date, sleep, flags, notes, domain.SevenPointScorer{})
	require.NoError(t, err)
	return r
}

var allFlags = domain.HabitFlags{
	BedOnTime: true, Workout: true, EatWindows: true,
	Block1: true, Block2: true, Anchor: true,
}
