package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
)

var _ domain.ReadingRepository = (*SQLReadingRepository)(nil)

const readingColumns = `date, sleep_hours, bed_on_time, workout, eat_windows, block1, block2, anchor,
	energy_score, exec_score, life_score, total_score, scoring_model, notes, created_at, updated_at`

type SQLReadingRepository struct {
	db *sqlx.DB
}

func NewSQLReadingRepository(db *sqlx.DB) *SQLReadingRepository {
	return &SQLReadingRepository{db: db}
}

func (r *SQLReadingRepository) Upsert(ctx context.Context, reading *domain.DailyHabitReading) error {
	now := time.Now().UTC()
	reading.CreatedAt = now
	reading.UpdatedAt = now

	query := `
		INSERT INTO daily_readings (` + readingColumns + `)
		VALUES (
			:date, :sleep_hours, :bed_on_time, :workout, :eat_windows, :block1, :block2, :anchor,
			:energy_score, :exec_score, :life_score, :total_score, :scoring_model, :notes, :created_at, :updated_at
		)
		ON CONFLICT (date) DO UPDATE SET
			sleep_hours = excluded.sleep_hours,
			bed_on_time = excluded.bed_on_time,
			workout = excluded.workout,
			eat_windows = excluded.eat_windows,
			block1 = excluded.block1,
			block2 = excluded.block2,
			anchor = excluded.anchor,
			energy_score = excluded.energy_score,
			exec_score = excluded.exec_score,
			life_score = excluded.life_score,
			total_score = excluded.total_score,
			scoring_model = excluded.scoring_model,
			notes = CASE WHEN excluded.notes = '' THEN daily_readings.notes ELSE excluded.notes END,
			updated_at = excluded.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, reading)
	return mapSQLError(err)
}

func (r *SQLReadingRepository) GetByDate(ctx context.Context, date string) (*domain.DailyHabitReading, error) {
	var reading domain.DailyHabitReading
	query := r.db.Rebind(`SELECT ` + readingColumns + ` FROM daily_readings WHERE date = ?`)

	err := r.db.GetContext(ctx, &reading, query, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReadingNotFound
		}
		return nil, err
	}
	return &reading, nil
}

func (r *SQLReadingRepository) ListRecent(ctx context.Context, limit int) (domain.ReadingWindow, error) {
	readings := domain.ReadingWindow{}
	query := r.db.Rebind(`SELECT ` + readingColumns + ` FROM daily_readings ORDER BY date DESC LIMIT ?`)

	if err := r.db.SelectContext(ctx, &readings, query, limit); err != nil {
		return nil, err
	}
	return readings, nil
}

func (r *SQLReadingRepository) ListAll(ctx context.Context) (domain.ReadingWindow, error) {
	readings := domain.ReadingWindow{}
	query := `SELECT ` + readingColumns + ` FROM daily_readings ORDER BY date DESC`

	if err := r.db.SelectContext(ctx, &readings, query); err != nil {
		return nil, err
	}
	return readings, nil
}
