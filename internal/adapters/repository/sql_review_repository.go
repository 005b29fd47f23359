package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
)

var _ domain.WeeklyReviewRepository = (*SQLReviewRepository)(nil)

const reviewColumns = `week_start, avg_score, best_day, best_score, worst_day, worst_score, biggest_drift, suggested_fix`

type SQLReviewRepository struct {
	db *sqlx.DB
}

func NewSQLReviewRepository(db *sqlx.DB) *SQLReviewRepository {
	return &SQLReviewRepository{db: db}
}

func (r *SQLReviewRepository) Upsert(ctx context.Context, stats *domain.WeeklyStats) error {
	query := `
		INSERT INTO weekly_reviews (` + reviewColumns + `)
		VALUES (:week_start, :avg_score, :best_day, :best_score, :worst_day, :worst_score, :biggest_drift, :suggested_fix)
		ON CONFLICT (week_start) DO UPDATE SET
			avg_score = excluded.avg_score,
			best_day = excluded.best_day,
			best_score = excluded.best_score,
			worst_day = excluded.worst_day,
			worst_score = excluded.worst_score,
			biggest_drift = excluded.biggest_drift,
			suggested_fix = excluded.suggested_fix`

	_, err := r.db.NamedExecContext(ctx, query, stats)
	return mapSQLError(err)
}

func (r *SQLReviewRepository) ListRecent(ctx context.Context, limit int) ([]*domain.WeeklyStats, error) {
	reviews := []*domain.WeeklyStats{}
	query := r.db.Rebind(`SELECT ` + reviewColumns + ` FROM weekly_reviews ORDER BY week_start DESC LIMIT ?`)

	if err := r.db.SelectContext(ctx, &reviews, query, limit); err != nil {
		return nil, err
	}
	return reviews, nil
}
