package domain

import "context"

type ReadingRepository interface {
	// Upsert stores the reading under its date, replacing any earlier
	// submission for that day. Empty notes keep the stored notes.
	Upsert(ctx context.Context, reading *DailyHabitReading) error

	// GetByDate returns ErrReadingNotFound when the day has no reading.
	GetByDate(ctx context.Context, date string) (*DailyHabitReading, error)

	// ListRecent returns at most limit readings, most recent first.
	ListRecent(ctx context.Context, limit int) (ReadingWindow, error)

	ListAll(ctx context.Context) (ReadingWindow, error)
}

type WeeklyReviewRepository interface {
	// Upsert stores the review keyed by its week start.
	Upsert(ctx context.Context, stats *WeeklyStats) error

	ListRecent(ctx context.Context, limit int) ([]*WeeklyStats, error)
}
