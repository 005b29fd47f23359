package workers

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
	"github.com/comitanigiacomo/kanso-drift/internal/observability"
)

type ReviewGenerator interface {
	GenerateForWeek(ctx context.Context, weekStart string) (*domain.WeeklyStats, error)
}

type ReviewJob struct {
	WeekStart string
}

type ReviewWorker struct {
	generator ReviewGenerator
	jobs      chan ReviewJob
	logger    *zap.Logger
	wg        sync.WaitGroup
}

func NewReviewWorker(generator ReviewGenerator, queueSize int, logger *zap.Logger) *ReviewWorker {
	if queueSize <= 0 {
		queueSize = 100
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewWorker{
		generator: generator,
		jobs:      make(chan ReviewJob, queueSize),
		logger:    logger,
	}
}

func (w *ReviewWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.logger.Info("review worker started")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				w.logger.Info("review worker shutting down")
				return
			}
		}
	}()
}

// Wait blocks until the goroutine started by Start has returned.
func (w *ReviewWorker) Wait() {
	w.wg.Wait()
}

func (w *ReviewWorker) Enqueue(weekStart string) {
	if w == nil {
		return
	}
	select {
	case w.jobs <- ReviewJob{WeekStart: weekStart}:
	default:
		observability.ReviewQueueDropped.Inc()
		w.logger.Warn("review queue full, dropping job", zap.String("week_start", weekStart))
	}
}

func (w *ReviewWorker) processJob(ctx context.Context, job ReviewJob) {
	stats, err := w.generator.GenerateForWeek(ctx, job.WeekStart)
	if err != nil {
		w.logger.Error("weekly review refresh failed",
			zap.String("week_start", job.WeekStart), zap.Error(err))
		return
	}
	if stats == nil {
		w.logger.Debug("no readings for weekly review", zap.String("week_start", job.WeekStart))
		return
	}

	w.logger.Info("weekly review refreshed",
		zap.String("week_start", stats.WeekStart),
		zap.Float64("avg_score", stats.AvgScore),
		zap.String("biggest_drift", string(stats.BiggestDriftArea)))
}
