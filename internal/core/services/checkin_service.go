package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
	"github.com/comitanigiacomo/kanso-drift/internal/core/workers"
	"github.com/comitanigiacomo/kanso-drift/internal/observability"
)

var ErrFutureDate = errors.New("cannot check in for a future date")

type CheckinService struct {
	repo   domain.ReadingRepository
	parser *domain.ReportParser
	scorer domain.Scorer
	clock  domain.Clock
	worker *workers.ReviewWorker
	logger *zap.Logger
}

func NewCheckinService(repo domain.ReadingRepository, clock domain.Clock, scorer domain.Scorer, worker *workers.ReviewWorker, logger *zap.Logger) *CheckinService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckinService{
		repo:   repo,
		parser: domain.NewReportParser(clock, scorer),
		scorer: scorer,
		clock:  clock,
		worker: worker,
		logger: logger,
	}
}

type CheckinForm struct {
	Date       string
	SleepHours float64
	Flags      domain.HabitFlags
	Notes      string
}

// SubmitReport parses a text report for today, scores it and stores it.
// Parse failures are returned as *domain.ReportError.
func (s *CheckinService) SubmitReport(ctx context.Context, text string) (*domain.DailyHabitReading, error) {
	reading, err := s.parser.Parse(text)
	if err != nil {
		var reportErr *domain.ReportError
		if errors.As(err, &reportErr) {
			observability.ReportRejections.WithLabelValues(rejectionReason(reportErr)).Inc()
		}
		observability.CheckinsTotal.WithLabelValues(observability.SourceText, observability.OutcomeRejected).Inc()
		s.logger.Info("report rejected", zap.Error(err))
		return nil, err
	}

	return s.save(ctx, reading, observability.SourceText)
}

func (s *CheckinService) SubmitForm(ctx context.Context, form CheckinForm) (*domain.DailyHabitReading, error) {
	date := strings.TrimSpace(form.Date)
	if date == "" {
		date = s.clock.Today()
	}
	if date > s.clock.Today() {
		observability.CheckinsTotal.WithLabelValues(observability.SourceForm, observability.OutcomeRejected).Inc()
		return nil, ErrFutureDate
	}

	reading, err := domain.NewDailyHabitReading(date, form.SleepHours, form.Flags, strings.TrimSpace(form.Notes), s.scorer)
	if err != nil {
		observability.CheckinsTotal.WithLabelValues(observability.SourceForm, observability.OutcomeRejected).Inc()
		return nil, err
	}

	return s.save(ctx, reading, observability.SourceForm)
}

func (s *CheckinService) save(ctx context.Context, reading *domain.DailyHabitReading, source string) (*domain.DailyHabitReading, error) {
	if err := s.repo.Upsert(ctx, reading); err != nil {
		observability.CheckinsTotal.WithLabelValues(source, observability.OutcomeFailed).Inc()
		return nil, fmt.Errorf("checkin service: failed to store reading: %w", err)
	}

	observability.CheckinsTotal.WithLabelValues(source, observability.OutcomeAccepted).Inc()
	observability.TotalScores.Observe(float64(reading.TotalScore))

	s.logger.Info("reading stored",
		zap.String("date", reading.Date),
		zap.String("source", source),
		zap.Int("total_score", reading.TotalScore),
		zap.String("scoring_model", string(reading.ScoringModel)))

	s.worker.Enqueue(s.clock.WeekStart())

	return reading, nil
}

func (s *CheckinService) Today(ctx context.Context) (*domain.DailyHabitReading, error) {
	return s.repo.GetByDate(ctx, s.clock.Today())
}

func (s *CheckinService) GetByDate(ctx context.Context, date string) (*domain.DailyHabitReading, error) {
	return s.repo.GetByDate(ctx, date)
}

func rejectionReason(err *domain.ReportError) string {
	switch err.Kind {
	case domain.ErrTooFewValues:
		return "too_few_values"
	case domain.ErrInvalidSleep:
		return "invalid_sleep"
	case domain.ErrInvalidFlag:
		return "invalid_flag"
	default:
		return "unknown"
	}
}
