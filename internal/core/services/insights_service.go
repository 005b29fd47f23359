package services

import (
	"context"
	"errors"
	"math"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
	"github.com/comitanigiacomo/kanso-drift/internal/observability"
)

const WeekWindow = 7

type InsightsService struct {
	repo  domain.ReadingRepository
	clock domain.Clock
}

func NewInsightsService(repo domain.ReadingRepository, clock domain.Clock) *InsightsService {
	return &InsightsService{
		repo:  repo,
		clock: clock,
	}
}

type WeekOverview struct {
	Logs       domain.ReadingWindow `json:"logs"`
	Avg        *float64             `json:"avg"`
	Trend      domain.TrendSignal   `json:"trend,omitempty"`
	TrendArrow string               `json:"trend_arrow,omitempty"`
}

type MorningBrief struct {
	Date         string                    `json:"date"`
	Yesterday    *domain.DailyHabitReading `json:"yesterday"`
	Avg7         *float64                  `json:"avg_7"`
	Trend        domain.TrendSignal        `json:"trend,omitempty"`
	TrendArrow   string                    `json:"trend_arrow,omitempty"`
	DriftAreas   []domain.DriftArea        `json:"drift_areas"`
	BiggestDrift domain.DriftArea          `json:"biggest_drift"`
	Suggestion   string                    `json:"suggestion"`
}

func (s *InsightsService) Week(ctx context.Context) (*WeekOverview, error) {
	logs, err := s.repo.ListRecent(ctx, WeekWindow)
	if err != nil {
		return nil, err
	}

	overview := &WeekOverview{Logs: logs, Avg: averageTotal(logs)}
	if trend, ok := domain.AnalyzeTrend(logs); ok {
		overview.Trend = trend
		overview.TrendArrow = trend.Arrow()
	}
	return overview, nil
}

func (s *InsightsService) Drift(ctx context.Context) (domain.DriftReport, error) {
	logs, err := s.repo.ListRecent(ctx, WeekWindow)
	if err != nil {
		return domain.DriftReport{}, err
	}

	report := domain.DetectDrift(logs)
	observability.DriftDetections.WithLabelValues(string(report.Biggest)).Inc()
	return report, nil
}

func (s *InsightsService) History(ctx context.Context) (domain.ReadingWindow, error) {
	return s.repo.ListAll(ctx)
}

func (s *InsightsService) MorningBrief(ctx context.Context) (*MorningBrief, error) {
	yesterday, err := s.repo.GetByDate(ctx, s.clock.Yesterday())
	if err != nil && !errors.Is(err, domain.ErrReadingNotFound) {
		return nil, err
	}

	logs, err := s.repo.ListRecent(ctx, WeekWindow)
	if err != nil {
		return nil, err
	}

	drift := domain.DetectDrift(logs)
	brief := &MorningBrief{
		Date:         s.clock.Today(),
		Yesterday:    yesterday,
		Avg7:         averageTotal(logs),
		DriftAreas:   drift.Areas(),
		BiggestDrift: drift.Biggest,
		Suggestion:   domain.SuggestedFix(drift.Biggest),
	}
	if trend, ok := domain.AnalyzeTrend(logs); ok {
		brief.Trend = trend
		brief.TrendArrow = trend.Arrow()
	}
	return brief, nil
}

func averageTotal(logs domain.ReadingWindow) *float64 {
	if len(logs) == 0 {
		return nil
	}
	sum := 0
	for _, r := range logs {
		sum += r.TotalScore
	}
	avg := math.Round(float64(sum)/float64(len(logs))*10) / 10
	return &avg
}
