package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/analytics"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
)

// ThresholdProvider hands out the insight thresholds currently in force.
type ThresholdProvider interface {
	Current() analytics.Thresholds
}

type StatsService struct {
	goals      *GoalService
	thresholds ThresholdProvider
	now        func() time.Time
}

func NewStatsService(goals *GoalService, thresholds ThresholdProvider) *StatsService {
	return &StatsService{
		goals:      goals,
		thresholds: thresholds,
		now:        time.Now,
	}
}

// Report recomputes every statistic from the current goal snapshot.
func (s *StatsService) Report(ctx context.Context, userID string) (*domain.ConsistencyReport, error) {
	goals, err := s.goals.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.Analyze(goals, s.now(), s.thresholds.Current()), nil
}

func (s *StatsService) Insights(ctx context.Context, userID string) (*domain.InsightSummary, error) {
	r, err := s.Report(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.InsightSummary{
		Month:       r.Month,
		TrackedDays: len(r.TrackedDays),
		Overall:     r.Overall,
		Reward:      r.Reward,
		Suggestions: r.Suggestions,
		FocusAreas:  r.FocusAreas,
	}, nil
}
