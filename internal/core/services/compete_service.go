package services

import (
	"context"
	"strings"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
)

type CompeteService struct {
	source domain.LeaderboardSource
}

func NewCompeteService(source domain.LeaderboardSource) *CompeteService {
	return &CompeteService{source: source}
}

// Leaderboard returns the ranking for a period, keeping only usernames that
// contain query (case-insensitive). An empty period means daily.
func (s *CompeteService) Leaderboard(ctx context.Context, period, query string) ([]domain.LeaderboardEntry, error) {
	p, err := domain.ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	entries, err := s.source.Leaderboard(ctx, p)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries, nil
	}

	filtered := make([]domain.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Username), q) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (s *CompeteService) Challenges(ctx context.Context) ([]domain.Challenge, error) {
	return s.source.Challenges(ctx)
}
