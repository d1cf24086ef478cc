package domain

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrRewardNotFound = errors.New("reward not found")
	ErrInvalidPeriod  = errors.New("invalid leaderboard period (must be daily, weekly, monthly, or alltime)")
	ErrEmptyMessage   = errors.New("message cannot be empty")
)

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodAllTime = "alltime"

	AchievementXP     = "xp"
	AchievementStreak = "streak"
)

type Reward struct {
	ID          string `json:"id" toml:"id"`
	Title       string `json:"title" toml:"title"`
	Icon        string `json:"icon" toml:"icon"`
	Description string `json:"description" toml:"description"`
	Cost        int    `json:"cost" toml:"cost"`
	Category    string `json:"category" toml:"category"`
}

type Achievement struct {
	ID          string `json:"id" toml:"id"`
	Title       string `json:"title" toml:"title"`
	Icon        string `json:"icon" toml:"icon"`
	Description string `json:"description" toml:"description"`
	Requirement int    `json:"requirement" toml:"requirement"`
	Type        string `json:"type" toml:"type"`
}

type AchievementProgress struct {
	Achievement
	Progress float64 `json:"progress"`
	Unlocked bool    `json:"unlocked"`
}

type LeaderboardEntry struct {
	Rank          int    `json:"rank" toml:"rank"`
	Username      string `json:"username" toml:"username"`
	Avatar        string `json:"avatar" toml:"avatar"`
	Streak        int    `json:"streak" toml:"streak"`
	XP            int    `json:"xp" toml:"xp"`
	Consistency   int    `json:"consistency" toml:"consistency"`
	Badge         string `json:"badge" toml:"badge"`
	IsCurrentUser bool   `json:"isCurrentUser" toml:"current_user"`
}

type Challenge struct {
	ID               int      `json:"id" toml:"id"`
	Title            string   `json:"title" toml:"title"`
	Description      string   `json:"description" toml:"description"`
	Participants     []string `json:"participants" toml:"participants"`
	ParticipantCount int      `json:"participantCount" toml:"participant_count"`
	Progress         int      `json:"progress" toml:"progress"`
	StartDate        string   `json:"startDate" toml:"start_date"`
	EndDate          string   `json:"endDate" toml:"end_date"`
	Status           string   `json:"status" toml:"status"`
	Tags             []string `json:"tags" toml:"tags"`
	Reward           string   `json:"reward" toml:"reward"`
}

func ParsePeriod(s string) (string, error) {
	switch p := strings.ToLower(strings.TrimSpace(s)); p {
	case "":
		return PeriodDaily, nil
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodAllTime:
		return p, nil
	}
	return "", ErrInvalidPeriod
}

// AdviceProvider answers free-text coaching questions.
type AdviceProvider interface {
	Welcome(userName string) string
	Advise(ctx context.Context, userName, message string) (string, error)
}

// LeaderboardSource supplies ranking tables and community challenges.
type LeaderboardSource interface {
	Leaderboard(ctx context.Context, period string) ([]LeaderboardEntry, error)
	Challenges(ctx context.Context) ([]Challenge, error)
}

// RewardCatalog lists what coins can buy and which achievements exist.
type RewardCatalog interface {
	Rewards(ctx context.Context) ([]Reward, error)
	Reward(ctx context.Context, id string) (Reward, error)
	Achievements(ctx context.Context) ([]Achievement, error)
}
