package analytics

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrInvalidThresholds = errors.New("invalid insight thresholds")

// Thresholds holds every cut-off the insight engine uses. Percentages are
// whole numbers in [0, 100].
type Thresholds struct {
	CriticalBelow int `yaml:"critical_below"`
	WarningBelow  int `yaml:"warning_below"`
	ModerateBelow int `yaml:"moderate_below"`
	WeakDayBelow  int `yaml:"weak_day_below"`
	OverallBelow  int `yaml:"overall_below"`

	BrokenStreakMinLength int `yaml:"broken_streak_min_length"`
	BrokenStreakMinBreaks int `yaml:"broken_streak_min_breaks"`

	LowPerformerBelow   int `yaml:"low_performer_below"`
	TopPerformerAtLeast int `yaml:"top_performer_at_least"`
	RecentDays          int `yaml:"recent_days"`
	DeclineBelow        int `yaml:"decline_below"`
	MomentumAtLeast     int `yaml:"momentum_at_least"`
	WeekendGapAbove     int `yaml:"weekend_gap_above"`
	SkewMinDays         int `yaml:"skew_min_days"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		CriticalBelow:         30,
		WarningBelow:          50,
		ModerateBelow:         70,
		WeakDayBelow:          50,
		OverallBelow:          50,
		BrokenStreakMinLength: 3,
		BrokenStreakMinBreaks: 2,
		LowPerformerBelow:     50,
		TopPerformerAtLeast:   70,
		RecentDays:            7,
		DeclineBelow:          50,
		MomentumAtLeast:       80,
		WeekendGapAbove:       20,
		SkewMinDays:           5,
	}
}

// ParseThresholds decodes a YAML document over the defaults, so a file only
// needs the keys it overrides.
func ParseThresholds(data []byte) (Thresholds, error) {
	th := DefaultThresholds()
	if err := yaml.Unmarshal(data, &th); err != nil {
		return DefaultThresholds(), fmt.Errorf("parse thresholds: %w", err)
	}
	if err := th.Validate(); err != nil {
		return DefaultThresholds(), err
	}
	return th, nil
}

func (t Thresholds) Validate() error {
	if !(t.CriticalBelow <= t.WarningBelow && t.WarningBelow <= t.ModerateBelow) {
		return fmt.Errorf("%w: critical <= warning <= moderate required", ErrInvalidThresholds)
	}
	if t.RecentDays < 1 {
		return fmt.Errorf("%w: recent_days must be at least 1", ErrInvalidThresholds)
	}
	if t.BrokenStreakMinLength < 1 || t.BrokenStreakMinBreaks < 1 {
		return fmt.Errorf("%w: broken streak limits must be at least 1", ErrInvalidThresholds)
	}
	if t.SkewMinDays < 0 || t.WeekendGapAbove < 0 {
		return fmt.Errorf("%w: weekend skew limits cannot be negative", ErrInvalidThresholds)
	}
	return nil
}
