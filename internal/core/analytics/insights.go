package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
)

var severityRank = map[string]int{
	domain.SeverityCritical: 0,
	domain.SeverityWarning:  1,
	domain.SeverityPattern:  2,
	domain.SeverityStreak:   3,
	domain.SeverityModerate: 4,
	domain.SeverityOverall:  5,
}

var (
	criticalTips = []string{
		"Break these goals into smaller, more achievable daily tasks",
		"Set a specific time each day dedicated to each goal",
		"Start with just 5-10 minutes daily to build the habit",
		"Consider if these goals align with your current priorities",
		"Focus on one goal at a time rather than all at once",
	}
	warningTips = []string{
		"Identify what triggers you to skip these goals",
		"Pair each habit with an existing daily routine",
		"Set reminders at optimal times during your day",
		"Track what prevents you from completing them",
		"Try habit stacking - link new habits to existing ones",
	}
	moderateTips = []string{
		"Focus on maintaining streaks - don't break the chain",
		"Prepare everything you need the night before",
		"Reward yourself for hitting weekly targets",
		"These are close to becoming solid habits - push a little more!",
	}
	streakTips = []string{
		"Don't aim for perfection - aim for consistency",
		"If you miss one day, don't miss two in a row",
		`Create a "minimum viable habit" for tough days`,
		"Track your streak visually to stay motivated",
	}
	overallTips = []string{
		"Start with just 1-2 goals instead of many",
		`Focus on "never miss twice" instead of perfection`,
		"Make your habits so easy you can't say no",
		"Celebrate small wins to build momentum",
	}
)

// Analyze builds the full report for the month containing now.
func Analyze(goals []*domain.Goal, now time.Time, th Thresholds) *domain.ConsistencyReport {
	r := Aggregate(goals, MonthOf(now), th)
	r.Reward = RewardTier(r.Overall)
	r.Suggestions = Suggestions(r, th)
	r.FocusAreas = KeyFocusAreas(r, th)
	return r
}

// Suggestions returns the improvement cards ordered by severity. Nothing is
// suggested until at least one day is tracked.
func Suggestions(r *domain.ConsistencyReport, th Thresholds) []domain.Suggestion {
	out := []domain.Suggestion{}
	if len(r.TrackedDays) == 0 {
		return out
	}

	var critical, warning, moderate []domain.GoalConsistency
	for _, g := range r.Goals {
		gc := domain.GoalConsistency{Name: g.Name, Consistency: g.Consistency}
		switch {
		case g.Consistency < th.CriticalBelow:
			critical = append(critical, gc)
		case g.Consistency < th.WarningBelow:
			warning = append(warning, gc)
		case g.Consistency < th.ModerateBelow:
			moderate = append(moderate, gc)
		}
	}

	if len(critical) > 0 {
		msg := fmt.Sprintf("%d goals need urgent attention: %s", len(critical), listGoals(critical))
		if len(critical) == 1 {
			msg = fmt.Sprintf("Your \"%s\" goal is at only %d%%. This goal might be too ambitious.", critical[0].Name, critical[0].Consistency)
		}
		out = append(out, groupCard(domain.SeverityCritical, "Critical: Very Low Consistency", msg, criticalTips, critical))
	}

	if len(warning) > 0 {
		msg := fmt.Sprintf("%d goals are below %d%%: %s", len(warning), th.WarningBelow, listGoals(warning))
		if len(warning) == 1 {
			msg = fmt.Sprintf("\"%s\" is at %d%%. You're completing it less than half the time.", warning[0].Name, warning[0].Consistency)
		}
		out = append(out, groupCard(domain.SeverityWarning, "Needs Improvement", msg, warningTips, warning))
	}

	if len(moderate) > 0 {
		msg := fmt.Sprintf("%d goals are good but could be better: %s", len(moderate), listGoals(moderate))
		if len(moderate) == 1 {
			msg = fmt.Sprintf("\"%s\" is at %d%%. You're on the right track but can improve.", moderate[0].Name, moderate[0].Consistency)
		}
		out = append(out, groupCard(domain.SeverityModerate, "Room for Growth", msg, moderateTips, moderate))
	}

	if s, ok := weakDays(r.Weekdays, th); ok {
		out = append(out, s)
	}

	for _, g := range r.Goals {
		if g.BrokenStreaks < th.BrokenStreakMinBreaks || g.LongestStreak < th.BrokenStreakMinLength {
			continue
		}
		out = append(out, domain.Suggestion{
			Severity: domain.SeverityStreak,
			Title:    "Broken Streaks",
			Message: fmt.Sprintf("You've broken %d streak(s) of %d+ days on \"%s\". Your best streak was %d days.",
				g.BrokenStreaks, th.BrokenStreakMinLength, g.Name, g.LongestStreak),
			Tips:  cloneTips(streakTips),
			Goals: []domain.GoalConsistency{{Name: g.Name, Consistency: g.Consistency}},
		})
	}

	if r.Overall < th.OverallBelow {
		overall := r.Overall
		out = append(out, domain.Suggestion{
			Severity:    domain.SeverityOverall,
			Title:       fmt.Sprintf("Overall Consistency Below %d%%", th.OverallBelow),
			Message:     fmt.Sprintf("Your overall consistency is %d%%. Focus on building a strong foundation.", r.Overall),
			Tips:        cloneTips(overallTips),
			Consistency: &overall,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return severityRank[out[i].Severity] < severityRank[out[j].Severity]
	})
	return out
}

func groupCard(severity, title, msg string, tips []string, goals []domain.GoalConsistency) domain.Suggestion {
	sum := 0
	for _, g := range goals {
		sum += g.Consistency
	}
	avg := mean(sum, len(goals))
	return domain.Suggestion{
		Severity:    severity,
		Title:       title,
		Message:     msg,
		Tips:        cloneTips(tips),
		Goals:       goals,
		Consistency: &avg,
	}
}

func weakDays(stats []domain.WeekdayStat, th Thresholds) (domain.Suggestion, bool) {
	var weak []domain.WeekdayStat
	for _, s := range stats {
		if s.Average < th.WeakDayBelow {
			weak = append(weak, s)
		}
	}
	if len(weak) == 0 {
		return domain.Suggestion{}, false
	}
	sort.SliceStable(weak, func(i, j int) bool { return weak[i].Average < weak[j].Average })

	parts := make([]string, len(weak))
	for i, s := range weak {
		parts[i] = fmt.Sprintf("%s (%d%%)", s.Name, s.Average)
	}
	subject := "day is"
	if len(weak) > 1 {
		subject = "days are"
	}

	worst := weak[0].Average
	return domain.Suggestion{
		Severity: domain.SeverityPattern,
		Title:    "Weak Days Detected",
		Message:  fmt.Sprintf("Your worst performing %s: %s", subject, strings.Join(parts, ", ")),
		Tips: []string{
			fmt.Sprintf("Plan easier tasks for %ss", weak[0].Name),
			"Schedule your goals at different times on weak days",
			"Identify what makes these days challenging",
			"Consider reducing goal difficulty on these days",
		},
		Consistency: &worst,
	}, true
}

func listGoals(goals []domain.GoalConsistency) string {
	parts := make([]string, len(goals))
	for i, g := range goals {
		parts[i] = fmt.Sprintf("\"%s\" (%d%%)", g.Name, g.Consistency)
	}
	return strings.Join(parts, ", ")
}

func cloneTips(tips []string) []string {
	return append([]string(nil), tips...)
}

var keepGoing = domain.FocusArea{
	Kind:    domain.FocusTip,
	Icon:    "💡",
	Title:   "Keep Going",
	Message: "Track more days to unlock personalized insights and recommendations!",
}

// KeyFocusAreas highlights the weakest and strongest goals, the recent trend
// and a weekday/weekend skew. It always returns at least one entry.
func KeyFocusAreas(r *domain.ConsistencyReport, th Thresholds) []domain.FocusArea {
	if len(r.TrackedDays) == 0 {
		return []domain.FocusArea{keepGoing}
	}

	var out []domain.FocusArea

	if len(r.Goals) > 0 {
		sorted := append([]domain.GoalStat(nil), r.Goals...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Consistency < sorted[j].Consistency })
		lowest, highest := sorted[0], sorted[len(sorted)-1]

		if lowest.Consistency < th.LowPerformerBelow {
			out = append(out, domain.FocusArea{
				Kind:    domain.FocusWarning,
				Icon:    "⚠️",
				Title:   "Needs Attention",
				Message: fmt.Sprintf("\"%s\" has only %d%% consistency. Consider breaking it into smaller daily actions.", lowest.Name, lowest.Consistency),
			})
		}
		if highest.Consistency >= th.TopPerformerAtLeast {
			out = append(out, domain.FocusArea{
				Kind:    domain.FocusSuccess,
				Icon:    "🌟",
				Title:   "Top Performer",
				Message: fmt.Sprintf("\"%s\" is your strongest habit at %d%%! Keep it up!", highest.Name, highest.Consistency),
			})
		}
	}

	recent := r.Daily[max(0, len(r.Daily)-th.RecentDays):]
	sum := 0
	for _, d := range recent {
		sum += d.Percentage
	}
	avg := mean(sum, len(recent))
	switch {
	case avg < th.DeclineBelow:
		out = append(out, domain.FocusArea{
			Kind:    domain.FocusWarning,
			Icon:    "📉",
			Title:   "Recent Decline",
			Message: fmt.Sprintf("Your last %d days average is %d%%. Time to refocus and get back on track!", th.RecentDays, avg),
		})
	case avg >= th.MomentumAtLeast:
		out = append(out, domain.FocusArea{
			Kind:    domain.FocusSuccess,
			Icon:    "🔥",
			Title:   "On Fire!",
			Message: fmt.Sprintf("Amazing! %d%% average in the last %d days. You're building momentum!", avg, th.RecentDays),
		})
	}

	if gap, ok := weekendGap(r.Daily, th.SkewMinDays); ok && gap > th.WeekendGapAbove {
		out = append(out, domain.FocusArea{
			Kind:    domain.FocusTip,
			Icon:    "📅",
			Title:   "Weekend Slump",
			Message: fmt.Sprintf("You perform %d%% better on weekdays. Plan your weekends better!", gap),
		})
	}

	if len(out) == 0 {
		return []domain.FocusArea{keepGoing}
	}
	return out
}

// weekendGap is the weekday average minus the weekend average of the daily
// series. ok is false when there are too few days or one side is missing.
func weekendGap(daily []domain.DailyStat, minDays int) (int, bool) {
	if len(daily) < minDays {
		return 0, false
	}
	var wdSum, wdN, weSum, weN int
	for _, d := range daily {
		if d.Weekday == int(time.Saturday) || d.Weekday == int(time.Sunday) {
			weSum += d.Percentage
			weN++
		} else {
			wdSum += d.Percentage
			wdN++
		}
	}
	if wdN == 0 || weN == 0 {
		return 0, false
	}
	return mean(wdSum, wdN) - mean(weSum, weN), true
}
