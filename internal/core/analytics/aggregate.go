package analytics

import (
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
)

// GoalConsistency is the share of window days the goal was completed.
func GoalConsistency(flags []bool) int {
	return Percent(countTrue(flags), len(flags))
}

// OverallConsistency aggregates every goal over goals x window days.
func OverallConsistency(goals []*domain.Goal, window []int, m Month) int {
	completed := 0
	for _, g := range goals {
		completed += countTrue(completions(g, window, m))
	}
	return Percent(completed, len(goals)*len(window))
}

// CurrentStreak counts completed days backward from the end of the window.
func CurrentStreak(flags []bool) int {
	n := 0
	for i := len(flags) - 1; i >= 0 && flags[i]; i-- {
		n++
	}
	return n
}

func LongestStreak(flags []bool) int {
	best, run := 0, 0
	for _, f := range flags {
		if !f {
			run = 0
			continue
		}
		run++
		best = max(best, run)
	}
	return best
}

// BrokenStreaks counts runs of at least minLen completed days that ended in a
// miss. A run still open at the end of the window is not broken.
func BrokenStreaks(flags []bool, minLen int) int {
	broken, run := 0, 0
	for _, f := range flags {
		if f {
			run++
			continue
		}
		if run >= minLen {
			broken++
		}
		run = 0
	}
	return broken
}

// Aggregate computes every numeric statistic of the report. Insight fields
// are left empty; Analyze fills them.
func Aggregate(goals []*domain.Goal, m Month, th Thresholds) *domain.ConsistencyReport {
	window := TrackedWindow(goals, m)

	r := &domain.ConsistencyReport{
		Month:       m.Label(),
		Today:       m.Today,
		DaysInMonth: m.Days,
		TrackedDays: window,
		TotalGoals:  len(goals),
		Goals:       make([]domain.GoalStat, 0, len(goals)),
	}

	// byDay[i] is the number of goals completed on window[i].
	byDay := make([]int, len(window))
	for _, g := range goals {
		flags := completions(g, window, m)
		done := countTrue(flags)
		for i, f := range flags {
			if f {
				byDay[i]++
			}
		}

		r.TotalCompleted += done
		r.Goals = append(r.Goals, domain.GoalStat{
			GoalID:        g.ID,
			Name:          g.Name,
			Completed:     done,
			Total:         len(window),
			Consistency:   GoalConsistency(flags),
			CurrentStreak: CurrentStreak(flags),
			LongestStreak: LongestStreak(flags),
			BrokenStreaks: BrokenStreaks(flags, th.BrokenStreakMinLength),
		})
	}

	r.TotalPossible = len(goals) * len(window)
	r.Overall = Percent(r.TotalCompleted, r.TotalPossible)
	r.Daily = dailySeries(window, byDay, len(goals), m)
	r.Weekly = weeklyRollup(window, byDay, len(goals), m)
	r.ActiveWeek = activeWeek(window, byDay, len(goals), m)
	r.Weekdays = weekdayAverages(window, byDay, len(goals), m)
	r.Projection = projection(r.TotalCompleted, len(goals), m)
	return r
}

func dailySeries(window, byDay []int, goals int, m Month) []domain.DailyStat {
	out := make([]domain.DailyStat, len(window))
	for i, d := range window {
		out[i] = domain.DailyStat{
			DayIndex:   d,
			Date:       m.DateKey(d),
			Weekday:    int(m.Weekday(d)),
			Completed:  byDay[i],
			Percentage: Percent(byDay[i], goals),
		}
	}
	return out
}

// weekBucket sums the window days falling in [from, to).
func weekBucket(week, from, to int, window, byDay []int, goals int) domain.WeekStat {
	ws := domain.WeekStat{Week: week}
	for i, d := range window {
		if d >= from && d < to {
			ws.DaysTracked++
			ws.Completed += byDay[i]
		}
	}
	ws.Total = ws.DaysTracked * goals
	ws.Consistency = Percent(ws.Completed, ws.Total)
	return ws
}

func weeklyRollup(window, byDay []int, goals int, m Month) []domain.WeekStat {
	weeks := m.CurrentWeek()
	out := make([]domain.WeekStat, 0, weeks)
	for i := 0; i < weeks; i++ {
		ws := weekBucket(i+1, i*7, min((i+1)*7, m.Today), window, byDay, goals)
		ws.IsCurrent = i+1 == weeks
		out = append(out, ws)
	}
	return out
}

// activeWeek is the week holding the latest tracked day, falling back to the
// calendar week when nothing is tracked.
func activeWeek(window, byDay []int, goals int, m Month) domain.WeekStat {
	week := m.CurrentWeek()
	if len(window) > 0 {
		week = ceilDiv(window[len(window)-1]+1, 7)
	}
	ws := weekBucket(week, (week-1)*7, week*7, window, byDay, goals)
	ws.IsCurrent = week == m.CurrentWeek()
	return ws
}

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func weekdayAverages(window, byDay []int, goals int, m Month) []domain.WeekdayStat {
	var days, completed [7]int
	for i, d := range window {
		wd := m.Weekday(d)
		days[wd]++
		completed[wd] += byDay[i]
	}

	out := make([]domain.WeekdayStat, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if days[wd] == 0 {
			continue
		}
		out = append(out, domain.WeekdayStat{
			Weekday: int(wd),
			Name:    weekdayNames[wd],
			Days:    days[wd],
			Average: Percent(completed[wd], days[wd]*goals),
		})
	}
	return out
}

func projection(totalCompleted, goals int, m Month) domain.Projection {
	p := domain.Projection{Max: goals * m.Days}
	if m.Today > 0 {
		p.Projected = round(float64(totalCompleted) / float64(m.Today) * float64(m.Days))
	}
	p.ProjectedPercent = Percent(p.Projected, p.Max)
	return p
}
