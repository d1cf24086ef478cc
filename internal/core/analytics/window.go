package analytics

import (
	"math"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
)

// TrackedWindow returns the day indices [0 .. last] where last is the latest
// day up to today on which any goal carries an explicit entry. The result is
// empty when nothing was marked this month.
func TrackedWindow(goals []*domain.Goal, m Month) []int {
	last := -1
	for d := m.Today - 1; d >= 0 && last < 0; d-- {
		key := m.DateKey(d)
		for _, g := range goals {
			if g.HasEntry(key) {
				last = d
				break
			}
		}
	}

	window := make([]int, last+1)
	for i := range window {
		window[i] = i
	}
	return window
}

// Percent is round(part/whole*100), or 0 when whole is not positive.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return round(float64(part) / float64(whole) * 100)
}

func mean(sum, n int) int {
	if n <= 0 {
		return 0
	}
	return round(float64(sum) / float64(n))
}

func round(v float64) int {
	return int(math.Round(v))
}

// completions maps a goal onto the window: flags[i] is whether window[i] was
// completed.
func completions(g *domain.Goal, window []int, m Month) []bool {
	flags := make([]bool, len(window))
	for i, d := range window {
		flags[i] = g.IsCompleted(m.DateKey(d))
	}
	return flags
}

func countTrue(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
