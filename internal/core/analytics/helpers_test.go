package analytics_test

import (
	"fmt"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
)

func goal(name string, marks map[string]bool) *domain.Goal {
	if marks == nil {
		marks = map[string]bool{}
	}
	return &domain.Goal{ID: "id-" + name, UserID: "u1", Name: name, CompletedDates: marks, Version: 1}
}

// run marks consecutive days of a month starting on the 1st.
func run(year int, month time.Month, flags ...bool) map[string]bool {
	out := make(map[string]bool, len(flags))
	for i, f := range flags {
		out[fmt.Sprintf("%04d-%02d-%02d", year, month, i+1)] = f
	}
	return out
}

func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 30, 0, 0, time.UTC)
}
