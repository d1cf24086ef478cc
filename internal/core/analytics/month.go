package analytics

import (
	"fmt"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
)

// Month is the calendar context every statistic is computed against. Day
// indices are 0-based: index 0 is the first of the month.
type Month struct {
	Year  int
	Month time.Month
	Today int // day of month, 1-based
	Days  int
	Loc   *time.Location
}

func MonthOf(now time.Time) Month {
	loc := now.Location()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	return Month{
		Year:  now.Year(),
		Month: now.Month(),
		Today: now.Day(),
		Days:  first.AddDate(0, 1, -1).Day(),
		Loc:   loc,
	}
}

func (m Month) Date(dayIndex int) time.Time {
	loc := m.Loc
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(m.Year, m.Month, dayIndex+1, 0, 0, 0, 0, loc)
}

func (m Month) DateKey(dayIndex int) string {
	return domain.DateKey(m.Date(dayIndex))
}

func (m Month) Weekday(dayIndex int) time.Weekday {
	return m.Date(dayIndex).Weekday()
}

func (m Month) Label() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// CurrentWeek is the 1-based week of the month that contains today.
func (m Month) CurrentWeek() int {
	return ceilDiv(m.Today, 7)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
