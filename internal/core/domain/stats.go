package domain

type ConsistencyReport struct {
	Month          string        `json:"month"`
	Today          int           `json:"today"`
	DaysInMonth    int           `json:"days_in_month"`
	TrackedDays    []int         `json:"tracked_days"`
	TotalGoals     int           `json:"total_goals"`
	TotalCompleted int           `json:"total_completed"`
	TotalPossible  int           `json:"total_possible"`
	Overall        int           `json:"overall_consistency"`
	Goals          []GoalStat    `json:"goals"`
	Daily          []DailyStat   `json:"daily"`
	Weekly         []WeekStat    `json:"weekly"`
	ActiveWeek     WeekStat      `json:"active_week"`
	Weekdays       []WeekdayStat `json:"weekdays"`
	Projection     Projection    `json:"projection"`
	Reward         RewardTier    `json:"reward"`
	Suggestions    []Suggestion  `json:"suggestions"`
	FocusAreas     []FocusArea   `json:"focus_areas"`
}

type GoalStat struct {
	GoalID        string `json:"goal_id"`
	Name          string `json:"name"`
	Completed     int    `json:"completed"`
	Total         int    `json:"total"`
	Consistency   int    `json:"consistency"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	BrokenStreaks int    `json:"broken_streaks"`
}

type DailyStat struct {
	DayIndex   int    `json:"day_index"`
	Date       string `json:"date"`
	Weekday    int    `json:"weekday"`
	Completed  int    `json:"completed"`
	Percentage int    `json:"percentage"`
}

type WeekStat struct {
	Week        int  `json:"week"`
	DaysTracked int  `json:"days_tracked"`
	Completed   int  `json:"completed"`
	Total       int  `json:"total"`
	Consistency int  `json:"consistency"`
	IsCurrent   bool `json:"is_current"`
}

type WeekdayStat struct {
	Weekday int    `json:"weekday"`
	Name    string `json:"name"`
	Days    int    `json:"days"`
	Average int    `json:"average"`
}

type Projection struct {
	Projected        int `json:"projected"`
	Max              int `json:"max"`
	ProjectedPercent int `json:"projected_percent"`
}

type RewardTier struct {
	Badge   string `json:"badge"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Color   string `json:"color"`
}

const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityPattern  = "pattern"
	SeverityStreak   = "streak"
	SeverityModerate = "moderate"
	SeverityOverall  = "overall"
)

type GoalConsistency struct {
	Name        string `json:"name"`
	Consistency int    `json:"consistency"`
}

// Suggestion is one diagnostic card of the improvement list.
type Suggestion struct {
	Severity    string            `json:"severity"`
	Title       string            `json:"title"`
	Message     string            `json:"message"`
	Tips        []string          `json:"tips"`
	Goals       []GoalConsistency `json:"goals,omitempty"`
	Consistency *int              `json:"consistency,omitempty"`
}

const (
	FocusWarning = "warning"
	FocusSuccess = "success"
	FocusTip     = "tip"
)

type FocusArea struct {
	Kind    string `json:"kind"`
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// InsightSummary is the diagnostic subset of a report.
type InsightSummary struct {
	Month       string       `json:"month"`
	TrackedDays int          `json:"tracked_days"`
	Overall     int          `json:"overall_consistency"`
	Reward      RewardTier   `json:"reward"`
	Suggestions []Suggestion `json:"suggestions"`
	FocusAreas  []FocusArea  `json:"focus_areas"`
}
