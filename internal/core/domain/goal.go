package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrGoalNameEmpty     = errors.New("goal name cannot be empty")
	ErrGoalNameTooLong   = errors.New("goal name is too long (max 100 chars)")
	ErrGoalInvalidUserID = errors.New("invalid user id")
	ErrInvalidDate       = errors.New("invalid date format (must be YYYY-MM-DD)")
)

const (
	DateLayout        = "2006-01-02"
	MaxGoalNameLen    = 100
	GoalRecordVersion = 1
)

// Goal is a user-defined habit tracked on the monthly grid.
//
// CompletedDates is sparse: a missing key means the day was never marked,
// which is not the same thing as an explicit false.
type Goal struct {
	Schema         int             `json:"v"`
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	Name           string          `json:"name"`
	CompletedDates map[string]bool `json:"completedDates"`
	Version        int             `json:"version"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func validateGoalName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrGoalNameEmpty
	}
	if len([]rune(trimmed)) > MaxGoalNameLen {
		return "", ErrGoalNameTooLong
	}
	return trimmed, nil
}

func NewGoal(userID, name string) (*Goal, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrGoalInvalidUserID
	}

	cleanName, err := validateGoalName(name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Goal{
		Schema:         GoalRecordVersion,
		ID:             uuid.NewString(),
		UserID:         userID,
		Name:           cleanName,
		CompletedDates: make(map[string]bool),
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (g *Goal) Rename(name string) error {
	cleanName, err := validateGoalName(name)
	if err != nil {
		return err
	}
	g.Name = cleanName
	g.UpdatedAt = time.Now().UTC()
	return nil
}

// Toggle flips the completion flag for the given day. An unmarked day becomes
// completed. The new value is returned.
func (g *Goal) Toggle(date time.Time) bool {
	key := DateKey(date)
	done := !g.CompletedDates[key]
	g.Mark(date, done)
	return done
}

// Mark records an explicit entry for the given day.
func (g *Goal) Mark(date time.Time, done bool) {
	if g.CompletedDates == nil {
		g.CompletedDates = make(map[string]bool)
	}
	g.CompletedDates[DateKey(date)] = done
	g.UpdatedAt = time.Now().UTC()
}

func (g *Goal) IsCompleted(key string) bool {
	return g.CompletedDates[key]
}

// HasEntry reports whether the day carries an explicit mark, true or false.
func (g *Goal) HasEntry(key string) bool {
	_, ok := g.CompletedDates[key]
	return ok
}

// Clone returns a deep copy; repositories hand out clones so callers never
// share the dates map.
func (g *Goal) Clone() *Goal {
	c := *g
	c.CompletedDates = make(map[string]bool, len(g.CompletedDates))
	for k, v := range g.CompletedDates {
		c.CompletedDates[k] = v
	}
	return &c
}

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
