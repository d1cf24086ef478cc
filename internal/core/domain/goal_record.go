package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// goalRecord is the persisted shape of a goal across every layout the tracker
// has ever written. Schema 0 records may carry a numeric id and the legacy
// completedDays array (one flag per day of the month they were written in).
type goalRecord struct {
	Schema         int             `json:"v"`
	ID             json.RawMessage `json:"id"`
	UserID         string          `json:"userId"`
	Name           string          `json:"name"`
	CompletedDates map[string]bool `json:"completedDates"`
	CompletedDays  []bool          `json:"completedDays"`
	Version        int             `json:"version"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// DecodeGoals parses a stored goal list and migrates every record to the
// current schema. Legacy day arrays are anchored to the month of ref.
func DecodeGoals(data []byte, userID string, ref time.Time) ([]*Goal, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []*Goal{}, nil
	}

	var records []goalRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode goals: %w", err)
	}

	goals := make([]*Goal, 0, len(records))
	for i := range records {
		g, err := migrateGoalRecord(records[i], userID, ref)
		if err != nil {
			return nil, fmt.Errorf("decode goals: record %d: %w", i, err)
		}
		goals = append(goals, g)
	}
	return goals, nil
}

func EncodeGoals(goals []*Goal) ([]byte, error) {
	if goals == nil {
		goals = []*Goal{}
	}
	for _, g := range goals {
		g.Schema = GoalRecordVersion
	}
	return json.Marshal(goals)
}

func migrateGoalRecord(rec goalRecord, userID string, ref time.Time) (*Goal, error) {
	id, err := decodeRecordID(rec.ID)
	if err != nil {
		return nil, err
	}
	if id == "" {
		id = uuid.NewString()
	}

	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return nil, ErrGoalNameEmpty
	}

	dates := rec.CompletedDates
	if dates == nil {
		dates = make(map[string]bool)
		// Legacy arrays could not tell "unmarked" from "missed", so only the
		// completed days survive as explicit entries.
		for i, done := range rec.CompletedDays {
			if !done {
				continue
			}
			day := time.Date(ref.Year(), ref.Month(), i+1, 0, 0, 0, 0, ref.Location())
			if day.Month() != ref.Month() {
				break
			}
			dates[DateKey(day)] = true
		}
	}

	owner := rec.UserID
	if owner == "" {
		owner = userID
	}

	version := rec.Version
	if version < 1 {
		version = 1
	}

	created := rec.CreatedAt
	if created.IsZero() {
		created = ref.UTC()
	}
	updated := rec.UpdatedAt
	if updated.IsZero() {
		updated = created
	}

	return &Goal{
		Schema:         GoalRecordVersion,
		ID:             id,
		UserID:         owner,
		Name:           name,
		CompletedDates: dates,
		Version:        version,
		CreatedAt:      created,
		UpdatedAt:      updated,
	}, nil
}

func decodeRecordID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("invalid goal id: %w", err)
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("invalid goal id: %w", err)
	}
	return n.String(), nil
}
