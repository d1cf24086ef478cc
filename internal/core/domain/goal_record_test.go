package domain_test

import (
	"testing"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGoals(t *testing.T) {
	ref := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

	t.Run("Success: Current schema round trip", func(t *testing.T) {
		g, _ := domain.NewGoal("u1", "Meditate")
		g.CompletedDates["2024-03-01"] = true
		g.CompletedDates["2024-03-02"] = false

		data, err := domain.EncodeGoals([]*domain.Goal{g})
		require.NoError(t, err)

		got, err := domain.DecodeGoals(data, "u1", ref)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, g.ID, got[0].ID)
		assert.Equal(t, g.CompletedDates, got[0].CompletedDates)
	})

	t.Run("Success: Legacy numeric id and day array are migrated", func(t *testing.T) {
		legacy := `[{"id": 1709251200000, "name": "Walk", "completedDays": [true, false, true]}]`

		got, err := domain.DecodeGoals([]byte(legacy), "u7", ref)
		require.NoError(t, err)
		require.Len(t, got, 1)

		g := got[0]
		assert.Equal(t, "1709251200000", g.ID)
		assert.Equal(t, "u7", g.UserID)
		assert.Equal(t, 1, g.Version)
		assert.Equal(t, map[string]bool{"2024-03-01": true, "2024-03-03": true}, g.CompletedDates)
		assert.Equal(t, domain.GoalRecordVersion, g.Schema)
	})

	t.Run("Success: Missing id gets a generated one", func(t *testing.T) {
		got, err := domain.DecodeGoals([]byte(`[{"name": "Stretch"}]`), "u1", ref)
		require.NoError(t, err)
		assert.NotEmpty(t, got[0].ID)
	})

	t.Run("Success: Empty payload", func(t *testing.T) {
		got, err := domain.DecodeGoals(nil, "u1", ref)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Error: Garbage payload", func(t *testing.T) {
		_, err := domain.DecodeGoals([]byte(`{not json`), "u1", ref)
		assert.Error(t, err)
	})

	t.Run("Error: Record without name", func(t *testing.T) {
		_, err := domain.DecodeGoals([]byte(`[{"id": "a"}]`), "u1", ref)
		assert.ErrorIs(t, err, domain.ErrGoalNameEmpty)
	})
}
