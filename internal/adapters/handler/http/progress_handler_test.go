package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
)

type progressBody struct {
	domain.UserProgress
	Coins         int     `json:"coins"`
	Level         int     `json:"level"`
	NextLevelXP   int     `json:"nextLevelXp"`
	LevelProgress float64 `json:"levelProgress"`
}

func TestProgressHandler(t *testing.T) {
	srv := newTestServer(t, nil)
	token := srv.register(t, "Ada", "ada@example.com").Token

	t.Run("Success: First read seeds the starting standing", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/api/v1/progress", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		p := decode[progressBody](t, w)
		assert.Equal(t, "Ada", p.Username)
		assert.Equal(t, 2980, p.XP)
		assert.Equal(t, 298, p.Coins)
		assert.Equal(t, 3, p.Level)
		assert.Equal(t, 5000, p.NextLevelXP)
		assert.Len(t, p.ActivityLog, 3)
	})

	t.Run("Success: Award XP prepends an activity", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/api/v1/progress/xp", token, map[string]any{"amount": 20, "description": "Workout"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		p := decode[progressBody](t, w)
		assert.Equal(t, 3000, p.XP)
		assert.Equal(t, domain.ActivityXPEarned, p.ActivityLog[0].Type)
		assert.Equal(t, "Workout", p.ActivityLog[0].Description)
	})

	t.Run("Fail: Non-positive XP", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/api/v1/progress/xp", token, map[string]any{"amount": -5})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Success: Claim grants 50 or 100", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/api/v1/progress/claim", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode[struct {
			Amount   int          `json:"amount"`
			Progress progressBody `json:"progress"`
		}](t, w)
		assert.Contains(t, []int{50, 100}, body.Amount)
		assert.Equal(t, 3000+body.Amount, body.Progress.XP)
	})

	t.Run("Success: Redeem spends coins", func(t *testing.T) {
		before := decode[progressBody](t, srv.do(t, http.MethodGet, "/api/v1/progress", token, nil))

		w := srv.do(t, http.MethodPost, "/api/v1/progress/redeem", token, map[string]string{"reward_id": "theme_1"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		after := decode[progressBody](t, w)
		assert.Equal(t, before.Coins-50, after.Coins)
		require.Len(t, after.OwnedRewards, 1)
		assert.Equal(t, "theme_1", after.OwnedRewards[0].ID)
	})

	t.Run("Fail: Unknown reward is 404", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/api/v1/progress/redeem", token, map[string]string{"reward_id": "nope"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Success: A badge unlocks once", func(t *testing.T) {
		first := decode[map[string]bool](t, srv.do(t, http.MethodPost, "/api/v1/progress/badges", token, map[string]string{"badge": "🎯"}))
		second := decode[map[string]bool](t, srv.do(t, http.MethodPost, "/api/v1/progress/badges", token, map[string]string{"badge": "🎯"}))

		assert.True(t, first["unlocked"])
		assert.False(t, second["unlocked"])
	})

	t.Run("Success: Achievements and rewards are listed", func(t *testing.T) {
		achievements := decode[[]domain.AchievementProgress](t, srv.do(t, http.MethodGet, "/api/v1/progress/achievements", token, nil))
		assert.NotEmpty(t, achievements)
		for _, a := range achievements {
			assert.GreaterOrEqual(t, a.Progress, 0.0)
			assert.LessOrEqual(t, a.Progress, 100.0)
		}

		rewards := decode[[]domain.Reward](t, srv.do(t, http.MethodGet, "/api/v1/rewards", token, nil))
		assert.NotEmpty(t, rewards)
	})
}
