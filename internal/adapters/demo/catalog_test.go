package demo

import (
	"context"
	"strings"
	"testing"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)
	ctx := context.Background()

	rewards, err := c.Rewards(ctx)
	require.NoError(t, err)
	assert.Len(t, rewards, 16)

	achievements, err := c.Achievements(ctx)
	require.NoError(t, err)
	assert.Len(t, achievements, 8)
	assert.Equal(t, domain.AchievementStreak, achievements[7].Type)

	challenges, err := c.Challenges(ctx)
	require.NoError(t, err)
	assert.Len(t, challenges, 6)
	assert.Equal(t, 124, challenges[0].ParticipantCount)

	t.Run("Success: Leaderboard periods", func(t *testing.T) {
		daily, err := c.Leaderboard(ctx, domain.PeriodDaily)
		require.NoError(t, err)
		assert.Len(t, daily, 8)
		assert.True(t, daily[2].IsCurrentUser)

		all, err := c.Leaderboard(ctx, domain.PeriodAllTime)
		require.NoError(t, err)
		assert.Equal(t, 45000, all[0].XP)
	})

	t.Run("Error: Unknown period", func(t *testing.T) {
		_, err := c.Leaderboard(ctx, "yearly")
		assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
	})

	t.Run("Success: Reward lookup", func(t *testing.T) {
		r, err := c.Reward(ctx, "coupon_2")
		require.NoError(t, err)
		assert.Equal(t, 500, r.Cost)

		_, err = c.Reward(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrRewardNotFound)
	})
}

func TestCatalog_Advise(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name    string
		message string
		prefix  string
	}{
		{"Schedule wins over goal", "Plan my goal", "Great! I can help you create a workout schedule."},
		{"Goals", "What TARGET should I pick?", "Setting SMART goals is key!"},
		{"Motivation", "I feel like I want to quit", "I understand motivation can be tough!"},
		{"Recovery", "my legs are sore", "Recovery is just as important as training!"},
		{"Nutrition", "what food", "Nutrition is 70% of your results!"},
		{"Thanks", "thank you", "You're very welcome!"},
		{"Fallback", "???", "That's a great question!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := c.Advise(ctx, "Ada", tt.message)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(reply, tt.prefix), "got %q", reply)
		})
	}

	t.Run("Greeting uses the name", func(t *testing.T) {
		reply, _ := c.Advise(ctx, "Ada", "hey")
		assert.True(t, strings.HasPrefix(reply, "Hello Ada! 👋"))
	})

	t.Run("Welcome falls back to a neutral name", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(c.Welcome(""), "Hi there! 👋"))
	})
}

func TestParseCatalog_MissingPeriod(t *testing.T) {
	_, err := ParseCatalog([]byte("[leaderboard]\ndaily = []\n"))
	assert.Error(t, err)
}
