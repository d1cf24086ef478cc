package domain_test

import (
	"testing"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserProgress(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	p := domain.NewUserProgress("", now)

	assert.Equal(t, "User", p.Username)
	assert.Equal(t, 2980, p.XP)
	assert.Equal(t, 298, p.Coins())
	assert.Equal(t, 3, p.Level())
	assert.Len(t, p.ActivityLog, 3)
	assert.True(t, p.HasBadge("🔥"))
}

func TestUserProgress_Level(t *testing.T) {
	tests := []struct {
		xp     int
		level  int
		floor  int
		nextXP int
	}{
		{0, 1, 0, 1000},
		{999, 1, 0, 1000},
		{1000, 2, 1000, 2500},
		{2980, 3, 2500, 5000},
		{5000, 4, 5000, 10000},
		{19999, 5, 10000, 20000},
		{20000, 6, 20000, 35000},
		{34999, 6, 20000, 35000},
		{35000, 7, 35000, 40000},
		{52000, 10, 50000, 55000},
	}

	for _, tt := range tests {
		p := &domain.UserProgress{XP: tt.xp}
		assert.Equal(t, tt.level, p.Level(), "level at %d xp", tt.xp)
		assert.Equal(t, tt.floor, p.CurrentLevelXP(), "floor at %d xp", tt.xp)
		assert.Equal(t, tt.nextXP, p.NextLevelXP(), "next at %d xp", tt.xp)
	}

	t.Run("Level never decreases as XP grows", func(t *testing.T) {
		prev := 0
		for xp := 0; xp <= 100000; xp += 250 {
			l := (&domain.UserProgress{XP: xp}).Level()
			assert.GreaterOrEqual(t, l, prev, "xp=%d", xp)
			prev = l
		}
	})
}

func TestUserProgress_Mutations(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Success: AddXP logs newest first", func(t *testing.T) {
		p := domain.NewUserProgress("ada", now)
		require.NoError(t, p.AddXP(100, "", now))

		assert.Equal(t, 3080, p.XP)
		assert.Equal(t, domain.ActivityXPEarned, p.ActivityLog[0].Type)
		assert.Equal(t, "XP earned", p.ActivityLog[0].Description)
		assert.NotEmpty(t, p.ActivityLog[0].ID)
	})

	t.Run("Error: AddXP rejects non positive amounts", func(t *testing.T) {
		p := domain.NewUserProgress("ada", now)
		assert.ErrorIs(t, p.AddXP(0, "", now), domain.ErrInvalidXPAmount)
	})

	t.Run("Success: Redeem converts coins back to XP", func(t *testing.T) {
		p := &domain.UserProgress{XP: 1000}
		r := domain.Reward{ID: "r1", Title: "Coffee", Cost: 50}

		require.NoError(t, p.Redeem(r, now))
		assert.Equal(t, 500, p.XP)
		assert.True(t, p.HasReward("r1"))
		assert.Equal(t, "Redeemed Coffee for 50 coins", p.ActivityLog[0].Description)
	})

	t.Run("Error: Redeem without enough coins", func(t *testing.T) {
		p := &domain.UserProgress{XP: 100}
		err := p.Redeem(domain.Reward{ID: "r1", Cost: 50}, now)

		assert.ErrorIs(t, err, domain.ErrInsufficientCoins)
		assert.Equal(t, 100, p.XP)
	})

	t.Run("Success: UnlockBadge is idempotent", func(t *testing.T) {
		p := &domain.UserProgress{}
		assert.True(t, p.UnlockBadge("🎯", "Sharpshooter", now))
		assert.False(t, p.UnlockBadge("🎯", "Sharpshooter", now))
		assert.Len(t, p.ActivityLog, 1)
	})
}

func TestPreferences(t *testing.T) {
	p := domain.DefaultPreferences()
	assert.Equal(t, domain.ThemeLight, p.Theme)
	assert.Equal(t, domain.ThemeDark, p.ToggleTheme())
	assert.Equal(t, domain.ThemeLight, p.ToggleTheme())
	assert.True(t, p.ToggleFocusMode())

	theme, err := domain.ParseTheme(" DARK ")
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)

	_, err = domain.ParseTheme("sepia")
	assert.ErrorIs(t, err, domain.ErrInvalidTheme)
}

func TestCorruptStateError(t *testing.T) {
	err := &domain.CorruptStateError{Key: "tasks_u1", Err: assert.AnError}

	assert.ErrorIs(t, err, domain.ErrCorruptState)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "tasks_u1")
}

func TestParsePeriod(t *testing.T) {
	p, err := domain.ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodDaily, p)

	p, err = domain.ParsePeriod("AllTime")
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodAllTime, p)

	_, err = domain.ParsePeriod("yearly")
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}
