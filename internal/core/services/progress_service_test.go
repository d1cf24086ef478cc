package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type progressFixture struct {
	svc     *ProgressService
	users   *MockUserRepository
	repo    *MockProgressRepository
	catalog *MockRewardCatalog
}

func newProgressFixture(t *testing.T) progressFixture {
	t.Helper()
	f := progressFixture{
		users:   new(MockUserRepository),
		repo:    new(MockProgressRepository),
		catalog: new(MockRewardCatalog),
	}
	f.svc = NewProgressService(f.users, f.repo, f.catalog)
	f.svc.now = func() time.Time { return time.Date(2026, time.February, 4, 9, 0, 0, 0, time.UTC) }

	user, _ := domain.NewUser("u1", "Ada", "ada@example.com")
	f.users.On("GetByID", mock.Anything, "u1").Return(user, nil)
	return f
}

func TestProgressService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: First read seeds and saves defaults", func(t *testing.T) {
		f := newProgressFixture(t)
		f.repo.On("Get", ctx, "ada@example.com").Return(nil, domain.ErrProgressNotFound)
		f.repo.On("Save", ctx, "ada@example.com", mock.AnythingOfType("*domain.UserProgress")).Return(nil)

		p, err := f.svc.Get(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, "Ada", p.Username)
		assert.Equal(t, 2980, p.XP)
		f.repo.AssertExpectations(t)
	})

	t.Run("Success: Stored record is returned untouched", func(t *testing.T) {
		f := newProgressFixture(t)
		stored := &domain.UserProgress{Username: "Ada", XP: 10}
		f.repo.On("Get", ctx, "ada@example.com").Return(stored, nil)

		p, err := f.svc.Get(ctx, "u1")

		require.NoError(t, err)
		assert.Same(t, stored, p)
		f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success: Corrupt record falls back to defaults", func(t *testing.T) {
		f := newProgressFixture(t)
		f.repo.On("Get", ctx, "ada@example.com").Return(nil, &domain.CorruptStateError{Key: "userProgress_ada@example.com", Err: errors.New("eof")})
		f.repo.On("Save", ctx, "ada@example.com", mock.Anything).Return(nil)

		p, err := f.svc.Get(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, 2980, p.XP)
	})
}

func TestProgressService_ClaimXP(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name string
		flip bool
		want int
	}{
		{"Success: Low roll", false, 50},
		{"Success: High roll", true, 100},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f := newProgressFixture(t)
			f.svc.coin = func() bool { return tt.flip }
			f.repo.On("Get", ctx, "ada@example.com").Return(&domain.UserProgress{XP: 0}, nil)
			f.repo.On("Save", ctx, "ada@example.com", mock.Anything).Return(nil)

			amount, p, err := f.svc.ClaimXP(ctx, "u1")

			require.NoError(t, err)
			assert.Equal(t, tt.want, amount)
			assert.Equal(t, tt.want, p.XP)
			assert.Equal(t, fmt.Sprintf("Claimed %d XP bonus", tt.want), p.ActivityLog[0].Description)
		})
	}
}

func TestProgressService_Redeem(t *testing.T) {
	ctx := context.Background()
	coffee := domain.Reward{ID: "coffee", Title: "Coffee", Cost: 30}

	t.Run("Success: Coins are spent", func(t *testing.T) {
		f := newProgressFixture(t)
		f.catalog.On("Reward", ctx, "coffee").Return(coffee, nil)
		f.repo.On("Get", ctx, "ada@example.com").Return(&domain.UserProgress{XP: 500}, nil)
		f.repo.On("Save", ctx, "ada@example.com", mock.Anything).Return(nil)

		p, err := f.svc.Redeem(ctx, "u1", "coffee")

		require.NoError(t, err)
		assert.Equal(t, 200, p.XP)
		assert.True(t, p.HasReward("coffee"))
	})

	t.Run("Fail: Not enough coins leaves storage alone", func(t *testing.T) {
		f := newProgressFixture(t)
		f.catalog.On("Reward", ctx, "coffee").Return(coffee, nil)
		f.repo.On("Get", ctx, "ada@example.com").Return(&domain.UserProgress{XP: 100}, nil)

		_, err := f.svc.Redeem(ctx, "u1", "coffee")

		assert.ErrorIs(t, err, domain.ErrInsufficientCoins)
		f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Fail: Unknown reward", func(t *testing.T) {
		f := newProgressFixture(t)
		f.catalog.On("Reward", ctx, "nope").Return(domain.Reward{}, domain.ErrRewardNotFound)

		_, err := f.svc.Redeem(ctx, "u1", "nope")
		assert.ErrorIs(t, err, domain.ErrRewardNotFound)
	})
}

func TestProgressService_Achievements(t *testing.T) {
	ctx := context.Background()
	f := newProgressFixture(t)
	f.repo.On("Get", ctx, "ada@example.com").Return(&domain.UserProgress{XP: 2500, CurrentStreak: 3}, nil)
	f.catalog.On("Achievements", ctx).Return([]domain.Achievement{
		{ID: "a", Requirement: 1000, Type: domain.AchievementXP},
		{ID: "b", Requirement: 5000, Type: domain.AchievementXP},
		{ID: "c", Requirement: 6, Type: domain.AchievementStreak},
	}, nil)

	got, err := f.svc.Achievements(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].Unlocked)
	assert.Equal(t, 100.0, got[0].Progress)
	assert.False(t, got[1].Unlocked)
	assert.Equal(t, 50.0, got[1].Progress)
	assert.Equal(t, 50.0, got[2].Progress)
}

func TestProgressService_UnlockBadgeAndStreak(t *testing.T) {
	ctx := context.Background()
	f := newProgressFixture(t)
	stored := &domain.UserProgress{UnlockedBadges: []string{"🔥"}}
	f.repo.On("Get", ctx, "ada@example.com").Return(stored, nil)
	f.repo.On("Save", ctx, "ada@example.com", stored).Return(nil)

	ok, err := f.svc.UnlockBadge(ctx, "u1", "🔥", "again")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.svc.UnlockBadge(ctx, "u1", "🎯", "Sharpshooter")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, f.svc.SetStreak(ctx, "u1", 12))
	assert.Equal(t, 12, stored.CurrentStreak)
}

func TestProgressService_SetStreakUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newProgressFixture(t)
	stored := &domain.UserProgress{CurrentStreak: 4}
	f.repo.On("Get", ctx, "ada@example.com").Return(stored, nil)

	require.NoError(t, f.svc.SetStreak(ctx, "u1", 4))
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}
