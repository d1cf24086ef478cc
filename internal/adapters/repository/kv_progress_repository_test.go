package repository

import (
	"context"
	"testing"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/storage"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVProgressRepository(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewKVProgressRepository(store)

	t.Run("Fail: Nothing stored", func(t *testing.T) {
		_, err := repo.Get(ctx, "ada@example.com")
		assert.ErrorIs(t, err, domain.ErrProgressNotFound)
	})

	t.Run("Success: Round trip under the email key", func(t *testing.T) {
		p := domain.NewUserProgress("Ada", time.Now())
		require.NoError(t, repo.Save(ctx, "Ada@Example.com", p))

		_, err := store.Get(ctx, "userProgress_ada@example.com")
		require.NoError(t, err)

		got, err := repo.Get(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, p.XP, got.XP)
		assert.Equal(t, p.UnlockedBadges, got.UnlockedBadges)
	})

	t.Run("Fail: Corrupt record", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "userProgress_bob@example.com", []byte("[")))
		_, err := repo.Get(ctx, "bob@example.com")
		assert.ErrorIs(t, err, domain.ErrCorruptState)
	})
}

func TestKVPreferencesRepository(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewKVPreferencesRepository(store)

	t.Run("Success: Defaults when nothing is stored", func(t *testing.T) {
		prefs, err := repo.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultPreferences(), prefs)
	})

	t.Run("Success: Round trip", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "u1", &domain.Preferences{Theme: domain.ThemeDark, FocusMode: true}))

		raw, err := store.Get(ctx, "theme_u1")
		require.NoError(t, err)
		assert.Equal(t, "dark", string(raw))
		raw, err = store.Get(ctx, "focusMode_u1")
		require.NoError(t, err)
		assert.Equal(t, "true", string(raw))

		prefs, err := repo.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, &domain.Preferences{Theme: domain.ThemeDark, FocusMode: true}, prefs)
	})

	t.Run("Success: JSON quoted theme is accepted", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "theme_u2", []byte(`"dark"`)))
		prefs, err := repo.Get(ctx, "u2")
		require.NoError(t, err)
		assert.Equal(t, domain.ThemeDark, prefs.Theme)
	})

	t.Run("Fail: Corrupt values fall back to defaults", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "theme_u3", []byte("purple")))
		prefs, err := repo.Get(ctx, "u3")
		assert.ErrorIs(t, err, domain.ErrCorruptState)
		assert.Equal(t, domain.DefaultPreferences(), prefs)

		require.NoError(t, store.Set(ctx, "focusMode_u4", []byte("maybe")))
		prefs, err = repo.Get(ctx, "u4")
		assert.ErrorIs(t, err, domain.ErrCorruptState)
		assert.Equal(t, domain.DefaultPreferences(), prefs)
	})
}
