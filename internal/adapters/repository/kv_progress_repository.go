package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/storage"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
)

var (
	_ domain.ProgressRepository    = (*KVProgressRepository)(nil)
	_ domain.PreferencesRepository = (*KVPreferencesRepository)(nil)
)

type KVProgressRepository struct {
	store storage.Store
}

func NewKVProgressRepository(store storage.Store) *KVProgressRepository {
	return &KVProgressRepository{store: store}
}

func progressKey(email string) string {
	return "userProgress_" + domain.NormalizeEmail(email)
}

func (r *KVProgressRepository) Get(ctx context.Context, email string) (*domain.UserProgress, error) {
	key := progressKey(email)
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, domain.ErrProgressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repository: load progress: %w", err)
	}

	var p domain.UserProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &domain.CorruptStateError{Key: key, Err: err}
	}
	return &p, nil
}

func (r *KVProgressRepository) Save(ctx context.Context, email string, p *domain.UserProgress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("repository: encode progress: %w", err)
	}
	if err := r.store.Set(ctx, progressKey(email), raw); err != nil {
		return fmt.Errorf("repository: save progress: %w", err)
	}
	return nil
}

// KVPreferencesRepository keeps the theme as a bare string and focus mode as
// a JSON boolean, each under its own key.
type KVPreferencesRepository struct {
	store storage.Store
}

func NewKVPreferencesRepository(store storage.Store) *KVPreferencesRepository {
	return &KVPreferencesRepository{store: store}
}

func themeKey(userID string) string     { return "theme_" + userID }
func focusModeKey(userID string) string { return "focusMode_" + userID }

func (r *KVPreferencesRepository) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	prefs := domain.DefaultPreferences()

	raw, err := r.store.Get(ctx, themeKey(userID))
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("repository: load theme: %w", err)
	default:
		theme, perr := domain.ParseTheme(strings.Trim(string(raw), `"`))
		if perr != nil {
			return prefs, &domain.CorruptStateError{Key: themeKey(userID), Err: perr}
		}
		prefs.Theme = theme
	}

	raw, err = r.store.Get(ctx, focusModeKey(userID))
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("repository: load focus mode: %w", err)
	default:
		if jerr := json.Unmarshal(raw, &prefs.FocusMode); jerr != nil {
			return domain.DefaultPreferences(), &domain.CorruptStateError{Key: focusModeKey(userID), Err: jerr}
		}
	}
	return prefs, nil
}

func (r *KVPreferencesRepository) Save(ctx context.Context, userID string, prefs *domain.Preferences) error {
	if err := r.store.Set(ctx, themeKey(userID), []byte(prefs.Theme)); err != nil {
		return fmt.Errorf("repository: save theme: %w", err)
	}
	raw, err := json.Marshal(prefs.FocusMode)
	if err != nil {
		return fmt.Errorf("repository: encode focus mode: %w", err)
	}
	if err := r.store.Set(ctx, focusModeKey(userID), raw); err != nil {
		return fmt.Errorf("repository: save focus mode: %w", err)
	}
	return nil
}
