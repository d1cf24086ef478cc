package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/rs/zerolog/log"
)

type PreferencesService struct {
	repo domain.PreferencesRepository
	mu   sync.Mutex
}

func NewPreferencesService(repo domain.PreferencesRepository) *PreferencesService {
	return &PreferencesService{repo: repo}
}

// UpdatePreferencesInput leaves nil fields untouched.
type UpdatePreferencesInput struct {
	UserID    string
	Theme     *string
	FocusMode *bool
}

func (s *PreferencesService) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	prefs, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCorruptState) {
			log.Warn().Err(err).Str("user_id", userID).Msg("preferences unreadable, continuing with defaults")
			return domain.DefaultPreferences(), nil
		}
		return nil, fmt.Errorf("preferences service: get: %w", err)
	}
	return prefs, nil
}

func (s *PreferencesService) Update(ctx context.Context, input UpdatePreferencesInput) (*domain.Preferences, error) {
	var theme string
	if input.Theme != nil {
		t, err := domain.ParseTheme(*input.Theme)
		if err != nil {
			return nil, err
		}
		theme = t
	}

	return s.modify(ctx, input.UserID, func(p *domain.Preferences) {
		if theme != "" {
			p.Theme = theme
		}
		if input.FocusMode != nil {
			p.FocusMode = *input.FocusMode
		}
	})
}

func (s *PreferencesService) SetTheme(ctx context.Context, userID, theme string) (*domain.Preferences, error) {
	return s.Update(ctx, UpdatePreferencesInput{UserID: userID, Theme: &theme})
}

func (s *PreferencesService) ToggleTheme(ctx context.Context, userID string) (*domain.Preferences, error) {
	return s.modify(ctx, userID, func(p *domain.Preferences) { p.ToggleTheme() })
}

func (s *PreferencesService) ToggleFocusMode(ctx context.Context, userID string) (*domain.Preferences, error) {
	return s.modify(ctx, userID, func(p *domain.Preferences) { p.ToggleFocusMode() })
}

func (s *PreferencesService) modify(ctx context.Context, userID string, apply func(*domain.Preferences)) (*domain.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	apply(prefs)
	if err := s.repo.Save(ctx, userID, prefs); err != nil {
		return nil, fmt.Errorf("preferences service: save: %w", err)
	}
	return prefs, nil
}
