package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/rs/zerolog/log"
)

type ProgressService struct {
	users   domain.UserRepository
	repo    domain.ProgressRepository
	catalog domain.RewardCatalog

	// mu serialises read-modify-write cycles on progress records.
	mu   sync.Mutex
	now  func() time.Time
	coin func() bool
}

func NewProgressService(users domain.UserRepository, repo domain.ProgressRepository, catalog domain.RewardCatalog) *ProgressService {
	return &ProgressService{
		users:   users,
		repo:    repo,
		catalog: catalog,
		now:     time.Now,
		coin:    func() bool { return rand.IntN(2) == 1 },
	}
}

func (s *ProgressService) Get(ctx context.Context, userID string) (*domain.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, p, fresh, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if fresh {
		if err := s.repo.Save(ctx, user.Email, p); err != nil {
			return nil, fmt.Errorf("progress service: save: %w", err)
		}
	}
	return p, nil
}

func (s *ProgressService) AddXP(ctx context.Context, userID string, amount int, description string) (*domain.UserProgress, error) {
	return s.update(ctx, userID, func(p *domain.UserProgress) error {
		return p.AddXP(amount, description, s.now())
	})
}

// ClaimXP grants a bonus of 50 or 100 XP with equal odds.
func (s *ProgressService) ClaimXP(ctx context.Context, userID string) (int, *domain.UserProgress, error) {
	amount := 50
	if s.coin() {
		amount = 100
	}
	p, err := s.update(ctx, userID, func(p *domain.UserProgress) error {
		return p.AddXP(amount, fmt.Sprintf("Claimed %d XP bonus", amount), s.now())
	})
	if err != nil {
		return 0, nil, err
	}
	return amount, p, nil
}

func (s *ProgressService) Redeem(ctx context.Context, userID, rewardID string) (*domain.UserProgress, error) {
	reward, err := s.catalog.Reward(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, userID, func(p *domain.UserProgress) error {
		return p.Redeem(reward, s.now())
	})
}

// UnlockBadge reports false when the badge was already unlocked.
func (s *ProgressService) UnlockBadge(ctx context.Context, userID, badge, description string) (bool, error) {
	unlocked := false
	_, err := s.update(ctx, userID, func(p *domain.UserProgress) error {
		unlocked = p.UnlockBadge(badge, description, s.now())
		return nil
	})
	return unlocked, err
}

// SetStreak stores the recomputed streak and skips the write when the stored
// record already carries it.
func (s *ProgressService) SetStreak(ctx context.Context, userID string, streak int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, p, fresh, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if !fresh && p.CurrentStreak == streak {
		return nil
	}
	p.CurrentStreak = streak
	if err := s.repo.Save(ctx, user.Email, p); err != nil {
		return fmt.Errorf("progress service: save: %w", err)
	}
	return nil
}

func (s *ProgressService) Rewards(ctx context.Context) ([]domain.Reward, error) {
	return s.catalog.Rewards(ctx)
}

// Achievements scores every catalog achievement against the profile.
func (s *ProgressService) Achievements(ctx context.Context, userID string) ([]domain.AchievementProgress, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	all, err := s.catalog.Achievements(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AchievementProgress, 0, len(all))
	for _, a := range all {
		value := 0
		switch a.Type {
		case domain.AchievementXP:
			value = p.XP
		case domain.AchievementStreak:
			value = p.CurrentStreak
		}

		ap := domain.AchievementProgress{Achievement: a}
		if a.Requirement > 0 {
			ap.Progress = min(float64(value)/float64(a.Requirement)*100, 100)
			ap.Unlocked = value >= a.Requirement
		}
		out = append(out, ap)
	}
	return out, nil
}

func (s *ProgressService) update(ctx context.Context, userID string, apply func(*domain.UserProgress) error) (*domain.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, p, _, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := apply(p); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, user.Email, p); err != nil {
		return nil, fmt.Errorf("progress service: save: %w", err)
	}
	return p, nil
}

// load returns the stored record, or the seeded defaults with fresh set when
// nothing usable is stored yet.
func (s *ProgressService) load(ctx context.Context, userID string) (*domain.User, *domain.UserProgress, bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, false, err
	}

	p, err := s.repo.Get(ctx, user.Email)
	switch {
	case err == nil:
		return user, p, false, nil
	case errors.Is(err, domain.ErrProgressNotFound):
		return user, domain.NewUserProgress(user.Name, s.now()), true, nil
	case errors.Is(err, domain.ErrCorruptState):
		log.Warn().Err(err).Str("user_id", userID).Msg("progress record unreadable, continuing with defaults")
		return user, domain.NewUserProgress(user.Name, s.now()), true, nil
	default:
		return nil, nil, false, fmt.Errorf("progress service: load: %w", err)
	}
}
