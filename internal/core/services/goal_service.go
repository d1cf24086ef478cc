package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// StreakScheduler is notified after every goal mutation of a profile.
type StreakScheduler interface {
	Enqueue(userID string)
}

type GoalService struct {
	repo    domain.GoalRepository
	streaks StreakScheduler
	now     func() time.Time
}

func NewGoalService(repo domain.GoalRepository, streaks StreakScheduler) *GoalService {
	return &GoalService{
		repo:    repo,
		streaks: streaks,
		now:     time.Now,
	}
}

type CreateGoalInput struct {
	UserID string
	Name   string
}

// ReplaceGoalInput is one entry of a whole-list replacement. An empty ID gets
// a fresh one.
type ReplaceGoalInput struct {
	ID             string
	Name           string
	CompletedDates map[string]bool
}

func (s *GoalService) Create(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	goal, err := domain.NewGoal(input.UserID, input.Name)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("goal service: create: %w", err)
	}

	s.touched(input.UserID)
	return goal, nil
}

// List returns the profile's goals. Unreadable stored state is reported in
// the log and replaced by an empty list.
func (s *GoalService) List(ctx context.Context, userID string) ([]*domain.Goal, error) {
	goals, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCorruptState) {
			log.Warn().Err(err).Str("user_id", userID).Msg("goal list unreadable, continuing with defaults")
			return goals, nil
		}
		return nil, fmt.Errorf("goal service: list: %w", err)
	}
	return goals, nil
}

func (s *GoalService) Toggle(ctx context.Context, userID, goalID string, date time.Time) (*domain.Goal, error) {
	return s.mutate(ctx, userID, goalID, func(g *domain.Goal) error {
		g.Toggle(date)
		return nil
	})
}

// ToggleToday flips today's entry in the service's clock.
func (s *GoalService) ToggleToday(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	return s.Toggle(ctx, userID, goalID, s.now())
}

func (s *GoalService) Mark(ctx context.Context, userID, goalID string, date time.Time, done bool) (*domain.Goal, error) {
	return s.mutate(ctx, userID, goalID, func(g *domain.Goal) error {
		g.Mark(date, done)
		return nil
	})
}

func (s *GoalService) Rename(ctx context.Context, userID, goalID, name string) (*domain.Goal, error) {
	return s.mutate(ctx, userID, goalID, func(g *domain.Goal) error {
		return g.Rename(name)
	})
}

func (s *GoalService) Delete(ctx context.Context, userID, goalID string) error {
	if err := s.repo.Delete(ctx, userID, goalID); err != nil {
		return fmt.Errorf("goal service: delete: %w", err)
	}
	s.touched(userID)
	return nil
}

// Replace swaps the entire goal list of a profile.
func (s *GoalService) Replace(ctx context.Context, userID string, inputs []ReplaceGoalInput) ([]*domain.Goal, error) {
	if userID == "" {
		return nil, domain.ErrGoalInvalidUserID
	}

	now := s.now().UTC()
	goals := make([]*domain.Goal, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		goal, err := domain.NewGoal(userID, in.Name)
		if err != nil {
			return nil, err
		}
		if in.ID != "" {
			goal.ID = in.ID
		}
		if seen[goal.ID] {
			goal.ID = uuid.NewString()
		}
		seen[goal.ID] = true

		for key, done := range in.CompletedDates {
			date, err := domain.ParseDate(key)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", err, key)
			}
			goal.CompletedDates[domain.DateKey(date)] = done
		}
		goal.CreatedAt, goal.UpdatedAt = now, now
		goals = append(goals, goal)
	}

	if err := s.repo.ReplaceAll(ctx, userID, goals); err != nil {
		return nil, fmt.Errorf("goal service: replace: %w", err)
	}

	s.touched(userID)
	return goals, nil
}

func (s *GoalService) mutate(ctx context.Context, userID, goalID string, apply func(*domain.Goal) error) (*domain.Goal, error) {
	goal, err := s.repo.GetByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if err := apply(goal); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("goal service: update: %w", err)
	}

	s.touched(userID)
	return goal, nil
}

func (s *GoalService) touched(userID string) {
	if s.streaks != nil {
		s.streaks.Enqueue(userID)
	}
}
