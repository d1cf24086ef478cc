package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/storage"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/rs/zerolog/log"
)

const legacyTasksKey = "tasks"

var _ domain.GoalRepository = (*KVGoalRepository)(nil)

// KVGoalRepository keeps each profile's goal list as one JSON array under
// tasks_<userId>.
type KVGoalRepository struct {
	store storage.Store
	now   func() time.Time

	mu sync.Mutex
}

func NewKVGoalRepository(store storage.Store) *KVGoalRepository {
	return &KVGoalRepository{store: store, now: time.Now}
}

func tasksKey(userID string) string {
	return "tasks_" + userID
}

func (r *KVGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx, userID)
}

func (r *KVGoalRepository) GetByID(ctx context.Context, userID, id string) (*domain.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	goals, err := r.load(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrCorruptState) {
		return nil, err
	}
	if i := indexOf(goals, id); i >= 0 {
		return goals[i], nil
	}
	return nil, domain.ErrGoalNotFound
}

func (r *KVGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	return r.modify(ctx, goal.UserID, func(goals []*domain.Goal) ([]*domain.Goal, error) {
		if indexOf(goals, goal.ID) >= 0 {
			return nil, domain.ErrGoalConflict
		}
		return append(goals, goal.Clone()), nil
	})
}

func (r *KVGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	return r.modify(ctx, goal.UserID, func(goals []*domain.Goal) ([]*domain.Goal, error) {
		i := indexOf(goals, goal.ID)
		if i < 0 {
			return nil, domain.ErrGoalNotFound
		}
		if goals[i].Version != goal.Version {
			return nil, domain.ErrGoalConflict
		}
		goal.Version++
		goals[i] = goal.Clone()
		return goals, nil
	})
}

func (r *KVGoalRepository) Delete(ctx context.Context, userID, id string) error {
	return r.modify(ctx, userID, func(goals []*domain.Goal) ([]*domain.Goal, error) {
		i := indexOf(goals, id)
		if i < 0 {
			return nil, domain.ErrGoalNotFound
		}
		return append(goals[:i], goals[i+1:]...), nil
	})
}

func (r *KVGoalRepository) ReplaceAll(ctx context.Context, userID string, goals []*domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Goal, len(goals))
	for i, g := range goals {
		out[i] = g.Clone()
	}
	return r.save(ctx, userID, out)
}

// modify runs one read-modify-write cycle. Unreadable stored state is
// overwritten by the result.
func (r *KVGoalRepository) modify(ctx context.Context, userID string, apply func([]*domain.Goal) ([]*domain.Goal, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	goals, err := r.load(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrCorruptState) {
		return err
	}
	goals, err = apply(goals)
	if err != nil {
		return err
	}
	return r.save(ctx, userID, goals)
}

func (r *KVGoalRepository) load(ctx context.Context, userID string) ([]*domain.Goal, error) {
	key := tasksKey(userID)
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return r.adoptLegacy(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("repository: load goals: %w", err)
	}

	goals, err := domain.DecodeGoals(raw, userID, r.now())
	if err != nil {
		return []*domain.Goal{}, &domain.CorruptStateError{Key: key, Err: err}
	}
	return goals, nil
}

// adoptLegacy hands the single pre-profile task list to the first profile
// that reads its goals, then removes the old key.
func (r *KVGoalRepository) adoptLegacy(ctx context.Context, userID string) ([]*domain.Goal, error) {
	raw, err := r.store.Get(ctx, legacyTasksKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []*domain.Goal{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repository: load legacy goals: %w", err)
	}

	goals, err := domain.DecodeGoals(raw, userID, r.now())
	if err != nil {
		return []*domain.Goal{}, &domain.CorruptStateError{Key: legacyTasksKey, Err: err}
	}
	for _, g := range goals {
		g.UserID = userID
	}

	if err := r.save(ctx, userID, goals); err != nil {
		return nil, err
	}
	if err := r.store.Delete(ctx, legacyTasksKey); err != nil {
		log.Warn().Err(err).Msg("could not remove legacy task list")
	}
	log.Info().Str("user_id", userID).Int("goals", len(goals)).Msg("migrated legacy task list")
	return goals, nil
}

func (r *KVGoalRepository) save(ctx context.Context, userID string, goals []*domain.Goal) error {
	raw, err := domain.EncodeGoals(goals)
	if err != nil {
		return fmt.Errorf("repository: encode goals: %w", err)
	}
	if err := r.store.Set(ctx, tasksKey(userID), raw); err != nil {
		return fmt.Errorf("repository: save goals: %w", err)
	}
	return nil
}

func indexOf(goals []*domain.Goal, id string) int {
	for i, g := range goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}
