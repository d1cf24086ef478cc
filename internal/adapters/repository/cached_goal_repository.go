package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var _ domain.GoalRepository = (*CachedGoalRepository)(nil)

const goalCacheTTL = 30 * time.Minute

// CachedGoalRepository fronts goal listings with a Redis read-through cache.
// Every write drops the profile's entry.
type CachedGoalRepository struct {
	next  domain.GoalRepository
	cache *redis.Client
}

func NewCachedGoalRepository(next domain.GoalRepository, cache *redis.Client) *CachedGoalRepository {
	return &CachedGoalRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedGoalRepository) cacheKey(userID string) string {
	return fmt.Sprintf("goals:%s", userID)
}

func (r *CachedGoalRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("cache: failed to invalidate goals")
	}
}

func (r *CachedGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	key := r.cacheKey(userID)

	val, err := r.cache.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var goals []*domain.Goal
		if err := json.Unmarshal(val, &goals); err == nil {
			return goals, nil
		}
		log.Warn().Str("user_id", userID).Msg("cache: corrupted goal list, cleaning up key")
		r.cache.Del(ctx, key)
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Msg("cache: redis read error")
	}

	goals, err := r.next.ListByUserID(ctx, userID)
	if err != nil {
		// Unreadable state is never cached; the caller still gets the defaults.
		return goals, err
	}

	if data, err := json.Marshal(goals); err == nil {
		if setErr := r.cache.Set(ctx, key, data, goalCacheTTL).Err(); setErr != nil {
			log.Warn().Err(setErr).Msg("cache: redis set error")
		}
	}

	return goals, nil
}

func (r *CachedGoalRepository) GetByID(ctx context.Context, userID, id string) (*domain.Goal, error) {
	return r.next.GetByID(ctx, userID, id)
}

func (r *CachedGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	if err := r.next.Create(ctx, goal); err != nil {
		return err
	}
	r.invalidate(ctx, goal.UserID)
	return nil
}

func (r *CachedGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	if err := r.next.Update(ctx, goal); err != nil {
		return err
	}
	r.invalidate(ctx, goal.UserID)
	return nil
}

func (r *CachedGoalRepository) Delete(ctx context.Context, userID, id string) error {
	defer r.invalidate(ctx, userID)
	return r.next.Delete(ctx, userID, id)
}

func (r *CachedGoalRepository) ReplaceAll(ctx context.Context, userID string, goals []*domain.Goal) error {
	defer r.invalidate(ctx, userID)
	return r.next.ReplaceAll(ctx, userID, goals)
}
