package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/storage"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/rs/zerolog/log"
)

const (
	usersKey       = "users"
	currentUserKey = "currentUser"
)

var (
	_ domain.UserRepository    = (*KVUserRepository)(nil)
	_ domain.SessionRepository = (*KVSessionRepository)(nil)
)

// KVUserRepository stores every account in one JSON array under "users".
type KVUserRepository struct {
	store storage.Store

	mu sync.Mutex
}

func NewKVUserRepository(store storage.Store) *KVUserRepository {
	return &KVUserRepository{store: store}
}

func (r *KVUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	c := *user
	return r.save(ctx, append(users, &c))
}

func (r *KVUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.find(ctx, func(u *domain.User) bool { return u.Email == domain.NormalizeEmail(email) })
}

func (r *KVUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.find(ctx, func(u *domain.User) bool { return u.ID == id })
}

func (r *KVUserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, u := range users {
		switch {
		case u.ID == user.ID:
			idx = i
		case u.Email == user.Email:
			return domain.ErrEmailAlreadyExists
		}
	}
	if idx < 0 {
		return domain.ErrUserNotFound
	}

	c := *user
	users[idx] = &c
	return r.save(ctx, users)
}

func (r *KVUserRepository) find(ctx context.Context, match func(*domain.User) bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if match(u) {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// load treats an unreadable account list as empty so sign-up keeps working;
// the next save replaces it.
func (r *KVUserRepository) load(ctx context.Context) ([]*domain.User, error) {
	raw, err := r.store.Get(ctx, usersKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []*domain.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repository: load users: %w", err)
	}

	var users []*domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		log.Warn().Err(&domain.CorruptStateError{Key: usersKey, Err: err}).Msg("user list unreadable, continuing with defaults")
		return []*domain.User{}, nil
	}
	for _, u := range users {
		u.Email = domain.NormalizeEmail(u.Email)
	}
	return users, nil
}

func (r *KVUserRepository) save(ctx context.Context, users []*domain.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("repository: encode users: %w", err)
	}
	if err := r.store.Set(ctx, usersKey, raw); err != nil {
		return fmt.Errorf("repository: save users: %w", err)
	}
	return nil
}

// KVSessionRepository remembers the signed-in profile under "currentUser".
type KVSessionRepository struct {
	store storage.Store
}

func NewKVSessionRepository(store storage.Store) *KVSessionRepository {
	return &KVSessionRepository{store: store}
}

func (r *KVSessionRepository) Current(ctx context.Context) (*domain.User, error) {
	raw, err := r.store.Get(ctx, currentUserKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, domain.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("repository: load session: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
		if err == nil {
			err = errors.New("session carries no user id")
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrNoSession, &domain.CorruptStateError{Key: currentUserKey, Err: err})
	}
	return &user, nil
}

func (r *KVSessionRepository) SetCurrent(ctx context.Context, user *domain.User) error {
	public := user.Public()
	raw, err := json.Marshal(&public)
	if err != nil {
		return fmt.Errorf("repository: encode session: %w", err)
	}
	if err := r.store.Set(ctx, currentUserKey, raw); err != nil {
		return fmt.Errorf("repository: save session: %w", err)
	}
	return nil
}

func (r *KVSessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, currentUserKey); err != nil {
		return fmt.Errorf("repository: clear session: %w", err)
	}
	return nil
}
