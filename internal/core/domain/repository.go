package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrGoalConflict = errors.New("goal version conflict")
	ErrNoSession    = errors.New("no user is logged in")

	// ErrCorruptState marks a stored value that could not be decoded. Readers
	// still receive usable defaults alongside it.
	ErrCorruptState = errors.New("corrupt stored state")
)

// CorruptStateError names the key whose value failed to decode.
type CorruptStateError struct {
	Key string
	Err error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt stored state at %q: %v", e.Key, e.Err)
}

func (e *CorruptStateError) Unwrap() error { return e.Err }

func (e *CorruptStateError) Is(target error) bool { return target == ErrCorruptState }

type GoalRepository interface {
	// ListByUserID returns the goals of one profile in insertion order.
	ListByUserID(ctx context.Context, userID string) ([]*Goal, error)

	GetByID(ctx context.Context, userID, id string) (*Goal, error)

	Create(ctx context.Context, goal *Goal) error

	// Update persists a goal whose Version still matches the stored one and
	// bumps it. A stale version yields ErrGoalConflict.
	Update(ctx context.Context, goal *Goal) error

	Delete(ctx context.Context, userID, id string) error

	// ReplaceAll swaps the whole goal list of a profile in one write.
	ReplaceAll(ctx context.Context, userID string, goals []*Goal) error
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// ProgressRepository stores the gamification ledger keyed by email.
type ProgressRepository interface {
	Get(ctx context.Context, email string) (*UserProgress, error)
	Save(ctx context.Context, email string, progress *UserProgress) error
}

type PreferencesRepository interface {
	Get(ctx context.Context, userID string) (*Preferences, error)
	Save(ctx context.Context, userID string, prefs *Preferences) error
}

// SessionRepository remembers which profile the local CLI is acting as.
type SessionRepository interface {
	Current(ctx context.Context) (*User, error)
	SetCurrent(ctx context.Context, user *User) error
	Clear(ctx context.Context) error
}
