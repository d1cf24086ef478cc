package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AuthService struct {
	repo     domain.UserRepository
	progress domain.ProgressRepository
}

// NewAuthService wires account management. progress may be nil; when set,
// a profile's progress record follows it across email changes.
func NewAuthService(repo domain.UserRepository, progress domain.ProgressRepository) *AuthService {
	return &AuthService{
		repo:     repo,
		progress: progress,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateProfileInput struct {
	UserID string
	Name   string
	Email  string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	id := uuid.NewString()
	user, err := domain.NewUser(id, input.Name, input.Email)
	if err != nil {
		return nil, err
	}

	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth service: failed to create user: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login never tells an unknown email apart from a wrong password.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, domain.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth service: failed to load user: %w", err)
	}

	if err := user.CheckPassword(input.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	oldEmail := user.Email
	if err := user.UpdateProfile(input.Name, input.Email); err != nil {
		return nil, err
	}

	if user.Email != oldEmail {
		other, err := s.repo.GetByEmail(ctx, user.Email)
		switch {
		case err == nil && other.ID != user.ID:
			return nil, domain.ErrEmailAlreadyExists
		case err != nil && !errors.Is(err, domain.ErrUserNotFound):
			return nil, fmt.Errorf("auth service: failed to check email: %w", err)
		}
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("auth service: failed to update user: %w", err)
	}

	if user.Email != oldEmail {
		s.moveProgress(ctx, oldEmail, user.Email)
	}
	return user, nil
}

func (s *AuthService) moveProgress(ctx context.Context, from, to string) {
	if s.progress == nil {
		return
	}
	p, err := s.progress.Get(ctx, from)
	if err != nil {
		if !errors.Is(err, domain.ErrProgressNotFound) {
			log.Warn().Err(err).Str("email", from).Msg("could not carry progress over to new email")
		}
		return
	}
	if err := s.progress.Save(ctx, to, p); err != nil {
		log.Warn().Err(err).Str("email", to).Msg("could not carry progress over to new email")
	}
}
