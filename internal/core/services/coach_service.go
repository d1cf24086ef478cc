package services

import (
	"context"
	"strings"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
)

type CoachService struct {
	users   domain.UserRepository
	advisor domain.AdviceProvider
}

func NewCoachService(users domain.UserRepository, advisor domain.AdviceProvider) *CoachService {
	return &CoachService{
		users:   users,
		advisor: advisor,
	}
}

func (s *CoachService) Welcome(ctx context.Context, userID string) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.advisor.Welcome(user.Name), nil
}

func (s *CoachService) Ask(ctx context.Context, userID, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", domain.ErrEmptyMessage
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.advisor.Advise(ctx, user.Name, message)
}
