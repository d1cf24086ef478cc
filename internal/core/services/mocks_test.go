package services

import (
	"context"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/analytics"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) GetByID(ctx context.Context, userID, id string) (*domain.Goal, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

func (m *MockGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

func (m *MockGoalRepository) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockGoalRepository) ReplaceAll(ctx context.Context, userID string, goals []*domain.Goal) error {
	return m.Called(ctx, userID, goals).Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(ctx context.Context, email string) (*domain.UserProgress, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) Save(ctx context.Context, email string, p *domain.UserProgress) error {
	return m.Called(ctx, email, p).Error(0)
}

type MockPreferencesRepository struct {
	mock.Mock
}

func (m *MockPreferencesRepository) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preferences), args.Error(1)
}

func (m *MockPreferencesRepository) Save(ctx context.Context, userID string, p *domain.Preferences) error {
	return m.Called(ctx, userID, p).Error(0)
}

type MockStreakScheduler struct {
	mock.Mock
}

func (m *MockStreakScheduler) Enqueue(userID string) {
	m.Called(userID)
}

type MockRewardCatalog struct {
	mock.Mock
}

func (m *MockRewardCatalog) Rewards(ctx context.Context) ([]domain.Reward, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reward), args.Error(1)
}

func (m *MockRewardCatalog) Reward(ctx context.Context, id string) (domain.Reward, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Reward), args.Error(1)
}

func (m *MockRewardCatalog) Achievements(ctx context.Context) ([]domain.Achievement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

type MockLeaderboardSource struct {
	mock.Mock
}

func (m *MockLeaderboardSource) Leaderboard(ctx context.Context, period string) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardSource) Challenges(ctx context.Context) ([]domain.Challenge, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Challenge), args.Error(1)
}

type MockAdviceProvider struct {
	mock.Mock
}

func (m *MockAdviceProvider) Welcome(userName string) string {
	return m.Called(userName).String(0)
}

func (m *MockAdviceProvider) Advise(ctx context.Context, userName, message string) (string, error) {
	args := m.Called(ctx, userName, message)
	return args.String(0), args.Error(1)
}

type staticThresholds analytics.Thresholds

func (s staticThresholds) Current() analytics.Thresholds { return analytics.Thresholds(s) }
