package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGoalService() (*GoalService, *MockGoalRepository, *MockStreakScheduler) {
	repo := new(MockGoalRepository)
	streaks := new(MockStreakScheduler)
	return NewGoalService(repo, streaks), repo, streaks
}

func TestGoalService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Persists and schedules streak refresh", func(t *testing.T) {
		svc, repo, streaks := newGoalService()
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Goal")).Return(nil)
		streaks.On("Enqueue", "u1").Return()

		goal, err := svc.Create(ctx, CreateGoalInput{UserID: "u1", Name: " Run "})

		require.NoError(t, err)
		assert.Equal(t, "Run", goal.Name)
		repo.AssertExpectations(t)
		streaks.AssertExpectations(t)
	})

	t.Run("Error: Empty name never reaches storage", func(t *testing.T) {
		svc, repo, streaks := newGoalService()

		_, err := svc.Create(ctx, CreateGoalInput{UserID: "u1", Name: "  "})

		assert.ErrorIs(t, err, domain.ErrGoalNameEmpty)
		repo.AssertNotCalled(t, "Create")
		streaks.AssertNotCalled(t, "Enqueue", mock.Anything)
	})

	t.Run("Error: Storage failure is wrapped", func(t *testing.T) {
		svc, repo, _ := newGoalService()
		dbErr := errors.New("disk full")
		repo.On("Create", ctx, mock.Anything).Return(dbErr)

		_, err := svc.Create(ctx, CreateGoalInput{UserID: "u1", Name: "Run"})

		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "goal service")
	})
}

func TestGoalService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Corrupt state degrades to defaults", func(t *testing.T) {
		svc, repo, _ := newGoalService()
		corrupt := &domain.CorruptStateError{Key: "tasks_u1", Err: errors.New("bad json")}
		repo.On("ListByUserID", ctx, "u1").Return([]*domain.Goal{}, corrupt)

		goals, err := svc.List(ctx, "u1")

		require.NoError(t, err)
		assert.Empty(t, goals)
	})

	t.Run("Error: Other failures surface", func(t *testing.T) {
		svc, repo, _ := newGoalService()
		repo.On("ListByUserID", ctx, "u1").Return(nil, errors.New("boom"))

		_, err := svc.List(ctx, "u1")
		assert.Error(t, err)
	})
}

func TestGoalService_Toggle(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)

	t.Run("Success: Absent to true to false", func(t *testing.T) {
		svc, repo, streaks := newGoalService()
		goal, _ := domain.NewGoal("u1", "Run")
		repo.On("GetByID", ctx, "u1", goal.ID).Return(goal, nil)
		repo.On("Update", ctx, goal).Return(nil)
		streaks.On("Enqueue", "u1").Return()

		got, err := svc.Toggle(ctx, "u1", goal.ID, day)
		require.NoError(t, err)
		assert.True(t, got.CompletedDates["2026-02-03"])

		got, err = svc.Toggle(ctx, "u1", goal.ID, day)
		require.NoError(t, err)
		v, ok := got.CompletedDates["2026-02-03"]
		assert.True(t, ok)
		assert.False(t, v)

		streaks.AssertNumberOfCalls(t, "Enqueue", 2)
	})

	t.Run("Success: ToggleToday uses the service clock", func(t *testing.T) {
		svc, repo, streaks := newGoalService()
		svc.now = func() time.Time { return day }
		goal, _ := domain.NewGoal("u1", "Run")
		repo.On("GetByID", ctx, "u1", goal.ID).Return(goal, nil)
		repo.On("Update", ctx, goal).Return(nil)
		streaks.On("Enqueue", "u1").Return()

		got, err := svc.ToggleToday(ctx, "u1", goal.ID)
		require.NoError(t, err)
		assert.True(t, got.IsCompleted("2026-02-03"))
	})

	t.Run("Error: Unknown goal", func(t *testing.T) {
		svc, repo, _ := newGoalService()
		repo.On("GetByID", ctx, "u1", "missing").Return(nil, domain.ErrGoalNotFound)

		_, err := svc.Toggle(ctx, "u1", "missing", day)
		assert.ErrorIs(t, err, domain.ErrGoalNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Error: Version conflict is reported", func(t *testing.T) {
		svc, repo, _ := newGoalService()
		goal, _ := domain.NewGoal("u1", "Run")
		repo.On("GetByID", ctx, "u1", goal.ID).Return(goal, nil)
		repo.On("Update", ctx, goal).Return(domain.ErrGoalConflict)

		_, err := svc.Mark(ctx, "u1", goal.ID, day, true)
		assert.ErrorIs(t, err, domain.ErrGoalConflict)
	})
}

func TestGoalService_Rename(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newGoalService()
	goal, _ := domain.NewGoal("u1", "Run")
	repo.On("GetByID", ctx, "u1", goal.ID).Return(goal, nil)

	_, err := svc.Rename(ctx, "u1", goal.ID, "")

	assert.ErrorIs(t, err, domain.ErrGoalNameEmpty)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGoalService_Replace(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Builds a fresh list", func(t *testing.T) {
		svc, repo, streaks := newGoalService()
		repo.On("ReplaceAll", ctx, "u1", mock.AnythingOfType("[]*domain.Goal")).Return(nil)
		streaks.On("Enqueue", "u1").Return()

		goals, err := svc.Replace(ctx, "u1", []ReplaceGoalInput{
			{ID: "a", Name: "Run", CompletedDates: map[string]bool{"2026-02-01": true}},
			{ID: "a", Name: "Read"},
			{Name: "Stretch"},
		})

		require.NoError(t, err)
		require.Len(t, goals, 3)
		assert.Equal(t, "a", goals[0].ID)
		assert.NotEqual(t, "a", goals[1].ID, "duplicate ids are reassigned")
		assert.NotEmpty(t, goals[2].ID)
		assert.True(t, goals[0].CompletedDates["2026-02-01"])
	})

	t.Run("Error: Bad date key", func(t *testing.T) {
		svc, repo, _ := newGoalService()

		_, err := svc.Replace(ctx, "u1", []ReplaceGoalInput{
			{Name: "Run", CompletedDates: map[string]bool{"Feb 1": true}},
		})

		assert.ErrorIs(t, err, domain.ErrInvalidDate)
		repo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGoalService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, repo, streaks := newGoalService()
	repo.On("Delete", ctx, "u1", "g1").Return(nil)
	repo.On("Delete", ctx, "u1", "g2").Return(domain.ErrGoalNotFound)
	streaks.On("Enqueue", "u1").Return()

	assert.NoError(t, svc.Delete(ctx, "u1", "g1"))
	assert.ErrorIs(t, svc.Delete(ctx, "u1", "g2"), domain.ErrGoalNotFound)
	streaks.AssertNumberOfCalls(t, "Enqueue", 1)
}
