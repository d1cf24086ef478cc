package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/storage"
	"github.com/comitanigiacomo/consistency-tracker/internal/config"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/services"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig(driver, dir string) *config.AppConfig {
	return &config.AppConfig{
		StorageDriver: driver,
		DataPath:      dir,
		JWTSecret:     "app-test-secret",
		JWTIssuer:     "app-test",
		JWTTTL:        time.Hour,
		RateLimit:     100,
		RateWindow:    time.Minute,
	}
}

func TestNew_StreakFollowsGoalChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	a, err := New(ctx, testConfig(storage.DriverMemory, t.TempDir()))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- a.RunBackground(ctx) }()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
		require.NoError(t, a.Close())
	})

	user, err := a.Auth.Register(ctx, services.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	goal, err := a.Goals.Create(ctx, services.CreateGoalInput{UserID: user.ID, Name: "Read"})
	require.NoError(t, err)

	now := time.Now()
	_, err = a.Goals.Mark(ctx, user.ID, goal.ID, now.AddDate(0, 0, -1), true)
	require.NoError(t, err)
	_, err = a.Goals.Mark(ctx, user.ID, goal.ID, now, true)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		p, err := a.Progress.Get(ctx, user.ID)
		return err == nil && p.CurrentStreak == 2
	}, 2*time.Second, 20*time.Millisecond)
}

func TestNew_FileStoreSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(storage.DriverFile, t.TempDir())

	first, err := New(ctx, cfg)
	require.NoError(t, err)
	user, err := first.Auth.Register(ctx, services.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = first.Goals.Create(ctx, services.CreateGoalInput{UserID: user.ID, Name: "Read"})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	assert.FileExists(t, filepath.Join(cfg.DataPath, "streak.json"))

	second, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, second.Close()) })

	goals, err := second.Goals.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "Read", goals[0].Name)
	assert.NotNil(t, second.Session)
}

func TestApp_RouterHealth(t *testing.T) {
	a, err := New(context.Background(), testConfig(storage.DriverMemory, t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, a.Close()) })

	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"storage":"connected"`)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), testConfig("floppy", t.TempDir()))
	assert.Error(t, err)
}
