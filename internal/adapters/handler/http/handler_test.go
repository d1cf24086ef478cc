package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/consistency-tracker/internal/adapters/handler/http"
	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/demo"
	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/repository"
	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/storage"
	"github.com/comitanigiacomo/consistency-tracker/internal/config"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/analytics"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/services"
)

type testServer struct {
	router *gin.Engine
	store  *storage.MemoryStore
}

type authBody struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func newTestServer(t *testing.T, checks map[string]adapterHTTP.HealthCheck) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	users := repository.NewKVUserRepository(store)
	goals := repository.NewKVGoalRepository(store)
	progressRepo := repository.NewKVProgressRepository(store)
	prefsRepo := repository.NewKVPreferencesRepository(store)

	catalog, err := demo.NewCatalog()
	require.NoError(t, err)

	tokens := services.NewTokenService("handler-test-secret", "handler-test", time.Hour, users)
	authSvc := services.NewAuthService(users, progressRepo)
	goalSvc := services.NewGoalService(goals, nil)
	statsSvc := services.NewStatsService(goalSvc, config.StaticThresholds(analytics.DefaultThresholds()))
	progressSvc := services.NewProgressService(users, progressRepo, catalog)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:        adapterHTTP.NewAuthHandler(authSvc, tokens),
		GoalHandler:        adapterHTTP.NewGoalHandler(goalSvc),
		StatsHandler:       adapterHTTP.NewStatsHandler(statsSvc),
		ProgressHandler:    adapterHTTP.NewProgressHandler(progressSvc),
		CommunityHandler:   adapterHTTP.NewCommunityHandler(services.NewCompeteService(catalog), services.NewCoachService(users, catalog)),
		PreferencesHandler: adapterHTTP.NewPreferencesHandler(services.NewPreferencesService(prefsRepo)),
		TokenService:       tokens,
		Checks:             checks,
		StartTime:          time.Now(),
	})

	return &testServer{router: router, store: store}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) register(t *testing.T, name, email string) authBody {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp authBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, w)["error"]
}

func failingCheck(context.Context) error { return errors.New("down") }

func passingCheck(context.Context) error { return nil }
