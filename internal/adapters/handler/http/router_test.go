package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	adapterHTTP "github.com/comitanigiacomo/consistency-tracker/internal/adapters/handler/http"
)

func TestRouter_Health(t *testing.T) {
	t.Run("Success: All checks pass", func(t *testing.T) {
		srv := newTestServer(t, map[string]adapterHTTP.HealthCheck{"storage": passingCheck})

		w := srv.do(t, http.MethodGet, "/health", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]string](t, w)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "connected", body["storage"])
		assert.NotEmpty(t, body["uptime"])
	})

	t.Run("Fail: Unreachable dependency yields 503", func(t *testing.T) {
		srv := newTestServer(t, map[string]adapterHTTP.HealthCheck{
			"storage": passingCheck,
			"redis":   failingCheck,
		})

		w := srv.do(t, http.MethodGet, "/health", "", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		body := decode[map[string]string](t, w)
		assert.Equal(t, "degraded", body["status"])
		assert.Equal(t, "unreachable", body["redis"])
		assert.Equal(t, "connected", body["storage"])
	})
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/goals", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, path := range []string{"/api/v1/goals", "/api/v1/profile", "/api/v1/progress", "/api/v1/preferences", "/api/v1/stats/report"} {
		w := srv.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
