package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) user(args mock.Arguments) (*domain.User, error) {
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

const (
	testSecret = "streak-middleware-secret"
	testIssuer = "streak-test"
)

// whoAmI echoes the profile id the middleware placed in the context.
func whoAmI(tokens *services.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(tokens))
	r.GET("/goals", func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID)
	})
	return r
}

func callWith(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/goals", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_AcceptsLiveProfile(t *testing.T) {
	repo := new(MockUserRepo)
	tokens := services.NewTokenService(testSecret, testIssuer, time.Hour, repo)
	repo.On("GetByID", mock.Anything, "profile-7").Return(&domain.User{ID: "profile-7", Name: "Ada"}, nil)

	token, err := tokens.GenerateToken("profile-7")
	assert.NoError(t, err)

	w := callWith(whoAmI(tokens), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "profile-7", w.Body.String())
	repo.AssertExpectations(t)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("GetByID", mock.Anything, "profile-gone").Return(nil, domain.ErrUserNotFound)

	tokens := services.NewTokenService(testSecret, testIssuer, time.Hour, repo)
	forged, _ := services.NewTokenService("someone-else", testIssuer, time.Hour, repo).GenerateToken("profile-7")
	stale, _ := services.NewTokenService(testSecret, testIssuer, -time.Second, repo).GenerateToken("profile-7")
	orphan, _ := tokens.GenerateToken("profile-gone")

	cases := []struct {
		name    string
		header  string
		message string
	}{
		{"No header", "", "authorization header required"},
		{"Scheme only", "Bearer", "invalid authorization header format"},
		{"Wrong scheme", "Token abc", "invalid authorization header format"},
		{"Glued scheme", "Bearerabc", "invalid authorization header format"},
		{"Extra field", "Bearer a b", "invalid authorization header format"},
		{"Foreign signature", "Bearer " + forged, "invalid or expired token"},
		{"Expired", "Bearer " + stale, "invalid or expired token"},
		{"Deleted profile", "Bearer " + orphan, "invalid or expired token"},
	}

	r := whoAmI(tokens)
	for _, tc := range cases {
		t.Run("Fail: "+tc.name, func(t *testing.T) {
			w := callWith(r, tc.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tc.message)
		})
	}
}

func TestGetUserID_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)

	c.Set(ContextUserIDKey, 42)
	_, ok = GetUserID(c)
	assert.False(t, ok)
}
