package http

import (
	"errors"
	"net/http"

	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type errorResponse struct {
	Error string `json:"error" example:"goal not found"`
}

var errorStatus = []struct {
	err    error
	status int
}{
	{domain.ErrGoalNameEmpty, http.StatusBadRequest},
	{domain.ErrGoalNameTooLong, http.StatusBadRequest},
	{domain.ErrGoalInvalidUserID, http.StatusBadRequest},
	{domain.ErrInvalidDate, http.StatusBadRequest},
	{domain.ErrInvalidEmail, http.StatusBadRequest},
	{domain.ErrPasswordTooShort, http.StatusBadRequest},
	{domain.ErrNameEmpty, http.StatusBadRequest},
	{domain.ErrInvalidXPAmount, http.StatusBadRequest},
	{domain.ErrInsufficientCoins, http.StatusBadRequest},
	{domain.ErrInvalidTheme, http.StatusBadRequest},
	{domain.ErrInvalidPeriod, http.StatusBadRequest},
	{domain.ErrEmptyMessage, http.StatusBadRequest},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrGoalNotFound, http.StatusNotFound},
	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrRewardNotFound, http.StatusNotFound},
	{domain.ErrGoalConflict, http.StatusConflict},
	{domain.ErrEmailAlreadyExists, http.StatusConflict},
}

// writeError maps domain errors onto status codes. Anything unknown is
// logged and reported as a 500 without detail.
func writeError(c *gin.Context, err error) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			c.JSON(e.status, errorResponse{Error: e.err.Error()})
			return
		}
	}

	_ = c.Error(err)
	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// requireUserID reads the authenticated user id or answers 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return "", false
	}
	return userID, true
}
