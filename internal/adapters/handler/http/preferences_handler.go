package http

import (
	"net/http"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/services"
	"github.com/gin-gonic/gin"
)

type PreferencesHandler struct {
	svc *services.PreferencesService
}

func NewPreferencesHandler(svc *services.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{svc: svc}
}

type preferencesRequest struct {
	Theme     *string `json:"theme" example:"dark"`
	FocusMode *bool   `json:"focusMode"`
}

func (h *PreferencesHandler) RegisterRoutes(r *gin.RouterGroup) {
	prefs := r.Group("/preferences")
	{
		prefs.GET("", h.Get)
		prefs.PUT("", h.Update)
		prefs.POST("/theme/toggle", h.ToggleTheme)
		prefs.POST("/focus/toggle", h.ToggleFocus)
	}
}

// Get godoc
// @Summary   Theme and focus mode
// @Tags      preferences
// @Security  BearerAuth
// @Produce   json
// @Success   200  {object}  domain.Preferences
// @Router    /preferences [get]
func (h *PreferencesHandler) Get(c *gin.Context) {
	h.respond(c, func(userID string) (*domain.Preferences, error) {
		return h.svc.Get(c.Request.Context(), userID)
	})
}

// Update godoc
// @Summary   Set theme and/or focus mode
// @Tags      preferences
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     body  body      preferencesRequest  true  "Preferences"
// @Success   200   {object}  domain.Preferences
// @Failure   400   {object}  errorResponse
// @Router    /preferences [put]
func (h *PreferencesHandler) Update(c *gin.Context) {
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	h.respond(c, func(userID string) (*domain.Preferences, error) {
		return h.svc.Update(c.Request.Context(), services.UpdatePreferencesInput{
			UserID:    userID,
			Theme:     req.Theme,
			FocusMode: req.FocusMode,
		})
	})
}

// ToggleTheme godoc
// @Summary   Switch between light and dark
// @Tags      preferences
// @Security  BearerAuth
// @Produce   json
// @Success   200  {object}  domain.Preferences
// @Router    /preferences/theme/toggle [post]
func (h *PreferencesHandler) ToggleTheme(c *gin.Context) {
	h.respond(c, func(userID string) (*domain.Preferences, error) {
		return h.svc.ToggleTheme(c.Request.Context(), userID)
	})
}

// ToggleFocus godoc
// @Summary   Flip focus mode
// @Tags      preferences
// @Security  BearerAuth
// @Produce   json
// @Success   200  {object}  domain.Preferences
// @Router    /preferences/focus/toggle [post]
func (h *PreferencesHandler) ToggleFocus(c *gin.Context) {
	h.respond(c, func(userID string) (*domain.Preferences, error) {
		return h.svc.ToggleFocusMode(c.Request.Context(), userID)
	})
}

func (h *PreferencesHandler) respond(c *gin.Context, call func(userID string) (*domain.Preferences, error)) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	prefs, err := call(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}
