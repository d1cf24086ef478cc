package http

import (
	"net/http"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/services"
	"github.com/gin-gonic/gin"
)

type GoalHandler struct {
	svc *services.GoalService
}

func NewGoalHandler(svc *services.GoalService) *GoalHandler {
	return &GoalHandler{
		svc: svc,
	}
}

type createGoalRequest struct {
	Name string `json:"name" binding:"required" example:"Read 20 pages"`
}

type renameGoalRequest struct {
	Name string `json:"name" binding:"required" example:"Read 30 pages"`
}

type replaceGoalRequest struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CompletedDates map[string]bool `json:"completedDates"`
}

type markDayRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/goals")
	{
		goals.GET("", h.List)
		goals.POST("", h.Create)
		goals.PUT("", h.Replace)
		goals.PATCH("/:id", h.Rename)
		goals.DELETE("/:id", h.Delete)
		goals.POST("/:id/toggle", h.Toggle)
		goals.PUT("/:id/dates/:date", h.Mark)
	}
}

// List godoc
// @Summary   Goals of the signed-in profile in insertion order
// @Tags      goals
// @Security  BearerAuth
// @Produce   json
// @Success   200  {array}   domain.Goal
// @Router    /goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	goals, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// Create godoc
// @Summary   Add a goal
// @Tags      goals
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     body  body      createGoalRequest  true  "Goal"
// @Success   201   {object}  domain.Goal
// @Failure   400   {object}  errorResponse
// @Router    /goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	goal, err := h.svc.Create(c.Request.Context(), services.CreateGoalInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// Replace godoc
// @Summary   Replace the whole goal list
// @Tags      goals
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     body  body      []replaceGoalRequest  true  "Goals"
// @Success   200   {array}   domain.Goal
// @Failure   400   {object}  errorResponse
// @Router    /goals [put]
func (h *GoalHandler) Replace(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req []replaceGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	inputs := make([]services.ReplaceGoalInput, len(req))
	for i, r := range req {
		inputs[i] = services.ReplaceGoalInput{ID: r.ID, Name: r.Name, CompletedDates: r.CompletedDates}
	}

	goals, err := h.svc.Replace(c.Request.Context(), userID, inputs)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// Rename godoc
// @Summary   Rename a goal
// @Tags      goals
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     id    path      string             true  "Goal id"
// @Param     body  body      renameGoalRequest  true  "New name"
// @Success   200   {object}  domain.Goal
// @Failure   404   {object}  errorResponse
// @Router    /goals/{id} [patch]
func (h *GoalHandler) Rename(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req renameGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	goal, err := h.svc.Rename(c.Request.Context(), userID, c.Param("id"), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Delete godoc
// @Summary   Delete a goal
// @Tags      goals
// @Security  BearerAuth
// @Param     id   path  string  true  "Goal id"
// @Success   204
// @Failure   404  {object}  errorResponse
// @Router    /goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Toggle godoc
// @Summary      Flip a day's completion
// @Description  Without a date the current day is toggled. An unmarked day becomes completed.
// @Tags         goals
// @Security     BearerAuth
// @Produce      json
// @Param        id    path      string  true   "Goal id"
// @Param        date  query     string  false  "Day as YYYY-MM-DD"
// @Success      200   {object}  domain.Goal
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /goals/{id}/toggle [post]
func (h *GoalHandler) Toggle(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var (
		goal *domain.Goal
		err  error
	)
	if raw := c.Query("date"); raw != "" {
		var day time.Time
		if day, err = domain.ParseDate(raw); err != nil {
			writeError(c, err)
			return
		}
		goal, err = h.svc.Toggle(c.Request.Context(), userID, c.Param("id"), day)
	} else {
		goal, err = h.svc.ToggleToday(c.Request.Context(), userID, c.Param("id"))
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Mark godoc
// @Summary   Record an explicit entry for a day
// @Tags      goals
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     id    path      string          true  "Goal id"
// @Param     date  path      string          true  "Day as YYYY-MM-DD"
// @Param     body  body      markDayRequest  true  "Entry"
// @Success   200   {object}  domain.Goal
// @Failure   400   {object}  errorResponse
// @Failure   404   {object}  errorResponse
// @Router    /goals/{id}/dates/{date} [put]
func (h *GoalHandler) Mark(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	day, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		writeError(c, err)
		return
	}

	var req markDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	goal, err := h.svc.Mark(c.Request.Context(), userID, c.Param("id"), day, *req.Completed)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}
