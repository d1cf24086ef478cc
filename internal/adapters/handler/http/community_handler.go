package http

import (
	"net/http"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/services"
	"github.com/gin-gonic/gin"
)

// CommunityHandler serves the leaderboard, challenges and the coach.
type CommunityHandler struct {
	compete *services.CompeteService
	coach   *services.CoachService
}

func NewCommunityHandler(compete *services.CompeteService, coach *services.CoachService) *CommunityHandler {
	return &CommunityHandler{compete: compete, coach: coach}
}

type askRequest struct {
	Message string `json:"message" binding:"required" example:"How do I stay motivated?"`
}

type coachResponse struct {
	Reply string `json:"reply"`
}

func (h *CommunityHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/compete/leaderboard", h.Leaderboard)
	r.GET("/compete/challenges", h.Challenges)
	r.GET("/coach/welcome", h.Welcome)
	r.POST("/coach/ask", h.Ask)
}

// Leaderboard godoc
// @Summary   Ranking for a period
// @Tags      compete
// @Security  BearerAuth
// @Produce   json
// @Param     period  query     string  false  "daily, weekly, monthly or alltime"
// @Param     q       query     string  false  "Username filter"
// @Success   200     {array}   domain.LeaderboardEntry
// @Failure   400     {object}  errorResponse
// @Router    /compete/leaderboard [get]
func (h *CommunityHandler) Leaderboard(c *gin.Context) {
	entries, err := h.compete.Leaderboard(c.Request.Context(), c.Query("period"), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Challenges godoc
// @Summary   Community challenges
// @Tags      compete
// @Security  BearerAuth
// @Produce   json
// @Success   200  {array}  domain.Challenge
// @Router    /compete/challenges [get]
func (h *CommunityHandler) Challenges(c *gin.Context) {
	list, err := h.compete.Challenges(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Welcome godoc
// @Summary   Coach greeting
// @Tags      coach
// @Security  BearerAuth
// @Produce   json
// @Success   200  {object}  coachResponse
// @Router    /coach/welcome [get]
func (h *CommunityHandler) Welcome(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	reply, err := h.coach.Welcome(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, coachResponse{Reply: reply})
}

// Ask godoc
// @Summary   Ask the coach
// @Tags      coach
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     body  body      askRequest  true  "Question"
// @Success   200   {object}  coachResponse
// @Failure   400   {object}  errorResponse
// @Router    /coach/ask [post]
func (h *CommunityHandler) Ask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	reply, err := h.coach.Ask(c.Request.Context(), userID, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, coachResponse{Reply: reply})
}
