package http

import (
	"net/http"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/services"
	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	svc *services.ProgressService
}

func NewProgressHandler(svc *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{svc: svc}
}

// progressResponse adds the derived level figures to the stored ledger.
type progressResponse struct {
	*domain.UserProgress
	Coins          int     `json:"coins"`
	Level          int     `json:"level"`
	CurrentLevelXP int     `json:"currentLevelXp"`
	NextLevelXP    int     `json:"nextLevelXp"`
	LevelProgress  float64 `json:"levelProgress"`
}

func newProgressResponse(p *domain.UserProgress) progressResponse {
	return progressResponse{
		UserProgress:   p,
		Coins:          p.Coins(),
		Level:          p.Level(),
		CurrentLevelXP: p.CurrentLevelXP(),
		NextLevelXP:    p.NextLevelXP(),
		LevelProgress:  p.LevelProgress(),
	}
}

type claimResponse struct {
	Amount   int              `json:"amount"`
	Progress progressResponse `json:"progress"`
}

type addXPRequest struct {
	Amount      int    `json:"amount" binding:"required" example:"25"`
	Description string `json:"description" example:"Finished a workout"`
}

type redeemRequest struct {
	RewardID string `json:"reward_id" binding:"required" example:"r1"`
}

type badgeRequest struct {
	Badge       string `json:"badge" binding:"required" example:"🎯"`
	Description string `json:"description" example:"Unlocked Sharpshooter"`
}

type badgeResponse struct {
	Unlocked bool `json:"unlocked"`
}

func (h *ProgressHandler) RegisterRoutes(r *gin.RouterGroup) {
	progress := r.Group("/progress")
	{
		progress.GET("", h.Get)
		progress.POST("/claim", h.Claim)
		progress.POST("/xp", h.AddXP)
		progress.POST("/redeem", h.Redeem)
		progress.POST("/badges", h.UnlockBadge)
		progress.GET("/achievements", h.Achievements)
	}
	r.GET("/rewards", h.Rewards)
}

// Get godoc
// @Summary   XP, coins, level and activity log
// @Tags      progress
// @Security  BearerAuth
// @Produce   json
// @Success   200  {object}  progressResponse
// @Router    /progress [get]
func (h *ProgressHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProgressResponse(p))
}

// Claim godoc
// @Summary   Claim the 50 or 100 XP bonus
// @Tags      progress
// @Security  BearerAuth
// @Produce   json
// @Success   200  {object}  claimResponse
// @Router    /progress/claim [post]
func (h *ProgressHandler) Claim(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	amount, p, err := h.svc.ClaimXP(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, claimResponse{Amount: amount, Progress: newProgressResponse(p)})
}

// AddXP godoc
// @Summary   Award XP
// @Tags      progress
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     body  body      addXPRequest  true  "Award"
// @Success   200   {object}  progressResponse
// @Failure   400   {object}  errorResponse
// @Router    /progress/xp [post]
func (h *ProgressHandler) AddXP(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req addXPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p, err := h.svc.AddXP(c.Request.Context(), userID, req.Amount, req.Description)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProgressResponse(p))
}

// Redeem godoc
// @Summary   Spend coins on a reward
// @Tags      progress
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     body  body      redeemRequest  true  "Reward"
// @Success   200   {object}  progressResponse
// @Failure   400   {object}  errorResponse
// @Failure   404   {object}  errorResponse
// @Router    /progress/redeem [post]
func (h *ProgressHandler) Redeem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req redeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p, err := h.svc.Redeem(c.Request.Context(), userID, req.RewardID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProgressResponse(p))
}

// UnlockBadge godoc
// @Summary   Unlock a badge once
// @Tags      progress
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     body  body      badgeRequest  true  "Badge"
// @Success   200   {object}  badgeResponse
// @Router    /progress/badges [post]
func (h *ProgressHandler) UnlockBadge(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req badgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	unlocked, err := h.svc.UnlockBadge(c.Request.Context(), userID, req.Badge, req.Description)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, badgeResponse{Unlocked: unlocked})
}

// Achievements godoc
// @Summary   Achievement progress
// @Tags      progress
// @Security  BearerAuth
// @Produce   json
// @Success   200  {array}  domain.AchievementProgress
// @Router    /progress/achievements [get]
func (h *ProgressHandler) Achievements(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	list, err := h.svc.Achievements(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Rewards godoc
// @Summary   Reward catalog
// @Tags      progress
// @Security  BearerAuth
// @Produce   json
// @Success   200  {array}  domain.Reward
// @Router    /rewards [get]
func (h *ProgressHandler) Rewards(c *gin.Context) {
	list, err := h.svc.Rewards(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
