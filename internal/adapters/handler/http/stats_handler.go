package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats/report", h.GetReport)
	r.GET("/stats/insights", h.GetInsights)
}

// GetReport godoc
// @Summary      Consistency report for the current month
// @Description  Recomputed from the goal list on every call.
// @Tags         stats
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  domain.ConsistencyReport
// @Router       /stats/report [get]
func (h *StatsHandler) GetReport(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.svc.Report(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to retrieve statistics"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetInsights godoc
// @Summary   Improvement suggestions and focus areas
// @Tags      stats
// @Security  BearerAuth
// @Produce   json
// @Success   200  {object}  domain.InsightSummary
// @Router    /stats/insights [get]
func (h *StatsHandler) GetInsights(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	summary, err := h.svc.Insights(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to retrieve insights"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
