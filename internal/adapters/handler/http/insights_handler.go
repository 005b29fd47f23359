package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-drift/internal/core/services"
)

type InsightsHandler struct {
	svc    *services.InsightsService
	logger *zap.Logger
}

func NewInsightsHandler(svc *services.InsightsService, logger *zap.Logger) *InsightsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightsHandler{svc: svc, logger: logger}
}

func (h *InsightsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/week", h.Week)
	r.GET("/history", h.History)
	r.GET("/drift", h.Drift)
	r.GET("/brief", h.Brief)
}

// Week godoc
// @Summary  Last seven readings with average and trend
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} services.WeekOverview
// @Router   /week [get]
func (h *InsightsHandler) Week(c *gin.Context) {
	overview, err := h.svc.Week(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// History godoc
// @Summary  Every stored reading, newest first
// @Tags     dashboard
// @Produce  json
// @Success  200 {array} domain.DailyHabitReading
// @Router   /history [get]
func (h *InsightsHandler) History(c *gin.Context) {
	logs, err := h.svc.History(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs, "count": len(logs)})
}

// Drift godoc
// @Summary  Drift categories over the last seven readings
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} domain.DriftReport
// @Router   /drift [get]
func (h *InsightsHandler) Drift(c *gin.Context) {
	report, err := h.svc.Drift(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Brief godoc
// @Summary  Morning brief: yesterday, 7-day average, trend and drift
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} services.MorningBrief
// @Router   /brief [get]
func (h *InsightsHandler) Brief(c *gin.Context) {
	brief, err := h.svc.MorningBrief(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, brief)
}
