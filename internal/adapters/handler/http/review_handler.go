package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-drift/internal/core/services"
)

const maxReviewLimit = 52

type ReviewHandler struct {
	svc    *services.ReviewService
	logger *zap.Logger
}

func NewReviewHandler(svc *services.ReviewService, logger *zap.Logger) *ReviewHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewHandler{svc: svc, logger: logger}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	reviews := r.Group("/reviews")
	{
		reviews.GET("", h.List)
		reviews.POST("/weekly", h.GenerateWeekly)
	}
}

// List godoc
// @Summary  Stored weekly reviews, newest first
// @Tags     reviews
// @Produce  json
// @Param    limit query int false "number of weeks (default 8, max 52)"
// @Success  200 {array} domain.WeeklyStats
// @Failure  400 {object} map[string]string
// @Router   /reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	limit := services.DefaultReviewCount
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxReviewLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 52"})
			return
		}
		limit = n
	}

	reviews, err := h.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GenerateWeekly godoc
// @Summary  Build and store the review for the current week
// @Tags     reviews
// @Produce  json
// @Success  201 {object} domain.WeeklyStats
// @Success  200 {object} map[string]interface{} "no readings yet"
// @Router   /reviews/weekly [post]
func (h *ReviewHandler) GenerateWeekly(c *gin.Context) {
	stats, err := h.svc.GenerateWeekly(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	if stats == nil {
		c.JSON(http.StatusOK, gin.H{"review": nil, "message": "no readings yet"})
		return
	}
	c.JSON(http.StatusCreated, stats)
}
