package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-drift/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
	"github.com/comitanigiacomo/kanso-drift/internal/core/services"
)

type CheckinHandler struct {
	svc    *services.CheckinService
	links  *services.CheckinLinkService
	logger *zap.Logger
}

func NewCheckinHandler(svc *services.CheckinService, links *services.CheckinLinkService, logger *zap.Logger) *CheckinHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckinHandler{
		svc:    svc,
		links:  links,
		logger: logger,
	}
}

type submitReportRequest struct {
	Text string `json:"text" binding:"required" example:"7.5 Y Y N Y Y N slept badly"`
}

type submitFormRequest struct {
	SleepHours *float64 `json:"sleep_hours" form:"sleep_hours" binding:"required"`
	BedOnTime  bool     `json:"bed_on_time" form:"bed_on_time"`
	Workout    bool     `json:"workout" form:"workout"`
	EatWindows bool     `json:"eat_windows" form:"eat_windows"`
	Block1     bool     `json:"block1" form:"block1"`
	Block2     bool     `json:"block2" form:"block2"`
	Anchor     bool     `json:"anchor" form:"anchor"`
	Notes      string   `json:"notes" form:"notes"`
}

type checkinLinkResponse struct {
	*services.CheckinLink
	URL string `json:"url"`
}

// RegisterRoutes mounts the owner routes. The form route is mounted
// separately behind the check-in token.
func (h *CheckinHandler) RegisterRoutes(r *gin.RouterGroup) {
	checkins := r.Group("/checkins")
	{
		checkins.POST("", h.SubmitReport)
		checkins.POST("/link", h.CreateLink)
	}
	r.GET("/today", h.Today)
}

func (h *CheckinHandler) RegisterFormRoute(r *gin.RouterGroup) {
	r.POST("/checkins/form", middleware.CheckinToken(h.links), h.SubmitForm)
}

// SubmitReport godoc
// @Summary  Submit today's text report
// @Tags     checkins
// @Accept   json
// @Produce  json
// @Param    report body submitReportRequest true "sleep hours followed by six Y/N flags"
// @Success  201 {object} domain.DailyHabitReading
// @Failure  400 {object} map[string]string
// @Router   /checkins [post]
func (h *CheckinHandler) SubmitReport(c *gin.Context) {
	var req submitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	reading, err := h.svc.SubmitReport(c.Request.Context(), req.Text)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, reading)
}

// SubmitForm godoc
// @Summary  Submit a structured check-in through a signed link
// @Tags     checkins
// @Accept   json,x-www-form-urlencoded
// @Produce  json
// @Param    token query string true "signed check-in token"
// @Param    form body submitFormRequest true "check-in form"
// @Success  201 {object} domain.DailyHabitReading
// @Failure  400 {object} map[string]string
// @Failure  401 {object} map[string]string
// @Router   /checkins/form [post]
func (h *CheckinHandler) SubmitForm(c *gin.Context) {
	date, ok := middleware.GetCheckinDate(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "check-in token required"})
		return
	}

	var req submitFormRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	form := services.CheckinForm{
		Date:       date,
		SleepHours: *req.SleepHours,
		Flags: domain.HabitFlags{
			BedOnTime:  req.BedOnTime,
			Workout:    req.Workout,
			EatWindows: req.EatWindows,
			Block1:     req.Block1,
			Block2:     req.Block2,
			Anchor:     req.Anchor,
		},
		Notes: req.Notes,
	}

	reading, err := h.svc.SubmitForm(c.Request.Context(), form)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, reading)
}

// CreateLink godoc
// @Summary  Mint a signed check-in link for today
// @Tags     checkins
// @Produce  json
// @Success  201 {object} checkinLinkResponse
// @Router   /checkins/link [post]
func (h *CheckinHandler) CreateLink(c *gin.Context) {
	link, err := h.links.GenerateToday()
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, checkinLinkResponse{
		CheckinLink: link,
		URL:         "/api/v1/checkins/form?token=" + link.Token,
	})
}

// Today godoc
// @Summary  Today's reading, null when not logged yet
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Router   /today [get]
func (h *CheckinHandler) Today(c *gin.Context) {
	reading, err := h.svc.Today(c.Request.Context())
	if err != nil && !errors.Is(err, domain.ErrReadingNotFound) {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reading": reading})
}
