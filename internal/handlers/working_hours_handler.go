package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucSchedule "github.com/BruksfildServices01/barber-booking/internal/usecase/schedule"
)

// WorkingHoursHandler manages the weekly opening hours and the blocked days.
type WorkingHoursHandler struct {
	schedule *ucSchedule.Service
	log      *zap.Logger
}

func NewWorkingHoursHandler(schedule *ucSchedule.Service, log *zap.Logger) *WorkingHoursHandler {
	return &WorkingHoursHandler{schedule: schedule, log: log}
}

type WorkingDayConfig struct {
	Weekday    *int   `json:"weekday" binding:"required"`
	IsOpen     bool   `json:"is_open"`
	OpenTime   string `json:"open_time"`
	CloseTime  string `json:"close_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required,dive"`
}

type BlockDateRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	hours, err := h.schedule.ListWorkingHours(c.Request.Context())
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.List(c, hours)
}

// Update upserts the listed weekdays; weekdays left out keep their hours.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	days := make([]models.WorkingHours, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, models.WorkingHours{
			Weekday:    *d.Weekday,
			IsOpen:     d.IsOpen,
			OpenTime:   d.OpenTime,
			CloseTime:  d.CloseTime,
			LunchStart: d.LunchStart,
			LunchEnd:   d.LunchEnd,
		})
	}

	hours, err := h.schedule.SetWorkingHours(c.Request.Context(), middleware.ActorFrom(c), days)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.List(c, hours)
}

// --------------------------------------------------
// Blocked dates
// --------------------------------------------------

func (h *WorkingHoursHandler) ListBlocked(c *gin.Context) {
	dates, err := h.schedule.ListBlockedDates(c.Request.Context())
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.List(c, dates)
}

func (h *WorkingHoursHandler) Block(c *gin.Context) {
	var req BlockDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "date is required")
		return
	}

	bd, err := h.schedule.BlockDate(c.Request.Context(), middleware.ActorFrom(c), req.Date, req.Reason)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.Created(c, bd)
}

func (h *WorkingHoursHandler) Unblock(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	if err := h.schedule.UnblockDate(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.NoContent(c)
}
