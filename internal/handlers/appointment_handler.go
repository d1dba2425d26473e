package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   *ucAppointment.CreateAppointment
	get      *ucAppointment.GetAppointment
	listMine *ucAppointment.ListMyAppointments
	update   *ucAppointment.UpdateAppointment
	cancel   *ucAppointment.CancelAppointment
	byDate   *ucAppointment.ListAppointmentsByDate
	byMonth  *ucAppointment.ListAppointmentsByMonth
	remove   *ucAppointment.DeleteAppointment

	loc *time.Location
	log *zap.Logger
}

func NewAppointmentHandler(d ucAppointment.Deps, loc *time.Location, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		create:   ucAppointment.NewCreateAppointment(d),
		get:      ucAppointment.NewGetAppointment(d),
		listMine: ucAppointment.NewListMyAppointments(d),
		update:   ucAppointment.NewUpdateAppointment(d),
		cancel:   ucAppointment.NewCancelAppointment(d),
		byDate:   ucAppointment.NewListAppointmentsByDate(d),
		byMonth:  ucAppointment.NewListAppointmentsByMonth(d),
		remove:   ucAppointment.NewDeleteAppointment(d),
		loc:      loc,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// CreateAppointmentRequest takes the start either as `start_at` (RFC 3339)
// or as shop-local `date` + `time`.
type CreateAppointmentRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	StartAt   string `json:"start_at"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Notes     string `json:"notes"`

	// Staff only: book for this client.
	UserID uint `json:"user_id"`
}

type UpdateAppointmentRequest struct {
	StartAt     *string `json:"start_at"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
	BarberNotes *string `json:"barber_notes"`
}

func (r UpdateAppointmentRequest) patch(loc *time.Location) (domain.Patch, error) {
	p := domain.Patch{
		Status:      r.Status,
		Notes:       r.Notes,
		BarberNotes: r.BarberNotes,
	}

	if r.StartAt != nil || r.Date != nil || r.Time != nil {
		start, err := parseStart(loc, deref(r.StartAt), deref(r.Date), deref(r.Time))
		if err != nil {
			return p, err
		}
		p.Date = &start
	}
	return p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ======================================================
// CLIENT + STAFF
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	start, err := parseStart(h.loc, req.StartAt, req.Date, req.Time)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), middleware.ActorFrom(c), ucAppointment.CreateAppointmentInput{
		ServiceID: req.ServiceID,
		Date:      start,
		Notes:     req.Notes,
		UserID:    req.UserID,
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	aps, err := h.listMine.Execute(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

// Update serves both the client and the staff PATCH. Which fields the actor
// may touch is decided by the use case.
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	patch, err := req.patch(h.loc)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), middleware.ActorFrom(c), id, patch)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// STAFF
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	day, err := parseDay(h.loc, c.Query("date"))
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	items, err := h.byDate.Execute(c.Request.Context(), middleware.ActorFrom(c), day, queryBool(c, "include_cancelled"))
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "year must be between 2000 and 2100")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "month must be 1-12")
		return
	}

	items, err := h.byMonth.Execute(c.Request.Context(), middleware.ActorFrom(c), year, month)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": items,
	})
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.NoContent(c)
}
