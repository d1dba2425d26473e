package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucPayment "github.com/BruksfildServices01/barber-booking/internal/usecase/payment"
	ucService "github.com/BruksfildServices01/barber-booking/internal/usecase/service"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the endpoints that need no token.
type PublicHandler struct {
	catalog      *ucService.Catalog
	availability *ucAppointment.GetAvailability
	bank         *ucPayment.BankSettings
	loc          *time.Location
	log          *zap.Logger
}

func NewPublicHandler(
	catalog *ucService.Catalog,
	availability *ucAppointment.GetAvailability,
	bank *ucPayment.BankSettings,
	loc *time.Location,
	log *zap.Logger,
) *PublicHandler {
	return &PublicHandler{
		catalog:      catalog,
		availability: availability,
		bank:         bank,
		loc:          loc,
		log:          log,
	}
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.catalog.List(c.Request.Context(), false)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

type availabilityResponse struct {
	Date  string        `json:"date"`
	Slots []domain.Slot `json:"slots"`
}

// Availability expects ?date=YYYY-MM-DD and either ?duration= (minutes) or
// ?service_id=.
func (h *PublicHandler) Availability(c *gin.Context) {
	day, err := parseDay(h.loc, c.Query("date"))
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	serviceID, err := queryUint(c, "service_id")
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	duration := 0
	if raw := strings.TrimSpace(c.Query("duration")); raw != "" && serviceID == 0 {
		duration, err = strconv.Atoi(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_duration", "duration must be a number of minutes")
			return
		}
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		Date:            day,
		DurationMinutes: duration,
	}, serviceID)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, availabilityResponse{
		Date:  timezone.DayKey(day),
		Slots: slots,
	})
}

////////////////////////////////////////////////////////
// BANK TRANSFER DETAILS
////////////////////////////////////////////////////////

func (h *PublicHandler) BankSettings(c *gin.Context) {
	details, err := h.bank.Get(c.Request.Context())
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.OK(c, details)
}
