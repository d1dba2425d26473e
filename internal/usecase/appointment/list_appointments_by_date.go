package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type ListAppointmentsByDate struct {
	d Deps
}

func NewListAppointmentsByDate(d Deps) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{d: d.withDefaults()}
}

// Execute is the staff agenda of one calendar day.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	actor auth.Actor,
	date time.Time,
	includeCancelled bool,
) ([]dto.AppointmentListDTO, error) {

	if !actor.IsStaff() {
		return nil, httperr.ErrForbidden("staff_only")
	}

	start, end := timezone.DayBounds(date.In(uc.d.Location))
	return uc.d.list(ctx, start, end, includeCancelled)
}

type ListAppointmentsByMonth struct {
	d Deps
}

func NewListAppointmentsByMonth(d Deps) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{d: d.withDefaults()}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	actor auth.Actor,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	if !actor.IsStaff() {
		return nil, httperr.ErrForbidden("staff_only")
	}
	if month < 1 || month > 12 {
		return nil, httperr.ErrValidation("invalid_month")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.d.Location)
	end := start.AddDate(0, 1, 0)

	return uc.d.list(ctx, start, end, false)
}

func (d Deps) list(
	ctx context.Context,
	start time.Time,
	end time.Time,
	includeCancelled bool,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := d.Repo.ListBetween(ctx, start, end, includeCancelled)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, toListDTO(ap))
	}
	return out, nil
}

func toListDTO(ap models.Appointment) dto.AppointmentListDTO {
	item := dto.AppointmentListDTO{
		ID:           ap.ID,
		Date:         ap.Date,
		EndTime:      ap.EndTime,
		OriginalDate: ap.OriginalDate,
		Status:       ap.Status,
		Notes:        ap.Notes,
		BarberNotes:  ap.BarberNotes,
	}
	if ap.User != nil {
		item.ClientName = ap.User.Name
		item.ClientPhone = ap.User.Phone
	}
	if ap.Service != nil {
		item.ServiceName = ap.Service.Name
	}
	if ap.Payment != nil {
		item.PaymentStatus = ap.Payment.Status
		item.PaymentReference = ap.Payment.PaymentReference
	}
	return item
}
