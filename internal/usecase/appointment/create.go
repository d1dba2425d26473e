package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ServiceID uint
	Date      time.Time
	Notes     string

	// UserID books on behalf of a client. Staff only; zero means the actor.
	UserID uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	d Deps
}

func NewCreateAppointment(d Deps) *CreateAppointment {
	return &CreateAppointment{d: d.withDefaults()}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor auth.Actor,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.create(ctx, actor, in)
	uc.d.Metrics.ObserveBooking(bookingResult(err))
	if err != nil {
		return nil, err
	}

	uc.d.audit(actor.UserID, "appointment_created", ap.ID, map[string]any{
		"service_id": ap.ServiceID,
		"date":       ap.Date,
	})
	uc.d.Notifier.Notify(ctx, notify.KindBooked, ap)

	return uc.d.Repo.GetAppointment(ctx, ap.ID)
}

func (uc *CreateAppointment) create(
	ctx context.Context,
	actor auth.Actor,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	if in.ServiceID == 0 {
		return nil, httperr.ErrValidation("invalid_service")
	}
	if in.Date.IsZero() {
		return nil, httperr.ErrValidation("invalid_date")
	}

	owner := actor.UserID
	if in.UserID != 0 && in.UserID != actor.UserID {
		if !actor.IsStaff() {
			return nil, httperr.ErrForbidden("staff_only")
		}
		owner = in.UserID
	}

	// --------------------------------------------------
	// 2. Service
	// --------------------------------------------------
	svc, err := uc.d.Repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, httperr.ErrValidation("service_inactive")
	}

	start := in.Date
	end := domain.EndOf(start, svc.DurationMin)

	// --------------------------------------------------
	// 3. Re-check and insert under lock + transaction
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:    owner,
		ServiceID: svc.ID,
		Date:      start,
		EndTime:   end,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	err = uc.d.guarded(ctx, start, func(ctx context.Context) error {
		if err := uc.d.checkBookable(ctx, start, end, 0); err != nil {
			return err
		}

		if err := uc.d.Repo.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		return uc.d.Bus.Publish(ctx, domain.Created{
			AppointmentID: ap.ID,
			UserID:        ap.UserID,
			Amount:        svc.Price,
			At:            uc.d.Clock.Now(),
		})
	})
	if err != nil {
		if !httperr.IsKind(err, httperr.KindConflict) {
			uc.d.Log.Warn("create appointment failed", zap.Uint("service_id", svc.ID), zap.Error(err))
		}
		return nil, err
	}

	return ap, nil
}
