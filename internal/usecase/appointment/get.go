package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type GetAppointment struct {
	d Deps
}

func NewGetAppointment(d Deps) *GetAppointment {
	return &GetAppointment{d: d.withDefaults()}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	actor auth.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.d.Repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(ap.UserID) {
		return nil, httperr.ErrForbidden("not_owner")
	}
	return ap, nil
}

type ListMyAppointments struct {
	d Deps
}

func NewListMyAppointments(d Deps) *ListMyAppointments {
	return &ListMyAppointments{d: d.withDefaults()}
}

// Execute lists the actor's own appointments, newest first.
func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	actor auth.Actor,
) ([]models.Appointment, error) {
	return uc.d.Repo.ListByUser(ctx, actor.UserID)
}
