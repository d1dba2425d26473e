package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type DeleteAppointment struct {
	d Deps
}

func NewDeleteAppointment(d Deps) *DeleteAppointment {
	return &DeleteAppointment{d: d.withDefaults()}
}

// Execute removes the appointment and its payment. Staff only.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actor auth.Actor,
	appointmentID uint,
) error {

	if !actor.IsStaff() {
		return httperr.ErrForbidden("staff_only")
	}

	err := uc.d.Repo.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := uc.d.Repo.GetAppointment(ctx, appointmentID); err != nil {
			return err
		}
		return uc.d.Repo.DeleteAppointment(ctx, appointmentID)
	})
	if err != nil {
		return err
	}

	uc.d.audit(actor.UserID, "appointment_deleted", appointmentID, nil)
	return nil
}
