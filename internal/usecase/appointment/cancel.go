package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CancelAppointment struct {
	d Deps
}

func NewCancelAppointment(d Deps) *CancelAppointment {
	return &CancelAppointment{d: d.withDefaults()}
}

// Execute cancels as the owner or staff. Cancelling twice is a no-op.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor auth.Actor,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.d.apply(ctx, actor, appointmentID, []domain.Command{domain.CancelCommand{}})
}
