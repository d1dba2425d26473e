package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CompleteAppointment struct {
	d Deps
}

func NewCompleteAppointment(d Deps) *CompleteAppointment {
	return &CompleteAppointment{d: d.withDefaults()}
}

// Execute marks the visit as done. Staff only. The first completion
// publishes domain.Completed; repeating it changes nothing.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	actor auth.Actor,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.d.apply(ctx, actor, appointmentID, []domain.Command{domain.CompleteCommand{}})
}
