package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// WithinTx runs fn in one serializable transaction carried by ctx.
	// Nested calls join the outer transaction.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error

	// -------- Service --------
	GetService(ctx context.Context, id uint) (*models.Service, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// HasConflict locks and checks every slot-occupying appointment
	// overlapping [start, end), ignoring excludeID.
	HasConflict(ctx context.Context, start, end time.Time, excludeID uint) (bool, error)

	// -------- Appointment (state change) --------
	// GetAppointment preloads Service and Payment. Inside a transaction the
	// row is locked for update.
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, id uint) error

	// -------- Listing / availability --------
	ListActiveBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Appointment, error)
	ListBetween(ctx context.Context, from, to time.Time, includeCancelled bool) ([]models.Appointment, error)
}
