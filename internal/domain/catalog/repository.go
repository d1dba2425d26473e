package catalog

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error

	ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error

	// RetimeAppointments sets end_time = date + durationMin on the service's
	// pending, confirmed and rescheduled appointments starting at or after
	// from. An overlap created by the new end times is a time_conflict.
	RetimeAppointments(ctx context.Context, serviceID uint, durationMin int, from time.Time) (int64, error)
}
