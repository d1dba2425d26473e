package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error

	// GetWorkingHours returns nil, nil when the weekday was never configured.
	GetWorkingHours(ctx context.Context, weekday int) (*models.WorkingHours, error)
	ListWorkingHours(ctx context.Context) ([]models.WorkingHours, error)
	UpsertWorkingHours(ctx context.Context, wh *models.WorkingHours) error

	IsDateBlocked(ctx context.Context, day string) (bool, error)
	ListBlockedDates(ctx context.Context) ([]models.BlockedDate, error)
	CreateBlockedDate(ctx context.Context, bd *models.BlockedDate) error
	DeleteBlockedDate(ctx context.Context, id uint) error
}
