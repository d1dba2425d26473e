package payment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error

	// GetAppointment preloads Service and Payment.
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	// GetPaymentByAppointment returns nil, nil when no payment exists yet.
	GetPaymentByAppointment(ctx context.Context, appointmentID uint) (*models.Payment, error)
	CreatePayment(ctx context.Context, p *models.Payment) error
	UpdatePayment(ctx context.Context, p *models.Payment) error

	GetSettings(ctx context.Context, keys []string) (map[string]string, error)
	UpsertSettings(ctx context.Context, values map[string]string) error
}
