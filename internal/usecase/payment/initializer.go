package payment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/clock"
	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/payment"
	"github.com/BruksfildServices01/barber-booking/internal/events"
)

// Initializer keeps exactly one payment per appointment. It creates it at
// booking time and, for appointments that predate payments, lazily on
// completion.
type Initializer struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewInitializer(repo domain.Repository, clk clock.Clock) *Initializer {
	return &Initializer{repo: repo, clock: clk}
}

func (i *Initializer) Register(bus *events.Bus) {
	bus.Subscribe(appointment.EventCreated, func(ctx context.Context, ev events.Event) error {
		e := ev.(appointment.Created)
		return i.ensure(ctx, e.AppointmentID, e.Amount)
	})
	bus.Subscribe(appointment.EventCompleted, func(ctx context.Context, ev events.Event) error {
		e := ev.(appointment.Completed)
		return i.ensure(ctx, e.AppointmentID, e.Amount)
	})
}

func (i *Initializer) ensure(ctx context.Context, appointmentID uint, amount decimal.Decimal) error {
	existing, err := i.repo.GetPaymentByAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	return i.repo.CreatePayment(ctx, domain.New(appointmentID, amount, i.clock.Now()))
}
