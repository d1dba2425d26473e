package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/clock"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memory"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucLoyalty "github.com/BruksfildServices01/barber-booking/internal/usecase/loyalty"
	ucPayment "github.com/BruksfildServices01/barber-booking/internal/usecase/payment"
)

// Monday 2025-03-10 08:00 UTC. Bookings in tests go on Tuesday.
var now = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func tuesday(hour, min int) time.Time {
	return time.Date(2025, 3, 11, hour, min, 0, 0, time.UTC)
}

type harness struct {
	ctx   context.Context
	store *memory.Store
	deps  Deps

	client auth.Actor
	other  auth.Actor
	staff  auth.Actor

	haircut uint // 30 min
	beard   uint // 45 min
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ctx := context.Background()
	store := memory.New()
	clk := clock.Fixed{T: now}

	bus := events.NewBus()
	ucPayment.NewInitializer(store, clk).Register(bus)
	ucLoyalty.NewAwarder(store, 10, zap.NewNop()).Register(bus)

	for wd := 1; wd <= 6; wd++ {
		require.NoError(t, store.UpsertWorkingHours(ctx, &models.WorkingHours{
			Weekday: wd, OpenTime: "09:00", CloseTime: "18:00", IsOpen: true,
		}))
	}
	require.NoError(t, store.UpsertWorkingHours(ctx, &models.WorkingHours{Weekday: 0, IsOpen: false}))

	haircut := &models.Service{Name: "Haircut", DurationMin: 30, Price: decimal.NewFromInt(150), Active: true}
	beard := &models.Service{Name: "Beard", DurationMin: 45, Price: decimal.RequireFromString("99.50"), Active: true}
	require.NoError(t, store.CreateService(ctx, haircut))
	require.NoError(t, store.CreateService(ctx, beard))

	h := &harness{
		ctx:     ctx,
		store:   store,
		haircut: haircut.ID,
		beard:   beard.ID,
	}
	h.client = auth.Actor{UserID: store.AddUser(models.User{Name: "Client", Email: "c@example.com"}), Role: auth.RoleClient}
	h.other = auth.Actor{UserID: store.AddUser(models.User{Name: "Other", Email: "o@example.com"}), Role: auth.RoleClient}
	h.staff = auth.Actor{UserID: store.AddUser(models.User{Name: "Staff", Email: "s@example.com", Role: "ADMIN"}), Role: auth.RoleAdmin}

	h.deps = Deps{
		Repo:     store,
		Schedule: store,
		Bus:      bus,
		Clock:    clk,
		Location: time.UTC,
	}
	return h
}

func (h *harness) book(t *testing.T, actor auth.Actor, serviceID uint, at time.Time) *models.Appointment {
	t.Helper()

	ap, err := NewCreateAppointment(h.deps).Execute(h.ctx, actor, CreateAppointmentInput{
		ServiceID: serviceID,
		Date:      at,
	})
	require.NoError(t, err)
	return ap
}

func ptr[T any](v T) *T { return &v }
