package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/clock"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memory"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var now = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func at(day, h, m int) time.Time {
	return time.Date(2025, 3, day, h, m, 0, 0, time.UTC)
}

func book(t *testing.T, store *memory.Store, serviceID uint, start time.Time, minutes int, status domain.Status) *models.Appointment {
	t.Helper()
	ap := &models.Appointment{
		UserID:    1,
		ServiceID: serviceID,
		Date:      start,
		EndTime:   domain.EndOf(start, minutes),
		Status:    string(status),
	}
	require.NoError(t, store.CreateAppointment(context.Background(), ap))
	return ap
}

func TestCatalog(t *testing.T) {
	ctx := context.Background()
	staff := auth.Actor{UserID: 1, Role: auth.RoleAdmin}
	client := auth.Actor{UserID: 2, Role: auth.RoleClient}

	c := NewCatalog(memory.New(), clock.Fixed{T: now}, nil)

	_, err := c.Create(ctx, client, CreateInput{Name: "Haircut", DurationMin: 30})
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	_, err = c.Create(ctx, staff, CreateInput{Name: "  ", DurationMin: 30})
	assert.True(t, httperr.IsBusiness(err, "invalid_name"))

	haircut, err := c.Create(ctx, staff, CreateInput{
		Name:        " Haircut ",
		DurationMin: 30,
		Price:       decimal.RequireFromString("150.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Haircut", haircut.Name)
	assert.True(t, haircut.Active)

	_, err = c.Create(ctx, staff, CreateInput{Name: "Haircut", DurationMin: 45})
	assert.True(t, httperr.IsBusiness(err, "service_name_taken"))

	_, err = c.Create(ctx, staff, CreateInput{Name: "Beard", DurationMin: 30})
	require.NoError(t, err)

	off := false
	updated, err := c.Update(ctx, staff, haircut.ID, UpdateInput{Active: &off})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, 30, updated.DurationMin)

	neg := decimal.NewFromInt(-1)
	_, err = c.Update(ctx, staff, haircut.ID, UpdateInput{Price: &neg})
	assert.True(t, httperr.IsBusiness(err, "invalid_price"))

	_, err = c.Update(ctx, staff, 999, UpdateInput{Active: &off})
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	active, err := c.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Beard", active[0].Name)

	all, err := c.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCatalog_DurationChangeRetimesUpcomingBookings(t *testing.T) {
	ctx := context.Background()
	staff := auth.Actor{UserID: 1, Role: auth.RoleAdmin}
	store := memory.New()
	c := NewCatalog(store, clock.Fixed{T: now}, nil)

	haircut, err := c.Create(ctx, staff, CreateInput{Name: "Haircut", DurationMin: 30})
	require.NoError(t, err)

	upcoming := book(t, store, haircut.ID, at(11, 10, 0), 30, domain.StatusPending)
	past := book(t, store, haircut.ID, at(7, 10, 0), 30, domain.StatusCompleted)
	cancelled := book(t, store, haircut.ID, at(11, 15, 0), 30, domain.StatusCancelled)

	busy, err := store.HasConflict(ctx, at(11, 10, 30), at(11, 11, 0), 0)
	require.NoError(t, err)
	require.False(t, busy)

	sixty := 60
	_, err = c.Update(ctx, staff, haircut.ID, UpdateInput{DurationMin: &sixty})
	require.NoError(t, err)

	busy, err = store.HasConflict(ctx, at(11, 10, 30), at(11, 11, 0), 0)
	require.NoError(t, err)
	assert.True(t, busy, "10:30 is taken once the haircut runs an hour")

	got, err := store.GetAppointment(ctx, upcoming.ID)
	require.NoError(t, err)
	assert.Equal(t, at(11, 11, 0), got.EndTime)

	got, err = store.GetAppointment(ctx, past.ID)
	require.NoError(t, err)
	assert.Equal(t, at(7, 10, 30), got.EndTime)

	got, err = store.GetAppointment(ctx, cancelled.ID)
	require.NoError(t, err)
	assert.Equal(t, at(11, 15, 30), got.EndTime)
}

func TestCatalog_DurationChangeRejectedWhenBookingsWouldOverlap(t *testing.T) {
	ctx := context.Background()
	staff := auth.Actor{UserID: 1, Role: auth.RoleAdmin}
	store := memory.New()
	c := NewCatalog(store, clock.Fixed{T: now}, nil)

	haircut, err := c.Create(ctx, staff, CreateInput{Name: "Haircut", DurationMin: 30})
	require.NoError(t, err)
	beard, err := c.Create(ctx, staff, CreateInput{Name: "Beard", DurationMin: 30})
	require.NoError(t, err)

	first := book(t, store, haircut.ID, at(11, 10, 0), 30, domain.StatusConfirmed)
	book(t, store, beard.ID, at(11, 10, 30), 30, domain.StatusPending)

	sixty := 60
	name := "Long haircut"
	_, err = c.Update(ctx, staff, haircut.ID, UpdateInput{Name: &name, DurationMin: &sixty})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	svc, err := store.GetService(ctx, haircut.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, svc.DurationMin)
	assert.Equal(t, "Haircut", svc.Name)

	got, err := store.GetAppointment(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, at(11, 10, 30), got.EndTime)
}
