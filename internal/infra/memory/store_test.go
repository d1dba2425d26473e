package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var t0 = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

func TestStore_RollbackOnError(t *testing.T) {
	s := New()
	ctx := context.Background()
	userID := s.AddUser(models.User{Name: "Ana"})

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, s.CreateAppointment(ctx, &models.Appointment{
			UserID: userID, Date: t0, EndTime: t0.Add(30 * time.Minute), Status: "PENDING",
		}))
		_, err := s.AddPoints(ctx, userID, 10)
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := s.ListActiveBetween(ctx, t0.Add(-time.Hour), t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, list)

	points, err := s.GetPoints(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, points)
}

func TestStore_RejectsOverlapOnWrite(t *testing.T) {
	s := New()
	ctx := context.Background()

	first := &models.Appointment{Date: t0, EndTime: t0.Add(30 * time.Minute), Status: "PENDING"}
	require.NoError(t, s.CreateAppointment(ctx, first))

	clash := &models.Appointment{Date: t0.Add(15 * time.Minute), EndTime: t0.Add(45 * time.Minute), Status: "PENDING"}
	assert.True(t, httperr.IsBusiness(s.CreateAppointment(ctx, clash), "time_conflict"))

	adjacent := &models.Appointment{Date: t0.Add(30 * time.Minute), EndTime: t0.Add(time.Hour), Status: "PENDING"}
	assert.NoError(t, s.CreateAppointment(ctx, adjacent))

	first.Status = "CANCELLED"
	require.NoError(t, s.UpdateAppointment(ctx, first))
	clash.Status = "PENDING"
	clash.EndTime = t0.Add(30 * time.Minute)
	assert.NoError(t, s.CreateAppointment(ctx, clash))
}

func TestStore_AddPointsFloor(t *testing.T) {
	s := New()
	ctx := context.Background()
	id := s.AddUser(models.User{Name: "Bo", LoyaltyPoints: 5})

	_, err := s.AddPoints(ctx, id, -6)
	assert.True(t, httperr.IsBusiness(err, "negative_points"))

	got, err := s.AddPoints(ctx, id, -5)
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = s.AddPoints(ctx, 999, 1)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
