package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestUpdateAppointment_RescheduleKeepsFirstOriginalDate(t *testing.T) {
	h := newHarness(t)
	ap := h.book(t, h.client, h.haircut, tuesday(10, 0))

	uc := NewUpdateAppointment(h.deps)

	moved, err := uc.Execute(h.ctx, h.client, ap.ID, domain.Patch{Date: ptr(tuesday(11, 0))})
	require.NoError(t, err)
	assert.Equal(t, "RESCHEDULED", moved.Status)
	assert.Equal(t, tuesday(11, 30), moved.EndTime)
	require.NotNil(t, moved.OriginalDate)
	assert.Equal(t, tuesday(10, 0), *moved.OriginalDate)

	moved, err = uc.Execute(h.ctx, h.client, ap.ID, domain.Patch{Date: ptr(tuesday(12, 0))})
	require.NoError(t, err)
	assert.Equal(t, tuesday(12, 0), moved.Date)
	require.NotNil(t, moved.OriginalDate)
	assert.Equal(t, tuesday(10, 0), *moved.OriginalDate)
}

func TestUpdateAppointment_RescheduleOntoItselfIsAllowed(t *testing.T) {
	h := newHarness(t)
	ap := h.book(t, h.client, h.haircut, tuesday(10, 0))

	moved, err := NewUpdateAppointment(h.deps).Execute(h.ctx, h.client, ap.ID, domain.Patch{
		Date: ptr(tuesday(10, 15)),
	})
	require.NoError(t, err)
	assert.Equal(t, tuesday(10, 45), moved.EndTime)
}

func TestUpdateAppointment_RescheduleConflictLeavesAppointmentUntouched(t *testing.T) {
	h := newHarness(t)
	ap := h.book(t, h.client, h.haircut, tuesday(10, 0))
	h.book(t, h.other, h.haircut, tuesday(11, 0))

	_, err := NewUpdateAppointment(h.deps).Execute(h.ctx, h.client, ap.ID, domain.Patch{
		Date:  ptr(tuesday(11, 15)),
		Notes: ptr("running late"),
	})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"), "got %v", err)

	stored, err := h.store.GetAppointment(h.ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, tuesday(10, 0), stored.Date)
	assert.Equal(t, "PENDING", stored.Status)
	assert.Empty(t, stored.Notes)
	assert.Nil(t, stored.OriginalDate)
}

func TestUpdateAppointment_StaffRescheduleWithExplicitStatus(t *testing.T) {
	h := newHarness(t)
	ap := h.book(t, h.client, h.haircut, tuesday(10, 0))

	moved, err := NewUpdateAppointment(h.deps).Execute(h.ctx, h.staff, ap.ID, domain.Patch{
		Date:   ptr(tuesday(15, 0)),
		Status: ptr("CONFIRMED"),
	})
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", moved.Status)
}

func TestUpdateAppointment_Permissions(t *testing.T) {
	h := newHarness(t)
	ap := h.book(t, h.client, h.haircut, tuesday(10, 0))
	uc := NewUpdateAppointment(h.deps)

	_, err := uc.Execute(h.ctx, h.client, ap.ID, domain.Patch{Status: ptr("CONFIRMED")})
	assert.True(t, httperr.IsBusiness(err, "staff_only"), "got %v", err)

	_, err = uc.Execute(h.ctx, h.client, ap.ID, domain.Patch{BarberNotes: ptr("regular")})
	assert.True(t, httperr.IsBusiness(err, "staff_only"), "got %v", err)

	_, err = uc.Execute(h.ctx, h.other, ap.ID, domain.Patch{Notes: ptr("mine now")})
	assert.True(t, httperr.IsBusiness(err, "not_owner"), "got %v", err)

	_, err = uc.Execute(h.ctx, h.client, 404, domain.Patch{Notes: ptr("x")})
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound), "got %v", err)

	updated, err := uc.Execute(h.ctx, h.client, ap.ID, domain.Patch{Notes: ptr("short on the sides")})
	require.NoError(t, err)
	assert.Equal(t, "short on the sides", updated.Notes)

	updated, err = uc.Execute(h.ctx, h.staff, ap.ID, domain.Patch{BarberNotes: ptr("uses clipper 2")})
	require.NoError(t, err)
	assert.Equal(t, "uses clipper 2", updated.BarberNotes)
}

func TestUpdateAppointment_ConfirmIsIdempotent(t *testing.T) {
	h := newHarness(t)
	ap := h.book(t, h.client, h.haircut, tuesday(10, 0))
	uc := NewUpdateAppointment(h.deps)

	for i := 0; i < 2; i++ {
		got, err := uc.Execute(h.ctx, h.staff, ap.ID, domain.Patch{Status: ptr("CONFIRMED")})
		require.NoError(t, err)
		assert.Equal(t, "CONFIRMED", got.Status)
	}
}

func TestCompleteAppointment_AwardsPointsOnce(t *testing.T) {
	h := newHarness(t)
	ap := h.book(t, h.client, h.haircut, tuesday(10, 0))
	uc := NewCompleteAppointment(h.deps)

	done, err := uc.Execute(h.ctx, h.staff, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", done.Status)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, now, *done.CompletedAt)

	again, err := uc.Execute(h.ctx, h.staff, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", again.Status)

	points, err := h.store.GetPoints(h.ctx, h.client.UserID)
	require.NoError(t, err)
	assert.Equal(t, 10, points)
}

func TestCompleteAppointment_ClientIsForbidden(t *testing.T) {
	h := newHarness(t)
	ap := h.book(t, h.client, h.haircut, tuesday(10, 0))

	_, err := NewCompleteAppointment(h.deps).Execute(h.ctx, h.client, ap.ID)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden), "got %v", err)

	points, err := h.store.GetPoints(h.ctx, h.client.UserID)
	require.NoError(t, err)
	assert.Zero(t, points)
}

func TestCompleteAppointment_CreatesMissingPayment(t *testing.T) {
	h := newHarness(t)

	legacy := &models.Appointment{
		UserID:    h.client.UserID,
		ServiceID: h.haircut,
		Date:      tuesday(16, 0),
		EndTime:   tuesday(16, 30),
		Status:    "CONFIRMED",
	}
	require.NoError(t, h.store.CreateAppointment(h.ctx, legacy))

	done, err := NewCompleteAppointment(h.deps).Execute(h.ctx, h.staff, legacy.ID)
	require.NoError(t, err)
	require.NotNil(t, done.Payment)
	assert.Equal(t, "UNPAID", done.Payment.Status)
	assert.Equal(t, "150", done.Payment.Amount.String())
}

func TestCancelAppointment(t *testing.T) {
	h := newHarness(t)
	ap := h.book(t, h.client, h.haircut, tuesday(10, 0))
	uc := NewCancelAppointment(h.deps)

	cancelled, err := uc.Execute(h.ctx, h.client, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	// idempotent
	again, err := uc.Execute(h.ctx, h.client, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, *cancelled.CancelledAt, *again.CancelledAt)

	// the slot is free again
	h.book(t, h.other, h.haircut, tuesday(10, 0))

	_, err = NewCompleteAppointment(h.deps).Execute(h.ctx, h.staff, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"), "got %v", err)

	_, err = NewUpdateAppointment(h.deps).Execute(h.ctx, h.client, ap.ID, domain.Patch{Date: ptr(tuesday(13, 0))})
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"), "got %v", err)
}

func TestCancelAppointment_CompletedCannotBeCancelled(t *testing.T) {
	h := newHarness(t)
	ap := h.book(t, h.client, h.haircut, tuesday(10, 0))

	_, err := NewCompleteAppointment(h.deps).Execute(h.ctx, h.staff, ap.ID)
	require.NoError(t, err)

	_, err = NewCancelAppointment(h.deps).Execute(h.ctx, h.client, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"), "got %v", err)
}

func TestDeleteAppointment(t *testing.T) {
	h := newHarness(t)
	ap := h.book(t, h.client, h.haircut, tuesday(10, 0))
	uc := NewDeleteAppointment(h.deps)

	err := uc.Execute(h.ctx, h.client, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "staff_only"), "got %v", err)

	require.NoError(t, uc.Execute(h.ctx, h.staff, ap.ID))

	_, err = h.store.GetAppointment(h.ctx, ap.ID)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	p, err := h.store.GetPaymentByAppointment(h.ctx, ap.ID)
	require.NoError(t, err)
	assert.Nil(t, p)

	err = uc.Execute(h.ctx, h.staff, ap.ID)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestGetAppointment_Ownership(t *testing.T) {
	h := newHarness(t)
	ap := h.book(t, h.client, h.haircut, tuesday(10, 0))
	uc := NewGetAppointment(h.deps)

	_, err := uc.Execute(h.ctx, h.client, ap.ID)
	assert.NoError(t, err)

	_, err = uc.Execute(h.ctx, h.staff, ap.ID)
	assert.NoError(t, err)

	_, err = uc.Execute(h.ctx, h.other, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "not_owner"), "got %v", err)
}

func TestListAppointments(t *testing.T) {
	h := newHarness(t)
	first := h.book(t, h.client, h.haircut, tuesday(10, 0))
	second := h.book(t, h.client, h.haircut, tuesday(12, 0))
	h.book(t, h.other, h.beard, tuesday(14, 0))

	_, err := NewCancelAppointment(h.deps).Execute(h.ctx, h.client, second.ID)
	require.NoError(t, err)

	mine, err := NewListMyAppointments(h.deps).Execute(h.ctx, h.client)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)

	byDate := NewListAppointmentsByDate(h.deps)

	_, err = byDate.Execute(h.ctx, h.client, tuesday(0, 0), false)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	active, err := byDate.Execute(h.ctx, h.staff, tuesday(0, 0), false)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, "Client", active[0].ClientName)
	assert.Equal(t, "Haircut", active[0].ServiceName)
	assert.Equal(t, "UNPAID", active[0].PaymentStatus)

	all, err := byDate.Execute(h.ctx, h.staff, tuesday(0, 0), true)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	month, err := NewListAppointmentsByMonth(h.deps).Execute(h.ctx, h.staff, 2025, int(time.March))
	require.NoError(t, err)
	assert.Len(t, month, 2)
}
