package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestReschedule_KeepsFirstOriginalDate(t *testing.T) {
	ap := booked(1, monday(10, 0), 30, StatusPending)

	require.NoError(t, Reschedule(&ap, monday(14, 0), 30, nil))
	assert.Equal(t, monday(10, 0), *ap.OriginalDate)
	assert.Equal(t, monday(14, 0), ap.Date)
	assert.Equal(t, monday(14, 30), ap.EndTime)
	assert.Equal(t, string(StatusRescheduled), ap.Status)

	require.NoError(t, Reschedule(&ap, monday(15, 0), 30, nil))
	assert.Equal(t, monday(10, 0), *ap.OriginalDate)
	assert.Equal(t, monday(15, 0), ap.Date)
}

func TestReschedule_ExplicitStatus(t *testing.T) {
	ap := booked(1, monday(10, 0), 30, StatusPending)
	confirmed := StatusConfirmed

	require.NoError(t, Reschedule(&ap, monday(11, 0), 30, &confirmed))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
}

func TestReschedule_TerminalRejected(t *testing.T) {
	for _, st := range []Status{StatusCompleted, StatusCancelled} {
		ap := booked(1, monday(10, 0), 30, st)
		err := Reschedule(&ap, monday(11, 0), 30, nil)
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
		assert.Nil(t, ap.OriginalDate)
	}
}

func TestComplete_Idempotent(t *testing.T) {
	ap := booked(1, monday(10, 0), 30, StatusConfirmed)

	changed, err := Complete(&ap, monday(11, 0))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, monday(11, 0), *ap.CompletedAt)

	changed, err = Complete(&ap, monday(12, 0))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, monday(11, 0), *ap.CompletedAt)
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		apply   func(*models.Appointment) error
		want    Status
		errCode string
	}{
		{"confirm pending", StatusPending, Confirm, StatusConfirmed, ""},
		{"confirm rescheduled", StatusRescheduled, Confirm, StatusConfirmed, ""},
		{"confirm confirmed", StatusConfirmed, Confirm, StatusConfirmed, ""},
		{"confirm cancelled", StatusCancelled, Confirm, StatusCancelled, "invalid_transition"},
		{"complete cancelled", StatusCancelled, func(ap *models.Appointment) error {
			_, err := Complete(ap, monday(12, 0))
			return err
		}, StatusCancelled, "invalid_transition"},
		{"cancel completed", StatusCompleted, func(ap *models.Appointment) error {
			_, err := Cancel(ap, monday(12, 0))
			return err
		}, StatusCompleted, "invalid_transition"},
		{"cancel cancelled is a no-op", StatusCancelled, func(ap *models.Appointment) error {
			changed, err := Cancel(ap, monday(12, 0))
			assert.False(t, changed)
			return err
		}, StatusCancelled, ""},
		{"cancel pending", StatusPending, func(ap *models.Appointment) error {
			_, err := Cancel(ap, monday(12, 0))
			return err
		}, StatusCancelled, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ap := booked(1, monday(10, 0), 30, tt.from)
			err := tt.apply(&ap)
			if tt.errCode != "" {
				assert.True(t, httperr.IsBusiness(err, tt.errCode), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, string(tt.want), ap.Status)
		})
	}
}
