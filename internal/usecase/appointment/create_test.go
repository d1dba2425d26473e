package appointment

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestCreateAppointment_BooksWithUnpaidPayment(t *testing.T) {
	h := newHarness(t)

	ap := h.book(t, h.client, h.haircut, tuesday(10, 0))

	assert.Equal(t, "PENDING", ap.Status)
	assert.Equal(t, h.client.UserID, ap.UserID)
	assert.Equal(t, tuesday(10, 30), ap.EndTime)
	assert.Nil(t, ap.OriginalDate)

	require.NotNil(t, ap.Payment)
	assert.Equal(t, "UNPAID", ap.Payment.Status)
	assert.Equal(t, "BANK_TRANSFER", ap.Payment.Method)
	assert.Equal(t, "150", ap.Payment.Amount.String())
	assert.True(t, strings.HasPrefix(ap.Payment.PaymentReference, "APT-"))
}

func TestCreateAppointment_Conflicts(t *testing.T) {
	h := newHarness(t)
	h.book(t, h.client, h.haircut, tuesday(10, 0))

	uc := NewCreateAppointment(h.deps)

	// same slot
	_, err := uc.Execute(h.ctx, h.other, CreateAppointmentInput{ServiceID: h.haircut, Date: tuesday(10, 0)})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"), "got %v", err)

	// 45 min from 09:45 runs into the 10:00 booking
	_, err = uc.Execute(h.ctx, h.other, CreateAppointmentInput{ServiceID: h.beard, Date: tuesday(9, 45)})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"), "got %v", err)

	// back-to-back is fine
	_, err = uc.Execute(h.ctx, h.other, CreateAppointmentInput{ServiceID: h.haircut, Date: tuesday(10, 30)})
	assert.NoError(t, err)
}

func TestCreateAppointment_Rejections(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.store.CreateBlockedDate(h.ctx, &models.BlockedDate{Day: "2025-03-12", Reason: "holiday"}))

	inactive := &models.Service{Name: "Old", DurationMin: 30, Active: false}
	require.NoError(t, h.store.CreateService(h.ctx, inactive))

	tests := []struct {
		name string
		in   CreateAppointmentInput
		code string
		kind httperr.Kind
	}{
		{"missing service", CreateAppointmentInput{Date: tuesday(10, 0)}, "invalid_service", httperr.KindValidation},
		{"missing date", CreateAppointmentInput{ServiceID: h.haircut}, "invalid_date", httperr.KindValidation},
		{"unknown service", CreateAppointmentInput{ServiceID: 999, Date: tuesday(10, 0)}, "service_not_found", httperr.KindNotFound},
		{"inactive service", CreateAppointmentInput{ServiceID: inactive.ID, Date: tuesday(10, 0)}, "service_inactive", httperr.KindValidation},
		{"in the past", CreateAppointmentInput{ServiceID: h.haircut, Date: now.Add(-1)}, "slot_in_past", httperr.KindConflict},
		{"before opening", CreateAppointmentInput{ServiceID: h.haircut, Date: tuesday(8, 30)}, "outside_working_hours", httperr.KindConflict},
		{"runs past closing", CreateAppointmentInput{ServiceID: h.beard, Date: tuesday(17, 30)}, "outside_working_hours", httperr.KindConflict},
		{"sunday closed", CreateAppointmentInput{ServiceID: h.haircut, Date: tuesday(10, 0).AddDate(0, 0, 5)}, "outside_working_hours", httperr.KindConflict},
		{"blocked day", CreateAppointmentInput{ServiceID: h.haircut, Date: tuesday(10, 0).AddDate(0, 0, 1)}, "date_blocked", httperr.KindConflict},
		{"for someone else", CreateAppointmentInput{ServiceID: h.haircut, Date: tuesday(10, 0), UserID: h.other.UserID}, "staff_only", httperr.KindForbidden},
	}

	uc := NewCreateAppointment(h.deps)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(h.ctx, h.client, tt.in)
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
			assert.True(t, httperr.IsKind(err, tt.kind))
		})
	}

	mine, err := h.store.ListByUser(h.ctx, h.client.UserID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestCreateAppointment_StaffBooksForClient(t *testing.T) {
	h := newHarness(t)

	ap, err := NewCreateAppointment(h.deps).Execute(h.ctx, h.staff, CreateAppointmentInput{
		ServiceID: h.haircut,
		Date:      tuesday(11, 0),
		UserID:    h.client.UserID,
	})
	require.NoError(t, err)
	assert.Equal(t, h.client.UserID, ap.UserID)
}

func TestCreateAppointment_ConcurrentRequestsOneWins(t *testing.T) {
	h := newHarness(t)
	uc := NewCreateAppointment(h.deps)

	const n = 10
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		conflict int
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), h.client, CreateAppointmentInput{
				ServiceID: h.haircut,
				Date:      tuesday(14, 0),
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case httperr.IsBusiness(err, "time_conflict"):
				conflict++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflict)

	active, err := h.store.ListActiveBetween(h.ctx, tuesday(0, 0), tuesday(23, 59))
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
