package appointment

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/clock"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/lock"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// Deps is shared by every appointment use case.
type Deps struct {
	Repo     domain.Repository
	Schedule schedule.Repository
	Bus      *events.Bus
	Locker   lock.Locker
	Clock    clock.Clock
	Audit    *audit.Dispatcher
	Notifier notify.Notifier
	Metrics  *metrics.BookingMetrics
	Log      *zap.Logger

	// Location is the shop timezone all calendar days are computed in.
	Location       *time.Location
	GranularityMin int
}

func (d Deps) withDefaults() Deps {
	if d.Locker == nil {
		d.Locker = lock.Noop{}
	}
	if d.Clock == nil {
		d.Clock = clock.Real{}
	}
	if d.Notifier == nil {
		d.Notifier = notify.Nop{}
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Location == nil {
		d.Location = timezone.Location(timezone.DefaultTimezone)
	}
	if d.GranularityMin <= 0 {
		d.GranularityMin = domain.DefaultGranularityMinutes
	}
	return d
}

// guarded runs fn in a transaction while holding the booking lock for the
// calendar day of at.
func (d Deps) guarded(ctx context.Context, at time.Time, fn func(ctx context.Context) error) error {
	key := "booking:" + timezone.DayKey(at.In(d.Location))

	err := d.Locker.WithLock(ctx, key, func(ctx context.Context) error {
		return d.Repo.WithinTx(ctx, fn)
	})
	if errors.Is(err, lock.ErrLockNotAcquired) {
		return httperr.ErrConflict("slot_busy")
	}
	return err
}

// checkBookable verifies [start, end) can be occupied by appointment
// excludeID (0 for a new booking). Must run inside the transaction.
func (d Deps) checkBookable(ctx context.Context, start, end time.Time, excludeID uint) error {
	if !start.After(d.Clock.Now()) {
		return httperr.ErrConflict("slot_in_past")
	}

	local := start.In(d.Location)

	blocked, err := d.Schedule.IsDateBlocked(ctx, timezone.DayKey(local))
	if err != nil {
		return err
	}
	if blocked {
		return httperr.ErrConflict("date_blocked")
	}

	wh, err := d.Schedule.GetWorkingHours(ctx, int(local.Weekday()))
	if err != nil {
		return err
	}
	w, ok := schedule.WindowOn(wh, local)
	if !ok || !w.Covers(start, end) {
		return httperr.ErrConflict("outside_working_hours")
	}

	conflict, err := d.Repo.HasConflict(ctx, start, end, excludeID)
	if err != nil {
		return err
	}
	if conflict {
		return httperr.ErrConflict("time_conflict")
	}
	return nil
}

func (d Deps) audit(actorID uint, action string, appointmentID uint, meta any) {
	d.Audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &appointmentID,
		Metadata: meta,
	})
}

func bookingResult(err error) string {
	switch {
	case err == nil:
		return "created"
	case httperr.IsKind(err, httperr.KindConflict):
		return "conflict"
	case httperr.IsKind(err, httperr.KindValidation), httperr.IsKind(err, httperr.KindNotFound):
		return "rejected"
	}
	return "error"
}
