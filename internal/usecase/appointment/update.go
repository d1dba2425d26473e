package appointment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
)

type UpdateAppointment struct {
	d Deps
}

func NewUpdateAppointment(d Deps) *UpdateAppointment {
	return &UpdateAppointment{d: d.withDefaults()}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	actor auth.Actor,
	appointmentID uint,
	patch domain.Patch,
) (*models.Appointment, error) {

	cmds, err := domain.BuildCommands(patch)
	if err != nil {
		return nil, err
	}

	return uc.d.apply(ctx, actor, appointmentID, cmds)
}

// effects collects what a committed change must report afterwards.
type effects struct {
	from, to      string
	actions       []string
	notifications []string
}

// apply runs cmds against one appointment in a single transaction: every
// command succeeds or none is persisted.
func (d Deps) apply(
	ctx context.Context,
	actor auth.Actor,
	appointmentID uint,
	cmds []domain.Command,
) (*models.Appointment, error) {

	current, err := d.Repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(actor, current.UserID, cmds); err != nil {
		return nil, err
	}

	var (
		fx       effects
		moveTo   *time.Time
		run      func(ctx context.Context) error
		response *models.Appointment
	)

	for _, c := range cmds {
		if r, ok := c.(domain.RescheduleCommand); ok {
			moveTo = &r.Date
		}
	}

	run = func(ctx context.Context) error {
		fx = effects{}

		ap, err := d.Repo.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}
		fx.from = ap.Status

		completed := false
		for _, c := range cmds {
			changed, err := d.applyOne(ctx, ap, c, &fx)
			if err != nil {
				return err
			}
			if _, ok := c.(domain.CompleteCommand); ok && changed {
				completed = true
			}
		}

		if err := d.Repo.UpdateAppointment(ctx, ap); err != nil {
			return err
		}
		fx.to = ap.Status

		if completed {
			var amount decimal.Decimal
			if ap.Service != nil {
				amount = ap.Service.Price
			}
			if err := d.Bus.Publish(ctx, domain.Completed{
				AppointmentID: ap.ID,
				UserID:        ap.UserID,
				Amount:        amount,
				At:            d.Clock.Now(),
			}); err != nil {
				return err
			}
		}

		response = ap
		return nil
	}

	if moveTo != nil {
		err = d.guarded(ctx, *moveTo, run)
	} else {
		err = d.Repo.WithinTx(ctx, run)
	}
	if err != nil {
		return nil, err
	}

	d.Metrics.ObserveTransition(fx.from, fx.to)
	for _, action := range fx.actions {
		d.audit(actor.UserID, action, appointmentID, map[string]any{
			"from": fx.from,
			"to":   fx.to,
		})
	}
	for _, kind := range fx.notifications {
		d.Notifier.Notify(ctx, kind, response)
	}

	return d.Repo.GetAppointment(ctx, appointmentID)
}

// applyOne mutates ap for one command. changed is false for idempotent
// no-ops (cancel twice, complete twice).
func (d Deps) applyOne(
	ctx context.Context,
	ap *models.Appointment,
	cmd domain.Command,
	fx *effects,
) (bool, error) {

	now := d.Clock.Now()

	switch c := cmd.(type) {
	case domain.AnnotateCommand:
		if c.Notes != nil {
			ap.Notes = *c.Notes
		}
		if c.BarberNotes != nil {
			ap.BarberNotes = *c.BarberNotes
		}
		fx.actions = append(fx.actions, "appointment_notes_updated")
		return true, nil

	case domain.RescheduleCommand:
		if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
			return false, err
		}

		svc := ap.Service
		if svc == nil {
			loaded, err := d.Repo.GetService(ctx, ap.ServiceID)
			if err != nil {
				return false, err
			}
			ap.Service = loaded
			svc = loaded
		}

		end := domain.EndOf(c.Date, svc.DurationMin)
		if err := d.checkBookable(ctx, c.Date, end, ap.ID); err != nil {
			return false, err
		}
		if err := domain.Reschedule(ap, c.Date, svc.DurationMin, c.Status); err != nil {
			return false, err
		}
		fx.actions = append(fx.actions, "appointment_rescheduled")
		fx.notifications = append(fx.notifications, notify.KindRescheduled)
		return true, nil

	case domain.ConfirmCommand:
		if ap.Status == string(domain.StatusConfirmed) {
			return false, nil
		}
		if err := domain.Confirm(ap); err != nil {
			return false, err
		}
		fx.actions = append(fx.actions, "appointment_confirmed")
		fx.notifications = append(fx.notifications, notify.KindConfirmed)
		return true, nil

	case domain.CompleteCommand:
		changed, err := domain.Complete(ap, now)
		if err != nil || !changed {
			return false, err
		}
		fx.actions = append(fx.actions, "appointment_completed")
		fx.notifications = append(fx.notifications, notify.KindCompleted)
		return true, nil

	case domain.CancelCommand:
		changed, err := domain.Cancel(ap, now)
		if err != nil || !changed {
			return false, err
		}
		fx.actions = append(fx.actions, "appointment_cancelled")
		fx.notifications = append(fx.notifications, notify.KindCancelled)
		return true, nil
	}

	return false, nil
}
