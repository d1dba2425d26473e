package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// EndOf is the exclusive end of an appointment of durationMin starting at start.
func EndOf(start time.Time, durationMin int) time.Time {
	return start.Add(time.Duration(durationMin) * time.Minute)
}

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

// Cancel returns changed=false when the appointment was already cancelled.
func Cancel(ap *models.Appointment, now time.Time) (bool, error) {
	if Status(ap.Status) == StatusCancelled {
		return false, nil
	}
	if err := CanCancel(Status(ap.Status)); err != nil {
		return false, err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return true, nil
}

// Complete returns changed=false when the appointment was already completed,
// so side effects of completion happen at most once.
func Complete(ap *models.Appointment, now time.Time) (bool, error) {
	if Status(ap.Status) == StatusCompleted {
		return false, nil
	}
	if err := CanComplete(Status(ap.Status)); err != nil {
		return false, err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return true, nil
}

// Reschedule moves the appointment. OriginalDate keeps the first start ever
// booked and is never overwritten by later moves.
func Reschedule(ap *models.Appointment, start time.Time, durationMin int, explicit *Status) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	if ap.OriginalDate == nil {
		orig := ap.Date
		ap.OriginalDate = &orig
	}

	ap.Date = start
	ap.EndTime = EndOf(start, durationMin)

	ap.Status = string(StatusRescheduled)
	if explicit != nil {
		ap.Status = string(*explicit)
	}
	return nil
}
