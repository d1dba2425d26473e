package appointment

import "github.com/BruksfildServices01/barber-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending     Status = "PENDING"
	StatusConfirmed   Status = "CONFIRMED"
	StatusRescheduled Status = "RESCHEDULED"
	StatusCompleted   Status = "COMPLETED"
	StatusCancelled   Status = "CANCELLED"
)

func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusRescheduled, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", httperr.ErrValidation("invalid_status")
}

// IsTerminal is true for states no transition may leave.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Blocks reports whether an appointment in this state occupies its slot.
func (s Status) Blocks() bool {
	return s != StatusCancelled
}

// ===============================
// Validations
// ===============================

var errInvalidTransition = httperr.ErrConflict("invalid_transition")

func CanConfirm(current Status) error {
	switch current {
	case StatusPending, StatusRescheduled, StatusConfirmed:
		return nil
	}
	return errInvalidTransition
}

func CanReschedule(current Status) error {
	if current.IsTerminal() {
		return errInvalidTransition
	}
	return nil
}

func CanCancel(current Status) error {
	if current == StatusCompleted {
		return errInvalidTransition
	}
	return nil
}

func CanComplete(current Status) error {
	if current == StatusCancelled {
		return errInvalidTransition
	}
	return nil
}
