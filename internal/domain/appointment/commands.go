package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// Command is one intent extracted from an update request. Each kind carries
// only the fields it needs, so contradictory combinations cannot be built.
type Command interface {
	// staffOnly reports whether only staff may issue the command.
	staffOnly() bool
}

type RescheduleCommand struct {
	Date time.Time
	// Status, when set, replaces the default RESCHEDULED. Staff only.
	Status *Status
}

type ConfirmCommand struct{}

type CompleteCommand struct{}

type CancelCommand struct{}

type AnnotateCommand struct {
	Notes       *string
	BarberNotes *string
}

func (c RescheduleCommand) staffOnly() bool { return c.Status != nil }
func (ConfirmCommand) staffOnly() bool      { return true }
func (CompleteCommand) staffOnly() bool     { return true }
func (CancelCommand) staffOnly() bool       { return false }
func (c AnnotateCommand) staffOnly() bool   { return c.BarberNotes != nil }

// Patch is the raw partial update as received from a caller.
type Patch struct {
	Date        *time.Time
	Status      *string
	Notes       *string
	BarberNotes *string
}

// BuildCommands validates a patch and turns it into commands, in the order
// they must be applied.
func BuildCommands(p Patch) ([]Command, error) {
	var cmds []Command

	if p.Notes != nil || p.BarberNotes != nil {
		cmds = append(cmds, AnnotateCommand{Notes: p.Notes, BarberNotes: p.BarberNotes})
	}

	switch {
	case p.Date != nil:
		if p.Date.IsZero() {
			return nil, httperr.ErrValidation("invalid_date")
		}
		cmd := RescheduleCommand{Date: *p.Date}
		if p.Status != nil {
			st, err := ParseStatus(*p.Status)
			if err != nil {
				return nil, err
			}
			if st.IsTerminal() {
				return nil, httperr.ErrValidation("status_not_allowed_with_date")
			}
			cmd.Status = &st
		}
		cmds = append(cmds, cmd)

	case p.Status != nil:
		st, err := ParseStatus(*p.Status)
		if err != nil {
			return nil, err
		}
		switch st {
		case StatusConfirmed:
			cmds = append(cmds, ConfirmCommand{})
		case StatusCompleted:
			cmds = append(cmds, CompleteCommand{})
		case StatusCancelled:
			cmds = append(cmds, CancelCommand{})
		default:
			return nil, httperr.ErrValidation("unsupported_status_change")
		}
	}

	if len(cmds) == 0 {
		return nil, httperr.ErrValidation("empty_update")
	}
	return cmds, nil
}

// Authorize checks that actor may apply every command to an appointment
// owned by ownerID.
func Authorize(actor auth.Actor, ownerID uint, cmds []Command) error {
	if !actor.CanAccess(ownerID) {
		return httperr.ErrForbidden("not_owner")
	}
	if actor.IsStaff() {
		return nil
	}
	for _, c := range cmds {
		if c.staffOnly() {
			return httperr.ErrForbidden("staff_only")
		}
	}
	return nil
}
