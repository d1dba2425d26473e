package payment

import (
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type Command interface {
	authorize(actor auth.Actor, ownerID uint) error
}

// AttachProofCommand may only come from the client who owns the appointment.
type AttachProofCommand struct {
	ProofURL string
}

// ReviewCommand is a staff verification. Status nil only updates notes.
type ReviewCommand struct {
	Status *Status
	Notes  *string
}

func (AttachProofCommand) authorize(actor auth.Actor, ownerID uint) error {
	if !actor.Owns(ownerID) {
		return httperr.ErrForbidden("not_owner")
	}
	return nil
}

func (ReviewCommand) authorize(actor auth.Actor, _ uint) error {
	if !actor.IsStaff() {
		return httperr.ErrForbidden("staff_only")
	}
	return nil
}

func Authorize(cmd Command, actor auth.Actor, ownerID uint) error {
	return cmd.authorize(actor, ownerID)
}

type Patch struct {
	ProofURL *string
	Status   *string
	Notes    *string
}

func BuildCommand(p Patch) (Command, error) {
	review := p.Status != nil || p.Notes != nil

	switch {
	case p.ProofURL != nil && review:
		return nil, httperr.ErrValidation("ambiguous_payment_update")

	case p.ProofURL != nil:
		if !validators.IsProofURL(*p.ProofURL) {
			return nil, httperr.ErrValidation("invalid_proof_url")
		}
		return AttachProofCommand{ProofURL: *p.ProofURL}, nil

	case review:
		cmd := ReviewCommand{Notes: p.Notes}
		if p.Status != nil {
			st, err := ParseStatus(*p.Status)
			if err != nil {
				return nil, err
			}
			if st == StatusPendingVerification {
				return nil, httperr.ErrValidation("invalid_payment_status")
			}
			cmd.Status = &st
		}
		return cmd, nil
	}

	return nil, httperr.ErrValidation("empty_update")
}
