package payment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/clock"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/payment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type UpdatePayment struct {
	repo    domain.Repository
	clock   clock.Clock
	audit   *audit.Dispatcher
	metrics *metrics.BookingMetrics
}

func NewUpdatePayment(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
	m *metrics.BookingMetrics,
) *UpdatePayment {
	return &UpdatePayment{
		repo:    repo,
		clock:   clk,
		audit:   audit,
		metrics: m,
	}
}

func (uc *UpdatePayment) Execute(
	ctx context.Context,
	actor auth.Actor,
	appointmentID uint,
	patch domain.Patch,
) (*models.Payment, error) {

	// --------------------------------------------------
	// 1. Request shape and permission
	// --------------------------------------------------
	cmd, err := domain.BuildCommand(patch)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(cmd, actor, ap.UserID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Apply in a transaction
	// --------------------------------------------------
	var (
		out    *models.Payment
		action string
	)

	err = uc.repo.WithinTx(ctx, func(ctx context.Context) error {
		p, err := uc.repo.GetPaymentByAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}
		if p == nil {
			return httperr.ErrNotFound("payment_not_found")
		}

		switch c := cmd.(type) {
		case domain.AttachProofCommand:
			if err := domain.AttachProof(p, c.ProofURL); err != nil {
				return err
			}
			action = "payment_proof_attached"

		case domain.ReviewCommand:
			action = "payment_notes_updated"
			if c.Status != nil {
				if err := domain.Review(p, *c.Status, actor.UserID, uc.clock.Now()); err != nil {
					return err
				}
				action = "payment_verified"
				if *c.Status == domain.StatusUnpaid {
					action = "payment_rejected"
				}
			}
			if c.Notes != nil {
				p.Notes = *c.Notes
			}
		}

		if err := uc.repo.UpdatePayment(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Side effects
	// --------------------------------------------------
	uc.metrics.ObservePaymentUpdate(action)
	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   action,
		Entity:   "payment",
		EntityID: &out.ID,
		Metadata: map[string]any{
			"appointment_id": appointmentID,
			"status":         out.Status,
		},
	})

	return out, nil
}

type GetPayment struct {
	repo domain.Repository
}

func NewGetPayment(repo domain.Repository) *GetPayment {
	return &GetPayment{repo: repo}
}

func (uc *GetPayment) Execute(
	ctx context.Context,
	actor auth.Actor,
	appointmentID uint,
) (*models.Payment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(ap.UserID) {
		return nil, httperr.ErrForbidden("not_owner")
	}
	if ap.Payment == nil {
		return nil, httperr.ErrNotFound("payment_not_found")
	}
	return ap.Payment, nil
}
