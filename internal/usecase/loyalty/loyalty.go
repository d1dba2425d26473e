package loyalty

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/loyalty"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// AWARD ON COMPLETION
// ======================================================

// Awarder credits a fixed number of points per completed visit. It runs in
// the completing transaction, so the award commits or rolls back with it.
type Awarder struct {
	repo   domain.Repository
	points int
	log    *zap.Logger
}

func NewAwarder(repo domain.Repository, pointsPerVisit int, log *zap.Logger) *Awarder {
	return &Awarder{repo: repo, points: pointsPerVisit, log: log}
}

func (a *Awarder) Register(bus *events.Bus) {
	bus.Subscribe(appointment.EventCompleted, func(ctx context.Context, ev events.Event) error {
		e := ev.(appointment.Completed)
		if a.points == 0 {
			return nil
		}

		total, err := a.repo.AddPoints(ctx, e.UserID, a.points)
		if err != nil {
			return err
		}

		a.log.Debug("loyalty points awarded",
			zap.Uint("user_id", e.UserID),
			zap.Uint("appointment_id", e.AppointmentID),
			zap.Int("total", total),
		)
		return nil
	})
}

// ======================================================
// QUERIES / ADJUSTMENTS
// ======================================================

type Balance struct {
	UserID uint `json:"user_id"`
	Points int  `json:"points"`
}

type Service struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewService(repo domain.Repository, audit *audit.Dispatcher) *Service {
	return &Service{repo: repo, audit: audit}
}

// GetPoints lets a client read their own balance and staff read anyone's.
func (s *Service) GetPoints(ctx context.Context, actor auth.Actor, userID uint) (*Balance, error) {
	if !actor.CanAccess(userID) {
		return nil, httperr.ErrForbidden("not_owner")
	}

	points, err := s.repo.GetPoints(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Balance{UserID: userID, Points: points}, nil
}

// AdjustPoints applies a manual correction or redemption. The balance never
// goes below zero.
func (s *Service) AdjustPoints(
	ctx context.Context,
	actor auth.Actor,
	userID uint,
	delta int,
	reason string,
) (*Balance, error) {

	if !actor.IsStaff() {
		return nil, httperr.ErrForbidden("staff_only")
	}
	if delta == 0 {
		return nil, httperr.ErrValidation("invalid_delta")
	}

	points, err := s.repo.AddPoints(ctx, userID, delta)
	if err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "loyalty_adjusted",
		Entity:   "user",
		EntityID: &userID,
		Metadata: map[string]any{"delta": delta, "reason": reason, "total": points},
	})

	return &Balance{UserID: userID, Points: points}, nil
}

func (s *Service) ListClients(ctx context.Context, actor auth.Actor) ([]models.User, error) {
	if !actor.IsStaff() {
		return nil, httperr.ErrForbidden("staff_only")
	}
	return s.repo.ListClients(ctx)
}
