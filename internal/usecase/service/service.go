package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/clock"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CreateInput struct {
	Name        string
	Description string
	DurationMin int
	Price       decimal.Decimal
}

type UpdateInput struct {
	Name        *string
	Description *string
	DurationMin *int
	Price       *decimal.Decimal
	Active      *bool
}

type Catalog struct {
	repo  catalog.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewCatalog(repo catalog.Repository, clk clock.Clock, audit *audit.Dispatcher) *Catalog {
	return &Catalog{repo: repo, clock: clk, audit: audit}
}

// List returns the bookable services. Staff may include inactive ones.
func (c *Catalog) List(ctx context.Context, includeInactive bool) ([]models.Service, error) {
	return c.repo.ListServices(ctx, !includeInactive)
}

func (c *Catalog) Create(ctx context.Context, actor auth.Actor, in CreateInput) (*models.Service, error) {
	if !actor.IsStaff() {
		return nil, httperr.ErrForbidden("staff_only")
	}

	s := &models.Service{
		Name:        in.Name,
		Description: in.Description,
		DurationMin: in.DurationMin,
		Price:       in.Price,
		Active:      true,
	}
	if err := catalog.Validate(s); err != nil {
		return nil, err
	}

	if err := c.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}

	c.dispatch(actor, "service_created", s, nil)
	return s, nil
}

// Update edits a service. Services are deactivated, never deleted, so past
// appointments keep their reference. A duration change re-times the
// service's upcoming bookings in the same transaction.
func (c *Catalog) Update(ctx context.Context, actor auth.Actor, id uint, in UpdateInput) (*models.Service, error) {
	if !actor.IsStaff() {
		return nil, httperr.ErrForbidden("staff_only")
	}

	var (
		out     *models.Service
		retimed int64
	)
	err := c.repo.WithinTx(ctx, func(ctx context.Context) error {
		s, err := c.repo.GetService(ctx, id)
		if err != nil {
			return err
		}
		prevDuration := s.DurationMin

		if in.Name != nil {
			s.Name = *in.Name
		}
		if in.Description != nil {
			s.Description = *in.Description
		}
		if in.DurationMin != nil {
			s.DurationMin = *in.DurationMin
		}
		if in.Price != nil {
			s.Price = *in.Price
		}
		if in.Active != nil {
			s.Active = *in.Active
		}

		if err := catalog.Validate(s); err != nil {
			return err
		}
		if err := c.repo.UpdateService(ctx, s); err != nil {
			return err
		}

		if s.DurationMin != prevDuration {
			retimed, err = c.repo.RetimeAppointments(ctx, s.ID, s.DurationMin, c.clock.Now())
			if err != nil {
				return err
			}
		}

		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.dispatch(actor, "service_updated", out, map[string]any{"retimed_appointments": retimed})
	return out, nil
}

func (c *Catalog) dispatch(actor auth.Actor, action string, s *models.Service, extra map[string]any) {
	meta := map[string]any{"name": s.Name, "active": s.Active, "duration_min": s.DurationMin}
	for k, v := range extra {
		meta[k] = v
	}
	c.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   action,
		Entity:   "service",
		EntityID: &s.ID,
		Metadata: meta,
	})
}
