package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type Service struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewService(repo domain.Repository, audit *audit.Dispatcher, loc *time.Location) *Service {
	return &Service{repo: repo, audit: audit, loc: loc}
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (s *Service) ListWorkingHours(ctx context.Context) ([]models.WorkingHours, error) {
	return s.repo.ListWorkingHours(ctx)
}

// SetWorkingHours upserts the given weekdays in one transaction. Weekdays
// not mentioned keep their current definition.
func (s *Service) SetWorkingHours(
	ctx context.Context,
	actor auth.Actor,
	days []models.WorkingHours,
) ([]models.WorkingHours, error) {

	if !actor.IsStaff() {
		return nil, httperr.ErrForbidden("staff_only")
	}
	if len(days) == 0 {
		return nil, httperr.ErrValidation("empty_update")
	}

	seen := map[int]bool{}
	for _, d := range days {
		if err := domain.ValidateHours(d); err != nil {
			return nil, err
		}
		if seen[d.Weekday] {
			return nil, httperr.ErrValidation("duplicate_weekday")
		}
		seen[d.Weekday] = true
	}

	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		for i := range days {
			if err := s.repo.UpsertWorkingHours(ctx, &days[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "working_hours_updated",
		Entity:   "working_hours",
		Metadata: days,
	})

	return s.repo.ListWorkingHours(ctx)
}

// --------------------------------------------------
// Blocked dates
// --------------------------------------------------

func (s *Service) ListBlockedDates(ctx context.Context) ([]models.BlockedDate, error) {
	return s.repo.ListBlockedDates(ctx)
}

// BlockDate closes a whole calendar day (YYYY-MM-DD in the shop timezone).
// Existing appointments on that day are left untouched.
func (s *Service) BlockDate(
	ctx context.Context,
	actor auth.Actor,
	day string,
	reason string,
) (*models.BlockedDate, error) {

	if !actor.IsStaff() {
		return nil, httperr.ErrForbidden("staff_only")
	}

	parsed, err := timezone.ParseDay(strings.TrimSpace(day), s.loc)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date")
	}

	bd := &models.BlockedDate{
		Day:    timezone.DayKey(parsed),
		Reason: strings.TrimSpace(reason),
	}
	if err := s.repo.CreateBlockedDate(ctx, bd); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "date_blocked",
		Entity:   "blocked_date",
		EntityID: &bd.ID,
		Metadata: map[string]string{"day": bd.Day, "reason": bd.Reason},
	})

	return bd, nil
}

func (s *Service) UnblockDate(ctx context.Context, actor auth.Actor, id uint) error {
	if !actor.IsStaff() {
		return httperr.ErrForbidden("staff_only")
	}

	if err := s.repo.DeleteBlockedDate(ctx, id); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "date_unblocked",
		Entity:   "blocked_date",
		EntityID: &id,
	})
	return nil
}
