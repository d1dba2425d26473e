package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type GetAvailability struct {
	d Deps
}

func NewGetAvailability(d Deps) *GetAvailability {
	return &GetAvailability{d: d.withDefaults()}
}

// Execute lists the slots of one day. ServiceID, when set, takes the
// duration from the service.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
	serviceID uint,
) ([]domain.Slot, error) {

	if in.Date.IsZero() {
		return nil, httperr.ErrValidation("invalid_date")
	}

	if serviceID != 0 {
		svc, err := uc.d.Repo.GetService(ctx, serviceID)
		if err != nil {
			return nil, err
		}
		in.DurationMinutes = svc.DurationMin
	}
	if in.DurationMinutes <= 0 {
		return nil, httperr.ErrValidation("invalid_duration")
	}

	day := in.Date.In(uc.d.Location)

	blocked, err := uc.d.Schedule.IsDateBlocked(ctx, timezone.DayKey(day))
	if err != nil {
		return nil, err
	}
	if blocked {
		return []domain.Slot{}, nil
	}

	wh, err := uc.d.Schedule.GetWorkingHours(ctx, int(day.Weekday()))
	if err != nil {
		return nil, err
	}
	w, ok := schedule.WindowOn(wh, day)
	if !ok {
		return []domain.Slot{}, nil
	}

	booked, err := uc.d.Repo.ListActiveBetween(ctx, w.Open, w.Close)
	if err != nil {
		return nil, err
	}

	return domain.ComputeSlots(domain.SlotQuery{
		Day:             day,
		DurationMinutes: in.DurationMinutes,
		GranularityMin:  uc.d.GranularityMin,
		Hours:           wh,
		Booked:          booked,
		Now:             uc.d.Clock.Now(),
	}), nil
}
