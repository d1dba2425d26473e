package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const DefaultGranularityMinutes = 30

type AvailabilityInput struct {
	Date            time.Time
	DurationMinutes int
}

type Slot struct {
	Start     time.Time `json:"start"`
	Time      string    `json:"time"`
	Available bool      `json:"available"`
}

// SlotQuery is everything ComputeSlots needs, already loaded.
type SlotQuery struct {
	// Day is any instant on the requested calendar day, in the shop location.
	Day             time.Time
	DurationMinutes int
	GranularityMin  int

	Hours   *models.WorkingHours
	Blocked bool
	Booked  []models.Appointment

	Now time.Time
}

// ComputeSlots lists candidate start times for one day. A candidate exists
// when it fits entirely inside opening hours; it is available when it does
// not overlap a booking or the lunch break and starts after Now.
func ComputeSlots(q SlotQuery) []Slot {
	slots := []Slot{}

	if q.Blocked || q.DurationMinutes <= 0 {
		return slots
	}

	w, ok := schedule.WindowOn(q.Hours, q.Day)
	if !ok {
		return slots
	}

	step := q.GranularityMin
	if step <= 0 {
		step = DefaultGranularityMinutes
	}

	open := w.Open.Hour()*60 + w.Open.Minute()
	for m := open; ; m += step {
		start := schedule.At(q.Day, m)
		end := EndOf(start, q.DurationMinutes)
		if end.After(w.Close) {
			break
		}

		candidate := Interval{Start: start, End: end}
		available := start.After(q.Now) &&
			w.Covers(start, end) &&
			!HasConflict(candidate, q.Booked, 0)

		slots = append(slots, Slot{
			Start:     start,
			Time:      start.Format("15:04"),
			Available: available,
		})
	}

	return slots
}
