package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps treats touching intervals (a.End == b.Start) as disjoint.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

func IntervalOf(ap models.Appointment) Interval {
	return Interval{Start: ap.Date, End: ap.EndTime}
}

// HasConflict reports whether candidate overlaps any slot-occupying
// appointment other than excludeID (0 excludes nothing).
func HasConflict(candidate Interval, existing []models.Appointment, excludeID uint) bool {
	for _, ap := range existing {
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if !Status(ap.Status).Blocks() {
			continue
		}
		if candidate.Overlaps(IntervalOf(ap)) {
			return true
		}
	}
	return false
}
