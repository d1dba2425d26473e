package schedule

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ParseHM turns "HH:MM" into minutes after midnight.
func ParseHM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Window is one open day resolved to concrete instants.
type Window struct {
	Open  time.Time
	Close time.Time

	HasLunch   bool
	LunchStart time.Time
	LunchEnd   time.Time
}

// WindowOn resolves wh on the calendar day of day (in day's location).
// ok is false when the shop is closed or the hours are unusable.
func WindowOn(wh *models.WorkingHours, day time.Time) (Window, bool) {
	if wh == nil || !wh.IsOpen || wh.OpenTime == "" || wh.CloseTime == "" {
		return Window{}, false
	}

	open, err := ParseHM(wh.OpenTime)
	if err != nil {
		return Window{}, false
	}
	closing, err := ParseHM(wh.CloseTime)
	if err != nil || closing <= open {
		return Window{}, false
	}

	w := Window{
		Open:  At(day, open),
		Close: At(day, closing),
	}

	if wh.LunchStart != "" && wh.LunchEnd != "" {
		ls, err1 := ParseHM(wh.LunchStart)
		le, err2 := ParseHM(wh.LunchEnd)
		if err1 == nil && err2 == nil && le > ls {
			w.HasLunch = true
			w.LunchStart = At(day, ls)
			w.LunchEnd = At(day, le)
		}
	}

	return w, true
}

// At returns the instant minutes after local midnight of day.
func At(day time.Time, minutes int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, minutes, 0, 0, day.Location())
}

// Covers reports whether [start, end) fits inside the window and does not
// touch the lunch break.
func (w Window) Covers(start, end time.Time) bool {
	if start.Before(w.Open) || end.After(w.Close) {
		return false
	}
	if w.HasLunch && start.Before(w.LunchEnd) && w.LunchStart.Before(end) {
		return false
	}
	return true
}

// ValidateHours checks one weekday definition before it is stored.
func ValidateHours(wh models.WorkingHours) error {
	if wh.Weekday < 0 || wh.Weekday > 6 {
		return httperr.ErrValidation("invalid_weekday")
	}
	if !wh.IsOpen {
		return nil
	}

	open, err := ParseHM(wh.OpenTime)
	if err != nil {
		return httperr.ErrValidation("invalid_open_time")
	}
	closing, err := ParseHM(wh.CloseTime)
	if err != nil {
		return httperr.ErrValidation("invalid_close_time")
	}
	if closing <= open {
		return httperr.ErrValidation("close_before_open")
	}

	if wh.LunchStart == "" && wh.LunchEnd == "" {
		return nil
	}
	ls, err1 := ParseHM(wh.LunchStart)
	le, err2 := ParseHM(wh.LunchEnd)
	if err1 != nil || err2 != nil || le <= ls || ls < open || le > closing {
		return httperr.ErrValidation("invalid_lunch_break")
	}
	return nil
}
