package timezone

import "time"

const DefaultTimezone = "America/Paramaribo"

const (
	DayLayout      = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
	ClockLayout    = "15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to the shop default.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// StartOfDay returns local midnight of t in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayBounds returns [midnight, next midnight) for the calendar day of t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// DayKey is the YYYY-MM-DD form used for blocked dates and lock keys.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, loc)
}

func ParseDateTime(day, hm string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, day+" "+hm, loc)
}
