package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestDayBounds(t *testing.T) {
	loc := Location(DefaultTimezone)
	ts := time.Date(2025, 3, 10, 14, 37, 0, 0, loc)

	from, to := DayBounds(ts)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, loc), to)
	assert.Equal(t, "2025-03-10", DayKey(ts))
}

func TestParseDateTime(t *testing.T) {
	loc := Location(DefaultTimezone)

	got, err := ParseDateTime("2025-03-10", "09:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 9, 30, 0, 0, loc), got)

	_, err = ParseDateTime("2025-03-10", "9h30", loc)
	assert.Error(t, err)
}
