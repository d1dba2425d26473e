package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestParseHM(t *testing.T) {
	m, err := ParseHM("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	_, err = ParseHM("25:00")
	assert.Error(t, err)
}

func TestWindowOn(t *testing.T) {
	day := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	w, ok := WindowOn(&models.WorkingHours{
		Weekday: 1, OpenTime: "09:00", CloseTime: "18:00",
		LunchStart: "12:00", LunchEnd: "13:00", IsOpen: true,
	}, day)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), w.Open)
	assert.Equal(t, time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC), w.Close)

	assert.True(t, w.Covers(at(day, "09:00"), at(day, "09:30")))
	assert.True(t, w.Covers(at(day, "17:30"), at(day, "18:00")))
	assert.False(t, w.Covers(at(day, "17:45"), at(day, "18:15")))
	assert.False(t, w.Covers(at(day, "08:30"), at(day, "09:00")))
	assert.False(t, w.Covers(at(day, "11:45"), at(day, "12:15")))
	assert.True(t, w.Covers(at(day, "13:00"), at(day, "13:30")))

	_, ok = WindowOn(&models.WorkingHours{OpenTime: "09:00", CloseTime: "18:00", IsOpen: false}, day)
	assert.False(t, ok)

	_, ok = WindowOn(nil, day)
	assert.False(t, ok)
}

func TestValidateHours(t *testing.T) {
	tests := []struct {
		name string
		wh   models.WorkingHours
		code string
	}{
		{"closed day needs no times", models.WorkingHours{Weekday: 0}, ""},
		{"valid", models.WorkingHours{Weekday: 1, IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"}, ""},
		{"bad weekday", models.WorkingHours{Weekday: 7}, "invalid_weekday"},
		{"bad open", models.WorkingHours{Weekday: 1, IsOpen: true, OpenTime: "9", CloseTime: "18:00"}, "invalid_open_time"},
		{"inverted", models.WorkingHours{Weekday: 1, IsOpen: true, OpenTime: "18:00", CloseTime: "09:00"}, "close_before_open"},
		{"lunch outside", models.WorkingHours{Weekday: 1, IsOpen: true, OpenTime: "09:00", CloseTime: "18:00", LunchStart: "08:00", LunchEnd: "09:30"}, "invalid_lunch_break"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHours(tt.wh)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
		})
	}
}

func at(day time.Time, hm string) time.Time {
	m, _ := ParseHM(hm)
	return At(day, m)
}
