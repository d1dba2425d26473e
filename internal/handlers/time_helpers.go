package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// --------------------------------------------------
// Shop-local dates and times
// --------------------------------------------------

// parseStart accepts either an RFC 3339 instant or a shop-local date + "HH:MM".
func parseStart(loc *time.Location, startAt, date, hm string) (time.Time, error) {
	if s := strings.TrimSpace(startAt); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, httperr.ErrValidation("invalid_date")
		}
		return t, nil
	}

	if date == "" || hm == "" {
		return time.Time{}, httperr.ErrValidation("invalid_date")
	}
	t, err := timezone.ParseDateTime(strings.TrimSpace(date), strings.TrimSpace(hm), loc)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_date")
	}
	return t, nil
}

func parseDay(loc *time.Location, s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, httperr.ErrValidation("missing_date")
	}
	t, err := timezone.ParseDay(strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_date")
	}
	return t, nil
}

// --------------------------------------------------
// Path and query params
// --------------------------------------------------

func paramID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, httperr.ErrValidation("invalid_id")
	}
	return uint(id), nil
}

func queryUint(c *gin.Context, name string) (uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, httperr.ErrValidation("invalid_" + name)
	}
	return uint(v), nil
}

func queryBool(c *gin.Context, name string) bool {
	b, _ := strconv.ParseBool(c.Query(name))
	return b
}
