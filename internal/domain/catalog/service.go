package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const maxDurationMin = 8 * 60

func Validate(s *models.Service) error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return httperr.ErrValidation("invalid_name")
	}
	if s.DurationMin <= 0 || s.DurationMin > maxDurationMin {
		return httperr.ErrValidation("invalid_duration")
	}
	if s.Price.LessThan(decimal.Zero) {
		return httperr.ErrValidation("invalid_price")
	}
	return nil
}
