package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestValidate(t *testing.T) {
	ok := &models.Service{Name: "  Haircut ", DurationMin: 30, Price: decimal.NewFromInt(150)}
	assert.NoError(t, Validate(ok))
	assert.Equal(t, "Haircut", ok.Name)

	assert.True(t, httperr.IsBusiness(Validate(&models.Service{Name: " ", DurationMin: 30}), "invalid_name"))
	assert.True(t, httperr.IsBusiness(Validate(&models.Service{Name: "x", DurationMin: 0}), "invalid_duration"))
	assert.True(t, httperr.IsBusiness(Validate(&models.Service{Name: "x", DurationMin: 30, Price: decimal.NewFromInt(-1)}), "invalid_price"))
}
