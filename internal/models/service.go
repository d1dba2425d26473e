package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string          `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string          `gorm:"size:255" json:"description"`
	DurationMin int             `gorm:"not null" json:"duration_min"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	Active      bool            `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
