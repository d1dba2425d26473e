package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"not null;uniqueIndex" json:"appointment_id"`

	Amount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Method string          `gorm:"size:20;not null;default:'BANK_TRANSFER'" json:"method"`
	Status string          `gorm:"size:30;not null;default:'UNPAID';index" json:"status"`

	ProofURL         string `gorm:"size:500" json:"proof_url"`
	PaymentReference string `gorm:"size:40;not null;uniqueIndex" json:"payment_reference"`
	Notes            string `gorm:"type:text" json:"notes"`

	VerifiedAt *time.Time `json:"verified_at"`
	VerifiedBy *uint      `json:"verified_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
