package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	ServiceID uint     `gorm:"not null" json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service,omitempty"`

	// Date is the start instant. EndTime is Date + service duration, stored
	// so the overlap predicate and the exclusion constraint can use it.
	Date         time.Time  `gorm:"not null;index" json:"date"`
	EndTime      time.Time  `gorm:"not null" json:"end_time"`
	OriginalDate *time.Time `json:"original_date"`

	Status string `gorm:"size:20;not null;default:'PENDING';index" json:"status"`

	Notes       string `gorm:"type:text" json:"notes"`
	BarberNotes string `gorm:"type:text" json:"barber_notes"`

	Payment *Payment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"payment,omitempty"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
