package models

import "time"

type BlockedDate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Day is the calendar day in the shop timezone, YYYY-MM-DD.
	Day    string `gorm:"size:10;not null;uniqueIndex" json:"day"`
	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
