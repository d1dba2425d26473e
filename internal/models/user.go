package models

import "time"

// User is a client or a staff member. Identity and credentials live in the
// auth provider; this row only carries what booking needs.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`
	Role  string `gorm:"size:20;not null;default:'CLIENT'" json:"role"`

	LoyaltyPoints int `gorm:"not null;default:0;check:loyalty_points >= 0" json:"loyalty_points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
