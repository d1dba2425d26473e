package models

import "time"

type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// 0 = Sunday ... 6 = Saturday
	Weekday int `gorm:"not null;uniqueIndex" json:"weekday"`

	OpenTime   string `gorm:"size:5" json:"open_time"`
	CloseTime  string `gorm:"size:5" json:"close_time"`
	LunchStart string `gorm:"size:5" json:"lunch_start"`
	LunchEnd   string `gorm:"size:5" json:"lunch_end"`
	IsOpen     bool   `gorm:"not null;default:false" json:"is_open"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
