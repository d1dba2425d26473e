package appointment

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventCreated   = "appointment.created"
	EventCompleted = "appointment.completed"
)

// Created is published inside the booking transaction.
type Created struct {
	AppointmentID uint
	UserID        uint
	Amount        decimal.Decimal
	At            time.Time
}

func (Created) Name() string { return EventCreated }

// Completed is published at most once per appointment, inside the
// transaction that moves it to COMPLETED.
type Completed struct {
	AppointmentID uint
	UserID        uint
	Amount        decimal.Decimal
	At            time.Time
}

func (Completed) Name() string { return EventCompleted }
