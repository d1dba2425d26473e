package dto

import "time"

type AppointmentListDTO struct {
	ID           uint       `json:"id"`
	Date         time.Time  `json:"date"`
	EndTime      time.Time  `json:"end_time"`
	OriginalDate *time.Time `json:"original_date,omitempty"`
	Status       string     `json:"status"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ServiceName string `json:"service_name"`

	PaymentStatus    string `json:"payment_status,omitempty"`
	PaymentReference string `json:"payment_reference,omitempty"`

	Notes       string `json:"notes"`
	BarberNotes string `json:"barber_notes"`
}
