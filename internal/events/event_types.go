package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAppointmentBooked   EventType = "appointment_booked"
	EventAppointmentCanceled EventType = "appointment_canceled"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID            string      `json:"id"`
	Type          EventType   `json:"type"`
	AppointmentID int64       `json:"appointment_id"`
	Timestamp     time.Time   `json:"timestamp"`
	Payload       interface{} `json:"payload"`
}

// AppointmentBookedPayload payload.
type AppointmentBookedPayload struct {
	UserID     int64     `json:"user_id"`
	UserName   string    `json:"user_name"`
	ProviderID int64     `json:"provider_id"`
	Date       time.Time `json:"date"`
}

// AppointmentCanceledPayload payload.
type AppointmentCanceledPayload struct {
	UserID        int64     `json:"user_id"`
	UserName      string    `json:"user_name"`
	ProviderID    int64     `json:"provider_id"`
	ProviderName  string    `json:"provider_name"`
	ProviderEmail string    `json:"provider_email"`
	Date          time.Time `json:"date"`
}
