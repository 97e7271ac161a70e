package dto

import "time"

// BookAppointmentRequest payload.
type BookAppointmentRequest struct {
	ProviderID int64     `json:"provider_id" validate:"required"`
	Date       time.Time `json:"date" validate:"required"`
}

// ProviderSummary is the provider embedded in appointment listings.
type ProviderSummary struct {
	ID     int64         `json:"id"`
	Name   string        `json:"name"`
	Avatar *FileResponse `json:"avatar,omitempty"`
}

// AppointmentResponse is the appointment shape returned to the booking user.
type AppointmentResponse struct {
	ID         int64            `json:"id"`
	Date       time.Time        `json:"date"`
	CanceledAt *time.Time       `json:"canceled_at"`
	Provider   *ProviderSummary `json:"provider,omitempty"`
}

// SlotResponse is one hour of a provider's availability.
type SlotResponse struct {
	Time      string    `json:"time"`
	Value     time.Time `json:"value"`
	Available bool      `json:"available"`
}

// ScheduleEntryResponse is one appointment in a provider's day schedule.
type ScheduleEntryResponse struct {
	ID   int64        `json:"id"`
	Date time.Time    `json:"date"`
	User UserResponse `json:"user"`
}

// NotificationResponse is an in-app notification.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
