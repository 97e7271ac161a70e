package domain

import "time"

// Appointment is an hour-granularity booking between a user and a provider.
// Date is always truncated to the start of its hour. A nil CanceledAt means
// the appointment is active; for a given provider at most one active
// appointment may exist at a given date.
type Appointment struct {
	ID         int64
	UserID     int64
	ProviderID int64
	Date       time.Time
	CanceledAt *time.Time
	Provider   *User
	User       *User
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Canceled reports whether the appointment has been canceled.
func (a *Appointment) Canceled() bool {
	return a.CanceledAt != nil
}
