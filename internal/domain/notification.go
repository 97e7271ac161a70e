package domain

import "time"

// Notification is an in-app message delivered to a provider when one of
// their slots is booked. Write-mostly; the only mutation is marking it read.
type Notification struct {
	ID        string
	UserID    int64
	Content   string
	Read      bool
	CreatedAt time.Time
}
