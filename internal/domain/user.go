package domain

import "time"

// User is the domain model for account holders. A user with the Provider
// flag set offers bookable services and can receive appointments.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Provider     bool
	AvatarID     *int64
	Avatar       *File
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
