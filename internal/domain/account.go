package domain

import "time"

// Account represents a registered user account.
// PasswordHash is the bcrypt output and is never serialized to callers.
type Account struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
