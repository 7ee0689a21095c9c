package models

import (
	"time"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64     `json:"user_id" db:"user_id"`       // Primary key, assigned on insert
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // Hashed password, never returned
	Age          int       `json:"age" db:"age"`               // User age in years
	Gender       string    `json:"gender" db:"gender"`         // Open string category, not an enum
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
