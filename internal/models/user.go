package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
// Username is unique and case-sensitive; PasswordHash holds a bcrypt hash.
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
