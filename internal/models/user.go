package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Username  string    `json:"username" db:"username"`     // Unique username
	Email     string    `json:"email" db:"email"`           // Unique user email
	Password  string    `json:"-" db:"password"`            // Hashed password, never serialized
	Role      string    `json:"role" db:"role"`             // Access role, defaults to "user"
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
