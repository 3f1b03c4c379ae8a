package models

import (
	"database/sql"
	"time"
)

// SubscriptionDB represents a subscription row in the database.
// CourseID is nullable: the payment callback carries no course reference,
// so the linkage is never populated by the current workflow.
type SubscriptionDB struct {
	ID        int64         `json:"id" db:"id"`                 // Primary key
	UserID    int64         `json:"user_id" db:"user_id"`       // Owning user
	CourseID  sql.NullInt64 `json:"-" db:"course_id"`           // Optional course linkage
	Amount    float64       `json:"amount" db:"amount"`         // Subscription amount
	CreatedAt time.Time     `json:"created_at" db:"created_at"` // Creation timestamp
}
