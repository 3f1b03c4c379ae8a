package models

import (
	"database/sql"
	"time"
)

// Payment lifecycle statuses. The only transitions are
// pending -> initiated -> completed|failed, and pending -> failed
// when the gateway rejects the push request.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusInitiated = "initiated"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// PaymentDB represents a payment row in the database
type PaymentDB struct {
	ID            int64          `json:"id" db:"id"`                         // Primary key
	UserID        int64          `json:"user_id" db:"user_id"`               // Owning user
	Amount        float64        `json:"amount" db:"amount"`                 // Amount charged
	PhoneNumber   string         `json:"phone_number" db:"phone_number"`     // Phone number prompted for payment
	TransactionID sql.NullString `json:"-" db:"transaction_id"`              // Gateway correlation id, set once initiated
	Status        string         `json:"status" db:"status"`                 // Lifecycle status
	ResultDesc    sql.NullString `json:"-" db:"result_desc"`                 // Gateway result description
	ReceiptNumber sql.NullString `json:"-" db:"mpesa_receipt_number"`        // Gateway receipt, set on completion
	Timestamp     sql.NullTime   `json:"-" db:"timestamp"`                   // Gateway-reported transaction time
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`         // Creation timestamp
}

// PaymentEvent is published to Kafka on every payment status transition.
type PaymentEvent struct {
	PaymentID     int64   `json:"payment_id"`     // PaymentID identifies the payment row the event belongs to.
	UserID        int64   `json:"user_id"`        // UserID is the owner of the payment.
	Amount        float64 `json:"amount"`         // Amount is the monetary value of the payment.
	Status        string  `json:"status"`         // Status is the lifecycle status after the transition.
	TransactionID string  `json:"transaction_id"` // TransactionID is the gateway correlation id, if assigned.
	Timestamp     int64   `json:"timestamp"`      // Timestamp is the Unix timestamp (in seconds) of the transition.
}
