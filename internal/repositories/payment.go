package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
)

// PaymentWriteRepository handles payment write operations
type PaymentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPaymentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PaymentWriteRepository {
	return &PaymentWriteRepository{db: db, txGetter: txGetter}
}

func (r *PaymentWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a payment in pending status and returns the stored row.
func (r *PaymentWriteRepository) Save(ctx context.Context, userID int64, amount float64, phoneNumber string) (*models.PaymentDB, error) {
	const query = `
		INSERT INTO payments (user_id, amount, phone_number, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, amount, phone_number, transaction_id, status,
		          result_desc, mpesa_receipt_number, timestamp, created_at
	`
	args := []any{userID, amount, phoneNumber, models.PaymentStatusPending}

	var saved models.PaymentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, amount, phoneNumber},
		"result", saved.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// MarkInitiated stores the gateway correlation id and moves the payment to initiated.
func (r *PaymentWriteRepository) MarkInitiated(ctx context.Context, paymentID int64, transactionID string) error {
	const query = `
		UPDATE payments
		SET transaction_id = $2, status = $3
		WHERE id = $1
	`
	args := []any{paymentID, transactionID, models.PaymentStatusInitiated}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MarkFailed moves the payment to failed, recording the gateway's result description.
func (r *PaymentWriteRepository) MarkFailed(ctx context.Context, paymentID int64, resultDesc string) error {
	const query = `
		UPDATE payments
		SET status = $2, result_desc = $3
		WHERE id = $1
	`
	args := []any{paymentID, models.PaymentStatusFailed, resultDesc}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MarkCompleted moves the payment to completed with the gateway receipt and timestamp.
func (r *PaymentWriteRepository) MarkCompleted(ctx context.Context, paymentID int64, receiptNumber, resultDesc string, transactionTime time.Time) error {
	const query = `
		UPDATE payments
		SET status = $2, mpesa_receipt_number = $3, result_desc = $4, timestamp = $5
		WHERE id = $1
	`
	args := []any{paymentID, models.PaymentStatusCompleted, receiptNumber, resultDesc, transactionTime}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{paymentID, receiptNumber},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// PaymentReadRepository handles payment read operations
type PaymentReadRepository struct {
	db *sqlx.DB
}

func NewPaymentReadRepository(db *sqlx.DB) *PaymentReadRepository {
	return &PaymentReadRepository{db: db}
}

// GetByTransactionID locates a payment by its gateway correlation id,
// or nil if none matches.
func (r *PaymentReadRepository) GetByTransactionID(ctx context.Context, transactionID string) (*models.PaymentDB, error) {
	const query = `
		SELECT id, user_id, amount, phone_number, transaction_id, status,
		       result_desc, mpesa_receipt_number, timestamp, created_at
		FROM payments
		WHERE transaction_id = $1
	`

	var payment models.PaymentDB
	err := r.db.GetContext(ctx, &payment, query, transactionID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// SumAmounts returns the sum of all payment amounts regardless of status.
func (r *PaymentReadRepository) SumAmounts(ctx context.Context) (float64, error) {
	const query = `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
	`

	var total float64
	err := r.db.GetContext(ctx, &total, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", total,
		"error", err,
	)

	return total, err
}
