package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
)

// SubscriptionWriteRepository handles subscription write operations
type SubscriptionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSubscriptionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SubscriptionWriteRepository {
	return &SubscriptionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a subscription for a user. The course linkage is left NULL:
// nothing in the payment callback carries a course reference.
func (r *SubscriptionWriteRepository) Save(ctx context.Context, userID int64, amount float64) (*models.SubscriptionDB, error) {
	const query = `
		INSERT INTO subscriptions (user_id, amount, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, user_id, course_id, amount, created_at
	`
	args := []any{userID, amount}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var saved models.SubscriptionDB
	err := sqlx.GetContext(ctx, executor, &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", saved.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}
