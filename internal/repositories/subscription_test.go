package repositories

import (
	"context"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestSubscriptionWriteRepository_Save(t *testing.T) {
	db, teardown := setupPaymentPostgresContainer(t)
	defer teardown()

	repo := NewSubscriptionWriteRepository(db, nil)
	ctx := context.Background()

	saved, err := repo.Save(ctx, 1, 500)
	assert.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, int64(1), saved.UserID)
	assert.Equal(t, 500.0, saved.Amount)
	assert.False(t, saved.CourseID.Valid)
}

func TestSubscriptionWriteRepository_SaveInTransaction(t *testing.T) {
	db, teardown := setupPaymentPostgresContainer(t)
	defer teardown()

	ctx := context.Background()

	tx, err := db.Beginx()
	assert.NoError(t, err)

	repo := NewSubscriptionWriteRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })

	_, err = repo.Save(ctx, 1, 500)
	assert.NoError(t, err)

	assert.NoError(t, tx.Commit())

	var count int64
	err = db.Get(&count, "SELECT COUNT(*) FROM subscriptions")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
