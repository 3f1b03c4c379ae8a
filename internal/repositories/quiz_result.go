package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
)

// QuizResultWriteRepository handles quiz result write operations
type QuizResultWriteRepository struct {
	db *sqlx.DB
}

func NewQuizResultWriteRepository(db *sqlx.DB) *QuizResultWriteRepository {
	return &QuizResultWriteRepository{db: db}
}

// Save inserts a quiz result tagged with the given timestamp.
// The user id is recorded as-is, without a foreign key check.
func (r *QuizResultWriteRepository) Save(ctx context.Context, result models.QuizResultDB, takenAt time.Time) (*models.QuizResultDB, error) {
	const query = `
		INSERT INTO quiz_results (user_id, category, score, total_questions, answers, date_taken)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, category, score, total_questions, answers, date_taken
	`
	args := []any{result.UserID, result.Category, result.Score, result.TotalQuestions, result.Answers, takenAt}

	var saved models.QuizResultDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{result.UserID, result.Category, result.Score},
		"result", saved.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// QuizResultReadRepository handles quiz result read operations
type QuizResultReadRepository struct {
	db *sqlx.DB
}

func NewQuizResultReadRepository(db *sqlx.DB) *QuizResultReadRepository {
	return &QuizResultReadRepository{db: db}
}

// List returns every recorded quiz result ordered by id, unpaginated.
func (r *QuizResultReadRepository) List(ctx context.Context) ([]models.QuizResultDB, error) {
	const query = `
		SELECT id, user_id, category, score, total_questions, answers, date_taken
		FROM quiz_results
		ORDER BY id
	`

	var results []models.QuizResultDB
	err := r.db.SelectContext(ctx, &results, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(results),
		"error", err,
	)

	return results, err
}
