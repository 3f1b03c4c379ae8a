package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
)

// QuestionReadRepository handles question read operations
type QuestionReadRepository struct {
	db *sqlx.DB
}

func NewQuestionReadRepository(db *sqlx.DB) *QuestionReadRepository {
	return &QuestionReadRepository{db: db}
}

// ListByCategory returns all questions in a category ordered by id.
// The category is expected to already be in canonical lowercase form.
func (r *QuestionReadRepository) ListByCategory(ctx context.Context, category string) ([]models.QuestionDB, error) {
	const query = `
		SELECT id, question_text, category, options, correct_answer
		FROM questions
		WHERE category = $1
		ORDER BY id
	`

	var questions []models.QuestionDB
	err := r.db.SelectContext(ctx, &questions, query, category)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{category},
		"result", len(questions),
		"error", err,
	)

	return questions, err
}

// QuestionWriteRepository handles question write operations
type QuestionWriteRepository struct {
	db *sqlx.DB
}

func NewQuestionWriteRepository(db *sqlx.DB) *QuestionWriteRepository {
	return &QuestionWriteRepository{db: db}
}

// Save inserts a new question and returns the stored row.
func (r *QuestionWriteRepository) Save(ctx context.Context, question models.QuestionDB) (*models.QuestionDB, error) {
	const query = `
		INSERT INTO questions (question_text, category, options, correct_answer)
		VALUES ($1, $2, $3, $4)
		RETURNING id, question_text, category, options, correct_answer
	`
	args := []any{question.QuestionText, question.Category, question.Options, question.CorrectAnswer}

	var saved models.QuestionDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{question.Category},
		"result", saved.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}
