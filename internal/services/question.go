package services

import (
	"context"
	"errors"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
)

// Error variables
var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrMissingFields   = errors.New("missing required fields")
	ErrNoQuestions     = errors.New("no questions found for this category")
)

// QuestionReader defines read-only operations for questions.
type QuestionReader interface {
	ListByCategory(ctx context.Context, category string) ([]models.QuestionDB, error)
}

// QuestionWriter defines write operations for questions.
type QuestionWriter interface {
	Save(ctx context.Context, question models.QuestionDB) (*models.QuestionDB, error)
}

// QuestionService handles the quiz question bank.
type QuestionService struct {
	reader QuestionReader
	writer QuestionWriter
}

// NewQuestionService creates a new QuestionService instance.
func NewQuestionService(reader QuestionReader, writer QuestionWriter) *QuestionService {
	return &QuestionService{
		reader: reader,
		writer: writer,
	}
}

// CreateQuestion validates the category and fields, then persists a question.
// The category is stored in canonical lowercase form.
func (svc *QuestionService) CreateQuestion(ctx context.Context, category, questionText string, options []string, correctAnswer string) (*models.QuestionDB, error) {
	canonical, ok := models.NormalizeCategory(category)
	if !ok {
		logger.Log.Warnw("rejected question with unknown category", "category", category)
		return nil, ErrInvalidCategory
	}
	if questionText == "" || len(options) == 0 || correctAnswer == "" {
		return nil, ErrMissingFields
	}

	question := models.QuestionDB{
		QuestionText:  questionText,
		Category:      canonical,
		Options:       models.EncodeStringList(options),
		CorrectAnswer: correctAnswer,
	}

	saved, err := svc.writer.Save(ctx, question)
	if err != nil {
		logger.Log.Errorw("failed to save question", "category", canonical, "err", err)
		return nil, err
	}
	return saved, nil
}

// ListQuestionsByCategory returns all questions for a recognized category.
func (svc *QuestionService) ListQuestionsByCategory(ctx context.Context, category string) ([]models.QuestionDB, error) {
	canonical, ok := models.NormalizeCategory(category)
	if !ok {
		return nil, ErrInvalidCategory
	}

	questions, err := svc.reader.ListByCategory(ctx, canonical)
	if err != nil {
		logger.Log.Errorw("failed to list questions", "category", canonical, "err", err)
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}
