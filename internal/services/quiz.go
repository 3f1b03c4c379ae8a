package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
)

// QuizResultWriter defines write operations for quiz results.
type QuizResultWriter interface {
	Save(ctx context.Context, result models.QuizResultDB, takenAt time.Time) (*models.QuizResultDB, error)
}

// QuizResultReader defines read-only operations for quiz results.
type QuizResultReader interface {
	List(ctx context.Context) ([]models.QuizResultDB, error)
}

// QuizService records and lists quiz results.
type QuizService struct {
	writer QuizResultWriter
	reader QuizResultReader
	now    func() time.Time
}

// NewQuizService creates a new QuizService instance.
func NewQuizService(writer QuizResultWriter, reader QuizResultReader) *QuizService {
	return &QuizService{
		writer: writer,
		reader: reader,
		now:    time.Now,
	}
}

// RecordResult persists a quiz result tagged with the current timestamp.
// The user id and score are stored as submitted; results are accepted for
// ids that no longer resolve to a user.
func (svc *QuizService) RecordResult(ctx context.Context, userID int64, category string, score, totalQuestions int, answers json.RawMessage) (*models.QuizResultDB, error) {
	result := models.QuizResultDB{
		UserID:         userID,
		Category:       category,
		Score:          score,
		TotalQuestions: totalQuestions,
		Answers:        string(answers),
	}

	saved, err := svc.writer.Save(ctx, result, svc.now().UTC())
	if err != nil {
		logger.Log.Errorw("failed to save quiz result", "userID", userID, "category", category, "err", err)
		return nil, err
	}
	return saved, nil
}

// ListAllResults returns every recorded quiz result, unfiltered.
func (svc *QuizService) ListAllResults(ctx context.Context) ([]models.QuizResultDB, error) {
	results, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list quiz results", "err", err)
		return nil, err
	}
	return results, nil
}
