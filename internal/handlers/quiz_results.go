package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
)

// QuizResultRecorder defines the write side of quiz results.
type QuizResultRecorder interface {
	RecordResult(ctx context.Context, userID int64, category string, score, totalQuestions int, answers json.RawMessage) (*models.QuizResultDB, error)
}

// QuizResultLister defines the read side of quiz results.
type QuizResultLister interface {
	ListAllResults(ctx context.Context) ([]models.QuizResultDB, error)
}

// QuizResultRequest represents the JSON body for saving a quiz result
// swagger:model QuizResultRequest
type QuizResultRequest struct {
	// User ID
	// required: true
	// example: 1
	UserID int64 `json:"user_id"`

	// Category
	// required: true
	// example: javascript
	Category string `json:"category"`

	// Score
	// required: true
	// example: 7
	Score int `json:"score"`

	// Total questions
	// required: true
	// example: 10
	TotalQuestions int `json:"total_questions"`

	// Submitted answers
	Answers json.RawMessage `json:"answers"`
}

// QuizResultResponse represents a successful save response
// swagger:model QuizResultResponse
type QuizResultResponse struct {
	// Message
	// example: Quiz result saved successfully!
	Message string `json:"message"`
}

// QuizResultErrorResponse represents an error response for quiz results
// swagger:model QuizResultErrorResponse
type QuizResultErrorResponse struct {
	// Error message
	// example: Invalid request body
	Error string `json:"error"`
}

// NewSaveQuizResultHandler returns an HTTP handler that records a quiz result.
// @Summary Save a quiz result
// @Description Persists a quiz result tagged with the current timestamp. The user id is recorded as submitted.
// @Tags quiz
// @Accept json
// @Produce json
// @Param quizResultRequest body handlers.QuizResultRequest true "Quiz result"
// @Success 201 {object} handlers.QuizResultResponse "Result saved"
// @Failure 400 {object} handlers.QuizResultErrorResponse "Invalid request body"
// @Router /save-quiz-result [post]
func NewSaveQuizResultHandler(svc QuizResultRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuizResultRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(QuizResultErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if _, err := svc.RecordResult(r.Context(), req.UserID, req.Category, req.Score, req.TotalQuestions, req.Answers); err != nil {
			logger.Log.Errorw("failed to record quiz result", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(QuizResultErrorResponse{
				Error: "Failed to save quiz result",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(QuizResultResponse{
			Message: "Quiz result saved successfully!",
		})
	}
}

// NewListQuizResultsHandler returns an HTTP handler that lists every quiz result.
// @Summary List all quiz results
// @Description Returns every recorded quiz result, unfiltered and unpaginated
// @Tags quiz
// @Produce json
// @Success 200 {array} models.QuizResultView "Quiz results"
// @Failure 400 {object} handlers.QuizResultErrorResponse "Listing failed"
// @Router /get-all-quiz-results [get]
func NewListQuizResultsHandler(svc QuizResultLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := svc.ListAllResults(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list quiz results", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(QuizResultErrorResponse{
				Error: "Failed to fetch quiz results",
			})
			return
		}

		views := make([]models.QuizResultView, 0, len(results))
		for _, res := range results {
			views = append(views, res.AsView())
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(views)
	}
}
