package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
	"github.com/imraac/LMS-backend/internal/services"
)

// QuestionCreator defines the write side of the question bank.
type QuestionCreator interface {
	CreateQuestion(ctx context.Context, category, questionText string, options []string, correctAnswer string) (*models.QuestionDB, error)
}

// QuestionLister defines the read side of the question bank.
type QuestionLister interface {
	ListQuestionsByCategory(ctx context.Context, category string) ([]models.QuestionDB, error)
}

// QuestionRequest represents the JSON body for question creation
// swagger:model QuestionRequest
type QuestionRequest struct {
	// Question text
	// required: true
	// example: What does CSS stand for?
	QuestionText string `json:"question_text"`

	// Ordered answer options
	// required: true
	Options []string `json:"options"`

	// Correct answer
	// required: true
	// example: Cascading Style Sheets
	CorrectAnswer string `json:"correct_answer"`
}

// QuestionResponse represents a successful question creation response
// swagger:model QuestionResponse
type QuestionResponse struct {
	// Created question
	Question models.QuestionView `json:"question"`

	// Message
	// example: Question created successfully
	Message string `json:"message"`
}

// QuestionsResponse represents a question listing response
// swagger:model QuestionsResponse
type QuestionsResponse struct {
	// Questions in the category
	Questions []models.QuestionView `json:"questions"`
}

// QuestionErrorResponse represents an error response for question endpoints
// swagger:model QuestionErrorResponse
type QuestionErrorResponse struct {
	// Error message
	// example: Invalid category
	Message string `json:"message"`
}

// NewCreateQuestionHandler returns an HTTP handler for question creation.
// @Summary Create a question
// @Description Creates a question in the category given by the path. The category must belong to the canonical set; matching is case-insensitive.
// @Tags questions
// @Accept json
// @Produce json
// @Param category path string true "Question category"
// @Param questionRequest body handlers.QuestionRequest true "Question creation request"
// @Success 201 {object} handlers.QuestionResponse "Question created"
// @Failure 400 {object} handlers.QuestionErrorResponse "Invalid category or missing fields"
// @Router /questions/{category} [post]
func NewCreateQuestionHandler(svc QuestionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := chi.URLParam(r, "category")

		var req QuestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(QuestionErrorResponse{
				Message: "Invalid JSON data",
			})
			return
		}

		question, err := svc.CreateQuestion(r.Context(), category, req.QuestionText, req.Options, req.CorrectAnswer)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCategory):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(QuestionErrorResponse{
					Message: "Invalid category",
				})
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(QuestionErrorResponse{
					Message: "Missing required fields",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(QuestionErrorResponse{
					Message: "An error occurred",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(QuestionResponse{
			Question: question.AsView(),
			Message:  "Question created successfully",
		})
	}
}

// NewListQuestionsHandler returns an HTTP handler that lists category questions.
// @Summary List questions by category
// @Tags questions
// @Produce json
// @Param category path string true "Question category"
// @Success 200 {object} handlers.QuestionsResponse "Questions"
// @Failure 400 {object} handlers.QuestionErrorResponse "Invalid category"
// @Failure 404 {object} handlers.QuestionErrorResponse "No questions in category"
// @Router /questions/{category} [get]
func NewListQuestionsHandler(svc QuestionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := chi.URLParam(r, "category")

		questions, err := svc.ListQuestionsByCategory(r.Context(), category)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCategory):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(QuestionErrorResponse{
					Message: "Invalid category",
				})
			case errors.Is(err, services.ErrNoQuestions):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(QuestionErrorResponse{
					Message: "No questions found for this category",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(QuestionErrorResponse{
					Message: "An error occurred",
				})
			}
			return
		}

		views := make([]models.QuestionView, 0, len(questions))
		for _, q := range questions {
			views = append(views, q.AsView())
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(QuestionsResponse{
			Questions: views,
		})
	}
}
