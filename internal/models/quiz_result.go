package models

import (
	"encoding/json"
	"time"
)

// QuizResultDB represents a quiz result row in the database.
// UserID is not a foreign key: results survive independently of users.
type QuizResultDB struct {
	ID             int64     `json:"id" db:"id"`                           // Primary key
	UserID         int64     `json:"user_id" db:"user_id"`                 // Id of the user who took the quiz
	Category       string    `json:"category" db:"category"`               // Quiz category
	Score          int       `json:"score" db:"score"`                     // Number of correct answers
	TotalQuestions int       `json:"total_questions" db:"total_questions"` // Number of questions asked
	Answers        string    `json:"-" db:"answers"`                       // JSON-encoded submitted answers
	DateTaken      time.Time `json:"date_taken" db:"date_taken"`           // Timestamp the quiz was taken
}

// QuizResultView is the API representation of a quiz result
// swagger:model QuizResultView
type QuizResultView struct {
	// Result ID
	// example: 1
	ID int64 `json:"id"`

	// User ID
	// example: 1
	UserID int64 `json:"user_id"`

	// Category
	// example: javascript
	Category string `json:"category"`

	// Score
	// example: 7
	Score int `json:"score"`

	// Total questions
	// example: 10
	TotalQuestions int `json:"total_questions"`

	// Submitted answers
	Answers json.RawMessage `json:"answers"`

	// Timestamp the quiz was taken
	DateTaken time.Time `json:"date_taken"`
}

// AsView converts a database row into its API representation.
func (r QuizResultDB) AsView() QuizResultView {
	answers := json.RawMessage(r.Answers)
	if len(answers) == 0 || !json.Valid(answers) {
		answers = json.RawMessage("null")
	}

	return QuizResultView{
		ID:             r.ID,
		UserID:         r.UserID,
		Category:       r.Category,
		Score:          r.Score,
		TotalQuestions: r.TotalQuestions,
		Answers:        answers,
		DateTaken:      r.DateTaken,
	}
}
