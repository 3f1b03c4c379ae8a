package models

import "strings"

// Categories is the canonical set of question categories.
// Lookup is case-insensitive via NormalizeCategory.
var Categories = map[string]struct{}{
	"html":       {},
	"css":        {},
	"javascript": {},
	"react":      {},
	"redux":      {},
	"typescript": {},
	"node.js":    {},
	"express":    {},
	"mongodb":    {},
	"sql":        {},
	"python":     {},
	"django":     {},
	"flask":      {},
	"ruby":       {},
	"rails":      {},
	"php":        {},
	"laravel":    {},
	"java":       {},
	"spring":     {},
}

// NormalizeCategory lowercases a category name and reports whether
// it belongs to the canonical set.
func NormalizeCategory(category string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(category))
	_, ok := Categories[normalized]
	return normalized, ok
}

// QuestionDB represents a question row in the database.
// Options is stored as a JSON-encoded string array.
type QuestionDB struct {
	ID            int64  `json:"id" db:"id"`                         // Primary key
	QuestionText  string `json:"question_text" db:"question_text"`   // Question body
	Category      string `json:"category" db:"category"`             // Canonical lowercase category
	Options       string `json:"options" db:"options"`               // JSON array of answer options
	CorrectAnswer string `json:"correct_answer" db:"correct_answer"` // Correct answer text
}

// QuestionView is the API representation of a question
// swagger:model QuestionView
type QuestionView struct {
	// Question ID
	// example: 1
	ID int64 `json:"id"`

	// Question text
	// example: What does CSS stand for?
	QuestionText string `json:"questionText"`

	// Category
	// example: css
	Category string `json:"category"`

	// Ordered answer options
	Options []string `json:"options"`

	// Correct answer
	CorrectAnswer string `json:"correctAnswer"`
}

// AsView converts a database row into its API representation.
func (q QuestionDB) AsView() QuestionView {
	return QuestionView{
		ID:            q.ID,
		QuestionText:  q.QuestionText,
		Category:      q.Category,
		Options:       decodeStringList(q.Options),
		CorrectAnswer: q.CorrectAnswer,
	}
}
