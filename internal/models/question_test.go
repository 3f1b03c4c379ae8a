package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "css", want: "css", ok: true},
		{in: "CSS", want: "css", ok: true},
		{in: "  JavaScript ", want: "javascript", ok: true},
		{in: "Node.js", want: "node.js", ok: true},
		{in: "golang", want: "golang", ok: false},
		{in: "", want: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := NormalizeCategory(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
	}
}

func TestQuestionAsView(t *testing.T) {
	question := QuestionDB{
		ID:            1,
		QuestionText:  "What does CSS stand for?",
		Category:      "css",
		Options:       `["Cascading Style Sheets","Creative Style System"]`,
		CorrectAnswer: "Cascading Style Sheets",
	}

	view := question.AsView()
	assert.Equal(t, []string{"Cascading Style Sheets", "Creative Style System"}, view.Options)
	assert.Equal(t, "css", view.Category)
}
