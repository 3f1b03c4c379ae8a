package models

import "encoding/json"

// descriptionMaxLength is the display limit applied when serializing a course.
const descriptionMaxLength = 200

// CourseDB represents a course row in the database.
// TechStack and WhatYouWillLearn are stored as JSON-encoded string arrays.
type CourseDB struct {
	ID                   int64  `json:"id" db:"id"`                                       // Primary key
	Title                string `json:"title" db:"title"`                                 // Course title
	Description          string `json:"description" db:"description"`                     // Full description
	Image                string `json:"image" db:"image"`                                 // Image URL
	Video                string `json:"video" db:"video"`                                 // Video URL
	TechStack            string `json:"tech_stack" db:"tech_stack"`                       // JSON array of technologies
	WhatYouWillLearn     string `json:"what_you_will_learn" db:"what_you_will_learn"`     // JSON array of learning outcomes
	IsActive             bool   `json:"is_active" db:"is_active"`                         // False for archived courses
	RequiresSubscription bool   `json:"requires_subscription" db:"requires_subscription"` // True for pro courses
}

// CourseView is the API representation of a course
// swagger:model CourseView
type CourseView struct {
	// Course ID
	// example: 1
	ID int64 `json:"id"`

	// Title
	// example: Introduction to Python
	Title string `json:"title"`

	// Description, truncated to 200 characters
	Description string `json:"description"`

	// Image URL
	Image string `json:"image"`

	// Video URL
	Video string `json:"video"`

	// Ordered list of technologies covered
	TechStack []string `json:"techStack"`

	// Ordered list of learning outcomes
	WhatYouWillLearn []string `json:"whatYouWillLearn"`

	// Active flag
	IsActive bool `json:"is_active"`

	// Subscription-gated flag
	RequiresSubscription bool `json:"requires_subscription"`
}

// AsView converts a database row into its API representation,
// decoding the JSON columns and truncating the description for display.
func (c CourseDB) AsView() CourseView {
	// truncation counts characters, not bytes, so multi-byte runes stay intact
	desc := c.Description
	if runes := []rune(desc); len(runes) > descriptionMaxLength {
		desc = string(runes[:descriptionMaxLength]) + "..."
	}

	return CourseView{
		ID:                   c.ID,
		Title:                c.Title,
		Description:          desc,
		Image:                c.Image,
		Video:                c.Video,
		TechStack:            decodeStringList(c.TechStack),
		WhatYouWillLearn:     decodeStringList(c.WhatYouWillLearn),
		IsActive:             c.IsActive,
		RequiresSubscription: c.RequiresSubscription,
	}
}

// decodeStringList decodes a JSON-encoded string array column.
// Malformed or empty columns yield an empty list rather than an error.
func decodeStringList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []string{}
	}
	return out
}

// EncodeStringList encodes an ordered string list for storage in a JSON text column.
func EncodeStringList(items []string) string {
	if items == nil {
		items = []string{}
	}
	data, _ := json.Marshal(items)
	return string(data)
}
