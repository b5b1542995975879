package model

import "time"

// AnswerKind defines the expected shape of a field's answer
type AnswerKind string

const (
	AnswerShortText AnswerKind = "short_text" // One-liner facts (names, titles)
	AnswerNarrative AnswerKind = "narrative"  // Free-form stories, needs detail
	AnswerYesNo     AnswerKind = "yes_no"     // Binary answer
)

// Field is one named slot the interview must fill
type Field struct {
	Name   string     `json:"name" bson:"name"`
	Prompt string     `json:"prompt" bson:"prompt"`
	Kind   AnswerKind `json:"kind" bson:"kind"`
}

// InterviewTemplate is a persistent field schema created by an admin
type InterviewTemplate struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Fields      []Field   `json:"fields" bson:"fields"`
	IsActive    bool      `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// FieldByName looks up a field definition in the template's schema
func (t *InterviewTemplate) FieldByName(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
