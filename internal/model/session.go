package model

import "time"

// Sender identifies who produced a conversation turn
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Turn is one message in the conversation, tagged by sender.
// The conversation is append-only and is the sole memory of the interaction.
type Turn struct {
	Sender Sender `json:"sender" bson:"sender"`
	Text   string `json:"text" bson:"text"`
}

// InterviewSession holds the full mutable state of one interview,
// bound to one immutable template.
type InterviewSession struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	TemplateID string `json:"templateId" bson:"templateId"`

	Conversation         []Turn         `json:"conversation" bson:"conversation"`
	CurrentQuestionIndex int            `json:"currentQuestionIndex" bson:"currentQuestionIndex"`
	AwaitingConfirmation bool           `json:"awaitingConfirmation" bson:"awaitingConfirmation"`
	IsCompleted          bool           `json:"isCompleted" bson:"isCompleted"`
	ExtractedData        map[string]any `json:"extractedData" bson:"extractedData"`
	FieldScores          map[string]int `json:"fieldScores" bson:"fieldScores"`

	// SessionData is the finalized snapshot, populated only when the user
	// confirms the extracted data.
	SessionData map[string]any `json:"sessionData,omitempty" bson:"sessionData,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
