package model

// ChatRequest is the body of one chat turn from the user
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the assistant's reply for one chat turn
type ChatResponse struct {
	Response             string         `json:"response"`
	IsComplete           bool           `json:"isComplete"`
	AwaitingConfirmation bool           `json:"awaitingConfirmation"`
	ExtractedData        map[string]any `json:"extractedData,omitempty"`
	FieldScores          map[string]int `json:"fieldScores,omitempty"`
	SessionData          map[string]any `json:"sessionData,omitempty"`
}

// SessionStatus summarizes interview progress for pollers
type SessionStatus struct {
	SessionID          string `json:"sessionId"`
	CurrentQuestion    int    `json:"currentQuestion"`
	TotalQuestions     int    `json:"totalQuestions"`
	IsCompleted        bool   `json:"isCompleted"`
	ProgressPercentage int    `json:"progressPercentage"`
}
