package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/garland3/congenial-disco/internal/model"
)

// QuestionGenService produces the next conversational question to ask
type QuestionGenService struct {
	llm Completer
}

// NewQuestionGenService creates a new question generator
func NewQuestionGenService(llm Completer) *QuestionGenService {
	return &QuestionGenService{llm: llm}
}

const questionSystemPrompt = "You are a skilled interviewer. Ask natural, engaging questions that gather specific information efficiently."

// fallbackQuestion is the generic question used when the backend fails
const fallbackQuestion = "Could you tell me more about your experience?"

// recentTurns bounds the transcript context in the prompt
const recentTurns = 6

// NextQuestion generates the next question from the conversation, the
// per-field scores, and the judge's suggestions. On failure it returns a
// fixed generic question; there is no field-targeted fallback.
func (s *QuestionGenService) NextQuestion(ctx context.Context, history []model.Turn, fields []model.Field, extracted map[string]any, scores map[string]int, suggestions string) string {
	prompt := s.buildQuestionPrompt(history, fields, scores, suggestions)

	response, err := s.llm.Complete(ctx, questionSystemPrompt, prompt, 0.7, 200)
	if err != nil || response == "" {
		return fallbackQuestion
	}
	return response
}

func (s *QuestionGenService) buildQuestionPrompt(history []model.Turn, fields []model.Field, scores map[string]int, suggestions string) string {
	recent := history
	if len(recent) > recentTurns {
		recent = recent[len(recent)-recentTurns:]
	}

	var schemaDescription strings.Builder
	for _, f := range fields {
		schemaDescription.WriteString(fmt.Sprintf("- %s: %s (score: %d/10)\n", f.Name, f.Prompt, scores[f.Name]))
	}

	return fmt.Sprintf(`You are conducting an interview. Based on the conversation and current data quality, ask the next most appropriate question.

Interview fields and current scores:
%s
Areas needing improvement: %s

Recent conversation:
%s

Generate a natural, conversational question that will help gather the most needed information.
Be specific and engaging. Don't ask about fields that are already well-covered (score >= 7).
Return only the question text, no additional formatting.`, schemaDescription.String(), suggestions, flattenConversation(recent))
}
