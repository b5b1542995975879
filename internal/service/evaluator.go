package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/garland3/congenial-disco/internal/model"
)

// EvaluatorService classifies a single answer as sufficient or not for
// the question that was asked. It is a standalone per-question primitive;
// the chat flow itself relies on whole-conversation extraction and
// judging instead.
type EvaluatorService struct {
	llm Completer
}

// NewEvaluatorService creates a new response evaluator
func NewEvaluatorService(llm Completer) *EvaluatorService {
	return &EvaluatorService{llm: llm}
}

const evaluatorSystemPrompt = "You are evaluating interview responses. Be fair and encouraging."

// Evaluate returns whether the answer adequately addresses the question,
// with a reason when it does not. On backend failure it falls back to a
// deterministic check: yes_no answers must be exactly "yes" or "no", and
// everything else must be at least 10 characters long.
func (s *EvaluatorService) Evaluate(ctx context.Context, question, answer string, kind model.AnswerKind) (bool, string) {
	prompt := fmt.Sprintf(`Evaluate if the following answer is sufficient for the question asked.

Question: %s
Answer: %s
Expected type: %s

Return "SUFFICIENT" if the answer adequately addresses the question, or "INSUFFICIENT: reason" if not.
Be helpful and encouraging. Only mark as insufficient if the answer is clearly inadequate.`, question, answer, kind)

	response, err := s.llm.Complete(ctx, evaluatorSystemPrompt, prompt, 0.3, 200)
	if err != nil {
		return s.fallbackEvaluate(answer, kind)
	}

	switch {
	case strings.HasPrefix(response, "SUFFICIENT"):
		return true, ""
	case strings.HasPrefix(response, "INSUFFICIENT"):
		reason := "Please provide more detail."
		if _, after, found := strings.Cut(response, ":"); found {
			reason = strings.TrimSpace(after)
		}
		return false, reason
	default:
		// Unrecognized verdicts count as sufficient rather than blocking the user
		return true, ""
	}
}

func (s *EvaluatorService) fallbackEvaluate(answer string, kind model.AnswerKind) (bool, string) {
	if kind == model.AnswerYesNo {
		normalized := strings.ToLower(strings.TrimSpace(answer))
		if normalized == "yes" || normalized == "no" {
			return true, ""
		}
		return false, "Please answer with 'yes' or 'no'."
	}
	if len(strings.TrimSpace(answer)) < 10 {
		return false, "Please provide a more detailed response."
	}
	return true, ""
}
