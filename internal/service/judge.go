package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/garland3/congenial-disco/internal/model"
)

// JudgeService scores how completely each field has been filled and
// decides whether the interview is ready to conclude.
type JudgeService struct {
	llm Completer
}

// NewJudgeService creates a new completeness judge
func NewJudgeService(llm Completer) *JudgeService {
	return &JudgeService{llm: llm}
}

const judgeSystemPrompt = "You are an interview quality judge. Evaluate data completeness objectively and return only valid JSON."

// fallbackSuggestions is returned whenever the backend cannot judge
const fallbackSuggestions = "Unable to evaluate completeness. Please continue the conversation."

type judgment struct {
	FieldScores     map[string]int `json:"field_scores"`
	OverallComplete bool           `json:"overall_complete"`
	Suggestions     string         `json:"suggestions"`
}

// Judge rates each field 0-10 and returns the overall-complete verdict
// plus improvement suggestions. The verdict is the backend's own call and
// is trusted verbatim; it is never recomputed from the scores here.
//
// On failure the fallback scores 5 for fields with any extracted value and
// 0 otherwise, and the verdict is always false, so a dead backend can
// never conclude an interview.
func (s *JudgeService) Judge(ctx context.Context, extracted map[string]any, fields []model.Field) (map[string]int, bool, string) {
	prompt := s.buildJudgePrompt(extracted, fields)

	response, err := s.llm.Complete(ctx, judgeSystemPrompt, prompt, 0.1, 500)
	if err != nil {
		return s.fallbackScores(extracted, fields), false, fallbackSuggestions
	}

	var result judgment
	if err := json.Unmarshal([]byte(response), &result); err != nil {
		return s.fallbackScores(extracted, fields), false, fallbackSuggestions
	}

	if result.FieldScores == nil {
		result.FieldScores = map[string]int{}
	}
	return result.FieldScores, result.OverallComplete, result.Suggestions
}

func (s *JudgeService) buildJudgePrompt(extracted map[string]any, fields []model.Field) string {
	var extractedSummary strings.Builder
	for _, f := range fields {
		if value, ok := extracted[f.Name]; ok {
			extractedSummary.WriteString(fmt.Sprintf("- %s: %v\n", f.Name, value))
		}
	}

	return fmt.Sprintf(`Evaluate the completeness and quality of extracted data for an interview.

Required fields:
%s
Extracted data:
%s
For each field, rate the completeness on a scale of 0-10:
- 0-3: Missing or very insufficient
- 4-6: Partially filled but needs more detail
- 7-8: Good but could use minor improvements
- 9-10: Complete and detailed

Return a JSON object with:
- "field_scores": object with field names as keys and scores (0-10) as values
- "overall_complete": boolean indicating if interview is ready to conclude (all fields >= 7)
- "suggestions": string with specific suggestions for what information is still needed

Only return valid JSON.`, describeFields(fields), extractedSummary.String())
}

func (s *JudgeService) fallbackScores(extracted map[string]any, fields []model.Field) map[string]int {
	scores := make(map[string]int, len(fields))
	for _, f := range fields {
		if hasValue(extracted[f.Name]) {
			scores[f.Name] = 5
		} else {
			scores[f.Name] = 0
		}
	}
	return scores
}

// hasValue reports whether an extracted value is present and non-empty
func hasValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case float64:
		return val != 0
	default:
		return true
	}
}
