package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garland3/congenial-disco/internal/model"
)

var judgeFields = []model.Field{
	{Name: "name", Prompt: "What is your name?", Kind: model.AnswerShortText},
	{Name: "story", Prompt: "What happened?", Kind: model.AnswerNarrative},
}

func TestJudgeParsesBackendVerdict(t *testing.T) {
	fc := &fakeCompleter{responses: []string{
		`{"field_scores": {"name": 9, "story": 8}, "overall_complete": true, "suggestions": "none"}`,
	}}
	judge := NewJudgeService(fc)

	scores, complete, suggestions := judge.Judge(context.Background(), map[string]any{"name": "John"}, judgeFields)

	assert.Equal(t, map[string]int{"name": 9, "story": 8}, scores)
	assert.True(t, complete)
	assert.Equal(t, "none", suggestions)
}

func TestJudgeTrustsVerdictVerbatim(t *testing.T) {
	// Low scores but overall_complete=true: the verdict is the backend's
	// call and is not recomputed from the scores.
	fc := &fakeCompleter{responses: []string{
		`{"field_scores": {"name": 2, "story": 1}, "overall_complete": true, "suggestions": ""}`,
	}}
	judge := NewJudgeService(fc)

	_, complete, _ := judge.Judge(context.Background(), map[string]any{}, judgeFields)

	assert.True(t, complete)
}

func TestJudgeFallbackScoring(t *testing.T) {
	judge := NewJudgeService(failingCompleter())

	extracted := map[string]any{"name": "John", "story": nil}
	scores, complete, suggestions := judge.Judge(context.Background(), extracted, judgeFields)

	assert.Equal(t, map[string]int{"name": 5, "story": 0}, scores)
	assert.False(t, complete)
	assert.Equal(t, fallbackSuggestions, suggestions)
}

func TestJudgeNeverCompletesWhenBackendDown(t *testing.T) {
	judge := NewJudgeService(failingCompleter())

	// Even fully populated data must not conclude the interview via fallback
	extracted := map[string]any{"name": "John Smith", "story": "A long and detailed story."}
	_, complete, _ := judge.Judge(context.Background(), extracted, judgeFields)

	assert.False(t, complete)
}

func TestJudgeMalformedResponseFallsBack(t *testing.T) {
	fc := &fakeCompleter{responses: []string{"scores: fine I guess"}}
	judge := NewJudgeService(fc)

	scores, complete, _ := judge.Judge(context.Background(), map[string]any{"name": ""}, judgeFields)

	require.NotNil(t, scores)
	assert.Equal(t, 0, scores["name"]) // empty string counts as missing
	assert.False(t, complete)
}
