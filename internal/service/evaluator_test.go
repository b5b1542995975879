package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/garland3/congenial-disco/internal/model"
)

func TestEvaluateSufficient(t *testing.T) {
	fc := &fakeCompleter{responses: []string{"SUFFICIENT"}}
	eval := NewEvaluatorService(fc)

	ok, reason := eval.Evaluate(context.Background(), "What happened?", "A detailed account of events.", model.AnswerNarrative)

	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestEvaluateInsufficientWithReason(t *testing.T) {
	fc := &fakeCompleter{responses: []string{"INSUFFICIENT: The answer lacks any specifics."}}
	eval := NewEvaluatorService(fc)

	ok, reason := eval.Evaluate(context.Background(), "What happened?", "stuff", model.AnswerNarrative)

	assert.False(t, ok)
	assert.Equal(t, "The answer lacks any specifics.", reason)
}

func TestEvaluateInsufficientWithoutReason(t *testing.T) {
	fc := &fakeCompleter{responses: []string{"INSUFFICIENT"}}
	eval := NewEvaluatorService(fc)

	ok, reason := eval.Evaluate(context.Background(), "What happened?", "stuff", model.AnswerNarrative)

	assert.False(t, ok)
	assert.Equal(t, "Please provide more detail.", reason)
}

func TestEvaluateUnrecognizedVerdictCountsAsSufficient(t *testing.T) {
	fc := &fakeCompleter{responses: []string{"Well, it depends."}}
	eval := NewEvaluatorService(fc)

	ok, _ := eval.Evaluate(context.Background(), "What happened?", "stuff", model.AnswerNarrative)

	assert.True(t, ok)
}

func TestEvaluateFallbackYesNo(t *testing.T) {
	eval := NewEvaluatorService(failingCompleter())

	ok, reason := eval.Evaluate(context.Background(), "Did it work?", "maybe", model.AnswerYesNo)
	assert.False(t, ok)
	assert.Contains(t, reason, "yes")
	assert.Contains(t, reason, "no")

	ok, reason = eval.Evaluate(context.Background(), "Did it work?", "  Yes ", model.AnswerYesNo)
	assert.True(t, ok)
	assert.Empty(t, reason)

	ok, _ = eval.Evaluate(context.Background(), "Did it work?", "no", model.AnswerYesNo)
	assert.True(t, ok)
}

func TestEvaluateFallbackLengthCheck(t *testing.T) {
	eval := NewEvaluatorService(failingCompleter())

	ok, reason := eval.Evaluate(context.Background(), "What happened?", "short", model.AnswerNarrative)
	assert.False(t, ok)
	assert.Equal(t, "Please provide a more detailed response.", reason)

	ok, _ = eval.Evaluate(context.Background(), "What happened?", "a response with plenty of detail", model.AnswerShortText)
	assert.True(t, ok)
}
