package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garland3/congenial-disco/internal/model"
)

func TestNextQuestionReturnsBackendText(t *testing.T) {
	fc := &fakeCompleter{responses: []string{"What was the final outcome?"}}
	gen := NewQuestionGenService(fc)

	q := gen.NextQuestion(context.Background(), []model.Turn{{Sender: model.SenderUser, Text: "hi"}},
		judgeFields, map[string]any{}, map[string]int{"name": 3}, "ask about the name")

	assert.Equal(t, "What was the final outcome?", q)
	require.Len(t, fc.calls, 1)
	assert.Contains(t, fc.calls[0].user, "(score: 3/10)")
	assert.Contains(t, fc.calls[0].user, "ask about the name")
}

func TestNextQuestionFallbackOnFailure(t *testing.T) {
	gen := NewQuestionGenService(failingCompleter())

	q := gen.NextQuestion(context.Background(), nil, judgeFields, nil, nil, "")

	assert.Equal(t, "Could you tell me more about your experience?", q)
}

func TestNextQuestionUsesOnlyRecentTurns(t *testing.T) {
	fc := &fakeCompleter{responses: []string{"Next?"}}
	gen := NewQuestionGenService(fc)

	history := make([]model.Turn, 0, 10)
	for i := 0; i < 10; i++ {
		history = append(history, model.Turn{Sender: model.SenderUser, Text: fmt.Sprintf("turn-%d", i)})
	}
	gen.NextQuestion(context.Background(), history, judgeFields, nil, nil, "")

	require.Len(t, fc.calls, 1)
	assert.NotContains(t, fc.calls[0].user, "turn-3")
	assert.Contains(t, fc.calls[0].user, "turn-4")
	assert.Contains(t, fc.calls[0].user, "turn-9")
}
