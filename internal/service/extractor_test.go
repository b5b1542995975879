package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garland3/congenial-disco/internal/model"
)

var extractorFields = []model.Field{
	{Name: "name", Prompt: "What is your name?", Kind: model.AnswerShortText},
	{Name: "experience", Prompt: "Tell me about your experience.", Kind: model.AnswerNarrative},
}

func TestExtractParsesBackendJSON(t *testing.T) {
	fc := &fakeCompleter{responses: []string{`{"name": "John Smith", "experience": null}`}}
	extractor := NewExtractorService(fc)

	history := []model.Turn{
		{Sender: model.SenderUser, Text: "ready"},
		{Sender: model.SenderAssistant, Text: "Tell me, what brings you here today?"},
		{Sender: model.SenderUser, Text: "I'm John Smith"},
	}

	extracted := extractor.Extract(context.Background(), history, extractorFields)

	assert.Equal(t, "John Smith", extracted["name"])
	assert.Nil(t, extracted["experience"])
}

func TestExtractPromptIncludesSchemaAndTranscript(t *testing.T) {
	fc := &fakeCompleter{responses: []string{`{}`}}
	extractor := NewExtractorService(fc)

	history := []model.Turn{
		{Sender: model.SenderUser, Text: "I'm John Smith"},
	}
	extractor.Extract(context.Background(), history, extractorFields)

	require.Len(t, fc.calls, 1)
	assert.Contains(t, fc.calls[0].user, "- name: What is your name? (type: short_text)")
	assert.Contains(t, fc.calls[0].user, "- experience: Tell me about your experience. (type: narrative)")
	assert.Contains(t, fc.calls[0].user, "user: I'm John Smith")
	assert.Equal(t, 0.1, fc.calls[0].temperature)
	assert.Equal(t, 1000, fc.calls[0].maxTokens)
}

func TestExtractBackendFailureYieldsEmptyMap(t *testing.T) {
	extractor := NewExtractorService(failingCompleter())

	extracted := extractor.Extract(context.Background(), []model.Turn{{Sender: model.SenderUser, Text: "hi"}}, extractorFields)

	require.NotNil(t, extracted)
	assert.Empty(t, extracted)
}

func TestExtractMalformedJSONYieldsEmptyMap(t *testing.T) {
	fc := &fakeCompleter{responses: []string{"I could not extract anything, sorry!"}}
	extractor := NewExtractorService(fc)

	extracted := extractor.Extract(context.Background(), []model.Turn{{Sender: model.SenderUser, Text: "hi"}}, extractorFields)

	require.NotNil(t, extracted)
	assert.Empty(t, extracted)
}
