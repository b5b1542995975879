package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/garland3/congenial-disco/internal/model"
)

// ExtractorService derives structured field values from the conversation.
// Extraction is holistic: every call re-reads the whole transcript and
// returns a fresh snapshot, so repeated calls are idempotent.
type ExtractorService struct {
	llm Completer
}

// NewExtractorService creates a new extractor
func NewExtractorService(llm Completer) *ExtractorService {
	return &ExtractorService{llm: llm}
}

const extractSystemPrompt = "You are a data extraction assistant. Extract structured information from conversations and return only valid JSON."

// Extract returns a field -> value mapping from the conversation so far.
// On any backend or parse failure it returns an empty mapping; no retries.
func (s *ExtractorService) Extract(ctx context.Context, history []model.Turn, fields []model.Field) map[string]any {
	prompt := s.buildExtractionPrompt(history, fields)

	response, err := s.llm.Complete(ctx, extractSystemPrompt, prompt, 0.1, 1000)
	if err != nil {
		return map[string]any{}
	}

	var extracted map[string]any
	if err := json.Unmarshal([]byte(response), &extracted); err != nil {
		return map[string]any{}
	}
	if extracted == nil {
		return map[string]any{}
	}
	return extracted
}

func (s *ExtractorService) buildExtractionPrompt(history []model.Turn, fields []model.Field) string {
	return fmt.Sprintf(`Based on the following conversation, extract information for these fields:
%s
Conversation:
%s

Return a JSON object with the field names as keys and extracted information as values.
If information for a field is not available or unclear, use null.
Only return valid JSON.`, describeFields(fields), flattenConversation(history))
}

// describeFields renders the schema as one prompt line per field
func describeFields(fields []model.Field) string {
	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(fmt.Sprintf("- %s: %s (type: %s)\n", f.Name, f.Prompt, f.Kind))
	}
	return sb.String()
}

func flattenConversation(history []model.Turn) string {
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", turn.Sender, turn.Text))
	}
	return strings.Join(lines, "\n")
}
