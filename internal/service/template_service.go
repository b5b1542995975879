package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/garland3/congenial-disco/internal/cache"
	"github.com/garland3/congenial-disco/internal/model"
	"github.com/garland3/congenial-disco/internal/repository"
)

// TemplateService handles template CRUD and schema generation
type TemplateService struct {
	templateRepo  repository.TemplateRepo
	templateCache cache.TemplateCache
	llm           Completer
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo repository.TemplateRepo, templateCache cache.TemplateCache, llm Completer) *TemplateService {
	return &TemplateService{
		templateRepo:  templateRepo,
		templateCache: templateCache,
		llm:           llm,
	}
}

// Create creates a new active template
func (s *TemplateService) Create(ctx context.Context, template *model.InterviewTemplate) error {
	template.ID = "t_" + uuid.New().String()[:8]
	template.IsActive = true
	return s.templateRepo.Create(ctx, template)
}

// GetByID retrieves a template by ID
func (s *TemplateService) GetByID(ctx context.Context, id string) (*model.InterviewTemplate, error) {
	return s.templateRepo.GetByID(ctx, id)
}

// ListActive retrieves all active templates
func (s *TemplateService) ListActive(ctx context.Context) ([]*model.InterviewTemplate, error) {
	return s.templateRepo.ListActive(ctx)
}

// Update replaces an existing template and invalidates its cache entry
func (s *TemplateService) Update(ctx context.Context, template *model.InterviewTemplate) error {
	existing, err := s.templateRepo.GetByID(ctx, template.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTemplateNotFound
	}

	template.IsActive = existing.IsActive
	template.CreatedAt = existing.CreatedAt
	if err := s.templateRepo.Update(ctx, template); err != nil {
		return err
	}
	if err := s.templateCache.Delete(ctx, template.ID); err != nil {
		log.Printf("template cache delete failed for %s: %v", template.ID, err)
	}
	return nil
}

// Deactivate soft-deletes a template
func (s *TemplateService) Deactivate(ctx context.Context, id string) error {
	existing, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTemplateNotFound
	}

	if err := s.templateRepo.Deactivate(ctx, id); err != nil {
		return err
	}
	if err := s.templateCache.Delete(ctx, id); err != nil {
		log.Printf("template cache delete failed for %s: %v", id, err)
	}
	return nil
}

const generateSystemPrompt = "You are a helpful assistant that generates structured interview questions. Always respond with valid JSON only."

// GenerateFromGoals builds a field schema from free-text interview goals
// and stores it as a new active template. On backend failure a keyword
// heuristic picks one of a few canned schemas.
func (s *TemplateService) GenerateFromGoals(ctx context.Context, goals string) (*model.InterviewTemplate, error) {
	fields := s.generateFields(ctx, goals)

	name := goals
	if len(name) > 50 {
		name = name[:50] + "..."
	}
	template := &model.InterviewTemplate{
		Name:        "Generated Template - " + name,
		Description: "Auto-generated template based on: " + goals,
		Fields:      fields,
	}
	if err := s.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to store generated template: %w", err)
	}
	return template, nil
}

func (s *TemplateService) generateFields(ctx context.Context, goals string) []model.Field {
	prompt := fmt.Sprintf(`Based on the following interview goals, generate interview questions.
Each question fills one named field and has a "prompt" (the question to ask) and a "kind"
(one of short_text, narrative, yes_no).

Goals: %s

Generate 3-5 relevant questions that would help gather information about these goals.
Return only a valid JSON array in this format:
[{"name": "field_name", "prompt": "Question text?", "kind": "short_text|narrative|yes_no"}]`, goals)

	response, err := s.llm.Complete(ctx, generateSystemPrompt, prompt, 0.7, 1000)
	if err != nil {
		return fallbackSchema(goals)
	}

	var fields []model.Field
	if err := json.Unmarshal([]byte(response), &fields); err != nil || len(fields) == 0 {
		return fallbackSchema(goals)
	}
	return fields
}

// fallbackSchema picks a canned schema by keyword when the backend is down
func fallbackSchema(goals string) []model.Field {
	words := strings.Fields(strings.ToLower(goals))
	has := func(candidates ...string) bool {
		for _, w := range words {
			for _, c := range candidates {
				if w == c {
					return true
				}
			}
		}
		return false
	}

	switch {
	case has("bug", "fix", "software", "error"):
		return []model.Field{
			{Name: "issue_description", Prompt: "Please describe the issue you encountered.", Kind: model.AnswerNarrative},
			{Name: "steps_taken", Prompt: "What steps did you take to resolve it?", Kind: model.AnswerNarrative},
			{Name: "outcome", Prompt: "What was the final outcome?", Kind: model.AnswerShortText},
		}
	case has("document", "guide", "process"):
		return []model.Field{
			{Name: "topic", Prompt: "What is the main topic you want to document?", Kind: model.AnswerShortText},
			{Name: "key_points", Prompt: "What are the key points to cover?", Kind: model.AnswerNarrative},
			{Name: "audience", Prompt: "Who is the intended audience?", Kind: model.AnswerShortText},
		}
	default:
		return []model.Field{
			{Name: "main_topic", Prompt: fmt.Sprintf("Can you tell me more about %s?", goals), Kind: model.AnswerNarrative},
			{Name: "key_details", Prompt: "What are the most important details?", Kind: model.AnswerNarrative},
		}
	}
}
