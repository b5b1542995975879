package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/garland3/congenial-disco/internal/cache"
	"github.com/garland3/congenial-disco/internal/model"
	"github.com/garland3/congenial-disco/internal/repository"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrSessionNotFound  = errors.New("session not found")
)

// Reply vocabularies. Matching is substring over the lowercased, trimmed
// message, not whole-word: "Yes, that's right!" confirms, but so does any
// longer message that merely contains a phrase.
var (
	confirmPhrases = []string{"yes", "correct", "looks good", "that's right", "confirm", "approve"}
	rejectPhrases  = []string{"no", "incorrect", "wrong", "not right", "reject", "change"}
	readyPhrases   = []string{"ready", "ok", "yes", "start", "lets start", "let's start", "ok. lets start", "begin"}
)

// Fixed assistant replies for the non-generated branches
const (
	completedMsg = "This interview has already been completed."
	confirmedMsg = "Perfect! Thank you for confirming. Your interview is now complete."
	continueMsg  = "I understand. Let's continue our conversation to gather more accurate information. What would you like to clarify or add?"
	openingMsg   = "Great! I'll be conducting this interview with you. Let's have a natural conversation, and I'll gather the information we need. Tell me, what brings you here today?"
	welcomeMsg   = "Hello! Welcome to your interview session. I will ask you questions through a natural conversation. Let me know when you're ready to begin!"
)

// InterviewService drives the interview progression state machine: one
// user message in, one assistant reply out, one session mutation persisted.
type InterviewService struct {
	templateRepo  repository.TemplateRepo
	sessionRepo   repository.SessionRepo
	sessionCache  cache.SessionCache
	templateCache cache.TemplateCache
	extractor     *ExtractorService
	judge         *JudgeService
	questionGen   *QuestionGenService
	broadcaster   Broadcaster
}

// NewInterviewService creates a new interview service
func NewInterviewService(
	templateRepo repository.TemplateRepo,
	sessionRepo repository.SessionRepo,
	sessionCache cache.SessionCache,
	templateCache cache.TemplateCache,
	extractor *ExtractorService,
	judge *JudgeService,
	questionGen *QuestionGenService,
) *InterviewService {
	return &InterviewService{
		templateRepo:  templateRepo,
		sessionRepo:   sessionRepo,
		sessionCache:  sessionCache,
		templateCache: templateCache,
		extractor:     extractor,
		judge:         judge,
		questionGen:   questionGen,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket session events
func (s *InterviewService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start creates a fresh session bound to an active template
func (s *InterviewService) Start(ctx context.Context, templateID string) (*model.InterviewSession, error) {
	template, err := s.loadTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil || !template.IsActive {
		return nil, ErrTemplateNotFound
	}

	session := &model.InterviewSession{
		ID:            "s_" + uuid.New().String()[:8],
		TemplateID:    templateID,
		Conversation:  []model.Turn{},
		ExtractedData: map[string]any{},
		FieldScores:   map[string]int{},
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if err := s.sessionCache.Set(ctx, session); err != nil {
		log.Printf("session cache set failed for %s: %v", session.ID, err)
	}
	return session, nil
}

// GetSession returns a session by id
func (s *InterviewService) GetSession(ctx context.Context, sessionID string) (*model.InterviewSession, error) {
	return s.loadSession(ctx, sessionID)
}

// Chat processes one user message against a session. The session is read
// once, advanced through the state machine, and written back once; a
// failure mid-turn persists nothing.
func (s *InterviewService) Chat(ctx context.Context, sessionID, message string) (*model.ChatResponse, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Terminal sessions answer without mutating history, so nothing to persist
	if session.IsCompleted {
		return &model.ChatResponse{
			Response:    completedMsg,
			IsComplete:  true,
			SessionData: session.SessionData,
		}, nil
	}

	template, err := s.loadTemplate(ctx, session.TemplateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	resp := s.advance(ctx, session, template, message)

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	if err := s.sessionCache.Set(ctx, session); err != nil {
		log.Printf("session cache set failed for %s: %v", session.ID, err)
	}

	s.publishEvents(session.ID, resp)
	return resp, nil
}

// advance runs the progression branches in strict precedence order; exactly
// one fires per call. It mutates the session and never fails: backend
// failures are absorbed inside the extractor, judge, and generator.
func (s *InterviewService) advance(ctx context.Context, session *model.InterviewSession, template *model.InterviewTemplate, message string) *model.ChatResponse {
	session.Conversation = append(session.Conversation, model.Turn{
		Sender: model.SenderUser,
		Text:   message,
	})

	if session.AwaitingConfirmation {
		if matchesAny(message, confirmPhrases) {
			session.AwaitingConfirmation = false
			session.IsCompleted = true
			if session.ExtractedData != nil {
				session.SessionData = session.ExtractedData
			} else {
				session.SessionData = map[string]any{}
			}
			s.appendAssistant(session, confirmedMsg)
			return &model.ChatResponse{
				Response:    confirmedMsg,
				IsComplete:  true,
				SessionData: session.SessionData,
			}
		}
		if matchesAny(message, rejectPhrases) {
			session.AwaitingConfirmation = false
			s.appendAssistant(session, continueMsg)
			return &model.ChatResponse{
				Response:   continueMsg,
				IsComplete: false,
			}
		}
		// A reply matching neither vocabulary falls through to extraction
		// with the flag still set.
	}

	// First user turn: inspect readiness only, no extraction yet
	if len(session.Conversation) == 1 {
		reply := welcomeMsg
		if matchesAny(message, readyPhrases) {
			reply = openingMsg
		}
		s.appendAssistant(session, reply)
		return &model.ChatResponse{
			Response:   reply,
			IsComplete: false,
		}
	}

	// The just-appended message is excluded: extraction always runs over
	// the settled transcript, one turn behind the newest utterance.
	extracted := s.extractor.Extract(ctx, session.Conversation[:len(session.Conversation)-1], template.Fields)
	scores, overallComplete, suggestions := s.judge.Judge(ctx, extracted, template.Fields)

	session.ExtractedData = extracted
	session.FieldScores = scores

	if overallComplete {
		summary := buildConfirmationSummary(extracted, template.Fields)
		session.AwaitingConfirmation = true
		s.appendAssistant(session, summary)
		return &model.ChatResponse{
			Response:             summary,
			IsComplete:           false,
			AwaitingConfirmation: true,
			ExtractedData:        extracted,
			FieldScores:          scores,
		}
	}

	question := s.questionGen.NextQuestion(ctx, session.Conversation, template.Fields, extracted, scores, suggestions)
	s.appendAssistant(session, question)
	return &model.ChatResponse{
		Response:      question,
		IsComplete:    false,
		ExtractedData: extracted,
		FieldScores:   scores,
	}
}

// Status reports progress for pollers. CurrentQuestionIndex is a vestigial
// counter the chat flow does not advance; completion is signaled by
// IsCompleted, not by the percentage.
func (s *InterviewService) Status(ctx context.Context, sessionID string) (*model.SessionStatus, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	template, err := s.loadTemplate(ctx, session.TemplateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	total := len(template.Fields)
	progress := 0
	if total > 0 {
		progress = int(math.Round(float64(session.CurrentQuestionIndex) / float64(total) * 100))
	}

	return &model.SessionStatus{
		SessionID:          session.ID,
		CurrentQuestion:    session.CurrentQuestionIndex + 1,
		TotalQuestions:     total,
		IsCompleted:        session.IsCompleted,
		ProgressPercentage: progress,
	}, nil
}

func (s *InterviewService) appendAssistant(session *model.InterviewSession, text string) {
	session.Conversation = append(session.Conversation, model.Turn{
		Sender: model.SenderAssistant,
		Text:   text,
	})
}

func (s *InterviewService) loadSession(ctx context.Context, sessionID string) (*model.InterviewSession, error) {
	cached, err := s.sessionCache.Get(ctx, sessionID)
	if err != nil {
		log.Printf("session cache get failed for %s: %v", sessionID, err)
	}
	if cached != nil {
		return cached, nil
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *InterviewService) loadTemplate(ctx context.Context, templateID string) (*model.InterviewTemplate, error) {
	cached, err := s.templateCache.Get(ctx, templateID)
	if err != nil {
		log.Printf("template cache get failed for %s: %v", templateID, err)
	}
	if cached != nil {
		return cached, nil
	}

	template, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	if template != nil {
		if err := s.templateCache.Set(ctx, template); err != nil {
			log.Printf("template cache set failed for %s: %v", templateID, err)
		}
	}
	return template, nil
}

func (s *InterviewService) publishEvents(sessionID string, resp *model.ChatResponse) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.BroadcastToSession(sessionID, "assistant_message", map[string]any{
		"text": resp.Response,
	})
	if resp.AwaitingConfirmation {
		s.broadcaster.BroadcastToSession(sessionID, "confirmation_requested", resp.ExtractedData)
	}
	if resp.IsComplete {
		s.broadcaster.BroadcastToSession(sessionID, "session_completed", resp.SessionData)
	}
}

// matchesAny reports whether any phrase occurs in the lowercased, trimmed
// message. Substring match, not whole-word: "norway" matches "no".
func matchesAny(message string, phrases []string) bool {
	normalized := strings.ToLower(strings.TrimSpace(message))
	for _, phrase := range phrases {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}

// buildConfirmationSummary itemizes each non-empty extracted field with a
// humanized title and closes by asking the user to confirm or correct.
func buildConfirmationSummary(extracted map[string]any, fields []model.Field) string {
	var sb strings.Builder
	sb.WriteString("Thank you for sharing all that information! Let me summarize what I've gathered:\n\n")
	for _, f := range fields {
		if value, ok := extracted[f.Name]; ok && hasValue(value) {
			sb.WriteString(fmt.Sprintf("• **%s**: %v\n", humanizeFieldName(f.Name), value))
		}
	}
	sb.WriteString("\nDoes this look accurate? Please confirm if this is correct, or let me know what needs to be changed.")
	return sb.String()
}

// humanizeFieldName turns "issue_description" into "Issue Description"
func humanizeFieldName(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
