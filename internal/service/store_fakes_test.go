package service

import (
	"context"

	"github.com/garland3/congenial-disco/internal/model"
)

// In-memory repository and no-op cache fakes shared by the service tests.

type memTemplateRepo struct {
	templates map[string]*model.InterviewTemplate
}

func newMemTemplateRepo() *memTemplateRepo {
	return &memTemplateRepo{templates: map[string]*model.InterviewTemplate{}}
}

func (r *memTemplateRepo) Create(_ context.Context, t *model.InterviewTemplate) error {
	r.templates[t.ID] = t
	return nil
}

func (r *memTemplateRepo) GetByID(_ context.Context, id string) (*model.InterviewTemplate, error) {
	return r.templates[id], nil
}

func (r *memTemplateRepo) ListActive(_ context.Context) ([]*model.InterviewTemplate, error) {
	var active []*model.InterviewTemplate
	for _, t := range r.templates {
		if t.IsActive {
			active = append(active, t)
		}
	}
	return active, nil
}

func (r *memTemplateRepo) Update(_ context.Context, t *model.InterviewTemplate) error {
	r.templates[t.ID] = t
	return nil
}

func (r *memTemplateRepo) Deactivate(_ context.Context, id string) error {
	if t, ok := r.templates[id]; ok {
		t.IsActive = false
	}
	return nil
}

type memSessionRepo struct {
	sessions map[string]*model.InterviewSession
	updates  int
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[string]*model.InterviewSession{}}
}

func (r *memSessionRepo) Create(_ context.Context, s *model.InterviewSession) error {
	r.sessions[s.ID] = s
	return nil
}

func (r *memSessionRepo) GetByID(_ context.Context, id string) (*model.InterviewSession, error) {
	return r.sessions[id], nil
}

func (r *memSessionRepo) Update(_ context.Context, s *model.InterviewSession) error {
	r.sessions[s.ID] = s
	r.updates++
	return nil
}

func (r *memSessionRepo) ListByTemplate(_ context.Context, templateID string) ([]*model.InterviewSession, error) {
	var sessions []*model.InterviewSession
	for _, s := range r.sessions {
		if s.TemplateID == templateID {
			sessions = append(sessions, s)
		}
	}
	return sessions, nil
}

type nullSessionCache struct{}

func (nullSessionCache) Set(context.Context, *model.InterviewSession) error { return nil }
func (nullSessionCache) Get(context.Context, string) (*model.InterviewSession, error) {
	return nil, nil
}
func (nullSessionCache) Delete(context.Context, string) error { return nil }

type nullTemplateCache struct{}

func (nullTemplateCache) Set(context.Context, *model.InterviewTemplate) error { return nil }
func (nullTemplateCache) Get(context.Context, string) (*model.InterviewTemplate, error) {
	return nil, nil
}
func (nullTemplateCache) Delete(context.Context, string) error { return nil }

type broadcastEvent struct {
	sessionID string
	msgType   string
	payload   interface{}
}

type recordingBroadcaster struct {
	events []broadcastEvent
}

func (b *recordingBroadcaster) BroadcastToSession(sessionID string, msgType string, payload interface{}) {
	b.events = append(b.events, broadcastEvent{sessionID: sessionID, msgType: msgType, payload: payload})
}
