package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garland3/congenial-disco/internal/model"
	"github.com/garland3/congenial-disco/internal/service"
)

// InterviewHandler handles interview session endpoints
type InterviewHandler struct {
	interviewSvc *service.InterviewService
	templateSvc  *service.TemplateService
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(interviewSvc *service.InterviewService, templateSvc *service.TemplateService) *InterviewHandler {
	return &InterviewHandler{
		interviewSvc: interviewSvc,
		templateSvc:  templateSvc,
	}
}

// Templates handles GET /v1/interview/templates
func (h *InterviewHandler) Templates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templateSvc.ListActive(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"templates": templates})
}

// Start handles POST /v1/interview/start/{templateId}
func (h *InterviewHandler) Start(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]

	session, err := h.interviewSvc.Start(r.Context(), templateID)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			writeError(w, http.StatusNotFound, "template not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// GetSession handles GET /v1/interview/session/{sessionId}
func (h *InterviewHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.interviewSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Chat handles POST /v1/interview/session/{sessionId}/chat
func (h *InterviewHandler) Chat(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.interviewSvc.Chat(r.Context(), sessionID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, "session not found")
		case errors.Is(err, service.ErrTemplateNotFound):
			writeError(w, http.StatusNotFound, "template not found")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Status handles GET /v1/interview/session/{sessionId}/status
func (h *InterviewHandler) Status(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	status, err := h.interviewSvc.Status(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, "session not found")
		case errors.Is(err, service.ErrTemplateNotFound):
			writeError(w, http.StatusNotFound, "template not found")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, status)
}
