package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garland3/congenial-disco/internal/model"
	"github.com/garland3/congenial-disco/internal/service"
)

// TemplateHandler handles admin template endpoints
type TemplateHandler struct {
	templateSvc *service.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateSvc *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateSvc: templateSvc}
}

// TemplateRequest is the request body for creating or updating a template
type TemplateRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Fields      []model.Field `json:"fields"`
}

// GenerateTemplateRequest is the request body for goal-driven generation
type GenerateTemplateRequest struct {
	Goals string `json:"goals"`
}

func (r *TemplateRequest) validate() string {
	if r.Name == "" {
		return "name is required"
	}
	if len(r.Fields) == 0 {
		return "at least one field is required"
	}
	for _, f := range r.Fields {
		if f.Name == "" || f.Prompt == "" {
			return "every field needs a name and a prompt"
		}
		switch f.Kind {
		case model.AnswerShortText, model.AnswerNarrative, model.AnswerYesNo:
		default:
			return "unknown answer kind: " + string(f.Kind)
		}
	}
	return ""
}

// Create handles POST /v1/admin/templates
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	template := &model.InterviewTemplate{
		Name:        req.Name,
		Description: req.Description,
		Fields:      req.Fields,
	}
	if err := h.templateSvc.Create(r.Context(), template); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, template)
}

// List handles GET /v1/admin/templates
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templateSvc.ListActive(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"templates": templates})
}

// Get handles GET /v1/admin/templates/{templateId}
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]

	template, err := h.templateSvc.GetByID(r.Context(), templateID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if template == nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}

	writeJSON(w, http.StatusOK, template)
}

// Update handles PUT /v1/admin/templates/{templateId}
func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]

	var req TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	template := &model.InterviewTemplate{
		ID:          templateID,
		Name:        req.Name,
		Description: req.Description,
		Fields:      req.Fields,
	}
	if err := h.templateSvc.Update(r.Context(), template); err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			writeError(w, http.StatusNotFound, "template not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, template)
}

// Delete handles DELETE /v1/admin/templates/{templateId}
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]

	if err := h.templateSvc.Deactivate(r.Context(), templateID); err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			writeError(w, http.StatusNotFound, "template not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Template deleted successfully"})
}

// Generate handles POST /v1/admin/generate-template
func (h *TemplateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Goals == "" {
		writeError(w, http.StatusBadRequest, "goals are required")
		return
	}

	template, err := h.templateSvc.GenerateFromGoals(r.Context(), req.Goals)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, template)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
