package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/garland3/congenial-disco/internal/service"
	"github.com/garland3/congenial-disco/internal/transport/rest/handler"
	"github.com/garland3/congenial-disco/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	TemplateService  *service.TemplateService
	InterviewService *service.InterviewService
	WSHub            *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	templateHandler := handler.NewTemplateHandler(c.TemplateService)
	interviewHandler := handler.NewInterviewHandler(c.InterviewService, c.TemplateService)
	wsHandler := ws.NewHandler(c.WSHub, c.InterviewService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Admin template routes
	v1.HandleFunc("/admin/templates", templateHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/admin/templates", templateHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/admin/templates/{templateId}", templateHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/admin/templates/{templateId}", templateHandler.Update).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/admin/templates/{templateId}", templateHandler.Delete).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/admin/generate-template", templateHandler.Generate).Methods("POST", "OPTIONS")

	// Interview routes
	v1.HandleFunc("/interview/templates", interviewHandler.Templates).Methods("GET", "OPTIONS")
	v1.HandleFunc("/interview/start/{templateId}", interviewHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/interview/session/{sessionId}", interviewHandler.GetSession).Methods("GET", "OPTIONS")
	v1.HandleFunc("/interview/session/{sessionId}/chat", interviewHandler.Chat).Methods("POST", "OPTIONS")
	v1.HandleFunc("/interview/session/{sessionId}/status", interviewHandler.Status).Methods("GET", "OPTIONS")

	// WebSocket session event feed
	v1.HandleFunc("/ws/sessions/{sessionId}", wsHandler.SessionWS).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
