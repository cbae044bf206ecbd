package routes

import (
	"net/http"

	"github.com/vindlokaal/businessprofiles/backend/internal/api/handlers"
	"github.com/vindlokaal/businessprofiles/backend/internal/api/middleware"
	"github.com/vindlokaal/businessprofiles/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	businessHandler *handlers.BusinessHandler
	auditHandler    *handlers.AuditHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	businessHandler *handlers.BusinessHandler,
	auditHandler *handlers.AuditHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		businessHandler: businessHandler,
		auditHandler:    auditHandler,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Business profile endpoints
	r.mux.HandleFunc("GET /api/businesses/{id}", r.businessHandler.GetBusiness)

	// Audit endpoints
	r.mux.HandleFunc("GET /api/businesses/{id}/audit", r.auditHandler.RunAudit)
	r.mux.HandleFunc("GET /api/businesses/{id}/score-history", r.auditHandler.GetScoreHistory)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so error responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
