package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vindlokaal/businessprofiles/backend/internal/application/services"
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/providers"
	"github.com/vindlokaal/businessprofiles/backend/internal/infrastructure/observability"
	apperrors "github.com/vindlokaal/businessprofiles/backend/pkg/errors"
)

// AuditHandler handles profile-audit HTTP requests. Audit results are cached
// briefly so a dashboard refresh does not re-run the full evaluation and
// append duplicate snapshots.
type AuditHandler struct {
	auditService *services.AuditService
	cache        providers.CacheProvider
	cacheTTL     int
	metrics      *observability.Metrics
}

// NewAuditHandler creates a new audit handler. The cache may be nil, in which
// case every request runs a fresh audit.
func NewAuditHandler(auditService *services.AuditService, cache providers.CacheProvider, cacheTTLSeconds int) *AuditHandler {
	if cacheTTLSeconds <= 0 {
		cacheTTLSeconds = 60
	}
	return &AuditHandler{
		auditService: auditService,
		cache:        cache,
		cacheTTL:     cacheTTLSeconds,
	}
}

// SetMetrics enables cache hit/miss metrics for audit responses.
func (h *AuditHandler) SetMetrics(metrics *observability.Metrics) {
	h.metrics = metrics
}

// RunAudit handles GET /api/businesses/:id/audit
func (h *AuditHandler) RunAudit(w http.ResponseWriter, r *http.Request) {
	businessID := r.PathValue("id")
	if businessID == "" {
		respondWithError(w, http.StatusBadRequest, "business ID is required")
		return
	}

	cacheKey := auditCacheKey(businessID)
	if h.cache != nil {
		if cached, err := h.cache.Get(r.Context(), cacheKey); err == nil && len(cached) > 0 {
			if h.metrics != nil {
				observability.RecordCacheHit(r.Context(), h.metrics, cacheKey)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(cached)
			return
		}
		if h.metrics != nil {
			observability.RecordCacheMiss(r.Context(), h.metrics, cacheKey)
		}
	}

	result, err := h.auditService.Run(r.Context(), businessID)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok && appErr.Type == apperrors.ErrorTypeNotFound {
			respondWithError(w, http.StatusNotFound, appErr.Message)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to audit business profile")
		return
	}

	if h.cache != nil {
		if body, err := json.Marshal(result); err == nil {
			_ = h.cache.Set(r.Context(), cacheKey, body, h.cacheTTL)
		}
	}

	respondWithJSON(w, http.StatusOK, result)
}

// GetScoreHistory handles GET /api/businesses/:id/score-history
func (h *AuditHandler) GetScoreHistory(w http.ResponseWriter, r *http.Request) {
	businessID := r.PathValue("id")
	if businessID == "" {
		respondWithError(w, http.StatusBadRequest, "business ID is required")
		return
	}

	history, err := h.auditService.History(r.Context(), businessID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load score history")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"history": history,
		"count":   len(history),
	})
}

func auditCacheKey(businessID string) string {
	return fmt.Sprintf("audit:%s", businessID)
}
