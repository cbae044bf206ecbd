package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vindlokaal/businessprofiles/backend/internal/domain/repositories"
	apperrors "github.com/vindlokaal/businessprofiles/backend/pkg/errors"
)

// BusinessHandler handles business-profile HTTP requests
type BusinessHandler struct {
	businessRepo repositories.BusinessRepository
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(businessRepo repositories.BusinessRepository) *BusinessHandler {
	return &BusinessHandler{
		businessRepo: businessRepo,
	}
}

// GetBusiness handles GET /api/businesses/:id
func (h *BusinessHandler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	businessID := r.PathValue("id")
	if businessID == "" {
		respondWithError(w, http.StatusBadRequest, "business ID is required")
		return
	}

	business, err := h.businessRepo.GetByID(r.Context(), businessID)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			switch appErr.Type {
			case apperrors.ErrorTypeNotFound:
				respondWithError(w, http.StatusNotFound, appErr.Message)
			default:
				respondWithError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, business)
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}
