package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vindlokaal/businessprofiles/backend/internal/api/handlers"
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
)

func TestBusinessHandler_GetBusiness_Success(t *testing.T) {
	businesses := &stubBusinessRepo{profiles: map[string]*entities.BusinessProfile{
		"b1": auditFixture("b1"),
	}}
	handler := handlers.NewBusinessHandler(businesses)

	req := httptest.NewRequest("GET", "/api/businesses/b1", nil)
	req.SetPathValue("id", "b1")
	w := httptest.NewRecorder()

	handler.GetBusiness(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var business entities.BusinessProfile
	err := json.NewDecoder(w.Body).Decode(&business)
	require.NoError(t, err)
	assert.Equal(t, "Bakkerij Van Dijk", business.Name)
	assert.Equal(t, "Amersfoort", business.Address.City)
}

func TestBusinessHandler_GetBusiness_NotFound(t *testing.T) {
	handler := handlers.NewBusinessHandler(&stubBusinessRepo{profiles: map[string]*entities.BusinessProfile{}})

	req := httptest.NewRequest("GET", "/api/businesses/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.GetBusiness(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
