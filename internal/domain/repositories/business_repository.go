package repositories

import (
	"context"

	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
)

// BusinessRepository defines read access to business profiles
type BusinessRepository interface {
	// GetByID loads a full profile including services, FAQ, gallery,
	// opening hours and the most recent reviews (newest first).
	GetByID(ctx context.Context, id string) (*entities.BusinessProfile, error)

	// ListActive returns all active profiles, used by the search indexer.
	ListActive(ctx context.Context, limit, offset int) ([]*entities.BusinessProfile, error)
}
