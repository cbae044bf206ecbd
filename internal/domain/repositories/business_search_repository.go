package repositories

import (
	"context"

	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
)

// BusinessSearchRepository defines the search-index side of a profile.
// The audit engine's score is pushed into the index so search ranking can
// favour well-maintained profiles.
type BusinessSearchRepository interface {
	// InitSchema ensures the businesses collection exists
	InitSchema(ctx context.Context) error

	// Index upserts a profile document with its current quality score.
	Index(ctx context.Context, business *entities.BusinessProfile, profileScore int) error

	// Delete removes a profile from the index
	Delete(ctx context.Context, id string) error
}
