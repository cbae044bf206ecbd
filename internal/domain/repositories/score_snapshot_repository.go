package repositories

import (
	"context"

	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
)

// ScoreSnapshotRepository defines the append-only score history log
type ScoreSnapshotRepository interface {
	// Append writes one snapshot. Snapshots are immutable once written.
	Append(ctx context.Context, snapshot *entities.ScoreSnapshot) error

	// ListByBusiness returns up to limit snapshots for a business,
	// ordered oldest to newest.
	ListByBusiness(ctx context.Context, businessID string, limit int) ([]*entities.ScoreSnapshot, error)
}
