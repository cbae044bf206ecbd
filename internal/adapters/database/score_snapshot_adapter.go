package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/repositories"
	"github.com/vindlokaal/businessprofiles/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/vindlokaal/businessprofiles/backend/pkg/errors"
)

// ScoreSnapshotAdapter implements the append-only score history log in Postgres.
type ScoreSnapshotAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewScoreSnapshotAdapter creates a new score snapshot adapter.
func NewScoreSnapshotAdapter(client *postgres.Client) repositories.ScoreSnapshotRepository {
	return &ScoreSnapshotAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Append inserts one snapshot. Rows in score_snapshots are never updated.
func (a *ScoreSnapshotAdapter) Append(ctx context.Context, snapshot *entities.ScoreSnapshot) error {
	if snapshot == nil {
		return apperrors.NewInternalError("snapshot is nil", fmt.Errorf("snapshot is nil"))
	}
	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now().UTC()
	}

	breakdown, err := json.Marshal(snapshot.Breakdown)
	if err != nil {
		return apperrors.NewInternalError("failed to encode snapshot breakdown", err)
	}

	record := goqu.Record{
		"id":          snapshot.ID,
		"business_id": snapshot.BusinessID,
		"score":       snapshot.Score,
		"breakdown":   breakdown,
		"created_at":  snapshot.CreatedAt,
	}

	query, args, err := a.db.Insert("score_snapshots").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build snapshot insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to append score snapshot", err)
	}

	return nil
}

// ListByBusiness returns the most recent snapshots, oldest first.
func (a *ScoreSnapshotAdapter) ListByBusiness(ctx context.Context, businessID string, limit int) ([]*entities.ScoreSnapshot, error) {
	if limit <= 0 {
		limit = 30
	}

	query, args, err := a.db.From("score_snapshots").
		Select("id", "business_id", "score", "breakdown", "created_at").
		Where(goqu.Ex{"business_id": businessID}).
		Order(goqu.I("created_at").Desc()).
		Limit(uint(limit)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build snapshot list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list score snapshots", err)
	}
	defer rows.Close()

	var snapshots []*entities.ScoreSnapshot
	for rows.Next() {
		s := &entities.ScoreSnapshot{}
		var breakdown []byte
		if err := rows.Scan(&s.ID, &s.BusinessID, &s.Score, &breakdown, &s.CreatedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan score snapshot", err)
		}
		if len(breakdown) > 0 {
			if err := json.Unmarshal(breakdown, &s.Breakdown); err != nil {
				return nil, apperrors.NewInternalError("failed to decode snapshot breakdown", err)
			}
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read score snapshots", err)
	}

	// The query reads newest-first for the LIMIT; the trend chart wants
	// oldest-first.
	for i, j := 0, len(snapshots)-1; i < j; i, j = i+1, j-1 {
		snapshots[i], snapshots[j] = snapshots[j], snapshots[i]
	}

	return snapshots, nil
}
