package services

import (
	"context"
	"time"

	"github.com/vindlokaal/businessprofiles/backend/internal/audit"
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/repositories"
	"github.com/vindlokaal/businessprofiles/backend/internal/infrastructure/observability"
)

// AuditService runs profile quality audits. The evaluation itself is pure;
// this service surrounds it with the two side effects the audit carries:
// appending a score snapshot and pushing the fresh score into the search
// index. Both are best-effort and never fail the audit.
type AuditService struct {
	businesses   repositories.BusinessRepository
	snapshots    repositories.ScoreSnapshotRepository
	search       repositories.BusinessSearchRepository
	metrics      *observability.Metrics
	historyLimit int
}

// NewAuditService creates a new audit service. The search repository and
// metrics may be nil when those subsystems are unavailable.
func NewAuditService(
	businesses repositories.BusinessRepository,
	snapshots repositories.ScoreSnapshotRepository,
	historyLimit int,
) *AuditService {
	if historyLimit <= 0 {
		historyLimit = 30
	}
	return &AuditService{
		businesses:   businesses,
		snapshots:    snapshots,
		historyLimit: historyLimit,
	}
}

// SetSearchRepository enables best-effort score propagation to the search index.
func (s *AuditService) SetSearchRepository(search repositories.BusinessSearchRepository) {
	s.search = search
}

// SetMetrics enables audit metrics recording.
func (s *AuditService) SetMetrics(metrics *observability.Metrics) {
	s.metrics = metrics
}

// Run audits one business profile and returns the full result including the
// score trend. Only a missing business fails the call; snapshot or index
// trouble is logged and swallowed.
func (s *AuditService) Run(ctx context.Context, businessID string) (*entities.AuditResult, error) {
	profile, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result := audit.Evaluate(profile)

	if s.metrics != nil {
		observability.RecordAuditMetric(ctx, s.metrics, result.OverallScore, time.Since(start))
	}

	s.recordSnapshot(ctx, businessID, result)
	result.History = s.loadHistory(ctx, businessID)

	if s.search != nil {
		if err := s.search.Index(ctx, profile, result.OverallScore); err != nil {
			observability.LoggerFromContext(ctx).Warn().
				Err(err).
				Str("business_id", businessID).
				Msg("failed to push profile score to search index")
		}
	}

	return result, nil
}

// Preview audits a profile without recording a snapshot or touching the
// search index. The returned history reflects previously recorded runs only.
func (s *AuditService) Preview(ctx context.Context, businessID string) (*entities.AuditResult, error) {
	profile, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	result := audit.Evaluate(profile)
	result.History = s.loadHistory(ctx, businessID)
	return result, nil
}

// History returns the persisted score trend without running a new audit.
func (s *AuditService) History(ctx context.Context, businessID string) ([]entities.ScorePoint, error) {
	snapshots, err := s.snapshots.ListByBusiness(ctx, businessID, s.historyLimit)
	if err != nil {
		return nil, err
	}
	return toScorePoints(snapshots), nil
}

// recordSnapshot appends one score snapshot. A write failure is logged and
// counted, never returned: the audit result stands on its own.
func (s *AuditService) recordSnapshot(ctx context.Context, businessID string, result *entities.AuditResult) {
	breakdown := make(map[string]int, len(result.Categories))
	for _, category := range result.Categories {
		breakdown[category.Name] = category.Score
	}

	snapshot := &entities.ScoreSnapshot{
		BusinessID: businessID,
		Score:      result.OverallScore,
		Breakdown:  breakdown,
	}

	if err := s.snapshots.Append(ctx, snapshot); err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("business_id", businessID).
			Int("score", result.OverallScore).
			Msg("failed to append score snapshot")
		if s.metrics != nil {
			observability.RecordSnapshotWriteFailure(ctx, s.metrics)
		}
	}
}

// loadHistory reads the trend series; a read failure degrades to an empty
// trend rather than failing the audit.
func (s *AuditService) loadHistory(ctx context.Context, businessID string) []entities.ScorePoint {
	snapshots, err := s.snapshots.ListByBusiness(ctx, businessID, s.historyLimit)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("business_id", businessID).
			Msg("failed to load score history")
		return []entities.ScorePoint{}
	}
	return toScorePoints(snapshots)
}

func toScorePoints(snapshots []*entities.ScoreSnapshot) []entities.ScorePoint {
	points := make([]entities.ScorePoint, 0, len(snapshots))
	for _, snapshot := range snapshots {
		points = append(points, entities.ScorePoint{
			Date:  snapshot.CreatedAt,
			Score: snapshot.Score,
		})
	}
	return points
}
