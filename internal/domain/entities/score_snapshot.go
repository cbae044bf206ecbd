package entities

import "time"

// ScoreSnapshot is one append-only record of an audit run's overall score.
// Snapshots are never updated or deleted; the trend chart reads them back
// in timestamp order.
type ScoreSnapshot struct {
	ID         string         `json:"id" db:"id"`
	BusinessID string         `json:"business_id" db:"business_id"`
	Score      int            `json:"score" db:"score"`
	Breakdown  map[string]int `json:"breakdown" db:"-"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
}
