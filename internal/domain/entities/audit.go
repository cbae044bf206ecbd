package entities

import "time"

// CriterionStatus classifies the outcome of a single audit criterion.
type CriterionStatus string

const (
	StatusPass    CriterionStatus = "pass"
	StatusWarning CriterionStatus = "warning"
	StatusFail    CriterionStatus = "fail"
)

// ActionRef points the business owner at the editing surface where a
// failing criterion can be fixed. The engine only produces the reference,
// it never resolves it.
type ActionRef struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// Criterion is one scored, independently evaluated rule against the profile.
// Invariant: 0 <= Score <= MaxScore, and Status is pass iff Score == MaxScore.
type Criterion struct {
	Name       string          `json:"name"`
	Status     CriterionStatus `json:"status"`
	Score      int             `json:"score"`
	MaxScore   int             `json:"max_score"`
	Message    string          `json:"message"`
	Suggestion string          `json:"suggestion"`
	Action     *ActionRef      `json:"action,omitempty"`
}

// Category groups criteria under a fixed point cap.
type Category struct {
	Name     string      `json:"name"`
	Score    int         `json:"score"`
	MaxScore int         `json:"max_score"`
	Items    []Criterion `json:"items"`
}

// SerpPreview is a projection of the profile as a search-result snippet.
type SerpPreview struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// ScorePoint is one point on the historical score trend.
type ScorePoint struct {
	Date  time.Time `json:"date"`
	Score int       `json:"score"`
}

// AuditResult is the full outcome of one audit run.
type AuditResult struct {
	OverallScore    int          `json:"overall_score"`
	Categories      []Category   `json:"categories"`
	PriorityActions []Criterion  `json:"priority_actions"`
	SerpPreview     SerpPreview  `json:"serp_preview"`
	History         []ScorePoint `json:"history"`
}
