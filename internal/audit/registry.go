package audit

import (
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
)

// criterionFunc evaluates one rule against a profile. It must be pure and
// total: missing or malformed input maps to a fail or warning criterion,
// never a panic.
type criterionFunc func(profile *entities.BusinessProfile) entities.Criterion

// criterionSpec registers one criterion under its category. The registry
// below is the single source of truth for the scoring table: the aggregator
// iterates it rather than hard-coding category totals.
type criterionSpec struct {
	Category string
	Evaluate criterionFunc
}

// categoryOrder fixes the order categories appear in results and, together
// with registry order, the tie-break order of the priority ranker.
var categoryOrder = []string{
	CategoryContent,
	CategoryTechnical,
	CategoryLocal,
	CategoryVisual,
	CategorySocial,
}

// categoryCaps maps each category to its fixed maximum. The caps sum to 100.
var categoryCaps = map[string]int{
	CategoryContent:   capContent,
	CategoryTechnical: capTechnical,
	CategoryLocal:     capLocal,
	CategoryVisual:    capVisual,
	CategorySocial:    capSocial,
}

// registry lists every criterion in category-then-criterion order.
var registry = []criterionSpec{
	{CategoryContent, evaluateSeoTitle},
	{CategoryContent, evaluateSeoDescription},
	{CategoryContent, evaluateShortDescription},
	{CategoryContent, evaluateLongDescription},
	{CategoryContent, evaluateServices},
	{CategoryContent, evaluateFAQ},

	{CategoryTechnical, evaluateStructuredData},
	{CategoryTechnical, evaluateSocialPreview},
	{CategoryTechnical, evaluateHeadingStructure},
	{CategoryTechnical, evaluateCleanURL},
	{CategoryTechnical, evaluateInternalLinks},

	{CategoryLocal, evaluateContactComplete},
	{CategoryLocal, evaluateNAPConsistency},
	{CategoryLocal, evaluateOpeningHours},
	{CategoryLocal, evaluateMapReadiness},
	{CategoryLocal, evaluateLocalKeyword},
	{CategoryLocal, evaluateServiceArea},

	{CategoryVisual, evaluateLogo},
	{CategoryVisual, evaluateCoverImage},
	{CategoryVisual, evaluateGallerySize},
	{CategoryVisual, evaluateGalleryAltText},

	{CategorySocial, evaluateReviewVolume},
	{CategorySocial, evaluateRating},
	{CategorySocial, evaluateReviewResponses},
}

// statusFor derives a criterion status from its score: full credit passes,
// partial credit warns, zero fails.
func statusFor(score, maxScore int) entities.CriterionStatus {
	switch {
	case score >= maxScore:
		return entities.StatusPass
	case score > 0:
		return entities.StatusWarning
	default:
		return entities.StatusFail
	}
}
