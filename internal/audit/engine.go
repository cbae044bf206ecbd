package audit

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
)

// Evaluate runs every registered criterion against the profile and
// assembles the audit result. It is pure and total: any profile, including
// a fully empty one, produces a result (an empty profile scores 0). The
// History field is left empty; the caller attaches persisted snapshots.
func Evaluate(profile *entities.BusinessProfile) *entities.AuditResult {
	if profile == nil {
		profile = &entities.BusinessProfile{}
	}

	byCategory := make(map[string][]entities.Criterion, len(categoryOrder))
	for _, spec := range registry {
		byCategory[spec.Category] = append(byCategory[spec.Category], spec.Evaluate(profile))
	}

	overall := 0
	categories := make([]entities.Category, 0, len(categoryOrder))
	var flattened []entities.Criterion

	for _, name := range categoryOrder {
		items := byCategory[name]
		maxScore := categoryCaps[name]

		score := 0
		for _, item := range items {
			score += item.Score
		}
		// A category exceeding its cap means the scoring table itself is
		// broken; clamping here would hide that bug.
		if score > maxScore {
			panic(fmt.Sprintf("audit: category %q scored %d over its cap of %d", name, score, maxScore))
		}

		categories = append(categories, entities.Category{
			Name:     name,
			Score:    score,
			MaxScore: maxScore,
			Items:    items,
		})
		flattened = append(flattened, items...)
		overall += score
	}

	return &entities.AuditResult{
		OverallScore:    overall,
		Categories:      categories,
		PriorityActions: rankPriorities(flattened),
		SerpPreview:     buildSerpPreview(profile),
		History:         []entities.ScorePoint{},
	}
}

// rankPriorities orders all non-passing criteria by unrealized points,
// highest first, keeping registry order on ties, and truncates to the top
// six quick wins. An all-pass profile yields an empty slice, which callers
// render as a success state.
func rankPriorities(criteria []entities.Criterion) []entities.Criterion {
	actions := make([]entities.Criterion, 0, len(criteria))
	for _, c := range criteria {
		if c.Status != entities.StatusPass {
			actions = append(actions, c)
		}
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].MaxScore-actions[i].Score > actions[j].MaxScore-actions[j].Score
	})

	if len(actions) > maxPriorityActions {
		actions = actions[:maxPriorityActions]
	}
	return actions
}

// buildSerpPreview projects the profile as a search-result snippet, using
// the profile name and short description as fallbacks for missing SEO
// fields.
func buildSerpPreview(profile *entities.BusinessProfile) entities.SerpPreview {
	title := profile.SeoTitle
	if title == "" {
		title = profile.Name
	}

	description := profile.SeoDescription
	if description == "" {
		description = profile.ShortDescription
	}
	if len(description) > serpDescriptionMaxLen {
		// Back off to a rune boundary so diacritics are never split.
		cut := serpDescriptionCutLen
		for cut > 0 && !utf8.RuneStart(description[cut]) {
			cut--
		}
		description = description[:cut] + "..."
	}

	return entities.SerpPreview{
		Title:       title,
		URL:         serpProfileBaseURL + profile.Slug,
		Description: description,
	}
}
