package audit

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
)

// completeProfile satisfies every full-credit threshold in the scoring table.
func completeProfile() *entities.BusinessProfile {
	answered := entities.Review{Author: "klant", Rating: 5, Text: "Top service", OwnerResponse: "Dank je wel!"}

	return &entities.BusinessProfile{
		ID:               "biz-1",
		Name:             "Bakkerij Jansen",
		Slug:             "bakkerij-jansen-utrecht",
		Category:         "bakkerij",
		SeoTitle:         strings.Repeat("t", 55),
		SeoDescription:   strings.Repeat("d", 155),
		ShortDescription: strings.TrimSpace(strings.Repeat("vers brood elke ochtend uit eigen oven ", 8)),
		LongDescription:  strings.TrimSpace(strings.Repeat("Bakkerij Jansen bakt in Utrecht elke dag vers brood en gebak ", 16)),
		ServiceArea:      "Utrecht en omstreken",
		PhoneNumber:      "0612345678",
		Email:            "info@bakkerijjansen.nl",
		Website:          "https://bakkerijjansen.nl",
		Address: entities.Address{
			Street:     "Hoofdstraat 12",
			PostalCode: "3511 AB",
			City:       "Utrecht",
		},
		LogoURL:       "https://cdn.example/logo.png",
		CoverImageURL: "https://cdn.example/cover.jpg",
		Services:      []string{"brood", "gebak", "taarten op bestelling"},
		Highlights:    []string{"eigen oven"},
		FAQ: []entities.FAQItem{
			{Question: "q1", Answer: "a1"},
			{Question: "q2", Answer: "a2"},
			{Question: "q3", Answer: "a3"},
			{Question: "q4", Answer: "a4"},
			{Question: "q5", Answer: "a5"},
		},
		Gallery: []entities.GalleryImage{
			{URL: "1.jpg", AltText: "winkel"},
			{URL: "2.jpg", AltText: "brood"},
			{URL: "3.jpg", AltText: "gebak"},
			{URL: "4.jpg", AltText: "team"},
			{URL: "5.jpg", AltText: "oven"},
		},
		OpeningHours: []entities.OpeningHours{
			{Day: "monday", Open: "08:00", Close: "18:00"},
			{Day: "tuesday", Open: "08:00", Close: "18:00"},
			{Day: "sunday", Closed: true},
		},
		Rating:      4.6,
		ReviewCount: 12,
		Reviews:     []entities.Review{answered, answered, answered, answered, answered},
		IsActive:    true,
	}
}

func TestEvaluate_EmptyProfileScoresZero(t *testing.T) {
	result := Evaluate(&entities.BusinessProfile{})

	assert.Equal(t, 0, result.OverallScore)
	require.Len(t, result.Categories, 5)

	for _, category := range result.Categories {
		assert.Equal(t, 0, category.Score)
		for _, item := range category.Items {
			assert.Equal(t, entities.StatusFail, item.Status)
			assert.Equal(t, 0, item.Score)
		}
	}
}

func TestEvaluate_NilProfileIsTreatedAsEmpty(t *testing.T) {
	result := Evaluate(nil)
	assert.Equal(t, 0, result.OverallScore)
}

func TestEvaluate_CompleteProfileScoresHundred(t *testing.T) {
	result := Evaluate(completeProfile())

	for _, category := range result.Categories {
		assert.Equal(t, category.MaxScore, category.Score, "category %s should be at its cap", category.Name)
		for _, item := range category.Items {
			assert.Equal(t, entities.StatusPass, item.Status, "criterion %q should pass", item.Name)
		}
	}

	assert.Equal(t, 100, result.OverallScore)
	assert.Empty(t, result.PriorityActions)
}

func TestEvaluate_SumInvariants(t *testing.T) {
	profile := completeProfile()
	profile.FAQ = profile.FAQ[:2]
	profile.Gallery = profile.Gallery[:3]
	profile.Rating = 3.1

	result := Evaluate(profile)

	total := 0
	for _, category := range result.Categories {
		itemSum := 0
		for _, item := range category.Items {
			assert.GreaterOrEqual(t, item.Score, 0)
			assert.LessOrEqual(t, item.Score, item.MaxScore)
			itemSum += item.Score
		}
		assert.Equal(t, category.Score, itemSum)
		assert.LessOrEqual(t, category.Score, category.MaxScore)
		total += category.Score
	}

	assert.Equal(t, total, result.OverallScore)
	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.LessOrEqual(t, result.OverallScore, 100)
}

func TestEvaluate_PriorityRanking(t *testing.T) {
	result := Evaluate(&entities.BusinessProfile{})

	require.Len(t, result.PriorityActions, 6)

	// Structured data has the largest unrealized potential on an empty
	// profile and must come first.
	assert.Equal(t, "Structured data readiness", result.PriorityActions[0].Name)

	for i, action := range result.PriorityActions {
		assert.NotEqual(t, entities.StatusPass, action.Status)
		if i > 0 {
			prev := result.PriorityActions[i-1]
			assert.GreaterOrEqual(t, prev.MaxScore-prev.Score, action.MaxScore-action.Score)
		}
	}
}

func TestEvaluate_PriorityRanking_TiesKeepRegistryOrder(t *testing.T) {
	result := Evaluate(&entities.BusinessProfile{})

	// After the 8-point structured data gap, the 5-point gaps follow in
	// registry order, starting with the content criteria.
	assert.Equal(t, "SEO title length", result.PriorityActions[1].Name)
	assert.Equal(t, "Meta description length", result.PriorityActions[2].Name)
}

func TestEvaluate_FAQMonotonicity(t *testing.T) {
	profile := &entities.BusinessProfile{FAQ: []entities.FAQItem{{Question: "q", Answer: "a"}}}

	before := Evaluate(profile)
	profile.FAQ = append(profile.FAQ, entities.FAQItem{Question: "q2", Answer: "a2"})
	after := Evaluate(profile)

	scoreOf := func(result *entities.AuditResult) int {
		for _, category := range result.Categories {
			for _, item := range category.Items {
				if item.Name == "FAQ entries" {
					return item.Score
				}
			}
		}
		t.Fatal("FAQ criterion not found")
		return 0
	}

	assert.GreaterOrEqual(t, scoreOf(after), scoreOf(before))
}

func TestEvaluate_Idempotent(t *testing.T) {
	profile := completeProfile()
	profile.Gallery = profile.Gallery[:2]

	first := Evaluate(profile)
	second := Evaluate(profile)

	assert.Equal(t, first, second)
}

func TestEvaluate_SerpPreview(t *testing.T) {
	profile := completeProfile()
	result := Evaluate(profile)

	assert.Equal(t, profile.SeoTitle, result.SerpPreview.Title)
	assert.Equal(t, "https://www.vindlokaal.nl/bedrijf/bakkerij-jansen-utrecht", result.SerpPreview.URL)

	// Long descriptions are clipped to 157 characters plus an ellipsis.
	profile.SeoDescription = strings.Repeat("x", 200)
	result = Evaluate(profile)
	assert.Len(t, result.SerpPreview.Description, 160)
	assert.True(t, strings.HasSuffix(result.SerpPreview.Description, "..."))

	// Missing SEO fields fall back to name and short description. The
	// fallback is clipped the same way; only a short enough description
	// survives verbatim.
	profile.SeoTitle = ""
	profile.SeoDescription = ""
	result = Evaluate(profile)
	assert.Equal(t, profile.Name, result.SerpPreview.Title)
	assert.True(t, strings.HasPrefix(result.SerpPreview.Description, profile.ShortDescription[:50]))
	assert.True(t, strings.HasSuffix(result.SerpPreview.Description, "..."))

	profile.ShortDescription = "Ambachtelijke bakkerij in hartje Utrecht met brood uit eigen oven."
	result = Evaluate(profile)
	assert.Equal(t, profile.ShortDescription, result.SerpPreview.Description)
}

func TestEvaluate_SerpPreviewTruncatesOnRuneBoundary(t *testing.T) {
	profile := completeProfile()
	profile.SeoDescription = strings.Repeat("é", 100)

	result := Evaluate(profile)

	assert.True(t, utf8.ValidString(result.SerpPreview.Description))
	assert.True(t, strings.HasSuffix(result.SerpPreview.Description, "..."))
	assert.LessOrEqual(t, len(result.SerpPreview.Description), 160)
}

func TestRegistry_CapsMatchScoringTable(t *testing.T) {
	maxByCategory := make(map[string]int)
	for _, spec := range registry {
		criterion := spec.Evaluate(&entities.BusinessProfile{})
		maxByCategory[spec.Category] += criterion.MaxScore
	}

	total := 0
	for name, expected := range categoryCaps {
		assert.Equal(t, expected, maxByCategory[name], "criterion max scores must sum to the %s cap", name)
		total += expected
	}
	assert.Equal(t, 100, total)
}
