package audit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
)

func TestEvaluateSeoTitle_Thresholds(t *testing.T) {
	c := evaluateSeoTitle(&entities.BusinessProfile{SeoTitle: strings.Repeat("a", 55)})
	assert.Equal(t, entities.StatusPass, c.Status)
	assert.Equal(t, 5, c.Score)

	c = evaluateSeoTitle(&entities.BusinessProfile{SeoTitle: "Too short"})
	assert.Equal(t, entities.StatusWarning, c.Status)
	assert.Equal(t, 2, c.Score)

	c = evaluateSeoTitle(&entities.BusinessProfile{SeoTitle: strings.Repeat("a", 61)})
	assert.Equal(t, 2, c.Score)

	c = evaluateSeoTitle(&entities.BusinessProfile{})
	assert.Equal(t, entities.StatusFail, c.Status)
	assert.Equal(t, 0, c.Score)
}

func TestEvaluateShortDescription_WordCounts(t *testing.T) {
	c := evaluateShortDescription(&entities.BusinessProfile{
		ShortDescription: strings.TrimSpace(strings.Repeat("woord ", 50)),
	})
	assert.Equal(t, entities.StatusPass, c.Status)

	c = evaluateShortDescription(&entities.BusinessProfile{ShortDescription: "een paar woorden"})
	assert.Equal(t, entities.StatusWarning, c.Status)
	assert.Contains(t, c.Message, "3 words")
}

func TestEvaluateContactComplete_ListsMissingFields(t *testing.T) {
	c := evaluateContactComplete(&entities.BusinessProfile{
		PhoneNumber: "0612345678",
		Address:     entities.Address{Street: "Hoofdstraat 1", City: "Utrecht"},
	})

	assert.Equal(t, entities.StatusFail, c.Status)
	assert.Contains(t, c.Message, "email")
	assert.Contains(t, c.Message, "postal code")
	assert.NotContains(t, c.Message, "phone")
}

func TestEvaluateNAPConsistency(t *testing.T) {
	c := evaluateNAPConsistency(&entities.BusinessProfile{PhoneNumber: "612345678"})
	assert.Equal(t, entities.StatusPass, c.Status)
	assert.Contains(t, c.Message, "+31 6 12345678")

	c = evaluateNAPConsistency(&entities.BusinessProfile{PhoneNumber: "12345"})
	assert.Equal(t, entities.StatusWarning, c.Status)
	assert.Equal(t, 2, c.Score)

	c = evaluateNAPConsistency(&entities.BusinessProfile{})
	assert.Equal(t, entities.StatusFail, c.Status)
}

func TestEvaluateOpeningHours(t *testing.T) {
	open := []entities.OpeningHours{
		{Day: "monday", Open: "09:00", Close: "17:00"},
		{Day: "sunday", Closed: true},
	}
	c := evaluateOpeningHours(&entities.BusinessProfile{OpeningHours: open})
	assert.Equal(t, entities.StatusPass, c.Status)

	allClosed := []entities.OpeningHours{
		{Day: "monday", Closed: true},
		{Day: "tuesday", Closed: true},
	}
	c = evaluateOpeningHours(&entities.BusinessProfile{OpeningHours: allClosed})
	assert.Equal(t, entities.StatusWarning, c.Status)
	assert.Equal(t, 2, c.Score)

	missingTimes := []entities.OpeningHours{{Day: "monday", Open: "09:00"}}
	c = evaluateOpeningHours(&entities.BusinessProfile{OpeningHours: missingTimes})
	assert.Equal(t, entities.StatusWarning, c.Status)

	c = evaluateOpeningHours(&entities.BusinessProfile{})
	assert.Equal(t, entities.StatusFail, c.Status)
}

func TestEvaluateSocialPreview_PartialCredit(t *testing.T) {
	c := evaluateSocialPreview(&entities.BusinessProfile{SeoTitle: "Bakkerij Jansen"})
	assert.Equal(t, entities.StatusWarning, c.Status)
	assert.Equal(t, 2, c.Score)

	c = evaluateSocialPreview(&entities.BusinessProfile{
		SeoTitle:       "Bakkerij Jansen",
		SeoDescription: "Vers brood",
		CoverImageURL:  "https://cdn.example/cover.jpg",
	})
	assert.Equal(t, entities.StatusPass, c.Status)
}

func TestEvaluateGalleryAltText_PartialCoverage(t *testing.T) {
	gallery := []entities.GalleryImage{
		{URL: "1.jpg", AltText: "storefront"},
		{URL: "2.jpg", AltText: "team"},
		{URL: "3.jpg", AltText: "interior"},
		{URL: "4.jpg"},
		{URL: "5.jpg"},
	}

	c := evaluateGalleryAltText(&entities.BusinessProfile{Gallery: gallery})
	assert.Equal(t, entities.StatusWarning, c.Status)
	assert.Equal(t, 1, c.Score)
	assert.Equal(t, 3, c.MaxScore)
	assert.Contains(t, c.Message, "3 of 5")
}

func TestEvaluateReviewResponses_WindowsFirstFive(t *testing.T) {
	answered := entities.Review{Author: "a", OwnerResponse: "thanks"}
	unanswered := entities.Review{Author: "b"}

	// First five all answered; a sixth unanswered review is outside the
	// window and must not cost the full credit.
	profile := &entities.BusinessProfile{
		ReviewCount: 6,
		Reviews:     []entities.Review{answered, answered, answered, answered, answered, unanswered},
	}
	c := evaluateReviewResponses(profile)
	assert.Equal(t, entities.StatusPass, c.Status)

	// One unanswered inside the window drops to partial credit because a
	// response exists elsewhere.
	profile.Reviews = []entities.Review{unanswered, answered}
	profile.ReviewCount = 2
	c = evaluateReviewResponses(profile)
	assert.Equal(t, entities.StatusWarning, c.Status)
	assert.Equal(t, 1, c.Score)

	// Reviews without any response at all fail outright.
	profile.Reviews = []entities.Review{unanswered, unanswered}
	c = evaluateReviewResponses(profile)
	assert.Equal(t, entities.StatusFail, c.Status)
	assert.Equal(t, 0, c.Score)
}

func TestEvaluateRating_Branches(t *testing.T) {
	c := evaluateRating(&entities.BusinessProfile{Rating: 4.3})
	assert.Equal(t, entities.StatusPass, c.Status)

	c = evaluateRating(&entities.BusinessProfile{Rating: 3.2})
	assert.Equal(t, entities.StatusWarning, c.Status)
	assert.Equal(t, 1, c.Score)

	c = evaluateRating(&entities.BusinessProfile{})
	assert.Equal(t, entities.StatusFail, c.Status)
}
