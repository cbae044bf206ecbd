package audit

import (
	"fmt"

	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
)

// Content quality: titles, descriptions, services and FAQ. Every criterion
// here is worth 5 points with a 2-point partial branch.

func evaluateSeoTitle(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "SEO title length",
		MaxScore:   contentFullScore,
		Suggestion: "Write an SEO title of 50-60 characters that includes your business name and city.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/seo", Label: "Edit SEO settings"},
	}

	length := len(profile.SeoTitle)
	switch {
	case length >= seoTitleMinLen && length <= seoTitleMaxLen:
		c.Score = contentFullScore
		c.Message = fmt.Sprintf("Your SEO title is %d characters, right in the ideal range.", length)
	case length > 0:
		c.Score = contentPartialScore
		c.Message = fmt.Sprintf("Your SEO title is %d characters; aim for %d-%d.", length, seoTitleMinLen, seoTitleMaxLen)
	default:
		c.Message = "No SEO title set."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateSeoDescription(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Meta description length",
		MaxScore:   contentFullScore,
		Suggestion: "Write a meta description of 150-160 characters summarizing what you offer.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/seo", Label: "Edit SEO settings"},
	}

	length := len(profile.SeoDescription)
	switch {
	case length >= seoDescriptionMinLen && length <= seoDescriptionMaxLen:
		c.Score = contentFullScore
		c.Message = fmt.Sprintf("Your meta description is %d characters, right in the ideal range.", length)
	case length > 0:
		c.Score = contentPartialScore
		c.Message = fmt.Sprintf("Your meta description is %d characters; aim for %d-%d.", length, seoDescriptionMinLen, seoDescriptionMaxLen)
	default:
		c.Message = "No meta description set."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateShortDescription(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Short description",
		MaxScore:   contentFullScore,
		Suggestion: "Describe your business in at least 50 words so visitors immediately know what you do.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/description", Label: "Edit description"},
	}

	words := CountWords(profile.ShortDescription)
	switch {
	case words >= shortDescMinWords:
		c.Score = contentFullScore
		c.Message = fmt.Sprintf("Your short description has %d words.", words)
	case words > 0:
		c.Score = contentPartialScore
		c.Message = fmt.Sprintf("Your short description has %d words; aim for at least %d.", words, shortDescMinWords)
	default:
		c.Message = "No short description set."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateLongDescription(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Long description",
		MaxScore:   contentFullScore,
		Suggestion: "Write an extended description of at least 150 words covering your services and approach.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/description", Label: "Edit description"},
	}

	words := CountWords(profile.LongDescription)
	switch {
	case words >= longDescMinWords:
		c.Score = contentFullScore
		c.Message = fmt.Sprintf("Your long description has %d words.", words)
	case words > 0:
		c.Score = contentPartialScore
		c.Message = fmt.Sprintf("Your long description has %d words; aim for at least %d.", words, longDescMinWords)
	default:
		c.Message = "No long description set."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateServices(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Services listed",
		MaxScore:   contentFullScore,
		Suggestion: "List at least 3 services so visitors and search engines understand your offering.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/services", Label: "Edit services"},
	}

	count := len(profile.Services)
	switch {
	case count >= servicesMinCount:
		c.Score = contentFullScore
		c.Message = fmt.Sprintf("You have %d services listed.", count)
	case count > 0:
		c.Score = contentPartialScore
		c.Message = fmt.Sprintf("You have %d services listed; add at least %d.", count, servicesMinCount)
	default:
		c.Message = "No services listed."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateFAQ(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "FAQ entries",
		MaxScore:   contentFullScore,
		Suggestion: "Answer at least 5 frequently asked questions; FAQ content ranks well in local search.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/faq", Label: "Edit FAQ"},
	}

	count := len(profile.FAQ)
	switch {
	case count >= faqMinCount:
		c.Score = contentFullScore
		c.Message = fmt.Sprintf("You have %d FAQ entries.", count)
	case count > 0:
		c.Score = contentPartialScore
		c.Message = fmt.Sprintf("You have %d FAQ entries; aim for at least %d.", count, faqMinCount)
	default:
		c.Message = "No FAQ entries yet."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}
