package audit

import (
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
)

// Technical SEO: structured-data readiness, social previews, heading
// structure, URL cleanliness and internal linking.

func evaluateStructuredData(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Structured data readiness",
		MaxScore:   structuredDataScore,
		Suggestion: "Fill in your business name, phone number, street and city so your page can carry LocalBusiness structured data.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/contact", Label: "Edit contact details"},
	}

	if profile.Name != "" && profile.PhoneNumber != "" && profile.Address.Street != "" && profile.Address.City != "" {
		c.Score = structuredDataScore
		c.Message = "Name, phone and address are complete; structured data can be generated."
	} else {
		c.Message = "Structured data needs your name, phone number, street and city."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateSocialPreview(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Social media preview",
		MaxScore:   socialPreviewScore,
		Suggestion: "Set an SEO title, meta description and cover image so shared links show a rich preview.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/seo", Label: "Edit SEO settings"},
	}

	filled := 0
	if profile.SeoTitle != "" {
		filled++
	}
	if profile.SeoDescription != "" {
		filled++
	}
	if profile.CoverImageURL != "" {
		filled++
	}

	switch {
	case filled == 3:
		c.Score = socialPreviewScore
		c.Message = "Title, description and cover image are all set for link previews."
	case filled > 0:
		c.Score = socialPreviewPartial
		c.Message = "Link previews are partially configured; complete the title, description and cover image."
	default:
		c.Message = "Shared links will show no preview: title, description and cover image are missing."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateHeadingStructure(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Content structure",
		MaxScore:   headingStructureScore,
		Suggestion: "Expand your long description past 200 characters so the page gets a proper content hierarchy.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/description", Label: "Edit description"},
	}

	switch {
	case len(profile.LongDescription) > headingStructureMinChars:
		c.Score = headingStructureScore
		c.Message = "Your long description is substantial enough for a structured page."
	case profile.ShortDescription != "":
		c.Score = headingStructurePartial
		c.Message = "Only a short description is present; the page structure stays shallow."
	default:
		c.Message = "No descriptions present; the page has no content structure."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateCleanURL(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "URL cleanliness",
		MaxScore:   cleanURLScore,
		Suggestion: "Use a short slug with words and hyphens only; avoid underscores and number sequences.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/seo", Label: "Edit SEO settings"},
	}

	if HasCleanSlug(profile.Slug) {
		c.Score = cleanURLScore
		c.Message = "Your profile URL is clean and readable."
	} else if profile.Slug != "" {
		c.Message = "Your slug contains underscores or long number sequences."
	} else {
		c.Message = "No slug set for your profile URL."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateInternalLinks(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Internal link readiness",
		MaxScore:   internalLinkScore,
		Suggestion: "Add services or highlights; each becomes a crosslink between your profile and category pages.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/services", Label: "Edit services"},
	}

	if len(profile.Services) > 0 || len(profile.Highlights) > 0 {
		c.Score = internalLinkScore
		c.Message = "Services or highlights are present to crosslink from."
	} else {
		c.Message = "Nothing to crosslink: no services or highlights listed."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}
