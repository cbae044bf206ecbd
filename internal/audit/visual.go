package audit

import (
	"fmt"

	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
)

// Visual content: logo, cover image and the photo gallery.

func evaluateLogo(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Logo",
		MaxScore:   logoScore,
		Suggestion: "Upload your logo; it appears next to your listing in search results.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/media", Label: "Manage images"},
	}

	if profile.LogoURL != "" {
		c.Score = logoScore
		c.Message = "A logo is uploaded."
	} else {
		c.Message = "No logo uploaded."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateCoverImage(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Cover image",
		MaxScore:   coverImageScore,
		Suggestion: "Upload a cover image; profiles with one get noticeably more clicks.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/media", Label: "Manage images"},
	}

	if profile.CoverImageURL != "" {
		c.Score = coverImageScore
		c.Message = "A cover image is uploaded."
	} else {
		c.Message = "No cover image uploaded."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateGallerySize(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Gallery size",
		MaxScore:   galleryFullScore,
		Suggestion: "Add at least 5 photos of your work, team or location.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/media", Label: "Manage images"},
	}

	count := len(profile.Gallery)
	switch {
	case count >= galleryMinImages:
		c.Score = galleryFullScore
		c.Message = fmt.Sprintf("Your gallery has %d photos.", count)
	case count > 0:
		c.Score = galleryPartial
		c.Message = fmt.Sprintf("Your gallery has %d photos; aim for at least %d.", count, galleryMinImages)
	default:
		c.Message = "Your gallery is empty."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateGalleryAltText(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Image alt text",
		MaxScore:   altTextFullScore,
		Suggestion: "Give every photo a short description; alt text makes images findable and accessible.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/media", Label: "Manage images"},
	}

	total := len(profile.Gallery)
	if total == 0 {
		c.Message = "No photos to describe yet."
		c.Status = statusFor(c.Score, c.MaxScore)
		return c
	}

	withAlt := 0
	for _, img := range profile.Gallery {
		if img.AltText != "" {
			withAlt++
		}
	}

	switch {
	case withAlt == total:
		c.Score = altTextFullScore
		c.Message = "Every photo has alt text."
	case withAlt > 0:
		c.Score = altTextPartial
		c.Message = fmt.Sprintf("%d of %d photos have alt text.", withAlt, total)
	default:
		c.Message = "None of your photos have alt text."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}
