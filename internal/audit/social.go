package audit

import (
	"fmt"

	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
)

// Social proof: review volume, average rating and owner responses.

func evaluateReviewVolume(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Review volume",
		MaxScore:   reviewVolumeScore,
		Suggestion: "Ask satisfied customers for a review; aim for at least 5.",
		Action:     &entities.ActionRef{Path: "/dashboard/reviews", Label: "Manage reviews"},
	}

	count := profile.ReviewCount
	switch {
	case count >= reviewVolumeMinCount:
		c.Score = reviewVolumeScore
		c.Message = fmt.Sprintf("You have %d reviews.", count)
	case count > 0:
		c.Score = reviewVolumePartial
		c.Message = fmt.Sprintf("You have %d reviews; aim for at least %d.", count, reviewVolumeMinCount)
	default:
		c.Message = "No reviews yet."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateRating(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Average rating",
		MaxScore:   ratingScore,
		Suggestion: "Work towards an average rating of 4.0 or higher.",
		Action:     &entities.ActionRef{Path: "/dashboard/reviews", Label: "Manage reviews"},
	}

	switch {
	case profile.Rating >= ratingMinAverage:
		c.Score = ratingScore
		c.Message = fmt.Sprintf("Your average rating is %.1f.", profile.Rating)
	case profile.Rating > 0:
		c.Score = ratingPartial
		c.Message = fmt.Sprintf("Your average rating is %.1f; aim for %.1f or higher.", profile.Rating, ratingMinAverage)
	default:
		c.Message = "No rating yet."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

// evaluateReviewResponses checks the first five reviews in the order the
// caller supplied them. The engine does not re-sort: the surrounding query
// decides what "recent" means.
func evaluateReviewResponses(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Review responses",
		MaxScore:   reviewResponseScore,
		Suggestion: "Respond to every recent review; owners who reply come across as engaged.",
		Action:     &entities.ActionRef{Path: "/dashboard/reviews", Label: "Manage reviews"},
	}

	window := profile.Reviews
	if len(window) > reviewResponseWindow {
		window = window[:reviewResponseWindow]
	}

	unanswered := 0
	for _, review := range window {
		if review.OwnerResponse == "" {
			unanswered++
		}
	}

	anyResponse := false
	for _, review := range profile.Reviews {
		if review.OwnerResponse != "" {
			anyResponse = true
			break
		}
	}

	switch {
	case profile.ReviewCount > 0 && len(window) > 0 && unanswered == 0:
		c.Score = reviewResponseScore
		c.Message = "All recent reviews have an owner response."
	case anyResponse:
		c.Score = reviewResponsePartial
		c.Message = fmt.Sprintf("%d recent reviews are still unanswered.", unanswered)
	case profile.ReviewCount > 0:
		c.Message = "None of your reviews have an owner response."
	default:
		c.Message = "No reviews to respond to yet."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}
