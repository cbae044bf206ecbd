package audit

import (
	"fmt"
	"strings"

	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
)

// Local SEO: contact completeness, NAP consistency, opening hours, map
// readiness, local keyword usage and service area.

func evaluateContactComplete(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Contact details complete",
		MaxScore:   contactCompleteScore,
		Suggestion: "Complete your phone number, email and full address; incomplete contact data hurts local rankings.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/contact", Label: "Edit contact details"},
	}

	var missing []string
	if profile.PhoneNumber == "" {
		missing = append(missing, "phone number")
	}
	if profile.Email == "" {
		missing = append(missing, "email")
	}
	if profile.Address.Street == "" {
		missing = append(missing, "street")
	}
	if profile.Address.PostalCode == "" {
		missing = append(missing, "postal code")
	}
	if profile.Address.City == "" {
		missing = append(missing, "city")
	}

	if len(missing) == 0 {
		c.Score = contactCompleteScore
		c.Message = "All contact details are filled in."
	} else {
		c.Message = fmt.Sprintf("Missing contact details: %s.", strings.Join(missing, ", "))
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateNAPConsistency(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Phone number format",
		MaxScore:   napConsistencyScore,
		Suggestion: "Use a valid Dutch phone number; a consistent name-address-phone listing is a local ranking signal.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/contact", Label: "Edit contact details"},
	}

	switch {
	case IsValidNationalPhone(profile.PhoneNumber):
		c.Score = napConsistencyScore
		c.Message = fmt.Sprintf("Phone number %s is valid.", CanonicalizePhone(profile.PhoneNumber))
	case profile.PhoneNumber != "":
		c.Score = napConsistencyPartial
		c.Message = fmt.Sprintf("Phone number %q does not look like a valid Dutch number.", profile.PhoneNumber)
	default:
		c.Message = "No phone number set."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateOpeningHours(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Opening hours",
		MaxScore:   openingHoursScore,
		Suggestion: "Fill in your opening hours for every day; they show up directly in search results.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/hours", Label: "Edit opening hours"},
	}

	if len(profile.OpeningHours) == 0 {
		c.Message = "No opening hours set."
		c.Status = statusFor(c.Score, c.MaxScore)
		return c
	}

	openDays := 0
	inconsistent := false
	for _, day := range profile.OpeningHours {
		if day.Closed {
			continue
		}
		openDays++
		if day.Open == "" || day.Close == "" {
			inconsistent = true
		}
	}

	switch {
	case openDays > 0 && !inconsistent:
		c.Score = openingHoursScore
		c.Message = fmt.Sprintf("Opening hours are set for %d days.", openDays)
	default:
		c.Score = openingHoursPartial
		c.Message = "Opening hours are present but look incomplete or all days are marked closed."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateMapReadiness(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Map readiness",
		MaxScore:   mapReadinessScore,
		Suggestion: "Provide your street, postal code and city so your profile can be pinned on the map.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/contact", Label: "Edit contact details"},
	}

	if profile.Address.Street != "" && profile.Address.PostalCode != "" && profile.Address.City != "" {
		c.Score = mapReadinessScore
		c.Message = "Your address is complete enough for a map placement."
	} else {
		c.Message = "Your address is incomplete; the map placement stays empty."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateLocalKeyword(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "City mentioned in content",
		MaxScore:   localKeywordScore,
		Suggestion: "Mention your city in your descriptions; local searches pair what you do with where you are.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/description", Label: "Edit description"},
	}

	city := profile.Address.City
	switch {
	case city == "":
		c.Message = "No city set, so local keyword usage cannot be checked."
	case ContainsKeyword(profile.LongDescription, city) ||
		ContainsKeyword(profile.ShortDescription, city) ||
		ContainsKeyword(profile.LocalText, city):
		c.Score = localKeywordScore
		c.Message = fmt.Sprintf("Your content mentions %s.", city)
	default:
		c.Score = localKeywordPartial
		c.Message = fmt.Sprintf("Your content never mentions %s.", city)
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}

func evaluateServiceArea(profile *entities.BusinessProfile) entities.Criterion {
	c := entities.Criterion{
		Name:       "Service area",
		MaxScore:   serviceAreaScore,
		Suggestion: "Describe the region you serve so nearby searchers know you cover their area.",
		Action:     &entities.ActionRef{Path: "/dashboard/profile/contact", Label: "Edit contact details"},
	}

	if strings.TrimSpace(profile.ServiceArea) != "" {
		c.Score = serviceAreaScore
		c.Message = "A service area is defined."
	} else {
		c.Message = "No service area defined."
	}

	c.Status = statusFor(c.Score, c.MaxScore)
	return c
}
