package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/repositories"
	"github.com/vindlokaal/businessprofiles/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/vindlokaal/businessprofiles/backend/pkg/errors"
)

// reviewFetchLimit bounds how many reviews are attached to a loaded profile.
// The audit's response check only looks at the first five, but the profile
// page shows more.
const reviewFetchLimit = 25

// BusinessAdapter implements the BusinessRepository interface
type BusinessAdapter struct {
	client *postgres.Client
}

// NewBusinessAdapter creates a new business adapter
func NewBusinessAdapter(client *postgres.Client) repositories.BusinessRepository {
	return &BusinessAdapter{
		client: client,
	}
}

// GetByID retrieves a full business profile by ID
func (a *BusinessAdapter) GetByID(ctx context.Context, id string) (*entities.BusinessProfile, error) {
	query := `
		SELECT
			id, name, slug, category, seo_title, seo_description,
			short_description, long_description, local_text, service_area,
			phone_number, email, website, street, postal_code, city,
			logo_url, cover_image_url, rating, review_count,
			is_active, created_at, updated_at
		FROM businesses
		WHERE id = $1
	`

	profile := &entities.BusinessProfile{}
	err := a.client.DB().QueryRowContext(ctx, query, id).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Slug,
		&profile.Category,
		&profile.SeoTitle,
		&profile.SeoDescription,
		&profile.ShortDescription,
		&profile.LongDescription,
		&profile.LocalText,
		&profile.ServiceArea,
		&profile.PhoneNumber,
		&profile.Email,
		&profile.Website,
		&profile.Address.Street,
		&profile.Address.PostalCode,
		&profile.Address.City,
		&profile.LogoURL,
		&profile.CoverImageURL,
		&profile.Rating,
		&profile.ReviewCount,
		&profile.IsActive,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("business with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get business", err)
	}

	if err := a.loadCollections(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// ListActive returns all active business profiles without child collections
func (a *BusinessAdapter) ListActive(ctx context.Context, limit, offset int) ([]*entities.BusinessProfile, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, name, slug, category, city, rating, review_count, is_active, created_at
		FROM businesses
		WHERE is_active = true
		ORDER BY created_at
		LIMIT $1 OFFSET $2
	`

	rows, err := a.client.DB().QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list businesses", err)
	}
	defer rows.Close()

	var profiles []*entities.BusinessProfile
	for rows.Next() {
		p := &entities.BusinessProfile{}
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Slug,
			&p.Category,
			&p.Address.City,
			&p.Rating,
			&p.ReviewCount,
			&p.IsActive,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan business", err)
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}

// loadCollections attaches services, highlights, FAQ, gallery, opening hours
// and recent reviews to a loaded profile.
func (a *BusinessAdapter) loadCollections(ctx context.Context, profile *entities.BusinessProfile) error {
	var err error

	profile.Services, err = a.loadStringList(ctx,
		`SELECT name FROM business_services WHERE business_id = $1 ORDER BY position`, profile.ID)
	if err != nil {
		return apperrors.NewInternalError("failed to load services", err)
	}

	profile.Highlights, err = a.loadStringList(ctx,
		`SELECT name FROM business_highlights WHERE business_id = $1 ORDER BY position`, profile.ID)
	if err != nil {
		return apperrors.NewInternalError("failed to load highlights", err)
	}

	if err := a.loadFAQ(ctx, profile); err != nil {
		return apperrors.NewInternalError("failed to load faq", err)
	}
	if err := a.loadGallery(ctx, profile); err != nil {
		return apperrors.NewInternalError("failed to load gallery", err)
	}
	if err := a.loadOpeningHours(ctx, profile); err != nil {
		return apperrors.NewInternalError("failed to load opening hours", err)
	}
	if err := a.loadReviews(ctx, profile); err != nil {
		return apperrors.NewInternalError("failed to load reviews", err)
	}

	return nil
}

func (a *BusinessAdapter) loadStringList(ctx context.Context, query, businessID string) ([]string, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, rows.Err()
}

func (a *BusinessAdapter) loadFAQ(ctx context.Context, profile *entities.BusinessProfile) error {
	query := `SELECT question, answer FROM business_faq WHERE business_id = $1 ORDER BY position`

	rows, err := a.client.DB().QueryContext(ctx, query, profile.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item entities.FAQItem
		if err := rows.Scan(&item.Question, &item.Answer); err != nil {
			return err
		}
		profile.FAQ = append(profile.FAQ, item)
	}
	return rows.Err()
}

func (a *BusinessAdapter) loadGallery(ctx context.Context, profile *entities.BusinessProfile) error {
	query := `SELECT url, alt_text FROM business_gallery WHERE business_id = $1 ORDER BY position`

	rows, err := a.client.DB().QueryContext(ctx, query, profile.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var image entities.GalleryImage
		var altText sql.NullString
		if err := rows.Scan(&image.URL, &altText); err != nil {
			return err
		}
		image.AltText = altText.String
		profile.Gallery = append(profile.Gallery, image)
	}
	return rows.Err()
}

func (a *BusinessAdapter) loadOpeningHours(ctx context.Context, profile *entities.BusinessProfile) error {
	query := `
		SELECT day, open_time, close_time, closed
		FROM business_opening_hours
		WHERE business_id = $1
		ORDER BY position
	`

	rows, err := a.client.DB().QueryContext(ctx, query, profile.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var day entities.OpeningHours
		var openTime, closeTime sql.NullString
		if err := rows.Scan(&day.Day, &openTime, &closeTime, &day.Closed); err != nil {
			return err
		}
		day.Open = openTime.String
		day.Close = closeTime.String
		profile.OpeningHours = append(profile.OpeningHours, day)
	}
	return rows.Err()
}

// loadReviews fetches the most recent reviews, newest first. The audit's
// review-response criterion relies on this ordering.
func (a *BusinessAdapter) loadReviews(ctx context.Context, profile *entities.BusinessProfile) error {
	query := `
		SELECT author, rating, text, owner_response, created_at
		FROM business_reviews
		WHERE business_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := a.client.DB().QueryContext(ctx, query, profile.ID, reviewFetchLimit)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var review entities.Review
		var response sql.NullString
		if err := rows.Scan(&review.Author, &review.Rating, &review.Text, &response, &review.CreatedAt); err != nil {
			return err
		}
		review.OwnerResponse = response.String
		profile.Reviews = append(profile.Reviews, review)
	}
	return rows.Err()
}
