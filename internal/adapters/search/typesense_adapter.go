package search

import (
	"context"
	"fmt"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/repositories"
	tsclient "github.com/vindlokaal/businessprofiles/backend/internal/infrastructure/clients/typesense"
)

// TypesenseAdapter implements business profile indexing using Typesense.
// The profile_score field carries the audit engine's overall score so
// search ranking can prefer well-maintained profiles.
type TypesenseAdapter struct {
	client *tsclient.Client
}

// Ensure TypesenseAdapter implements BusinessSearchRepository
var _ repositories.BusinessSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the businesses collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	// Check if collection exists
	_, err := a.client.Client().Collection(tsclient.BusinessesCollection).Retrieve(ctx)
	if err == nil {
		return nil // Collection exists
	}

	schema := &api.CollectionSchema{
		Name: tsclient.BusinessesCollection,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "slug", Type: "string"},
			{Name: "category", Type: "string", Facet: pointer.True()},
			{Name: "city", Type: "string", Facet: pointer.True()},
			{Name: "is_active", Type: "bool"},
			{Name: "profile_score", Type: "int32"},
			{Name: "rating", Type: "float"},
			{Name: "review_count", Type: "int32"},
			{Name: "created_at", Type: "int64"},
		},
		DefaultSortingField: pointer.String("profile_score"),
	}

	_, err = a.client.Client().Collections().Create(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}

	return nil
}

// Index upserts a business document with its current profile quality score
func (a *TypesenseAdapter) Index(ctx context.Context, business *entities.BusinessProfile, profileScore int) error {
	document := map[string]interface{}{
		"id":            business.ID,
		"name":          business.Name,
		"slug":          business.Slug,
		"category":      business.Category,
		"city":          business.Address.City,
		"is_active":     business.IsActive,
		"profile_score": profileScore,
		"rating":        business.Rating,
		"review_count":  business.ReviewCount,
		"created_at":    business.CreatedAt.Unix(),
	}

	_, err := a.client.Client().Collection(tsclient.BusinessesCollection).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index business: %w", err)
	}

	return nil
}

// Delete removes a business from the index
func (a *TypesenseAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(tsclient.BusinessesCollection).Document(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete business from index: %w", err)
	}
	return nil
}
