// File: database/repository/listing/interface.go
package listingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"tutorhive/database"
	"tutorhive/models"
)

// ListingRepository manages service offerings. The scheduling core only needs
// GetByID (listing -> provider + active flag); the rest serves the feeds.
type ListingRepository interface {
	Create(ctx context.Context, l *models.Listing) error
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	List(ctx context.Context, filter models.ListingFilter) ([]models.Listing, int64, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Listing, error)
	CountByProvider(ctx context.Context, providerID string) (int64, error)
	Delete(ctx context.Context, providerID, listingID string) error
}

type mongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo constructs a new MongoDB ListingRepository.
func NewMongoListingRepo() ListingRepository {
	return &mongoListingRepo{
		coll: database.DB().Collection("listings"),
	}
}
