// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"tutorhive/database"
	"tutorhive/models"
)

// AvailabilityRepository stores weekly recurring open-hours windows per
// provider. Windows are keyed by provider account, not by listing, so one
// schedule covers all of a provider's listings.
type AvailabilityRepository interface {
	Create(ctx context.Context, w *models.AvailabilityWindow) error
	ListByProviderDay(ctx context.Context, providerID string, dayOfWeek int, activeOnly bool) ([]models.AvailabilityWindow, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.AvailabilityWindow, error)
	Deactivate(ctx context.Context, providerID, windowID string) error
	Delete(ctx context.Context, providerID, windowID string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &mongoAvailabilityRepo{
		coll: database.DB().Collection("availability_windows"),
	}
}
