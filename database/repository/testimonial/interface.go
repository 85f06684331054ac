// File: database/repository/testimonial/interface.go
package testimonialRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"tutorhive/database"
	"tutorhive/models"
)

type TestimonialRepository interface {
	Create(ctx context.Context, t *models.Testimonial) error
	GetByUser(ctx context.Context, userID string) (*models.Testimonial, error)
	Update(ctx context.Context, userID string, rating int, text string) error
	ListApproved(ctx context.Context) ([]models.Testimonial, error)
}

type mongoTestimonialRepo struct {
	coll *mongo.Collection
}

// NewMongoTestimonialRepo constructs a new MongoDB TestimonialRepository.
func NewMongoTestimonialRepo() TestimonialRepository {
	return &mongoTestimonialRepo{
		coll: database.DB().Collection("testimonials"),
	}
}
