// File: database/repository/review/crud.go
package reviewRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tutorhive/models"
)

func (r *mongoReviewRepo) Create(ctx context.Context, rv *models.Review) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rv.ID == "" {
		rv.ID = uuid.New().String()
	}
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, rv)
	return err
}

func (r *mongoReviewRepo) ListReceived(ctx context.Context, userID string) ([]models.Review, error) {
	return r.list(ctx, bson.M{"reviewedUserId": userID})
}

func (r *mongoReviewRepo) ListGiven(ctx context.Context, reviewerID string) ([]models.Review, error) {
	return r.list(ctx, bson.M{"reviewerId": reviewerID})
}

func (r *mongoReviewRepo) list(ctx context.Context, filter bson.M) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
