// File: database/repository/review/indexes.go
package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the reviews collection.
// A reviewer may review a given booking or job only once.
func (r *mongoReviewRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "reviewerId", Value: 1}, {Key: "bookingId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_reviewer_booking").
				SetPartialFilterExpression(bson.M{"bookingId": bson.M{"$exists": true}}),
		},
		{
			Keys: bson.D{{Key: "reviewerId", Value: 1}, {Key: "jobId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_reviewer_job").
				SetPartialFilterExpression(bson.M{"jobId": bson.M{"$exists": true}}),
		},
		{
			Keys:    bson.D{{Key: "reviewedUserId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("reviewed_created_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}
	return nil
}
