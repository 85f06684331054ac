// File: database/repository/subscription/indexes.go
package subscriptionRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the plans and subscriptions collections.
func (r *mongoSubscriptionRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	planIdx := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "level", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_level"),
		},
	}
	if _, err := r.plans.Indexes().CreateMany(ctx, planIdx); err != nil {
		return fmt.Errorf("failed to create plan indexes: %w", err)
	}

	subIdx := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_user"),
		},
	}
	if _, err := r.subs.Indexes().CreateMany(ctx, subIdx); err != nil {
		return fmt.Errorf("failed to create subscription indexes: %w", err)
	}
	return nil
}
