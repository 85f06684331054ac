// File: database/repository/job/indexes.go
package jobRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the jobs and proposals collections.
func (r *mongoJobRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jobIdx := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("status_created_idx"),
		},
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}},
			Options: options.Index().SetName("owner_idx"),
		},
	}
	if _, err := r.jobs.Indexes().CreateMany(ctx, jobIdx); err != nil {
		return fmt.Errorf("failed to create job indexes: %w", err)
	}

	proposalIdx := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One proposal per (job, user).
		{
			Keys:    bson.D{{Key: "jobId", Value: 1}, {Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_job_user"),
		},
	}
	if _, err := r.proposals.Indexes().CreateMany(ctx, proposalIdx); err != nil {
		return fmt.Errorf("failed to create proposal indexes: %w", err)
	}
	return nil
}
