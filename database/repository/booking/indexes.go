// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tutorhive/models"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
// The partial unique index on (providerId, date, start) over pending/confirmed
// bookings is the exclusion constraint: a second conflicting insert fails
// atomically instead of silently double booking the slot. Start-uniqueness
// implies no-overlap because bookings are fixed-length and overlapping windows
// on a provider's day are constrained to one slot grid, so any two overlapping
// blocking bookings carry the same start.
//
// $in inside partialFilterExpression requires MongoDB 6.0 or newer. So does
// $or, so on older servers there is no equivalent filter; the deployment
// minimum is 6.0.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "date", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("provider_slot_exclusion").
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": models.BlockingStatuses},
				}),
		},
		{
			Keys:    bson.D{{Key: "providerId", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("provider_date_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "studentId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("student_created_idx"),
		},
		{
			Keys:    bson.D{{Key: "listingId", Value: 1}},
			Options: options.Index().SetName("listing_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
