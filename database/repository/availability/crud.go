// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tutorhive/models"
)

func (r *mongoAvailabilityRepo) Create(ctx context.Context, w *models.AvailabilityWindow) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, w)
	return err
}

func (r *mongoAvailabilityRepo) ListByProviderDay(ctx context.Context, providerID string, dayOfWeek int, activeOnly bool) ([]models.AvailabilityWindow, error) {
	filter := bson.M{"providerId": providerID, "dayOfWeek": dayOfWeek}
	if activeOnly {
		filter["active"] = true
	}
	return r.list(ctx, filter)
}

func (r *mongoAvailabilityRepo) ListByProvider(ctx context.Context, providerID string) ([]models.AvailabilityWindow, error) {
	return r.list(ctx, bson.M{"providerId": providerID})
}

func (r *mongoAvailabilityRepo) list(ctx context.Context, filter bson.M) ([]models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *mongoAvailabilityRepo) Deactivate(ctx context.Context, providerID, windowID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": windowID, "providerId": providerID}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"active": false}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoAvailabilityRepo) Delete(ctx context.Context, providerID, windowID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": windowID, "providerId": providerID}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
