// File: database/repository/subscription/crud.go
package subscriptionRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tutorhive/models"
)

func (r *mongoSubscriptionRepo) ListPlans(ctx context.Context) ([]models.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "level", Value: 1}})
	cursor, err := r.plans.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.Plan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mongoSubscriptionRepo) GetPlanByID(ctx context.Context, id string) (*models.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Plan
	if err := r.plans.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SeedPlans inserts the plan catalogue if it is not present yet. Existing
// plans are left untouched.
func (r *mongoSubscriptionRepo) SeedPlans(ctx context.Context, plans []models.Plan) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, p := range plans {
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		filter := bson.M{"level": p.Level}
		update := bson.M{"$setOnInsert": p}
		if _, err := r.plans.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("seed plan %q: %w", p.Name, err)
		}
	}
	return nil
}

func (r *mongoSubscriptionRepo) GetByUser(ctx context.Context, userID string) (*models.Subscription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Subscription
	if err := r.subs.FindOne(ctx, bson.M{"userId": userID}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoSubscriptionRepo) ChangePlan(ctx context.Context, userID string, plan models.Plan) error {
	client := r.subs.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		res, err := r.users.UpdateOne(sc,
			bson.M{"id": userID},
			bson.M{"$set": bson.M{"roleLevel": plan.Level, "updatedAt": time.Now()}},
		)
		if err != nil {
			return fmt.Errorf("update role level failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return mongo.ErrNoDocuments
		}

		filter := bson.M{"userId": userID}
		update := bson.M{
			"$set": bson.M{"planId": plan.ID, "active": true},
			"$setOnInsert": bson.M{
				"id":        uuid.New().String(),
				"userId":    userID,
				"startedAt": time.Now(),
			},
		}
		if _, err := r.subs.UpdateOne(sc, filter, update, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("upsert subscription failed: %w", err)
		}
		return nil
	}

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
