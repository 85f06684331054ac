// File: database/repository/subscription/interface.go
package subscriptionRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"tutorhive/database"
	"tutorhive/models"
)

type SubscriptionRepository interface {
	ListPlans(ctx context.Context) ([]models.Plan, error)
	GetPlanByID(ctx context.Context, id string) (*models.Plan, error)
	SeedPlans(ctx context.Context, plans []models.Plan) error

	GetByUser(ctx context.Context, userID string) (*models.Subscription, error)

	// ChangePlan transactionally sets the user's role level to the plan's
	// level and upserts their subscription record.
	ChangePlan(ctx context.Context, userID string, plan models.Plan) error
}

type mongoSubscriptionRepo struct {
	plans *mongo.Collection
	subs  *mongo.Collection
	users *mongo.Collection
}

// NewMongoSubscriptionRepo constructs a new MongoDB SubscriptionRepository.
func NewMongoSubscriptionRepo() SubscriptionRepository {
	db := database.DB()
	return &mongoSubscriptionRepo{
		plans: db.Collection("plans"),
		subs:  db.Collection("subscriptions"),
		users: db.Collection("users"),
	}
}
