// File: services/subscription/service.go
package subscription

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	subscriptionRepo "tutorhive/database/repository/subscription"
	userRepo "tutorhive/database/repository/user"
	"tutorhive/models"
	"tutorhive/utils"
)

var ErrPlanNotFound = errors.New("plan not found")

// defaultPlans are the four built-in tiers seeded on startup. Levels mirror
// the capability ladder: each tier includes everything below it.
var defaultPlans = []models.Plan{
	{Name: "Student", Level: models.RoleStudent, PriceMonth: 0, Free: true, MaxListings: 0},
	{Name: "Tutor", Level: models.RoleTutor, PriceMonth: 9.99, MaxListings: 3},
	{Name: "Freelancer", Level: models.RoleFreelancer, PriceMonth: 14.99, MaxListings: 5},
	{Name: "Mentor", Level: models.RoleMentor, PriceMonth: 24.99, MaxListings: 10},
}

// CurrentPlan is a user's subscription joined with its plan.
type CurrentPlan struct {
	Plan         models.Plan          `json:"plan"`
	Subscription *models.Subscription `json:"subscription,omitempty"`
}

// Service manages plans and tier changes.
type Service interface {
	ListPlans(ctx context.Context) ([]models.Plan, error)
	Current(ctx context.Context, userID string) (*CurrentPlan, error)
	ChangePlan(ctx context.Context, userID, planID string) (*models.Plan, error)
	SeedDefaultPlans(ctx context.Context) error
}

type DefaultSubscriptionService struct {
	Subscriptions subscriptionRepo.SubscriptionRepository
	Users         userRepo.UserRepository
}

func NewDefaultSubscriptionService(
	subscriptions subscriptionRepo.SubscriptionRepository,
	users userRepo.UserRepository,
) *DefaultSubscriptionService {
	return &DefaultSubscriptionService{Subscriptions: subscriptions, Users: users}
}

func (s *DefaultSubscriptionService) ListPlans(ctx context.Context) ([]models.Plan, error) {
	return s.Subscriptions.ListPlans(ctx)
}

// Current returns the user's plan. Users without a subscription record are on
// the free Student tier.
func (s *DefaultSubscriptionService) Current(ctx context.Context, userID string) (*CurrentPlan, error) {
	sub, err := s.Subscriptions.GetByUser(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		plans, err := s.Subscriptions.ListPlans(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range plans {
			if p.Free {
				return &CurrentPlan{Plan: p}, nil
			}
		}
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	plan, err := s.Subscriptions.GetPlanByID(ctx, sub.PlanID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return &CurrentPlan{Plan: *plan, Subscription: sub}, nil
}

// ChangePlan switches the user's tier, updating both the subscription record
// and the account's role level in one transaction. Selecting the current plan
// is a no-op. Payment is out of scope; tier changes take effect immediately.
func (s *DefaultSubscriptionService) ChangePlan(ctx context.Context, userID, planID string) (*models.Plan, error) {
	plan, err := s.Subscriptions.GetPlanByID(ctx, planID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.RoleLevel == plan.Level {
		return plan, nil
	}

	if err := s.Subscriptions.ChangePlan(ctx, userID, *plan); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Plan changed",
		zap.String("userId", userID), zap.String("plan", plan.Name), zap.Int("level", int(plan.Level)))
	return plan, nil
}

// SeedDefaultPlans inserts the built-in tiers if missing. Safe to run on
// every startup.
func (s *DefaultSubscriptionService) SeedDefaultPlans(ctx context.Context) error {
	return s.Subscriptions.SeedPlans(ctx, defaultPlans)
}
