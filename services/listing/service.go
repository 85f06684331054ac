// File: services/listing/service.go
package listing

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	listingRepo "tutorhive/database/repository/listing"
	subscriptionRepo "tutorhive/database/repository/subscription"
	userRepo "tutorhive/database/repository/user"
	"tutorhive/models"
	"tutorhive/utils"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrNotAllowed      = errors.New("your plan does not allow this listing type")
	ErrListingQuota    = errors.New("listing limit for your plan reached")
	ErrInvalidListing  = errors.New("invalid listing")
)

// CreateListingRequest carries a new offering.
type CreateListingRequest struct {
	Type               string  `json:"type" binding:"required,oneof=tutor mentor"`
	Title              string  `json:"title" binding:"required"`
	Description        string  `json:"description" binding:"required"`
	Price              float64 `json:"price" binding:"required,gt=0"`
	RateUnit           string  `json:"rateUnit" binding:"required,oneof=hourly fixed"`
	Subject            string  `json:"subject,omitempty"`
	Category           string  `json:"category,omitempty"`
	MaxHoursPerBooking int     `json:"maxHoursPerBooking,omitempty"`
}

// Detail is a listing joined with its provider's public info.
type Detail struct {
	models.Listing
	ProviderName   string `json:"providerName"`
	ProviderAvatar string `json:"providerAvatar"`
}

// Service manages the listing feeds and provider offerings.
type Service interface {
	Create(ctx context.Context, providerID string, req CreateListingRequest) (*models.Listing, error)
	Browse(ctx context.Context, filter models.ListingFilter) ([]models.Listing, int64, error)
	GetDetail(ctx context.Context, listingID string) (*Detail, error)
	MyListings(ctx context.Context, providerID string) ([]models.Listing, error)
	Delete(ctx context.Context, providerID, listingID string) error
}

type DefaultListingService struct {
	Listings      listingRepo.ListingRepository
	Users         userRepo.UserRepository
	Subscriptions subscriptionRepo.SubscriptionRepository
}

func NewDefaultListingService(
	listings listingRepo.ListingRepository,
	users userRepo.UserRepository,
	subscriptions subscriptionRepo.SubscriptionRepository,
) *DefaultListingService {
	return &DefaultListingService{Listings: listings, Users: users, Subscriptions: subscriptions}
}

// Create publishes a listing after checking the provider's tier allows the
// listing type and their plan's listing quota is not exhausted.
func (s *DefaultListingService) Create(ctx context.Context, providerID string, req CreateListingRequest) (*models.Listing, error) {
	provider, err := s.Users.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	switch req.Type {
	case models.ListingTypeTutor:
		if !provider.RoleLevel.CanPostTutorListing() {
			return nil, ErrNotAllowed
		}
	case models.ListingTypeMentor:
		if !provider.RoleLevel.CanPostMentorListing() {
			return nil, ErrNotAllowed
		}
	default:
		return nil, ErrInvalidListing
	}

	if err := s.checkQuota(ctx, provider); err != nil {
		return nil, err
	}

	l := &models.Listing{
		ProviderID:         providerID,
		Type:               req.Type,
		Title:              strings.TrimSpace(req.Title),
		Description:        strings.TrimSpace(req.Description),
		Price:              req.Price,
		RateUnit:           req.RateUnit,
		Subject:            strings.TrimSpace(req.Subject),
		Category:           strings.TrimSpace(req.Category),
		Active:             true,
		MaxHoursPerBooking: req.MaxHoursPerBooking,
	}
	if err := s.Listings.Create(ctx, l); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Listing created",
		zap.String("listingId", l.ID), zap.String("providerId", providerID), zap.String("type", l.Type))
	return l, nil
}

// checkQuota enforces the plan's MaxListings. A plan limit of zero or below
// means unlimited.
func (s *DefaultListingService) checkQuota(ctx context.Context, provider *models.User) error {
	sub, err := s.Subscriptions.GetByUser(ctx, provider.ID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		return err
	}

	plan, err := s.Subscriptions.GetPlanByID(ctx, sub.PlanID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		return err
	}
	if plan.MaxListings <= 0 {
		return nil
	}

	count, err := s.Listings.CountByProvider(ctx, provider.ID)
	if err != nil {
		return err
	}
	if count >= int64(plan.MaxListings) {
		return ErrListingQuota
	}
	return nil
}

// Browse returns a filtered page of active listings plus the total match count.
func (s *DefaultListingService) Browse(ctx context.Context, filter models.ListingFilter) ([]models.Listing, int64, error) {
	return s.Listings.List(ctx, filter)
}

// GetDetail returns an active listing joined with its provider's public info.
func (s *DefaultListingService) GetDetail(ctx context.Context, listingID string) (*Detail, error) {
	l, err := s.Listings.GetByID(ctx, listingID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	if !l.Active {
		return nil, ErrListingNotFound
	}

	detail := &Detail{Listing: *l}
	if provider, err := s.Users.GetByID(ctx, l.ProviderID); err == nil {
		detail.ProviderName = provider.DisplayName()
		detail.ProviderAvatar = provider.AvatarURL()
	}
	return detail, nil
}

func (s *DefaultListingService) MyListings(ctx context.Context, providerID string) ([]models.Listing, error) {
	return s.Listings.ListByProvider(ctx, providerID)
}

// Delete removes the provider's own listing.
func (s *DefaultListingService) Delete(ctx context.Context, providerID, listingID string) error {
	err := s.Listings.Delete(ctx, providerID, listingID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrListingNotFound
	}
	return err
}
