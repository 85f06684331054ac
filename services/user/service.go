// File: services/user/service.go
package user

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	listingRepo "tutorhive/database/repository/listing"
	userRepo "tutorhive/database/repository/user"
	"tutorhive/models"
	"tutorhive/utils"
)

var (
	ErrUserExists         = errors.New("username or email already in use")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// tokenTTL is how long a login session stays valid.
const tokenTTL = 7 * 24 * time.Hour

// RegisterRequest carries a new account's details.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// LoginRequest authenticates by username (or email) and password.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdateRequest holds the editable profile fields. Nil means unchanged.
type ProfileUpdateRequest struct {
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// Profile is the public view of an account.
type Profile struct {
	models.User
	DisplayName string           `json:"displayName"`
	AvatarURL   string           `json:"avatarUrl"`
	Role        string           `json:"role"`
	Listings    []models.Listing `json:"listings,omitempty"`
}

// Service manages accounts and authentication.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, string, error)
	Authenticate(ctx context.Context, req LoginRequest) (*models.User, string, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateProfile(ctx context.Context, userID string, req ProfileUpdateRequest) (*models.User, error)
}

type DefaultUserService struct {
	Users    userRepo.UserRepository
	Listings listingRepo.ListingRepository
}

func NewDefaultUserService(users userRepo.UserRepository, listings listingRepo.ListingRepository) *DefaultUserService {
	return &DefaultUserService{Users: users, Listings: listings}
}

// Register creates an account at the free Student tier and returns a session
// token so the caller is logged in immediately.
func (s *DefaultUserService) Register(ctx context.Context, req RegisterRequest) (*models.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		RoleLevel:    models.RoleStudent,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, "", ErrUserExists
		}
		return nil, "", err
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenTTL)
	if err != nil {
		return nil, "", err
	}
	utils.GetLogger().Info("User registered", zap.String("userId", u.ID), zap.String("username", u.Username))
	return u, token, nil
}

// Authenticate verifies credentials and mints a session token. The username
// field also accepts the account email.
func (s *DefaultUserService) Authenticate(ctx context.Context, req LoginRequest) (*models.User, string, error) {
	u, err := s.Users.GetByUsername(ctx, req.Username)
	if errors.Is(err, mongo.ErrNoDocuments) {
		u, err = s.Users.GetByEmail(ctx, req.Username)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// GetProfile returns the account plus its active listings.
func (s *DefaultUserService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	listings, err := s.Listings.ListByProvider(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:        *u,
		DisplayName: u.DisplayName(),
		AvatarURL:   u.AvatarURL(),
		Role:        u.RoleLevel.String(),
		Listings:    listings,
	}, nil
}

// UpdateProfile applies the provided field changes one at a time.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, req ProfileUpdateRequest) (*models.User, error) {
	fields := map[string]*string{
		"username":  req.Username,
		"email":     req.Email,
		"firstName": req.FirstName,
		"lastName":  req.LastName,
	}
	for field, value := range fields {
		if value == nil {
			continue
		}
		if err := s.Users.UpdateField(ctx, userID, field, *value); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrUserExists
			}
			return nil, err
		}
	}

	u, err := s.Users.GetByID(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	return u, err
}
