// File: services/testimonial/service.go
package testimonial

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	contactRepo "tutorhive/database/repository/contact"
	jobRepo "tutorhive/database/repository/job"
	testimonialRepo "tutorhive/database/repository/testimonial"
	userRepo "tutorhive/database/repository/user"
	"tutorhive/models"
	"tutorhive/utils"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// SubmitRequest carries a testimonial. One per user; resubmitting updates it.
type SubmitRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text" binding:"required"`
}

// PlatformStats are the headline counts on the home surface.
type PlatformStats struct {
	Tutors      int64 `json:"tutors"`
	Freelancers int64 `json:"freelancers"`
	Mentors     int64 `json:"mentors"`
	OpenJobs    int64 `json:"openJobs"`
}

// Service manages the home surface: testimonials, the contact form, and
// platform stats.
type Service interface {
	Submit(ctx context.Context, userID string, req SubmitRequest) (*models.Testimonial, error)
	Mine(ctx context.Context, userID string) (*models.Testimonial, error)
	ListApproved(ctx context.Context) ([]models.Testimonial, error)
	ProcessContact(ctx context.Context, msg models.ContactMessage) error
	Stats(ctx context.Context) (*PlatformStats, error)
}

type DefaultTestimonialService struct {
	Testimonials testimonialRepo.TestimonialRepository
	Users        userRepo.UserRepository
	Contacts     contactRepo.ContactRepository
	Jobs         jobRepo.JobRepository
}

func NewDefaultTestimonialService(
	testimonials testimonialRepo.TestimonialRepository,
	users userRepo.UserRepository,
	contacts contactRepo.ContactRepository,
	jobs jobRepo.JobRepository,
) *DefaultTestimonialService {
	return &DefaultTestimonialService{
		Testimonials: testimonials,
		Users:        users,
		Contacts:     contacts,
		Jobs:         jobs,
	}
}

// Submit creates the user's testimonial, or updates the existing one. New and
// edited testimonials await approval before appearing publicly.
func (s *DefaultTestimonialService) Submit(ctx context.Context, userID string, req SubmitRequest) (*models.Testimonial, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	existing, err := s.Testimonials.GetByUser(ctx, userID)
	if err == nil {
		if err := s.Testimonials.Update(ctx, userID, req.Rating, req.Text); err != nil {
			return nil, err
		}
		existing.Rating = req.Rating
		existing.Text = req.Text
		existing.Approved = false
		return existing, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	t := &models.Testimonial{
		UserID:     userID,
		Rating:     req.Rating,
		Text:       req.Text,
		RoleAtTime: u.RoleLevel,
	}
	if err := s.Testimonials.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *DefaultTestimonialService) Mine(ctx context.Context, userID string) (*models.Testimonial, error) {
	t, err := s.Testimonials.GetByUser(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	return t, err
}

func (s *DefaultTestimonialService) ListApproved(ctx context.Context) ([]models.Testimonial, error) {
	return s.Testimonials.ListApproved(ctx)
}

// ProcessContact persists a contact form submission. Delivery to a mailbox is
// handled outside the service; the stored record plus the log line is the ack.
func (s *DefaultTestimonialService) ProcessContact(ctx context.Context, msg models.ContactMessage) error {
	if err := s.Contacts.Create(ctx, &msg); err != nil {
		return err
	}
	utils.GetLogger().Info("Contact message received",
		zap.String("id", msg.ID),
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject))
	return nil
}

// Stats returns the headline counts for the home surface. Tiers count
// inclusively: a Mentor account is also counted among tutors and freelancers.
func (s *DefaultTestimonialService) Stats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}
	var err error
	if stats.Tutors, err = s.Users.CountByRoleLevel(ctx, models.RoleTutor, true); err != nil {
		return nil, err
	}
	if stats.Freelancers, err = s.Users.CountByRoleLevel(ctx, models.RoleFreelancer, true); err != nil {
		return nil, err
	}
	if stats.Mentors, err = s.Users.CountByRoleLevel(ctx, models.RoleMentor, true); err != nil {
		return nil, err
	}
	if stats.OpenJobs, err = s.Jobs.CountByStatus(ctx, models.JobStatusOpen); err != nil {
		return nil, err
	}
	return stats, nil
}
