// File: services/review/service.go
package review

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	bookingRepo "tutorhive/database/repository/booking"
	jobRepo "tutorhive/database/repository/job"
	reviewRepo "tutorhive/database/repository/review"
	"tutorhive/models"
)

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrNotParticipant  = errors.New("you did not take part in this engagement")
	ErrNotCompleted    = errors.New("only completed engagements can be reviewed")
	ErrAlreadyReviewed = errors.New("you already reviewed this engagement")
	ErrMissingTarget   = errors.New("a review must reference a booking or a job")
)

// SubmitRequest is a review of the other party in a completed booking or a
// closed job. Exactly one of BookingID and JobID must be set.
type SubmitRequest struct {
	BookingID string `json:"bookingId,omitempty"`
	JobID     string `json:"jobId,omitempty"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment,omitempty"`
}

// Service manages peer reviews between engagement participants.
type Service interface {
	Submit(ctx context.Context, reviewerID string, req SubmitRequest) (*models.Review, error)
	Received(ctx context.Context, userID string) ([]models.Review, error)
	Given(ctx context.Context, reviewerID string) ([]models.Review, error)
}

type DefaultReviewService struct {
	Reviews  reviewRepo.ReviewRepository
	Bookings bookingRepo.BookingRepository
	Jobs     jobRepo.JobRepository
}

func NewDefaultReviewService(
	reviews reviewRepo.ReviewRepository,
	bookings bookingRepo.BookingRepository,
	jobs jobRepo.JobRepository,
) *DefaultReviewService {
	return &DefaultReviewService{Reviews: reviews, Bookings: bookings, Jobs: jobs}
}

// Submit records a review of the other participant. Each reviewer may review
// a given booking or job once; the unique index backs that up.
func (s *DefaultReviewService) Submit(ctx context.Context, reviewerID string, req SubmitRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	var reviewedID string
	var err error
	switch {
	case req.BookingID != "" && req.JobID == "":
		reviewedID, err = s.bookingCounterpart(ctx, reviewerID, req.BookingID)
	case req.JobID != "" && req.BookingID == "":
		reviewedID, err = s.jobCounterpart(ctx, reviewerID, req.JobID)
	default:
		return nil, ErrMissingTarget
	}
	if err != nil {
		return nil, err
	}

	rv := &models.Review{
		ReviewerID:     reviewerID,
		ReviewedUserID: reviewedID,
		BookingID:      req.BookingID,
		JobID:          req.JobID,
		Rating:         req.Rating,
		Comment:        strings.TrimSpace(req.Comment),
	}
	if err := s.Reviews.Create(ctx, rv); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}
	return rv, nil
}

// bookingCounterpart returns the other party of a completed booking.
func (s *DefaultReviewService) bookingCounterpart(ctx context.Context, reviewerID, bookingID string) (string, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", ErrNotParticipant
	}
	if err != nil {
		return "", err
	}

	var other string
	switch reviewerID {
	case booking.StudentID:
		other = booking.ProviderID
	case booking.ProviderID:
		other = booking.StudentID
	default:
		return "", ErrNotParticipant
	}
	if booking.Status != models.BookingStatusCompleted {
		return "", ErrNotCompleted
	}
	return other, nil
}

// jobCounterpart returns the other party of a closed job: the owner reviews
// the accepted freelancer and vice versa.
func (s *DefaultReviewService) jobCounterpart(ctx context.Context, reviewerID, jobID string) (string, error) {
	j, err := s.Jobs.GetByID(ctx, jobID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", ErrNotParticipant
	}
	if err != nil {
		return "", err
	}
	if j.Status != models.JobStatusClosed {
		return "", ErrNotCompleted
	}

	proposals, err := s.Jobs.ListProposals(ctx, jobID)
	if err != nil {
		return "", err
	}
	var accepted *models.Proposal
	for i := range proposals {
		if proposals[i].Accepted {
			accepted = &proposals[i]
			break
		}
	}
	if accepted == nil {
		return "", ErrNotParticipant
	}

	switch reviewerID {
	case j.OwnerID:
		return accepted.UserID, nil
	case accepted.UserID:
		return j.OwnerID, nil
	}
	return "", ErrNotParticipant
}

func (s *DefaultReviewService) Received(ctx context.Context, userID string) ([]models.Review, error) {
	return s.Reviews.ListReceived(ctx, userID)
}

func (s *DefaultReviewService) Given(ctx context.Context, reviewerID string) ([]models.Review, error) {
	return s.Reviews.ListGiven(ctx, reviewerID)
}
