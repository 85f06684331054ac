// File: services/job/service.go
package job

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	jobRepo "tutorhive/database/repository/job"
	userRepo "tutorhive/database/repository/user"
	"tutorhive/models"
	"tutorhive/utils"
)

var (
	ErrJobNotFound      = errors.New("job not found")
	ErrProposalNotFound = errors.New("proposal not found")
	ErrNotAllowed       = errors.New("not allowed")
	ErrOwnJob           = errors.New("you cannot submit an offer on your own job")
	ErrJobClosed        = errors.New("job is no longer open")
)

// PostJobRequest carries a new freelance task.
type PostJobRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Budget      float64 `json:"budget,omitempty"`
	Subject     string  `json:"subject,omitempty"`
}

// OfferRequest is a freelancer's bid on a job.
type OfferRequest struct {
	Message string  `json:"message,omitempty"`
	Price   float64 `json:"price,omitempty"`
}

// Detail joins a job with its proposals, shown only to the job owner.
type Detail struct {
	models.Job
	Proposals []models.Proposal `json:"proposals,omitempty"`
}

// Service manages the freelance job board.
type Service interface {
	Post(ctx context.Context, ownerID string, req PostJobRequest) (*models.Job, error)
	Browse(ctx context.Context, filter models.JobFilter) ([]models.Job, int64, error)
	GetDetail(ctx context.Context, viewerID, jobID string) (*Detail, error)
	SubmitOffer(ctx context.Context, userID, jobID string, req OfferRequest) (*models.Proposal, error)
	AcceptOffer(ctx context.Context, ownerID, jobID, proposalID string) error
	Close(ctx context.Context, ownerID, jobID string) error
	MyJobs(ctx context.Context, ownerID string) ([]models.Job, error)
	MyOffers(ctx context.Context, userID string) ([]models.Proposal, error)
	Delete(ctx context.Context, ownerID, jobID string) error
}

type DefaultJobService struct {
	Jobs  jobRepo.JobRepository
	Users userRepo.UserRepository
}

func NewDefaultJobService(jobs jobRepo.JobRepository, users userRepo.UserRepository) *DefaultJobService {
	return &DefaultJobService{Jobs: jobs, Users: users}
}

// Post publishes a job. Any account may post one.
func (s *DefaultJobService) Post(ctx context.Context, ownerID string, req PostJobRequest) (*models.Job, error) {
	j := &models.Job{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Budget:      req.Budget,
		Subject:     strings.TrimSpace(req.Subject),
		Status:      models.JobStatusOpen,
	}
	if err := s.Jobs.Create(ctx, j); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Job posted", zap.String("jobId", j.ID), zap.String("ownerId", ownerID))
	return j, nil
}

func (s *DefaultJobService) Browse(ctx context.Context, filter models.JobFilter) ([]models.Job, int64, error) {
	return s.Jobs.List(ctx, filter)
}

// GetDetail returns a job. Proposals are attached only for the job's owner.
func (s *DefaultJobService) GetDetail(ctx context.Context, viewerID, jobID string) (*Detail, error) {
	j, err := s.Jobs.GetByID(ctx, jobID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}

	detail := &Detail{Job: *j}
	if viewerID == j.OwnerID {
		proposals, err := s.Jobs.ListProposals(ctx, jobID)
		if err != nil {
			return nil, err
		}
		detail.Proposals = proposals
	}
	return detail, nil
}

// SubmitOffer upserts the caller's proposal on an open job. Requires the
// Freelancer tier; resubmitting replaces the previous offer.
func (s *DefaultJobService) SubmitOffer(ctx context.Context, userID, jobID string, req OfferRequest) (*models.Proposal, error) {
	j, err := s.Jobs.GetByID(ctx, jobID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	if j.OwnerID == userID {
		return nil, ErrOwnJob
	}
	if j.Status != models.JobStatusOpen {
		return nil, ErrJobClosed
	}

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.RoleLevel.CanTakeJobs() {
		return nil, ErrNotAllowed
	}

	p := &models.Proposal{
		JobID:   jobID,
		UserID:  userID,
		Message: strings.TrimSpace(req.Message),
		Price:   req.Price,
	}
	if err := s.Jobs.UpsertProposal(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AcceptOffer marks one proposal accepted and moves the job to in_progress.
// Only the job's owner may accept.
func (s *DefaultJobService) AcceptOffer(ctx context.Context, ownerID, jobID, proposalID string) error {
	j, err := s.Jobs.GetByID(ctx, jobID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrJobNotFound
	}
	if err != nil {
		return err
	}
	if j.OwnerID != ownerID {
		return ErrNotAllowed
	}
	if j.Status != models.JobStatusOpen {
		return ErrJobClosed
	}

	if _, err := s.Jobs.GetProposal(ctx, jobID, proposalID); errors.Is(err, mongo.ErrNoDocuments) {
		return ErrProposalNotFound
	} else if err != nil {
		return err
	}

	if err := s.Jobs.AcceptProposal(ctx, jobID, proposalID); err != nil {
		return err
	}
	utils.GetLogger().Info("Proposal accepted", zap.String("jobId", jobID), zap.String("proposalId", proposalID))
	return nil
}

// Close marks the owner's job finished, after which both parties may review
// each other.
func (s *DefaultJobService) Close(ctx context.Context, ownerID, jobID string) error {
	j, err := s.Jobs.GetByID(ctx, jobID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrJobNotFound
	}
	if err != nil {
		return err
	}
	if j.OwnerID != ownerID {
		return ErrNotAllowed
	}
	if j.Status == models.JobStatusClosed || j.Status == models.JobStatusCancelled {
		return ErrJobClosed
	}
	return s.Jobs.UpdateStatus(ctx, ownerID, jobID, models.JobStatusClosed)
}

func (s *DefaultJobService) MyJobs(ctx context.Context, ownerID string) ([]models.Job, error) {
	return s.Jobs.ListByOwner(ctx, ownerID)
}

func (s *DefaultJobService) MyOffers(ctx context.Context, userID string) ([]models.Proposal, error) {
	return s.Jobs.ListProposalsByUser(ctx, userID)
}

func (s *DefaultJobService) Delete(ctx context.Context, ownerID, jobID string) error {
	err := s.Jobs.Delete(ctx, ownerID, jobID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrJobNotFound
	}
	return err
}
