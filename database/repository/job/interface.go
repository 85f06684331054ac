// File: database/repository/job/interface.go
package jobRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"tutorhive/database"
	"tutorhive/models"
)

type JobRepository interface {
	Create(ctx context.Context, j *models.Job) error
	GetByID(ctx context.Context, id string) (*models.Job, error)
	List(ctx context.Context, filter models.JobFilter) ([]models.Job, int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Job, error)
	Delete(ctx context.Context, ownerID, jobID string) error
	UpdateStatus(ctx context.Context, ownerID, jobID, status string) error
	CountByStatus(ctx context.Context, status string) (int64, error)

	UpsertProposal(ctx context.Context, p *models.Proposal) error
	GetProposal(ctx context.Context, jobID, proposalID string) (*models.Proposal, error)
	ListProposals(ctx context.Context, jobID string) ([]models.Proposal, error)
	ListProposalsByUser(ctx context.Context, userID string) ([]models.Proposal, error)

	// AcceptProposal transactionally marks one proposal accepted, clears the
	// accepted flag on the job's other proposals, and moves the job to
	// in_progress.
	AcceptProposal(ctx context.Context, jobID, proposalID string) error
}

type mongoJobRepo struct {
	jobs      *mongo.Collection
	proposals *mongo.Collection
}

// NewMongoJobRepo constructs a new MongoDB JobRepository.
func NewMongoJobRepo() JobRepository {
	db := database.DB()
	return &mongoJobRepo{
		jobs:      db.Collection("jobs"),
		proposals: db.Collection("proposals"),
	}
}
