package job

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"tutorhive/models"
)

type fakeJobRepo struct {
	jobs      map[string]*models.Job
	proposals map[string]*models.Proposal
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*models.Job{}, proposals: map[string]*models.Proposal{}}
}

func (f *fakeJobRepo) Create(_ context.Context, j *models.Job) error {
	if j.ID == "" {
		j.ID = uuid.New().String()
	}
	if j.Status == "" {
		j.Status = models.JobStatusOpen
	}
	cp := *j
	f.jobs[j.ID] = &cp
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (*models.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobRepo) List(_ context.Context, _ models.JobFilter) ([]models.Job, int64, error) {
	return nil, 0, nil
}

func (f *fakeJobRepo) ListByOwner(_ context.Context, ownerID string) ([]models.Job, error) {
	var out []models.Job
	for _, j := range f.jobs {
		if j.OwnerID == ownerID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) Delete(_ context.Context, ownerID, jobID string) error {
	j, ok := f.jobs[jobID]
	if !ok || j.OwnerID != ownerID {
		return mongo.ErrNoDocuments
	}
	delete(f.jobs, jobID)
	return nil
}

func (f *fakeJobRepo) UpdateStatus(_ context.Context, ownerID, jobID, status string) error {
	j, ok := f.jobs[jobID]
	if !ok || j.OwnerID != ownerID {
		return mongo.ErrNoDocuments
	}
	j.Status = status
	return nil
}

func (f *fakeJobRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, j := range f.jobs {
		if j.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeJobRepo) UpsertProposal(_ context.Context, p *models.Proposal) error {
	for _, existing := range f.proposals {
		if existing.JobID == p.JobID && existing.UserID == p.UserID {
			existing.Message = p.Message
			existing.Price = p.Price
			p.ID = existing.ID
			return nil
		}
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	cp := *p
	f.proposals[p.ID] = &cp
	return nil
}

func (f *fakeJobRepo) GetProposal(_ context.Context, jobID, proposalID string) (*models.Proposal, error) {
	p, ok := f.proposals[proposalID]
	if !ok || p.JobID != jobID {
		return nil, mongo.ErrNoDocuments
	}
	cp := *p
	return &cp, nil
}

func (f *fakeJobRepo) ListProposals(_ context.Context, jobID string) ([]models.Proposal, error) {
	var out []models.Proposal
	for _, p := range f.proposals {
		if p.JobID == jobID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) ListProposalsByUser(_ context.Context, userID string) ([]models.Proposal, error) {
	var out []models.Proposal
	for _, p := range f.proposals {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) AcceptProposal(_ context.Context, jobID, proposalID string) error {
	for _, p := range f.proposals {
		if p.JobID == jobID {
			p.Accepted = p.ID == proposalID
		}
	}
	j, ok := f.jobs[jobID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	j.Status = models.JobStatusInProgress
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, _ string) (*models.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*models.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) UpdateField(_ context.Context, _, _, _ string) error { return nil }

func (f *fakeUserRepo) CountByRoleLevel(_ context.Context, _ models.Role, _ bool) (int64, error) {
	return 0, nil
}

func setup(t *testing.T) (*DefaultJobService, *models.Job) {
	t.Helper()
	users := &fakeUserRepo{users: map[string]*models.User{
		"owner":      {ID: "owner", RoleLevel: models.RoleStudent},
		"student":    {ID: "student", RoleLevel: models.RoleStudent},
		"freelancer": {ID: "freelancer", RoleLevel: models.RoleFreelancer},
	}}
	svc := NewDefaultJobService(newFakeJobRepo(), users)

	j, err := svc.Post(context.Background(), "owner", PostJobRequest{
		Title: "Calculus help", Description: "Weekly problem sets", Budget: 50,
	})
	require.NoError(t, err)
	return svc, j
}

func TestSubmitOfferRequiresFreelancerTier(t *testing.T) {
	svc, j := setup(t)

	_, err := svc.SubmitOffer(context.Background(), "student", j.ID, OfferRequest{Price: 40})
	assert.ErrorIs(t, err, ErrNotAllowed)

	p, err := svc.SubmitOffer(context.Background(), "freelancer", j.ID, OfferRequest{Price: 40})
	require.NoError(t, err)
	assert.Equal(t, j.ID, p.JobID)
}

func TestSubmitOfferOwnJobRejected(t *testing.T) {
	svc, j := setup(t)

	_, err := svc.SubmitOffer(context.Background(), "owner", j.ID, OfferRequest{Price: 40})
	assert.ErrorIs(t, err, ErrOwnJob)
}

func TestSubmitOfferReplacesPrevious(t *testing.T) {
	svc, j := setup(t)

	first, err := svc.SubmitOffer(context.Background(), "freelancer", j.ID, OfferRequest{Price: 40})
	require.NoError(t, err)
	second, err := svc.SubmitOffer(context.Background(), "freelancer", j.ID, OfferRequest{Price: 35})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "resubmitting upserts, never duplicates")
	offers, err := svc.MyOffers(context.Background(), "freelancer")
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, 35.0, offers[0].Price)
}

func TestAcceptOfferOwnerOnly(t *testing.T) {
	svc, j := setup(t)
	p, err := svc.SubmitOffer(context.Background(), "freelancer", j.ID, OfferRequest{Price: 40})
	require.NoError(t, err)

	err = svc.AcceptOffer(context.Background(), "freelancer", j.ID, p.ID)
	assert.ErrorIs(t, err, ErrNotAllowed)

	require.NoError(t, svc.AcceptOffer(context.Background(), "owner", j.ID, p.ID))

	detail, err := svc.GetDetail(context.Background(), "owner", j.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusInProgress, detail.Status)
	require.Len(t, detail.Proposals, 1)
	assert.True(t, detail.Proposals[0].Accepted)

	// Offers on a job that left the open state bounce.
	_, err = svc.SubmitOffer(context.Background(), "freelancer", j.ID, OfferRequest{Price: 30})
	assert.ErrorIs(t, err, ErrJobClosed)
}

func TestProposalsHiddenFromNonOwners(t *testing.T) {
	svc, j := setup(t)
	_, err := svc.SubmitOffer(context.Background(), "freelancer", j.ID, OfferRequest{Price: 40})
	require.NoError(t, err)

	detail, err := svc.GetDetail(context.Background(), "student", j.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Proposals)

	detail, err = svc.GetDetail(context.Background(), "owner", j.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Proposals, 1)
}

func TestCloseJob(t *testing.T) {
	svc, j := setup(t)

	assert.ErrorIs(t, svc.Close(context.Background(), "student", j.ID), ErrNotAllowed)
	require.NoError(t, svc.Close(context.Background(), "owner", j.ID))
	assert.ErrorIs(t, svc.Close(context.Background(), "owner", j.ID), ErrJobClosed)
}
