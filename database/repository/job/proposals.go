// File: database/repository/job/proposals.go
package jobRepo

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

func (r *mongoJobRepo) UpsertProposal(ctx context.Context, p *models.Proposal) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	// One proposal per (job, user): re-submitting replaces message and price
	// but keeps the original identity and timestamp.
	filter := bson.M{"jobId": p.JobID, "userId": p.UserID}
	update := bson.M{
		"$set": bson.M{
			"message": p.Message,
			"price":   p.Price,
		},
		"$setOnInsert": bson.M{
			"id":        p.ID,
			"jobId":     p.JobID,
			"userId":    p.UserID,
			"accepted":  false,
			"createdAt": p.CreatedAt,
		},
	}
	_, err := r.proposals.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoJobRepo) GetProposal(ctx context.Context, jobID, proposalID string) (*models.Proposal, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Proposal
	if err := r.proposals.FindOne(ctx, bson.M{"id": proposalID, "jobId": jobID}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoJobRepo) ListProposals(ctx context.Context, jobID string) ([]models.Proposal, error) {
	return r.listProposals(ctx, bson.M{"jobId": jobID})
}

func (r *mongoJobRepo) ListProposalsByUser(ctx context.Context, userID string) ([]models.Proposal, error) {
	return r.listProposals(ctx, bson.M{"userId": userID})
}

func (r *mongoJobRepo) listProposals(ctx context.Context, filter bson.M) ([]models.Proposal, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.proposals.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var proposals []models.Proposal
	if err := cursor.All(ctx, &proposals); err != nil {
		return nil, err
	}
	return proposals, nil
}

func (r *mongoJobRepo) AcceptProposal(ctx context.Context, jobID, proposalID string) error {
	client := r.jobs.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.proposals.UpdateMany(sc, bson.M{"jobId": jobID}, bson.M{"$set": bson.M{"accepted": false}}); err != nil {
			return fmt.Errorf("clear accepted flags failed: %w", err)
		}
		res, err := r.proposals.UpdateOne(sc, bson.M{"id": proposalID, "jobId": jobID}, bson.M{"$set": bson.M{"accepted": true}})
		if err != nil {
			return fmt.Errorf("accept proposal failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return mongo.ErrNoDocuments
		}
		if _, err := r.jobs.UpdateOne(sc, bson.M{"id": jobID}, bson.M{"$set": bson.M{"status": models.JobStatusInProgress}}); err != nil {
			return fmt.Errorf("update job status failed: %w", err)
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
