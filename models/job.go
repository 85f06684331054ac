package models

import "time"

const (
	JobStatusOpen       = "open"
	JobStatusInProgress = "in_progress"
	JobStatusClosed     = "closed"
	JobStatusCancelled  = "cancelled"
)

// Job is a freelance task posted by a user.
type Job struct {
	ID          string    `bson:"id" json:"id"`
	OwnerID     string    `bson:"ownerId" json:"ownerId"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Budget      float64   `bson:"budget,omitempty" json:"budget,omitempty"`
	Subject     string    `bson:"subject,omitempty" json:"subject,omitempty"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Proposal is a freelancer's offer on a job. One proposal per (job, user);
// re-submitting replaces the previous offer.
type Proposal struct {
	ID        string    `bson:"id" json:"id"`
	JobID     string    `bson:"jobId" json:"jobId"`
	UserID    string    `bson:"userId" json:"userId"`
	Message   string    `bson:"message,omitempty" json:"message,omitempty"`
	Price     float64   `bson:"price,omitempty" json:"price,omitempty"`
	Accepted  bool      `bson:"accepted" json:"accepted"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// JobFilter narrows job feeds. Zero values mean "no constraint".
type JobFilter struct {
	Status   string
	Query    string
	Page     int
	PageSize int
}
