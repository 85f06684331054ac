package models

import "time"

// Review is feedback left by one user about another, tied to the booking or
// job it came out of. A reviewer may review a given booking or job only once.
type Review struct {
	ID             string    `bson:"id" json:"id"`
	ReviewerID     string    `bson:"reviewerId" json:"reviewerId"`
	ReviewedUserID string    `bson:"reviewedUserId" json:"reviewedUserId"`
	Rating         int       `bson:"rating" json:"rating"` // 1..5
	Comment        string    `bson:"comment" json:"comment"`
	BookingID      string    `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	JobID          string    `bson:"jobId,omitempty" json:"jobId,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}
