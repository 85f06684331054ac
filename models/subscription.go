package models

import "time"

// Plan is a subscription tier. Level maps directly onto Role.
type Plan struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Level       Role    `bson:"level" json:"level"`
	PriceMonth  float64 `bson:"priceMonth" json:"priceMonth"`
	Free        bool    `bson:"free" json:"free"`
	MaxListings int     `bson:"maxListings" json:"maxListings"`
}

// Subscription ties a user to their current plan. One per user.
type Subscription struct {
	ID        string     `bson:"id" json:"id"`
	UserID    string     `bson:"userId" json:"userId"`
	PlanID    string     `bson:"planId" json:"planId"`
	StartedAt time.Time  `bson:"startedAt" json:"startedAt"`
	ExpiresAt *time.Time `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	Active    bool       `bson:"active" json:"active"`
}
