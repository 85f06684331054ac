package models

import "time"

const (
	ListingTypeTutor  = "tutor"
	ListingTypeMentor = "mentor"
)

const (
	RateUnitHourly = "hourly"
	RateUnitFixed  = "fixed"
)

// Listing is a bookable service offering owned by exactly one provider.
// It carries no scheduling state itself; availability hangs off the provider.
type Listing struct {
	ID                 string    `bson:"id" json:"id"`
	ProviderID         string    `bson:"providerId" json:"providerId"`
	Type               string    `bson:"type" json:"type"` // "tutor" or "mentor"
	Title              string    `bson:"title" json:"title"`
	Description        string    `bson:"description" json:"description"`
	Price              float64   `bson:"price" json:"price"`
	RateUnit           string    `bson:"rateUnit" json:"rateUnit"` // "hourly" or "fixed"
	Subject            string    `bson:"subject,omitempty" json:"subject,omitempty"`
	Category           string    `bson:"category,omitempty" json:"category,omitempty"`
	Active             bool      `bson:"active" json:"active"`
	MaxHoursPerBooking int       `bson:"maxHoursPerBooking" json:"maxHoursPerBooking"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
}

// ListingFilter narrows listing feeds. Zero values mean "no constraint".
type ListingFilter struct {
	Type     string
	Query    string // matched against title, description, subject, category
	MinPrice float64
	MaxPrice float64
	Page     int
	PageSize int
}
