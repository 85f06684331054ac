package models

import "time"

// AvailabilityWindow is a weekly recurring open-hours window for a provider,
// independent of calendar dates. Day of week uses 0=Monday .. 6=Sunday.
// Start and End are minutes from midnight; windows must not cross midnight.
type AvailabilityWindow struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	DayOfWeek  int       `bson:"dayOfWeek" json:"dayOfWeek"`
	Start      int       `bson:"start" json:"start"`
	End        int       `bson:"end" json:"end"`
	Active     bool      `bson:"active" json:"active"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// OpenHours is a plain daily open interval, minutes from midnight.
type OpenHours struct {
	Start int `json:"start"`
	End   int `json:"end"`
}
