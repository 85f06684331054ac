package models

import "time"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// BlockingStatuses are the booking statuses that occupy a slot.
// Cancelled and completed bookings never block.
var BlockingStatuses = []string{BookingStatusPending, BookingStatusConfirmed}

// Booking is a concrete date+time reservation against a listing.
// Date, Start and End are immutable after creation; only Status and the
// completion flags may change.
type Booking struct {
	ID                    string    `bson:"id" json:"id"`
	ListingID             string    `bson:"listingId" json:"listingId"`
	ProviderID            string    `bson:"providerId" json:"providerId"` // derived from the listing
	StudentID             string    `bson:"studentId" json:"studentId"`
	Date                  string    `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Start                 int       `bson:"start" json:"start"` // minutes from midnight
	End                   int       `bson:"end" json:"end"`     // Start + DurationMinutes
	DurationMinutes       int       `bson:"durationMinutes" json:"durationMinutes"`
	Status                string    `bson:"status" json:"status"`
	Notes                 string    `bson:"notes,omitempty" json:"notes,omitempty"`
	TutorMarkedComplete   bool      `bson:"tutorMarkedComplete" json:"tutorMarkedComplete"`
	StudentMarkedComplete bool      `bson:"studentMarkedComplete" json:"studentMarkedComplete"`
	CreatedAt             time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BusyInterval is a half-open [Start, End) time range blocked by an existing
// non-cancelled booking, minutes from midnight.
type BusyInterval struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Overlaps reports whether the half-open intervals [b.Start,b.End) and
// [start,end) intersect.
func (b BusyInterval) Overlaps(start, end int) bool {
	return start < b.End && end > b.Start
}
