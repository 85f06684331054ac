// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"tutorhive/database"
	"tutorhive/models"
)

// ErrSlotTaken is returned when an insert loses the race for a slot, either to
// the in-transaction overlap check or to the exclusion index.
var ErrSlotTaken = errors.New("slot already booked")

// BookingRepository is the booking ledger: concrete date+time reservations
// with lifecycle status.
type BookingRepository interface {
	// InsertIfSlotFree commits a new booking transactionally. The overlap check
	// runs against the current ledger state inside the transaction, and the
	// partial unique index on (providerId, date, start) backs it up so a losing
	// concurrent writer gets ErrSlotTaken rather than a silent double booking.
	InsertIfSlotFree(ctx context.Context, b *models.Booking) error

	GetByID(ctx context.Context, id string) (*models.Booking, error)
	BusyIntervals(ctx context.Context, providerID, date string, statuses []string) ([]models.BusyInterval, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	MarkComplete(ctx context.Context, id string, byProvider bool) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
