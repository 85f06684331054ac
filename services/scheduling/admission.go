// File: services/scheduling/admission.go
package scheduling

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	bookingRepo "tutorhive/database/repository/booking"
	"tutorhive/models"
	"tutorhive/utils"
)

// SubmitBooking admits a booking for a single slot. The open-hours and
// lead-time checks run up front; the overlap check runs inside the ledger
// transaction so concurrent submissions for the same slot admit exactly one.
func (se *DefaultSchedulingEngine) SubmitBooking(ctx context.Context, req SubmitBookingRequest) (*models.Booking, error) {
	listing, err := se.Listings.GetByID(ctx, req.ListingID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	if !listing.Active {
		return nil, ErrListingNotFound
	}
	if listing.ProviderID == req.StudentID {
		return nil, &ConflictError{Reason: "you cannot book your own listing"}
	}

	dayStart, err := utils.ParseBookingDate(req.Date, se.location())
	if err != nil {
		return nil, &InvalidInputError{Field: "date", Reason: "must be in YYYY-MM-DD format"}
	}
	start, err := utils.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, &InvalidInputError{Field: "startTime", Reason: "must be in HH:MM format"}
	}
	end := start + se.SlotDuration

	source, err := se.resolveAvailability(ctx, listing.ProviderID, utils.WeekdayMondayZero(dayStart))
	if err != nil {
		return nil, err
	}
	if err := checkWithinWindows(source.Windows, start, end, se.SlotDuration); err != nil {
		return nil, err
	}

	cutoff := se.now().In(se.location()).Add(se.LeadTime)
	if se.tooSoon(dayStart, start, cutoff) {
		return nil, &ConflictError{Reason: "this slot can no longer be booked, please choose a later time"}
	}

	now := time.Now()
	booking := &models.Booking{
		ListingID:       listing.ID,
		ProviderID:      listing.ProviderID,
		StudentID:       req.StudentID,
		Date:            req.Date,
		Start:           start,
		End:             end,
		DurationMinutes: se.SlotDuration,
		Status:          models.BookingStatusPending,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := se.Bookings.InsertIfSlotFree(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, &ConflictError{Reason: "this slot was just booked by someone else"}
		}
		return nil, err
	}

	se.invalidateSlotCache(ctx, listing.ProviderID, req.Date)
	utils.GetLogger().Info("Booking admitted",
		zap.String("bookingId", booking.ID),
		zap.String("providerId", booking.ProviderID),
		zap.String("date", booking.Date),
		zap.Int("start", booking.Start))
	return booking, nil
}

// checkWithinWindows verifies the requested interval sits inside one open
// window and lands on that window's slot grid.
func checkWithinWindows(windows []models.AvailabilityWindow, start, end, slotDuration int) error {
	inWindow := false
	for _, w := range windows {
		if start >= w.Start && end <= w.End {
			inWindow = true
			if (start-w.Start)%slotDuration == 0 {
				return nil
			}
		}
	}
	if !inWindow {
		return &ConflictError{Reason: "the requested time is outside the provider's open hours"}
	}
	return &InvalidInputError{Field: "startTime", Reason: "does not match the booking grid"}
}
