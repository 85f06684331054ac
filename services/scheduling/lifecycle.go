// File: services/scheduling/lifecycle.go
package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"tutorhive/models"
	"tutorhive/services/tasks"
	"tutorhive/utils"
)

// reminderLeadTime is how long before the session start the reminder fires.
const reminderLeadTime = time.Hour

func (se *DefaultSchedulingEngine) getBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := se.Bookings.GetByID(ctx, bookingID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// ConfirmBooking moves a pending booking to confirmed. Only the provider who
// owns the booking may confirm it.
func (se *DefaultSchedulingEngine) ConfirmBooking(ctx context.Context, providerID, bookingID string) (*models.Booking, error) {
	booking, err := se.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.ProviderID != providerID {
		return nil, ErrNotAllowed
	}
	if booking.Status != models.BookingStatusPending {
		return nil, &ConflictError{Reason: "only pending bookings can be confirmed"}
	}

	if err := se.Bookings.UpdateStatus(ctx, bookingID, models.BookingStatusConfirmed); err != nil {
		return nil, err
	}
	booking.Status = models.BookingStatusConfirmed

	se.enqueueReminder(booking)
	return booking, nil
}

// CancelBooking cancels a booking and frees its slot. The provider may cancel
// at any stage; the student may cancel only while the booking is pending.
func (se *DefaultSchedulingEngine) CancelBooking(ctx context.Context, actorID, bookingID string) error {
	booking, err := se.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	switch actorID {
	case booking.ProviderID:
		// provider can always back out
	case booking.StudentID:
		if booking.Status != models.BookingStatusPending {
			return &ConflictError{Reason: "a confirmed booking can only be cancelled by the tutor"}
		}
	default:
		return ErrNotAllowed
	}

	if booking.Status == models.BookingStatusCancelled || booking.Status == models.BookingStatusCompleted {
		return &ConflictError{Reason: "this booking is already closed"}
	}

	if err := se.Bookings.UpdateStatus(ctx, bookingID, models.BookingStatusCancelled); err != nil {
		return err
	}
	se.invalidateSlotCache(ctx, booking.ProviderID, booking.Date)
	return nil
}

// MarkComplete records one side's completion. When both the tutor and the
// student have marked the session complete, the booking closes as completed.
func (se *DefaultSchedulingEngine) MarkComplete(ctx context.Context, actorID, bookingID string) (*models.Booking, error) {
	booking, err := se.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	var byProvider bool
	switch actorID {
	case booking.ProviderID:
		byProvider = true
	case booking.StudentID:
		byProvider = false
	default:
		return nil, ErrNotAllowed
	}

	if booking.Status != models.BookingStatusConfirmed {
		return nil, &ConflictError{Reason: "only confirmed bookings can be marked complete"}
	}

	if err := se.Bookings.MarkComplete(ctx, bookingID, byProvider); err != nil {
		return nil, err
	}

	booking, err = se.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.TutorMarkedComplete && booking.StudentMarkedComplete {
		if err := se.Bookings.UpdateStatus(ctx, bookingID, models.BookingStatusCompleted); err != nil {
			return nil, err
		}
		booking.Status = models.BookingStatusCompleted
	}
	return booking, nil
}

// ListProviderBookings returns the provider's bookings, newest date first.
func (se *DefaultSchedulingEngine) ListProviderBookings(ctx context.Context, providerID string) ([]models.Booking, error) {
	return se.Bookings.ListByProvider(ctx, providerID)
}

// ListStudentBookings returns the student's bookings, newest first.
func (se *DefaultSchedulingEngine) ListStudentBookings(ctx context.Context, studentID string) ([]models.Booking, error) {
	return se.Bookings.ListByStudent(ctx, studentID)
}

// enqueueReminder schedules a reminder an hour before the session. Failures
// are logged and swallowed; reminders are best effort.
func (se *DefaultSchedulingEngine) enqueueReminder(booking *models.Booking) {
	if se.Reminders == nil {
		return
	}

	dayStart, err := utils.ParseBookingDate(booking.Date, se.location())
	if err != nil {
		return
	}
	fireAt := dayStart.Add(time.Duration(booking.Start)*time.Minute - reminderLeadTime)
	if fireAt.Before(se.now()) {
		return
	}

	task, err := tasks.NewBookingReminderTask(tasks.BookingReminderPayload{
		BookingID:  booking.ID,
		ProviderID: booking.ProviderID,
		StudentID:  booking.StudentID,
		Date:       booking.Date,
		StartTime:  utils.FormatTimeOfDay(booking.Start),
	})
	if err != nil {
		utils.GetLogger().Error("Failed to build reminder task", zap.Error(err))
		return
	}

	if _, err := se.Reminders.Enqueue(task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3)); err != nil {
		utils.GetLogger().Error("Failed to enqueue booking reminder",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}
