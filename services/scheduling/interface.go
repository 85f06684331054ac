// File: services/scheduling/interface.go
package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"tutorhive/config"
	availabilityRepo "tutorhive/database/repository/availability"
	bookingRepo "tutorhive/database/repository/booking"
	listingRepo "tutorhive/database/repository/listing"
	"tutorhive/models"
	"tutorhive/utils"
)

// Service is the scheduling core: slot computation, booking admission, and
// booking lifecycle, plus management of the provider's weekly open hours.
type Service interface {
	// Read path. Advisory only: results may be momentarily stale, the
	// authoritative check is repeated at admission time.
	ComputeSlots(ctx context.Context, providerID, date string) ([]models.Slot, error)
	ComputeSlotsForListing(ctx context.Context, listingID, date string) ([]models.Slot, error)

	// Write path.
	SubmitBooking(ctx context.Context, req SubmitBookingRequest) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, providerID, bookingID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, actorID, bookingID string) error
	MarkComplete(ctx context.Context, actorID, bookingID string) (*models.Booking, error)
	ListProviderBookings(ctx context.Context, providerID string) ([]models.Booking, error)
	ListStudentBookings(ctx context.Context, studentID string) ([]models.Booking, error)

	// Availability store management.
	AddWindow(ctx context.Context, providerID string, req CreateWindowRequest) (*models.AvailabilityWindow, error)
	ListWindows(ctx context.Context, providerID string) ([]models.AvailabilityWindow, error)
	DeactivateWindow(ctx context.Context, providerID, windowID string) error
	DeleteWindow(ctx context.Context, providerID, windowID string) error
}

// SubmitBookingRequest is a student's request for a single slot.
type SubmitBookingRequest struct {
	ListingID string `json:"listingId" binding:"required"`
	StudentID string `json:"-"`
	Date      string `json:"date" binding:"required"`      // "YYYY-MM-DD"
	StartTime string `json:"startTime" binding:"required"` // "HH:MM", the slot's Value
	Notes     string `json:"notes,omitempty"`
}

// CreateWindowRequest describes a weekly open-hours window.
type CreateWindowRequest struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime" binding:"required"` // "HH:MM"
	EndTime   string `json:"endTime" binding:"required"`   // "HH:MM"
}

// DefaultSchedulingEngine is the production scheduler.
type DefaultSchedulingEngine struct {
	Availability availabilityRepo.AvailabilityRepository
	Bookings     bookingRepo.BookingRepository
	Listings     listingRepo.ListingRepository

	// Cache holds the short-lived slot-read cache. Optional.
	Cache *redis.Client
	// Reminders enqueues booking reminder tasks. Optional.
	Reminders *asynq.Client

	// SlotDuration is the fixed slot grid step, in minutes.
	SlotDuration int
	// LeadTime is the minimum gap between "now" and a bookable slot start.
	LeadTime time.Duration
	// DefaultOpen is the synthetic all-day window used when a provider has no
	// explicit windows for a weekday. Nil disables the default entirely.
	DefaultOpen *models.OpenHours
	// Location is the provider-facing time zone for "now" comparisons.
	Location *time.Location
	// Clock returns "now"; overridable in tests. Nil means time.Now.
	Clock func() time.Time
}

// NewDefaultSchedulingEngine builds an engine from the loaded configuration.
func NewDefaultSchedulingEngine(
	availability availabilityRepo.AvailabilityRepository,
	bookings bookingRepo.BookingRepository,
	listings listingRepo.ListingRepository,
	cache *redis.Client,
	reminders *asynq.Client,
) (*DefaultSchedulingEngine, error) {
	cfg := config.AppConfig

	if cfg.SlotDurationMinutes <= 0 {
		return nil, fmt.Errorf("slot duration must be positive, got %d", cfg.SlotDurationMinutes)
	}

	loc := time.Local
	if cfg.SchedulingTimezone != "" && cfg.SchedulingTimezone != "Local" {
		l, err := time.LoadLocation(cfg.SchedulingTimezone)
		if err != nil {
			return nil, err
		}
		loc = l
	}

	var defaultOpen *models.OpenHours
	if !cfg.DisableDefaultWindow {
		start, err := utils.ParseTimeOfDay(cfg.DefaultOpenStart)
		if err != nil {
			return nil, err
		}
		end, err := utils.ParseTimeOfDay(cfg.DefaultOpenEnd)
		if err != nil {
			return nil, err
		}
		defaultOpen = &models.OpenHours{Start: start, End: end}
	}

	return &DefaultSchedulingEngine{
		Availability: availability,
		Bookings:     bookings,
		Listings:     listings,
		Cache:        cache,
		Reminders:    reminders,
		SlotDuration: cfg.SlotDurationMinutes,
		LeadTime:     time.Duration(cfg.LeadTimeMinutes) * time.Minute,
		DefaultOpen:  defaultOpen,
		Location:     loc,
	}, nil
}

func (se *DefaultSchedulingEngine) now() time.Time {
	if se.Clock != nil {
		return se.Clock()
	}
	return time.Now()
}

func (se *DefaultSchedulingEngine) location() *time.Location {
	if se.Location != nil {
		return se.Location
	}
	return time.Local
}
