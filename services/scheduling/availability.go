// File: services/scheduling/availability.go
package scheduling

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"tutorhive/models"
	"tutorhive/utils"
)

// SourceKind tags where a day's open windows came from.
type SourceKind int

const (
	// SourceExplicit means the provider defined windows for this weekday.
	SourceExplicit SourceKind = iota
	// SourceDefault means no explicit windows existed and the configured
	// default open hours were substituted.
	SourceDefault
)

// AvailabilitySource is the resolved set of open windows for one weekday.
// Explicit with zero windows means the provider is closed that day.
type AvailabilitySource struct {
	Kind    SourceKind
	Windows []models.AvailabilityWindow
}

// resolveAvailability returns the open windows governing a provider's weekday.
// Explicit windows always win; the default window applies only when the
// provider has none and the default is enabled.
func (se *DefaultSchedulingEngine) resolveAvailability(ctx context.Context, providerID string, dayOfWeek int) (AvailabilitySource, error) {
	windows, err := se.Availability.ListByProviderDay(ctx, providerID, dayOfWeek, true)
	if err != nil {
		return AvailabilitySource{}, err
	}
	if len(windows) > 0 {
		return AvailabilitySource{Kind: SourceExplicit, Windows: windows}, nil
	}
	if se.DefaultOpen == nil {
		return AvailabilitySource{Kind: SourceExplicit}, nil
	}
	return AvailabilitySource{
		Kind: SourceDefault,
		Windows: []models.AvailabilityWindow{
			{
				ProviderID: providerID,
				DayOfWeek:  dayOfWeek,
				Start:      se.DefaultOpen.Start,
				End:        se.DefaultOpen.End,
				Active:     true,
			},
		},
	}, nil
}

// AddWindow registers a weekly open-hours window for the provider.
// Windows must not cross midnight, and a window overlapping another active
// window on the same day must sit on the same slot grid. That keeps every
// pair of overlapping bookings sharing a start value, which is what lets the
// ledger's (providerId, date, start) unique index act as a true exclusion
// constraint.
func (se *DefaultSchedulingEngine) AddWindow(ctx context.Context, providerID string, req CreateWindowRequest) (*models.AvailabilityWindow, error) {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, &InvalidInputError{Field: "dayOfWeek", Reason: "must be between 0 (Monday) and 6 (Sunday)"}
	}
	start, err := utils.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, &InvalidInputError{Field: "startTime", Reason: "must be in HH:MM format"}
	}
	end, err := utils.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, &InvalidInputError{Field: "endTime", Reason: "must be in HH:MM format"}
	}
	if start >= end {
		return nil, &InvalidInputError{Field: "endTime", Reason: "must be after startTime within the same day"}
	}

	existing, err := se.Availability.ListByProviderDay(ctx, providerID, req.DayOfWeek, true)
	if err != nil {
		return nil, err
	}
	for _, w := range existing {
		if start < w.End && end > w.Start && (start-w.Start)%se.SlotDuration != 0 {
			return nil, &InvalidInputError{
				Field:  "startTime",
				Reason: "overlaps an existing window on a different slot grid",
			}
		}
	}

	window := &models.AvailabilityWindow{
		ProviderID: providerID,
		DayOfWeek:  req.DayOfWeek,
		Start:      start,
		End:        end,
		Active:     true,
	}
	if err := se.Availability.Create(ctx, window); err != nil {
		return nil, err
	}
	se.invalidateProviderSlots(ctx, providerID)
	return window, nil
}

// ListWindows returns all of the provider's windows, active and inactive.
func (se *DefaultSchedulingEngine) ListWindows(ctx context.Context, providerID string) ([]models.AvailabilityWindow, error) {
	return se.Availability.ListByProvider(ctx, providerID)
}

// DeactivateWindow soft-disables a window so the day falls back to closed
// (or to the default hours when no other explicit windows remain).
func (se *DefaultSchedulingEngine) DeactivateWindow(ctx context.Context, providerID, windowID string) error {
	err := se.Availability.Deactivate(ctx, providerID, windowID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrWindowNotFound
	}
	if err == nil {
		se.invalidateProviderSlots(ctx, providerID)
	}
	return err
}

// DeleteWindow removes a window permanently.
func (se *DefaultSchedulingEngine) DeleteWindow(ctx context.Context, providerID, windowID string) error {
	err := se.Availability.Delete(ctx, providerID, windowID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrWindowNotFound
	}
	if err == nil {
		se.invalidateProviderSlots(ctx, providerID)
	}
	return err
}
