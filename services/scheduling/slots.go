// File: services/scheduling/slots.go
package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"tutorhive/models"
	"tutorhive/utils"
)

// slotCacheTTL keeps slot reads cheap under browsing load while staying short
// enough that a just-booked slot disappears quickly even without explicit
// invalidation.
const slotCacheTTL = 30 * time.Second

// ComputeSlotsForListing resolves the listing's provider and computes their
// slots for the given date.
func (se *DefaultSchedulingEngine) ComputeSlotsForListing(ctx context.Context, listingID, date string) ([]models.Slot, error) {
	listing, err := se.Listings.GetByID(ctx, listingID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	if !listing.Active {
		return nil, ErrListingNotFound
	}
	return se.ComputeSlots(ctx, listing.ProviderID, date)
}

// ComputeSlots returns every slot on the provider's grid for the given date,
// flagged available or not. A slot is available when it lies inside an open
// window, starts at or after the lead-time cutoff, and overlaps no pending or
// confirmed booking. The result is advisory; admission re-checks everything.
func (se *DefaultSchedulingEngine) ComputeSlots(ctx context.Context, providerID, date string) ([]models.Slot, error) {
	dayStart, err := utils.ParseBookingDate(date, se.location())
	if err != nil {
		return nil, &InvalidInputError{Field: "date", Reason: "must be in YYYY-MM-DD format"}
	}

	if cached, ok := se.cachedSlots(ctx, providerID, date); ok {
		return cached, nil
	}

	source, err := se.resolveAvailability(ctx, providerID, utils.WeekdayMondayZero(dayStart))
	if err != nil {
		return nil, err
	}
	if len(source.Windows) == 0 {
		return []models.Slot{}, nil
	}

	busy, err := se.Bookings.BusyIntervals(ctx, providerID, date, models.BlockingStatuses)
	if err != nil {
		return nil, err
	}

	slots := se.sweepWindows(dayStart, source.Windows, busy)
	se.storeSlots(ctx, providerID, date, slots)
	return slots, nil
}

// sweepWindows walks each window on the fixed grid and flags every candidate.
// Windows may overlap; a slot produced by more than one window is emitted once,
// and an available verdict from any window wins.
func (se *DefaultSchedulingEngine) sweepWindows(dayStart time.Time, windows []models.AvailabilityWindow, busy []models.BusyInterval) []models.Slot {
	cutoff := se.now().In(se.location()).Add(se.LeadTime)
	byStart := make(map[int]models.Slot)

	for _, w := range windows {
		for start := w.Start; start+se.SlotDuration <= w.End; start += se.SlotDuration {
			end := start + se.SlotDuration
			available := !se.tooSoon(dayStart, start, cutoff) && !overlapsAny(busy, start, end)

			if existing, seen := byStart[start]; seen {
				if existing.Available || !available {
					continue
				}
			}
			byStart[start] = models.Slot{
				Start:     start,
				End:       end,
				Value:     utils.FormatTimeOfDay(start),
				Display:   utils.FormatTimeOfDayDisplay(start),
				Available: available,
			}
		}
	}

	slots := make([]models.Slot, 0, len(byStart))
	for _, s := range byStart {
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Start < slots[j].Start })
	return slots
}

// tooSoon reports whether a slot starting at the given minute of dayStart's
// date falls before the lead-time cutoff. Starting exactly at the cutoff is
// allowed.
func (se *DefaultSchedulingEngine) tooSoon(dayStart time.Time, startMinutes int, cutoff time.Time) bool {
	slotStart := dayStart.Add(time.Duration(startMinutes) * time.Minute)
	return slotStart.Before(cutoff)
}

func overlapsAny(busy []models.BusyInterval, start, end int) bool {
	for _, b := range busy {
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}

func slotCacheKey(providerID, date string) string {
	return fmt.Sprintf("slots:%s:%s", providerID, date)
}

func (se *DefaultSchedulingEngine) cachedSlots(ctx context.Context, providerID, date string) ([]models.Slot, bool) {
	if se.Cache == nil {
		return nil, false
	}
	raw, err := se.Cache.Get(ctx, slotCacheKey(providerID, date)).Result()
	if err != nil {
		return nil, false
	}
	var slots []models.Slot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (se *DefaultSchedulingEngine) storeSlots(ctx context.Context, providerID, date string, slots []models.Slot) {
	if se.Cache == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := se.Cache.Set(ctx, slotCacheKey(providerID, date), raw, slotCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache slots", zap.String("providerId", providerID), zap.Error(err))
	}
}

// invalidateSlotCache drops the cached slots for a single provider day,
// called after any booking write touching that day.
func (se *DefaultSchedulingEngine) invalidateSlotCache(ctx context.Context, providerID, date string) {
	if se.Cache == nil {
		return
	}
	if err := se.Cache.Del(ctx, slotCacheKey(providerID, date)).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate slot cache", zap.String("providerId", providerID), zap.Error(err))
	}
}

// invalidateProviderSlots drops every cached day for a provider, used when
// their weekly windows change.
func (se *DefaultSchedulingEngine) invalidateProviderSlots(ctx context.Context, providerID string) {
	if se.Cache == nil {
		return
	}
	iter := se.Cache.Scan(ctx, 0, fmt.Sprintf("slots:%s:*", providerID), 100).Iterator()
	for iter.Next(ctx) {
		se.Cache.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		utils.GetLogger().Warn("Slot cache scan failed", zap.String("providerId", providerID), zap.Error(err))
	}
}
