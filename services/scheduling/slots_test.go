package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorhive/models"
)

// Monday 2026-09-07, viewed from Tuesday 2026-09-01 noon.
const (
	testProvider = "prov-1"
	testMonday   = "2026-09-07"
)

func newTestEngine(av *fakeAvailabilityRepo, bk *fakeBookingRepo, ls *fakeListingRepo) *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{
		Availability: av,
		Bookings:     bk,
		Listings:     ls,
		SlotDuration: 60,
		LeadTime:     10 * time.Minute,
		DefaultOpen:  &models.OpenHours{Start: 6 * 60, End: 23 * 60},
		Location:     time.UTC,
		Clock: func() time.Time {
			return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		},
	}
}

func addWindow(av *fakeAvailabilityRepo, day, start, end int) {
	av.windows = append(av.windows, models.AvailabilityWindow{
		ID: "w", ProviderID: testProvider, DayOfWeek: day, Start: start, End: end, Active: true,
	})
}

func starts(slots []models.Slot) []int {
	out := make([]int, len(slots))
	for i, s := range slots {
		out[i] = s.Start
	}
	return out
}

func TestComputeSlotsExplicitWindow(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60)
	se := newTestEngine(av, newFakeBookingRepo(), newFakeListingRepo())

	slots, err := se.ComputeSlots(context.Background(), testProvider, testMonday)
	require.NoError(t, err)

	assert.Equal(t, []int{540, 600, 660}, starts(slots))
	for _, s := range slots {
		assert.True(t, s.Available)
		assert.Equal(t, s.Start+60, s.End)
	}
	assert.Equal(t, "09:00", slots[0].Value)
	assert.Equal(t, "9:00 AM", slots[0].Display)
}

func TestComputeSlotsBusyOverlap(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60)
	bk := newFakeBookingRepo()
	require.NoError(t, bk.InsertIfSlotFree(context.Background(), &models.Booking{
		ProviderID: testProvider, Date: testMonday,
		Start: 10 * 60, End: 11 * 60, Status: models.BookingStatusPending,
	}))
	se := newTestEngine(av, bk, newFakeListingRepo())

	slots, err := se.ComputeSlots(context.Background(), testProvider, testMonday)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.True(t, slots[0].Available)  // 9:00
	assert.False(t, slots[1].Available) // 10:00 blocked
	assert.True(t, slots[2].Available)  // 11:00
}

func TestComputeSlotsCancelledNeverBlocks(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60)
	bk := newFakeBookingRepo()
	bk.bookings["b1"] = &models.Booking{
		ID: "b1", ProviderID: testProvider, Date: testMonday,
		Start: 10 * 60, End: 11 * 60, Status: models.BookingStatusCancelled,
	}
	se := newTestEngine(av, bk, newFakeListingRepo())

	slots, err := se.ComputeSlots(context.Background(), testProvider, testMonday)
	require.NoError(t, err)
	for _, s := range slots {
		assert.True(t, s.Available, "slot %s should be free", s.Value)
	}
}

func TestComputeSlotsDefaultWindowFallback(t *testing.T) {
	se := newTestEngine(&fakeAvailabilityRepo{}, newFakeBookingRepo(), newFakeListingRepo())

	slots, err := se.ComputeSlots(context.Background(), testProvider, testMonday)
	require.NoError(t, err)

	// 06:00 through 22:00 starts on the hour.
	require.Len(t, slots, 17)
	assert.Equal(t, 6*60, slots[0].Start)
	assert.Equal(t, 22*60, slots[len(slots)-1].Start)
}

func TestComputeSlotsExplicitWindowsSuppressDefault(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 11*60)
	se := newTestEngine(av, newFakeBookingRepo(), newFakeListingRepo())

	slots, err := se.ComputeSlots(context.Background(), testProvider, testMonday)
	require.NoError(t, err)
	assert.Equal(t, []int{540, 600}, starts(slots))
}

func TestComputeSlotsDefaultDisabledMeansClosed(t *testing.T) {
	se := newTestEngine(&fakeAvailabilityRepo{}, newFakeBookingRepo(), newFakeListingRepo())
	se.DefaultOpen = nil

	slots, err := se.ComputeSlots(context.Background(), testProvider, testMonday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeSlotsInactiveWindowIgnored(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	av.windows = append(av.windows, models.AvailabilityWindow{
		ID: "w1", ProviderID: testProvider, DayOfWeek: 0, Start: 9 * 60, End: 12 * 60, Active: false,
	})
	se := newTestEngine(av, newFakeBookingRepo(), newFakeListingRepo())
	se.DefaultOpen = nil

	slots, err := se.ComputeSlots(context.Background(), testProvider, testMonday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeSlotsOverlappingWindowsDedup(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60)
	addWindow(av, 0, 10*60, 13*60)
	se := newTestEngine(av, newFakeBookingRepo(), newFakeListingRepo())

	slots, err := se.ComputeSlots(context.Background(), testProvider, testMonday)
	require.NoError(t, err)
	assert.Equal(t, []int{540, 600, 660, 720}, starts(slots))
}

func TestComputeSlotsGridAnchoredToWindowStart(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60+30, 11*60+30)
	se := newTestEngine(av, newFakeBookingRepo(), newFakeListingRepo())

	slots, err := se.ComputeSlots(context.Background(), testProvider, testMonday)
	require.NoError(t, err)
	assert.Equal(t, []int{570, 630}, starts(slots))
	assert.Equal(t, "09:30", slots[0].Value)
}

func TestComputeSlotsIdempotent(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60)
	se := newTestEngine(av, newFakeBookingRepo(), newFakeListingRepo())

	first, err := se.ComputeSlots(context.Background(), testProvider, testMonday)
	require.NoError(t, err)
	second, err := se.ComputeSlots(context.Background(), testProvider, testMonday)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeSlotsPastDateAllUnavailable(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60) // 2026-08-31 is also a Monday
	se := newTestEngine(av, newFakeBookingRepo(), newFakeListingRepo())

	slots, err := se.ComputeSlots(context.Background(), testProvider, "2026-08-31")
	require.NoError(t, err)
	require.Len(t, slots, 3)
	for _, s := range slots {
		assert.False(t, s.Available)
	}
}

func TestComputeSlotsLeadTimeBoundary(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60)
	se := newTestEngine(av, newFakeBookingRepo(), newFakeListingRepo())

	// 09:50 plus the 10 minute lead time puts the cutoff exactly at 10:00.
	se.Clock = func() time.Time {
		return time.Date(2026, 9, 7, 9, 50, 0, 0, time.UTC)
	}
	slots, err := se.ComputeSlots(context.Background(), testProvider, testMonday)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.False(t, slots[0].Available, "9:00 already underway")
	assert.True(t, slots[1].Available, "10:00 starts exactly at the cutoff")
	assert.True(t, slots[2].Available)

	// One minute later the 10:00 slot falls inside the lead window.
	se.Clock = func() time.Time {
		return time.Date(2026, 9, 7, 9, 51, 0, 0, time.UTC)
	}
	slots, err = se.ComputeSlots(context.Background(), testProvider, testMonday)
	require.NoError(t, err)
	assert.False(t, slots[1].Available)
}

func TestComputeSlotsBadDate(t *testing.T) {
	se := newTestEngine(&fakeAvailabilityRepo{}, newFakeBookingRepo(), newFakeListingRepo())

	_, err := se.ComputeSlots(context.Background(), testProvider, "07-09-2026")
	_, ok := AsInvalidInput(err)
	assert.True(t, ok)
}

func TestComputeSlotsForListing(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 11*60)
	ls := newFakeListingRepo()
	require.NoError(t, ls.Create(context.Background(), &models.Listing{
		ID: "l1", ProviderID: testProvider, Active: true,
	}))
	se := newTestEngine(av, newFakeBookingRepo(), ls)

	slots, err := se.ComputeSlotsForListing(context.Background(), "l1", testMonday)
	require.NoError(t, err)
	assert.Len(t, slots, 2)

	_, err = se.ComputeSlotsForListing(context.Background(), "missing", testMonday)
	assert.ErrorIs(t, err, ErrListingNotFound)
}
