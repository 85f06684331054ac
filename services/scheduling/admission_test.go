package scheduling

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorhive/models"
)

func seedListing(t *testing.T, ls *fakeListingRepo) {
	t.Helper()
	require.NoError(t, ls.Create(context.Background(), &models.Listing{
		ID: "l1", ProviderID: testProvider, Active: true,
	}))
}

func bookingReq(start string) SubmitBookingRequest {
	return SubmitBookingRequest{
		ListingID: "l1",
		StudentID: "student-1",
		Date:      testMonday,
		StartTime: start,
	}
}

func TestSubmitBookingHappyPath(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60)
	ls := newFakeListingRepo()
	seedListing(t, ls)
	bk := newFakeBookingRepo()
	se := newTestEngine(av, bk, ls)

	b, err := se.SubmitBooking(context.Background(), bookingReq("10:00"))
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, testProvider, b.ProviderID)
	assert.Equal(t, "student-1", b.StudentID)
	assert.Equal(t, 600, b.Start)
	assert.Equal(t, 660, b.End)
	assert.Equal(t, 60, b.DurationMinutes)
	assert.Equal(t, models.BookingStatusPending, b.Status)
}

func TestSubmitBookingListingMissingOrInactive(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	ls := newFakeListingRepo()
	require.NoError(t, ls.Create(context.Background(), &models.Listing{
		ID: "l1", ProviderID: testProvider, Active: false,
	}))
	se := newTestEngine(av, newFakeBookingRepo(), ls)

	_, err := se.SubmitBooking(context.Background(), bookingReq("10:00"))
	assert.ErrorIs(t, err, ErrListingNotFound)

	req := bookingReq("10:00")
	req.ListingID = "nope"
	_, err = se.SubmitBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestSubmitBookingOwnListingRejected(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60)
	ls := newFakeListingRepo()
	seedListing(t, ls)
	se := newTestEngine(av, newFakeBookingRepo(), ls)

	req := bookingReq("10:00")
	req.StudentID = testProvider
	_, err := se.SubmitBooking(context.Background(), req)
	_, ok := AsConflict(err)
	assert.True(t, ok)
}

func TestSubmitBookingOutsideOpenHours(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60)
	ls := newFakeListingRepo()
	seedListing(t, ls)
	se := newTestEngine(av, newFakeBookingRepo(), ls)

	_, err := se.SubmitBooking(context.Background(), bookingReq("14:00"))
	_, ok := AsConflict(err)
	assert.True(t, ok)

	// The last grid start is 11:00; 11:30 would run past the window edge.
	_, err = se.SubmitBooking(context.Background(), bookingReq("11:30"))
	assert.Error(t, err)
}

func TestSubmitBookingOffGrid(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60)
	ls := newFakeListingRepo()
	seedListing(t, ls)
	se := newTestEngine(av, newFakeBookingRepo(), ls)

	_, err := se.SubmitBooking(context.Background(), bookingReq("10:15"))
	ie, ok := AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, "startTime", ie.Field)
}

func TestSubmitBookingLeadTimeCutoff(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60)
	ls := newFakeListingRepo()
	seedListing(t, ls)
	se := newTestEngine(av, newFakeBookingRepo(), ls)
	se.Clock = func() time.Time {
		return time.Date(2026, 9, 7, 9, 55, 0, 0, time.UTC)
	}

	// 10:00 is only five minutes out, inside the ten minute lead window.
	_, err := se.SubmitBooking(context.Background(), bookingReq("10:00"))
	_, ok := AsConflict(err)
	assert.True(t, ok)

	// 11:00 clears the cutoff.
	_, err = se.SubmitBooking(context.Background(), bookingReq("11:00"))
	assert.NoError(t, err)
}

func TestSubmitBookingSlotTakenMapsToConflict(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60)
	ls := newFakeListingRepo()
	seedListing(t, ls)
	se := newTestEngine(av, newFakeBookingRepo(), ls)

	_, err := se.SubmitBooking(context.Background(), bookingReq("10:00"))
	require.NoError(t, err)

	req := bookingReq("10:00")
	req.StudentID = "student-2"
	_, err = se.SubmitBooking(context.Background(), req)
	_, ok := AsConflict(err)
	assert.True(t, ok)
}

func TestSubmitBookingCancelledSlotReopens(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60)
	ls := newFakeListingRepo()
	seedListing(t, ls)
	bk := newFakeBookingRepo()
	se := newTestEngine(av, bk, ls)

	first, err := se.SubmitBooking(context.Background(), bookingReq("10:00"))
	require.NoError(t, err)
	require.NoError(t, se.CancelBooking(context.Background(), "student-1", first.ID))

	req := bookingReq("10:00")
	req.StudentID = "student-2"
	second, err := se.SubmitBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "student-2", second.StudentID)
}

func TestSubmitBookingConcurrentOneWinner(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60)
	ls := newFakeListingRepo()
	seedListing(t, ls)
	bk := newFakeBookingRepo()
	se := newTestEngine(av, bk, ls)

	const racers = 25
	var wg sync.WaitGroup
	results := make(chan error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			req := bookingReq("10:00")
			req.StudentID = "student-" + string(rune('a'+n%26))
			_, err := se.SubmitBooking(context.Background(), req)
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	wins, conflicts := 0, 0
	for err := range results {
		switch {
		case err == nil:
			wins++
		default:
			_, ok := AsConflict(err)
			require.True(t, ok, "unexpected error: %v", err)
			conflicts++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, racers-1, conflicts)

	intervals, err := bk.BusyIntervals(context.Background(), testProvider, testMonday, models.BlockingStatuses)
	require.NoError(t, err)
	assert.Len(t, intervals, 1)
}

func TestSubmitBookingBadInputs(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60)
	ls := newFakeListingRepo()
	seedListing(t, ls)
	se := newTestEngine(av, newFakeBookingRepo(), ls)

	req := bookingReq("10:00")
	req.Date = "next tuesday"
	_, err := se.SubmitBooking(context.Background(), req)
	ie, ok := AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, "date", ie.Field)

	req = bookingReq("25:99")
	_, err = se.SubmitBooking(context.Background(), req)
	ie, ok = AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, "startTime", ie.Field)
}
