package scheduling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorhive/models"
)

func setupBooked(t *testing.T) (*DefaultSchedulingEngine, *models.Booking) {
	t.Helper()
	av := &fakeAvailabilityRepo{}
	addWindow(av, 0, 9*60, 12*60)
	ls := newFakeListingRepo()
	seedListing(t, ls)
	se := newTestEngine(av, newFakeBookingRepo(), ls)

	b, err := se.SubmitBooking(context.Background(), bookingReq("10:00"))
	require.NoError(t, err)
	return se, b
}

func TestConfirmBooking(t *testing.T) {
	se, b := setupBooked(t)

	confirmed, err := se.ConfirmBooking(context.Background(), testProvider, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)

	// A second confirm is a conflict, not a silent success.
	_, err = se.ConfirmBooking(context.Background(), testProvider, b.ID)
	_, ok := AsConflict(err)
	assert.True(t, ok)
}

func TestConfirmBookingOnlyProvider(t *testing.T) {
	se, b := setupBooked(t)

	_, err := se.ConfirmBooking(context.Background(), "student-1", b.ID)
	assert.ErrorIs(t, err, ErrNotAllowed)

	_, err = se.ConfirmBooking(context.Background(), testProvider, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelBookingRules(t *testing.T) {
	se, b := setupBooked(t)

	// A stranger cannot cancel.
	err := se.CancelBooking(context.Background(), "someone-else", b.ID)
	assert.ErrorIs(t, err, ErrNotAllowed)

	// The student can cancel while pending.
	require.NoError(t, se.CancelBooking(context.Background(), "student-1", b.ID))

	got, err := se.Bookings.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, got.Status)
}

func TestCancelConfirmedBookingStudentBlocked(t *testing.T) {
	se, b := setupBooked(t)
	_, err := se.ConfirmBooking(context.Background(), testProvider, b.ID)
	require.NoError(t, err)

	err = se.CancelBooking(context.Background(), "student-1", b.ID)
	_, ok := AsConflict(err)
	assert.True(t, ok)

	// The provider still can.
	require.NoError(t, se.CancelBooking(context.Background(), testProvider, b.ID))
}

func TestMarkCompleteBothSidesCloseBooking(t *testing.T) {
	se, b := setupBooked(t)

	// Completion requires a confirmed booking.
	_, err := se.MarkComplete(context.Background(), testProvider, b.ID)
	_, ok := AsConflict(err)
	require.True(t, ok)

	_, err = se.ConfirmBooking(context.Background(), testProvider, b.ID)
	require.NoError(t, err)

	half, err := se.MarkComplete(context.Background(), testProvider, b.ID)
	require.NoError(t, err)
	assert.True(t, half.TutorMarkedComplete)
	assert.False(t, half.StudentMarkedComplete)
	assert.Equal(t, models.BookingStatusConfirmed, half.Status)

	done, err := se.MarkComplete(context.Background(), "student-1", b.ID)
	require.NoError(t, err)
	assert.True(t, done.StudentMarkedComplete)
	assert.Equal(t, models.BookingStatusCompleted, done.Status)
}

func TestAddWindowValidation(t *testing.T) {
	se := newTestEngine(&fakeAvailabilityRepo{}, newFakeBookingRepo(), newFakeListingRepo())

	w, err := se.AddWindow(context.Background(), testProvider, CreateWindowRequest{
		DayOfWeek: 0, StartTime: "09:00", EndTime: "12:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 540, w.Start)
	assert.Equal(t, 720, w.End)
	assert.True(t, w.Active)

	cases := []CreateWindowRequest{
		{DayOfWeek: 7, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 0, StartTime: "9am", EndTime: "12:00"},
		{DayOfWeek: 0, StartTime: "09:00", EndTime: "noon"},
		{DayOfWeek: 0, StartTime: "12:00", EndTime: "09:00"}, // midnight crossing
		{DayOfWeek: 0, StartTime: "09:00", EndTime: "09:00"},
	}
	for _, c := range cases {
		_, err := se.AddWindow(context.Background(), testProvider, c)
		_, ok := AsInvalidInput(err)
		assert.True(t, ok, "expected validation error for %+v", c)
	}
}

func TestAddWindowOverlapGridAlignment(t *testing.T) {
	se := newTestEngine(&fakeAvailabilityRepo{}, newFakeBookingRepo(), newFakeListingRepo())
	ctx := context.Background()

	_, err := se.AddWindow(ctx, testProvider, CreateWindowRequest{
		DayOfWeek: 0, StartTime: "09:00", EndTime: "12:00",
	})
	require.NoError(t, err)

	// An overlapping window on a shifted grid would admit two bookings that
	// overlap without sharing a start, sidestepping the ledger's exclusion
	// index. Rejected at creation.
	_, err = se.AddWindow(ctx, testProvider, CreateWindowRequest{
		DayOfWeek: 0, StartTime: "09:30", EndTime: "12:30",
	})
	inv, ok := AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, "startTime", inv.Field)

	// Overlap on the same grid is fine.
	_, err = se.AddWindow(ctx, testProvider, CreateWindowRequest{
		DayOfWeek: 0, StartTime: "10:00", EndTime: "13:00",
	})
	require.NoError(t, err)

	// Disjoint windows may sit on any grid; bookings never span windows.
	_, err = se.AddWindow(ctx, testProvider, CreateWindowRequest{
		DayOfWeek: 0, StartTime: "13:30", EndTime: "15:30",
	})
	require.NoError(t, err)

	// Other days are independent.
	_, err = se.AddWindow(ctx, testProvider, CreateWindowRequest{
		DayOfWeek: 1, StartTime: "09:30", EndTime: "12:30",
	})
	require.NoError(t, err)
}

func TestDeactivateWindowFallsBackToDefault(t *testing.T) {
	av := &fakeAvailabilityRepo{}
	se := newTestEngine(av, newFakeBookingRepo(), newFakeListingRepo())

	w, err := se.AddWindow(context.Background(), testProvider, CreateWindowRequest{
		DayOfWeek: 0, StartTime: "09:00", EndTime: "11:00",
	})
	require.NoError(t, err)

	slots, err := se.ComputeSlots(context.Background(), testProvider, testMonday)
	require.NoError(t, err)
	assert.Len(t, slots, 2)

	require.NoError(t, se.DeactivateWindow(context.Background(), testProvider, w.ID))

	slots, err = se.ComputeSlots(context.Background(), testProvider, testMonday)
	require.NoError(t, err)
	assert.Len(t, slots, 17, "default hours apply once no explicit windows remain")

	assert.ErrorIs(t, se.DeactivateWindow(context.Background(), testProvider, "missing"), ErrWindowNotFound)
	assert.ErrorIs(t, se.DeleteWindow(context.Background(), "other", w.ID), ErrWindowNotFound)
}
