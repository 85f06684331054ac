package scheduling

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	bookingRepo "tutorhive/database/repository/booking"
	"tutorhive/models"
)

// In-memory repository stand-ins. The booking fake reproduces the ledger's
// admission semantics, including the serialized overlap check, so concurrency
// behavior can be exercised without a database.

type fakeAvailabilityRepo struct {
	mu      sync.Mutex
	windows []models.AvailabilityWindow
}

func (f *fakeAvailabilityRepo) Create(_ context.Context, w *models.AvailabilityWindow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	f.windows = append(f.windows, *w)
	return nil
}

func (f *fakeAvailabilityRepo) ListByProviderDay(_ context.Context, providerID string, dayOfWeek int, activeOnly bool) ([]models.AvailabilityWindow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AvailabilityWindow
	for _, w := range f.windows {
		if w.ProviderID != providerID || w.DayOfWeek != dayOfWeek {
			continue
		}
		if activeOnly && !w.Active {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) ListByProvider(_ context.Context, providerID string) ([]models.AvailabilityWindow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AvailabilityWindow
	for _, w := range f.windows {
		if w.ProviderID == providerID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) Deactivate(_ context.Context, providerID, windowID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.windows {
		if f.windows[i].ID == windowID && f.windows[i].ProviderID == providerID {
			f.windows[i].Active = false
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeAvailabilityRepo) Delete(_ context.Context, providerID, windowID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.windows {
		if f.windows[i].ID == windowID && f.windows[i].ProviderID == providerID {
			f.windows = append(f.windows[:i], f.windows[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func blocking(status string) bool {
	for _, s := range models.BlockingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (f *fakeBookingRepo) InsertIfSlotFree(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.bookings {
		if existing.ProviderID != b.ProviderID || existing.Date != b.Date || !blocking(existing.Status) {
			continue
		}
		if b.Start < existing.End && b.End > existing.Start {
			return bookingRepo.ErrSlotTaken
		}
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) BusyIntervals(_ context.Context, providerID, date string, statuses []string) ([]models.BusyInterval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.BusyInterval
	for _, b := range f.bookings {
		if b.ProviderID != providerID || b.Date != date {
			continue
		}
		for _, s := range statuses {
			if b.Status == s {
				out = append(out, models.BusyInterval{Start: b.Start, End: b.End})
				break
			}
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByProvider(_ context.Context, providerID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProviderID == providerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByStudent(_ context.Context, studentID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.StudentID == studentID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) MarkComplete(_ context.Context, id string, byProvider bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if byProvider {
		b.TutorMarkedComplete = true
	} else {
		b.StudentMarkedComplete = true
	}
	return nil
}

type fakeListingRepo struct {
	mu       sync.Mutex
	listings map[string]*models.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[string]*models.Listing)}
}

func (f *fakeListingRepo) Create(_ context.Context, l *models.Listing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	cp := *l
	f.listings[l.ID] = &cp
	return nil
}

func (f *fakeListingRepo) GetByID(_ context.Context, id string) (*models.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.listings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *l
	return &cp, nil
}

func (f *fakeListingRepo) List(_ context.Context, _ models.ListingFilter) ([]models.Listing, int64, error) {
	return nil, 0, nil
}

func (f *fakeListingRepo) ListByProvider(_ context.Context, _ string) ([]models.Listing, error) {
	return nil, nil
}

func (f *fakeListingRepo) CountByProvider(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func (f *fakeListingRepo) Delete(_ context.Context, _, _ string) error {
	return nil
}
