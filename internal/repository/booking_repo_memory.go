package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Domenick1991/jetcharter/internal/domain"
)

// MemoryBookingRepository keeps bookings in process. It is used when no database is
// configured; contents are lost on restart.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	nextID   int64
	bookings map[string]domain.Booking
	now      func() time.Time
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{bookings: make(map[string]domain.Booking), now: time.Now}
}

func (r *MemoryBookingRepository) Create(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.Reference]; exists {
		return fmt.Errorf("booking %s already exists", booking.Reference)
	}

	r.nextID++
	booking.ID = r.nextID
	booking.CreatedAt = r.now()
	booking.UpdatedAt = booking.CreatedAt
	r.bookings[booking.Reference] = *booking
	return nil
}

func (r *MemoryBookingRepository) GetByReference(_ context.Context, reference string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[reference]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", reference, domain.ErrNotFound)
	}
	return &b, nil
}

func (r *MemoryBookingRepository) UpdateStatus(_ context.Context, reference string, from []domain.BookingStatus, status domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[reference]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", reference, domain.ErrNotFound)
	}
	if !slices.Contains(from, b.Status) {
		return nil, transitionError(reference, b.Status, status)
	}
	b.Status = status
	b.UpdatedAt = r.now()
	r.bookings[reference] = b
	return &b, nil
}

func (r *MemoryBookingRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings), nil
}

var _ BookingRepository = (*MemoryBookingRepository)(nil)
