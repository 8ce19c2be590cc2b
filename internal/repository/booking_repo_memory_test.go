package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/Domenick1991/jetcharter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBookingRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	b := &domain.Booking{Reference: "ref-1", Name: "Ada", Email: "ada@example.com", From: "New York", To: "Miami", Status: domain.BookingStatusRequested}
	require.NoError(t, repo.Create(ctx, b))
	assert.Equal(t, int64(1), b.ID)
	assert.False(t, b.CreatedAt.IsZero())

	got, err := repo.GetByReference(ctx, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, *b, *got)

	assert.Error(t, repo.Create(ctx, &domain.Booking{Reference: "ref-1"}))
}

func TestMemoryBookingRepository_NotFound(t *testing.T) {
	repo := NewMemoryBookingRepository()

	_, err := repo.GetByReference(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.UpdateStatus(context.Background(), "missing", []domain.BookingStatus{domain.BookingStatusRequested}, domain.BookingStatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryBookingRepository_UpdateStatus(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &domain.Booking{Reference: "ref-1", Status: domain.BookingStatusRequested}))

	updated, err := repo.UpdateStatus(ctx, "ref-1", []domain.BookingStatus{domain.BookingStatusRequested}, domain.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, updated.Status)

	got, err := repo.GetByReference(ctx, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
}

func TestMemoryBookingRepository_ConcurrentCreate(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(ctx, &domain.Booking{Reference: fmt.Sprintf("ref-%d", i)})
		}(i)
	}
	wg.Wait()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, n)
}

func TestMemoryBookingRepository_UpdateStatusRejectsDisallowedSource(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &domain.Booking{Reference: "ref-1", Status: domain.BookingStatusCancelled}))

	_, err := repo.UpdateStatus(ctx, "ref-1", []domain.BookingStatus{domain.BookingStatusRequested}, domain.BookingStatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "is CANCELLED")

	got, err := repo.GetByReference(ctx, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
}

func TestMemoryBookingRepository_ConcurrentTransitions(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &domain.Booking{Reference: "ref-1", Status: domain.BookingStatusRequested}))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.UpdateStatus(ctx, "ref-1", []domain.BookingStatus{domain.BookingStatusRequested}, domain.BookingStatusConfirmed)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}
