package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/jetcharter/internal/domain"
)

// BookingRepository persists charter requests. Lookups of unknown references return
// an error wrapping domain.ErrNotFound. UpdateStatus moves a booking to status only if
// its current status is one of from, checked and written atomically; otherwise it
// returns an error wrapping domain.ErrInvalidTransition.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, reference string, from []domain.BookingStatus, status domain.BookingStatus) (*domain.Booking, error)
	Count(ctx context.Context) (int, error)
}

func transitionError(reference string, current, next domain.BookingStatus) error {
	return fmt.Errorf("booking %s is %s and cannot become %s: %w", reference, current, next, domain.ErrInvalidTransition)
}
