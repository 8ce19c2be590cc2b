package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/jetcharter/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, reference, name, email, phone, jet_id, from_city, to_city, travel_date, passengers, notes, status, created_at, updated_at`

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := r.db.QueryRow(ctx, `INSERT INTO bookings (reference, name, email, phone, jet_id, from_city, to_city, travel_date, passengers, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`,
		booking.Reference, booking.Name, booking.Email, booking.Phone, booking.JetID, booking.From, booking.To,
		booking.Date, booking.Passengers, booking.Notes, booking.Status).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *PGBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE reference=$1`, reference)
	return scanBooking(row, reference)
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, reference string, from []domain.BookingStatus, status domain.BookingStatus) (*domain.Booking, error) {
	allowed := make([]string, len(from))
	for i, st := range from {
		allowed[i] = string(st)
	}
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now()
		WHERE reference=$2 AND status = ANY($3)
		RETURNING `+bookingColumns, string(status), reference, allowed)
	updated, err := scanBooking(row, reference)
	if !errors.Is(err, domain.ErrNotFound) {
		return updated, err
	}

	// No row matched: either the booking is missing or its status forbids the move.
	current, err := r.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	return nil, transitionError(reference, current.Status, status)
}

func (r *PGBookingRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM bookings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

func scanBooking(row pgx.Row, reference string) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.Reference, &b.Name, &b.Email, &b.Phone, &b.JetID, &b.From, &b.To,
		&b.Date, &b.Passengers, &b.Notes, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("booking %s: %w", reference, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan booking %s: %w", reference, err)
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
