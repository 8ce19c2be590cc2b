package domain

import "time"

type BookingStatus string

const (
	BookingStatusRequested BookingStatus = "REQUESTED"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is a charter request submitted from the booking form.
type Booking struct {
	ID         int64         `json:"id"`
	Reference  string        `json:"reference"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone,omitempty"`
	JetID      string        `json:"jetId,omitempty"`
	From       string        `json:"from"`
	To         string        `json:"to"`
	Date       string        `json:"date,omitempty"`
	Passengers int           `json:"passengers"`
	Notes      string        `json:"notes,omitempty"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}
