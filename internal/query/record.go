// Package query narrows and orders flight and deal collections and derives the
// display metrics shown beside each result.
package query

import "time"

// Record is the read-only view the engines need from a flight or deal. Every accessor
// that can be absent reports it through its second return value.
type Record interface {
	Origins() []string
	Destinations() []string
	Amount() (float64, bool)
	OriginalAmount() (float64, bool)
	Class() (string, bool)
	Seats() (int, bool)
	DepartsAt() (time.Time, bool)
}
