package domain

import "time"

// DealRecord is a discounted charter offer. Route endpoints are free text, not airport codes.
type DealRecord struct {
	ID    int     `json:"id"`
	JetID int     `json:"jetId"`
	From  string  `json:"from"`
	To    string  `json:"to"`
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

func (d DealRecord) Origins() []string {
	return nonEmpty(d.From)
}

func (d DealRecord) Destinations() []string {
	return nonEmpty(d.To)
}

func (d DealRecord) Amount() (float64, bool) {
	return d.Price, true
}

func (d DealRecord) OriginalAmount() (float64, bool) {
	return 0, false
}

func (d DealRecord) Class() (string, bool) {
	return "", false
}

func (d DealRecord) Seats() (int, bool) {
	return 0, false
}

func (d DealRecord) DepartsAt() (time.Time, bool) {
	return ParseTimestamp(d.Date)
}
