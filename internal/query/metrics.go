package query

import (
	"fmt"
	"math"
	"time"
)

// SyntheticMarkup stands in for a historical price when a record has none.
const SyntheticMarkup = 1.5

const (
	BadgeExclusive   = "exclusive"
	BadgeLimitedTime = "limited-time"
)

// Metrics are computed per query and never stored.
type Metrics struct {
	OriginalPrice   float64 `json:"originalPrice"`
	DiscountPercent int     `json:"discountPercent"`
	Savings         float64 `json:"savings"`
	HoursRemaining  int     `json:"hoursRemaining"`
	TimeRemaining   string  `json:"timeRemaining"`
	Badge           string  `json:"badge,omitempty"`
}

// Derive computes the display metrics of r relative to now.
func Derive(r Record, now time.Time) Metrics {
	var m Metrics
	if price, ok := r.Amount(); ok {
		m.OriginalPrice = OriginalPrice(r)
		m.DiscountPercent = DiscountPercent(m.OriginalPrice, price)
		m.Savings = m.OriginalPrice - price
		m.Badge = Badge(m.DiscountPercent)
	}
	departs, ok := r.DepartsAt()
	if ok {
		m.HoursRemaining = HoursRemaining(departs, now)
	}
	m.TimeRemaining = FormatTimeRemaining(m.HoursRemaining)
	return m
}

// OriginalPrice returns the record's real pre-discount price, or the synthetic markup of
// its current price. Records without a price report 0.
func OriginalPrice(r Record) float64 {
	if orig, ok := r.OriginalAmount(); ok {
		return orig
	}
	price, ok := r.Amount()
	if !ok {
		return 0
	}
	return price * SyntheticMarkup
}

// DiscountPercent rounds half up, as the booking pages always have. A non-positive
// original price has no meaningful discount and yields 0.
func DiscountPercent(original, price float64) int {
	if original <= 0 {
		return 0
	}
	return int(math.Floor((original-price)/original*100 + 0.5))
}

func HoursRemaining(departs, now time.Time) int {
	hours := math.Floor(departs.Sub(now).Hours())
	if hours < 0 {
		return 0
	}
	return int(hours)
}

func FormatTimeRemaining(hours int) string {
	if hours < 24 {
		return fmt.Sprintf("%dh remaining", hours)
	}
	return fmt.Sprintf("%dd remaining", hours/24)
}

func Badge(discount int) string {
	switch {
	case discount >= 50:
		return BadgeExclusive
	case discount >= 30:
		return BadgeLimitedTime
	default:
		return ""
	}
}
