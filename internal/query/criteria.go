package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Criteria is a set of optional constraints. Zero-valued fields impose nothing.
type Criteria struct {
	From        string
	To          string
	MaxPrice    *float64
	Category    string
	MinCapacity *int
}

func (c Criteria) IsEmpty() bool {
	return c.From == "" && c.To == "" && c.MaxPrice == nil && c.Category == "" && c.MinCapacity == nil
}

// Matches reports whether r satisfies every supplied constraint.
func (c Criteria) Matches(r Record) bool {
	if c.From != "" && !containsFold(r.Origins(), c.From) {
		return false
	}
	if c.To != "" && !containsFold(r.Destinations(), c.To) {
		return false
	}
	if c.MaxPrice != nil {
		price, ok := r.Amount()
		if !ok || price > *c.MaxPrice {
			return false
		}
	}
	if c.Category != "" {
		class, ok := r.Class()
		if !ok || class != c.Category {
			return false
		}
	}
	if c.MinCapacity != nil {
		seats, ok := r.Seats()
		if !ok || seats < *c.MinCapacity {
			return false
		}
	}
	return true
}

// ParseCriteria reads filter options from query parameters. Both the current names and
// the legacy search-form names (departure, arrival, passengers) are accepted. Values
// that do not parse are dropped rather than reported.
func ParseCriteria(values url.Values) Criteria {
	var c Criteria

	c.From = firstValue(values, "from", "departure")
	c.To = firstValue(values, "to", "arrival")

	if category := firstValue(values, "category"); !strings.EqualFold(category, "all") {
		c.Category = category
	}
	if raw := firstValue(values, "maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			c.MaxPrice = &v
		}
	}
	if raw := firstValue(values, "minCapacity", "passengers"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			c.MinCapacity = &v
		}
	}
	return c
}

func firstValue(values url.Values, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(values.Get(k)); v != "" {
			return v
		}
	}
	return ""
}

func containsFold(fields []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
