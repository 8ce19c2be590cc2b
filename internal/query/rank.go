package query

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortNone         SortKey = ""
	SortPriceAsc     SortKey = "price-asc"
	SortDateAsc      SortKey = "date-asc"
	SortDiscountDesc SortKey = "discount-desc"
)

// ParseSortKey maps a sortBy parameter to a key. The short names used by the deals page
// (price, date, discount) are aliases.
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "price-asc", "price":
		return SortPriceAsc, true
	case "date-asc", "date":
		return SortDateAsc, true
	case "discount-desc", "discount":
		return SortDiscountDesc, true
	default:
		return SortNone, false
	}
}

// Rank returns a new slice ordered by key. Sorting is stable and records without a
// usable sort value go last. Unknown keys keep the input order.
func Rank[T Record](records []T, key SortKey) []T {
	switch key {
	case SortPriceAsc:
		return sortByKey(records, func(r T) (float64, bool) {
			return r.Amount()
		}, false)
	case SortDateAsc:
		return sortByKey(records, func(r T) (float64, bool) {
			t, ok := r.DepartsAt()
			return float64(t.UnixMilli()), ok
		}, false)
	case SortDiscountDesc:
		return sortByKey(records, func(r T) (float64, bool) {
			price, ok := r.Amount()
			if !ok {
				return 0, false
			}
			return float64(DiscountPercent(OriginalPrice(r), price)), true
		}, true)
	default:
		out := make([]T, len(records))
		copy(out, records)
		return out
	}
}

type keyed[T any] struct {
	rec T
	key float64
	ok  bool
}

func sortByKey[T Record](records []T, keyOf func(T) (float64, bool), desc bool) []T {
	items := make([]keyed[T], len(records))
	for i, r := range records {
		k, ok := keyOf(r)
		items[i] = keyed[T]{rec: r, key: k, ok: ok}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.ok != b.ok {
			return a.ok
		}
		if !a.ok {
			return false
		}
		if desc {
			return a.key > b.key
		}
		return a.key < b.key
	})

	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out
}
