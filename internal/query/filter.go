package query

// Filter returns the records matching every criterion in c, in their original order.
// A nil input yields an empty, non-nil result.
func Filter[T Record](records []T, c Criteria) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
