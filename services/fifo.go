package services

import (
	"sort"
	"time"
)

// SortFIFO returns a new slice ordered for first-expired-first-out picking:
// component ascending, then expiration date ascending with nil expiries last,
// then original row order. The input slice is left untouched.
func SortFIFO(lines []ComponentLine) []ComponentLine {
	sorted := make([]ComponentLine, len(lines))
	copy(sorted, lines)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Component != b.Component {
			return a.Component < b.Component
		}
		return expiresBefore(a.Expiry, b.Expiry)
	})

	return sorted
}

// expiresBefore orders two expiry dates with nil (unknown) last. An unknown
// expiry must not be prioritized over a batch with a known date.
func expiresBefore(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Before(*b)
	}
}
