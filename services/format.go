package services

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayout is how expiry dates are rendered everywhere the data leaves the
// pipeline (views, CSV, Excel, PDF).
const dateLayout = "02/01/2006"

// FormatQuantity renders a quantity with thousands separators. Whole numbers
// drop the decimal part; fractional quantities keep two places.
func FormatQuantity(qty float64) string {
	negative := false
	if qty < 0 {
		negative = true
		qty = -qty
	}

	// Round to two places, then render with minimal digits.
	qty = math.Round(qty*100) / 100
	raw := strconv.FormatFloat(qty, 'f', -1, 64)
	parts := strings.SplitN(raw, ".", 2)
	result := groupThousands(parts[0])

	if len(parts) == 2 {
		result += "." + parts[1]
	}
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

// FormatExpiry renders an expiry date, or the empty string for an unknown
// one. Views substitute their own placeholder for blanks.
func FormatExpiry(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
