package table

import (
	"math"
	"strconv"
	"strings"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
)

// ParseInt coerces form input to an int. Anything that does not parse,
// including the empty string, NaN and infinities, becomes 0. A fractional
// input keeps its integer part, the way a leading-digits parse would, and
// values beyond the int range are clamped to it.
func ParseInt(raw string) int {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	f := ParseFloat(raw)
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

// ParseFloat coerces form input to a finite float64, defaulting to 0.
// Out-of-range input such as "1e400" parses to ±Inf and is rejected too.
func ParseFloat(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ParseDay coerces form input to a Date, defaulting to the zero Date.
func ParseDay(raw string) domain.Date {
	d, err := domain.ParseDate(raw)
	if err != nil {
		return domain.Date{}
	}
	return d
}
