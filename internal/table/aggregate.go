package table

import (
	"cmp"

	"github.com/shopspring/decimal"
)

// Count returns how many records satisfy pred.
func Count[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, rec := range records {
		if pred(rec) {
			n++
		}
	}
	return n
}

// Sum adds up fn over records using decimal arithmetic.
func Sum[T any](records []T, fn func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(fn(rec))
	}
	return total
}

// MaxBy returns the record with the largest key. The first one wins on ties.
// ok is false for an empty slice.
func MaxBy[T any, K cmp.Ordered](records []T, key func(T) K) (best T, ok bool) {
	for i, rec := range records {
		if i == 0 || key(rec) > key(best) {
			best = rec
		}
	}
	return best, len(records) > 0
}

// MinBy returns the record with the smallest key. The first one wins on ties.
func MinBy[T any, K cmp.Ordered](records []T, key func(T) K) (best T, ok bool) {
	for i, rec := range records {
		if i == 0 || key(rec) < key(best) {
			best = rec
		}
	}
	return best, len(records) > 0
}

// Distinct counts the distinct keys across records.
func Distinct[T any, K comparable](records []T, key func(T) K) int {
	seen := make(map[K]struct{}, len(records))
	for _, rec := range records {
		seen[key(rec)] = struct{}{}
	}
	return len(seen)
}
