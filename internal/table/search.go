package table

import (
	"slices"
	"strings"
)

// Filter keeps the records where at least one of fields contains query,
// ignoring case. An empty query returns records unchanged.
func Filter[T any](records []T, query string, fields []Field[T]) []T {
	if query == "" {
		return records
	}

	needle := strings.ToLower(query)
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if slices.ContainsFunc(fields, func(f Field[T]) bool {
			return strings.Contains(strings.ToLower(f.matchText(rec)), needle)
		}) {
			out = append(out, rec)
		}
	}
	return out
}
