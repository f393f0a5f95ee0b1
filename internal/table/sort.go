package table

import (
	"slices"
	"strings"
)

// Direction is the sort direction of a view.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func (d Direction) String() string { return string(d) }

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool {
	return d == Asc || d == Desc
}

// ParseDirection maps user input to a Direction. Anything other than
// "desc" (case-insensitive) is ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// SortState is the current sort key and direction of a view. An empty Key
// keeps input order.
type SortState struct {
	Key string    `json:"key"`
	Dir Direction `json:"dir"`
}

// Toggle returns the state after a header click on key: the same key flips
// direction, a different key starts ascending.
func (s SortState) Toggle(key string) SortState {
	if s.Key == key {
		if s.Dir == Desc {
			return SortState{Key: key, Dir: Asc}
		}
		return SortState{Key: key, Dir: Desc}
	}
	return SortState{Key: key, Dir: Asc}
}

// Sort returns a stably sorted copy of records ordered by field. Records
// with equal keys keep their relative input order in both directions.
func Sort[T any](records []T, field Field[T], dir Direction) []T {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b T) int {
		c := Compare(field.Get(a), field.Get(b))
		if dir == Desc {
			return -c
		}
		return c
	})
	return out
}
