// Package entity holds the per-entity configuration of the generic table
// engine: field schemas, searchable keys and export columns.
package entity

import (
	"strings"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/heartmarshall/premier-dashboard/internal/export"
	"github.com/heartmarshall/premier-dashboard/internal/table"
)

// enumKey normalises raw enum input: trimmed and upper-cased.
func enumKey(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func idField[T any](id func(T) domain.ID) table.Field[T] {
	return table.Field[T]{
		Key:  "id",
		Kind: table.KindNumber,
		Get:  func(r T) table.Value { return table.Int(int(id(r))) },
	}
}

func textField[T any](key string, get func(T) string, set func(*T, string)) table.Field[T] {
	return table.Field[T]{
		Key:  key,
		Kind: table.KindString,
		Get:  func(r T) table.Value { return table.Str(get(r)) },
		Set:  set,
	}
}

// enumField is a text field whose search also matches the translated labels
// of its value, looked up under prefix+value.
func enumField[T any](key, prefix string, get func(T) string, set func(*T, string)) table.Field[T] {
	f := textField(key, get, set)
	f.Match = func(r T) string {
		v := get(r)
		if v == "" {
			return ""
		}
		return strings.Join(append([]string{v}, export.LabelsOf(prefix+v)...), "\n")
	}
	return f
}

func intField[T any](key string, get func(T) int, set func(*T, int)) table.Field[T] {
	f := table.Field[T]{
		Key:  key,
		Kind: table.KindNumber,
		Get:  func(r T) table.Value { return table.Int(get(r)) },
	}
	if set != nil {
		f.Set = func(r *T, raw string) { set(r, table.ParseInt(raw)) }
	}
	return f
}

func floatField[T any](key string, get func(T) float64, set func(*T, float64)) table.Field[T] {
	f := table.Field[T]{
		Key:  key,
		Kind: table.KindNumber,
		Get:  func(r T) table.Value { return table.Num(get(r)) },
	}
	if set != nil {
		f.Set = func(r *T, raw string) { set(r, table.ParseFloat(raw)) }
	}
	return f
}

func dateField[T any](key string, get func(T) domain.Date, set func(*T, domain.Date)) table.Field[T] {
	return table.Field[T]{
		Key:  key,
		Kind: table.KindDate,
		Get:  func(r T) table.Value { return table.Day(get(r)) },
		Set:  func(r *T, raw string) { set(r, table.ParseDay(raw)) },
	}
}
