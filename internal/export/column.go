package export

import (
	"fmt"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// Format controls how a column value is written to a cell.
type Format int

const (
	// Text writes the value as a string.
	Text Format = iota
	// Integer writes a numeric cell.
	Integer
	// Currency writes the value with exactly two decimals.
	Currency
	// Date writes a domain.Date in the export locale.
	Date
	// Label treats the value as a message key and writes its translation.
	Label
)

// Column describes one exported column of T.
type Column[T any] struct {
	// Header is the message key of the column title.
	Header string
	Format Format
	// Width is the column width in characters. Zero keeps the default.
	Width float64
	Value func(T) any
}

func (l *Localizer) cell(format Format, v any) any {
	switch format {
	case Integer:
		switch n := v.(type) {
		case domain.ID:
			return int64(n)
		default:
			return v
		}

	case Currency:
		switch n := v.(type) {
		case float64:
			return decimal.NewFromFloat(n).StringFixed(2)
		case decimal.Decimal:
			return n.StringFixed(2)
		case int:
			return decimal.NewFromInt(int64(n)).StringFixed(2)
		}

	case Date:
		if d, ok := v.(domain.Date); ok {
			return l.Date(d)
		}

	case Label:
		if key, ok := v.(string); ok {
			if key == "" {
				return ""
			}
			return l.Label(key)
		}
	}

	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
