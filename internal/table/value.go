package table

import (
	"cmp"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
)

// Kind selects the native ordering used when comparing values of a field.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	default:
		return "string"
	}
}

// Value is a scalar field value: exactly one of Str, Num or Time is
// meaningful, depending on Kind.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Time time.Time
}

// Str wraps a string value.
func Str(s string) Value { return Value{Kind: KindString, Str: s} }

// Num wraps a numeric value.
func Num(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// Int wraps an integer value.
func Int(n int) Value { return Num(float64(n)) }

// Day wraps a calendar date.
func Day(d domain.Date) Value { return Value{Kind: KindDate, Time: d.Time} }

// Text renders the value the way search sees it.
func (v Value) Text() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindDate:
		if v.Time.IsZero() {
			return ""
		}
		return v.Time.Format(domain.DateLayout)
	default:
		return v.Str
	}
}

// Compare orders a before b: lexicographic for strings, numeric for
// numbers, chronological for dates. Values of different kinds fall back to
// comparing their Text.
func Compare(a, b Value) int {
	if a.Kind != b.Kind {
		return strings.Compare(a.Text(), b.Text())
	}
	switch a.Kind {
	case KindNumber:
		return cmp.Compare(a.Num, b.Num)
	case KindDate:
		return a.Time.Compare(b.Time)
	default:
		return strings.Compare(a.Str, b.Str)
	}
}
