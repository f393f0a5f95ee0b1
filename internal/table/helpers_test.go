package table

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
)

// ---------------------------------------------------------------------------
// Test fixtures
// ---------------------------------------------------------------------------

type item struct {
	ID    domain.ID
	Name  string
	Price float64
	Qty   int
	Day   domain.Date
	Tags  []string
}

func itemSchema() *Schema[item] {
	return &Schema[item]{
		Entity: domain.EntityTypeProduct,
		Fields: []Field[item]{
			{Key: "id", Kind: KindNumber, Get: func(r item) Value { return Int(int(r.ID)) }},
			{
				Key: "name", Kind: KindString,
				Get: func(r item) Value { return Str(r.Name) },
				Set: func(r *item, raw string) { r.Name = raw },
			},
			{
				Key: "price", Kind: KindNumber,
				Get: func(r item) Value { return Num(r.Price) },
				Set: func(r *item, raw string) { r.Price = ParseFloat(raw) },
			},
			{
				Key: "qty", Kind: KindNumber,
				Get: func(r item) Value { return Int(r.Qty) },
				Set: func(r *item, raw string) { r.Qty = ParseInt(raw) },
			},
			{
				Key: "day", Kind: KindDate,
				Get: func(r item) Value { return Day(r.Day) },
				Set: func(r *item, raw string) { r.Day = ParseDay(raw) },
			},
		},
		Searchable: []string{"name", "price"},
		ID:         func(r item) domain.ID { return r.ID },
		SetID:      func(r *item, id domain.ID) { r.ID = id },
		Template:   func() item { return item{Qty: 1} },
		Clone: func(r item) item {
			if r.Tags != nil {
				r.Tags = append([]string(nil), r.Tags...)
			}
			return r
		},
		Validate: func(r item) error {
			if r.Name == "" {
				return domain.NewValidationError("name", "required")
			}
			return nil
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newItemTable(seed ...item) *Table[item] {
	repo := &memRepo{records: seed}
	t := New(itemSchema(), repo, discardLogger())
	_ = t.Load(context.Background())
	return t
}

func names(records []item) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func ids(records []item) []domain.ID {
	out := make([]domain.ID, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

// memRepo is an in-memory Repository that records every save.
type memRepo struct {
	mu      sync.Mutex
	records []item
	saves   int
	saveErr error
	loadErr error
}

func (m *memRepo) Load(context.Context) ([]item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]item(nil), m.records...), nil
}

func (m *memRepo) Save(_ context.Context, records []item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = append([]item(nil), records...)
	return nil
}

func (m *memRepo) snapshot() ([]item, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]item(nil), m.records...), m.saves
}

var errDiskFull = errors.New("disk full")
