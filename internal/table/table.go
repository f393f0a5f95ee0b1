package table

import (
	"log/slog"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
)

// Table is one CRUD screen: a store plus the schema that drives its
// search, sort and form.
type Table[T any] struct {
	*Store[T]
	schema *Schema[T]
}

// New creates a table for schema, persisted through repo.
func New[T any](schema *Schema[T], repo Repository[T], logger *slog.Logger) *Table[T] {
	return &Table[T]{
		Store:  NewStore(schema, repo, logger),
		schema: schema,
	}
}

// Schema returns the table's schema.
func (t *Table[T]) Schema() *Schema[T] { return t.schema }

// Entity returns the entity type served by the table.
func (t *Table[T]) Entity() domain.EntityType { return t.schema.Entity }

// Query selects a view: the free-text filter and the sort order.
type Query struct {
	Search string
	Sort   SortState
}

// View returns the records visible for q: store order, filtered by the
// search text, then stably sorted. An empty sort key keeps store order.
func (t *Table[T]) View(q Query) ([]T, error) {
	var (
		field  Field[T]
		sorted bool
	)
	if q.Sort.Key != "" {
		f, ok := t.schema.Field(q.Sort.Key)
		if !ok {
			return nil, domain.NewValidationError("sort", "unknown field "+q.Sort.Key)
		}
		field, sorted = f, true
	}

	records := Filter(t.List(), q.Search, t.schema.SearchFields())
	if sorted {
		records = Sort(records, field, q.Sort.Dir)
	}
	return records, nil
}

// NewForm returns a closed form bound to the table's store.
func (t *Table[T]) NewForm() *Form[T] {
	return NewForm(t.Store)
}
