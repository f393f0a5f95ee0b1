package table

import "github.com/heartmarshall/premier-dashboard/internal/domain"

// Field describes one column of an entity: how to read it for search, sort
// and display, and how to write raw form input into a record.
type Field[T any] struct {
	Key  string
	Kind Kind
	Get  func(T) Value
	// Set coerces raw form input into the record. Nil marks a read-only field.
	Set func(*T, string)
	// Match returns the text the free-text search looks at. Nil means the
	// displayed text of Get.
	Match func(T) string
}

func (f Field[T]) matchText(rec T) string {
	if f.Match != nil {
		return f.Match(rec)
	}
	return f.Get(rec).Text()
}

// Schema is the per-entity descriptor that parameterises the generic
// store, view and form.
type Schema[T any] struct {
	Entity domain.EntityType
	Fields []Field[T]
	// Searchable lists the field keys matched by the free-text search.
	Searchable []string

	ID    func(T) domain.ID
	SetID func(*T, domain.ID)
	// Template returns the blank record used when creating.
	Template func() T
	// Clone deep-copies a record. Nil means a plain value copy is enough.
	Clone func(T) T
	// Validate runs before every commit. Nil accepts everything.
	Validate func(T) error
}

// Field looks up a field by key.
func (s *Schema[T]) Field(key string) (Field[T], bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field[T]{}, false
}

// SearchFields resolves Searchable into fields, skipping unknown keys.
func (s *Schema[T]) SearchFields() []Field[T] {
	fields := make([]Field[T], 0, len(s.Searchable))
	for _, key := range s.Searchable {
		if f, ok := s.Field(key); ok {
			fields = append(fields, f)
		}
	}
	return fields
}

func (s *Schema[T]) clone(rec T) T {
	if s.Clone == nil {
		return rec
	}
	return s.Clone(rec)
}

func (s *Schema[T]) validate(rec T) error {
	if s.Validate == nil {
		return nil
	}
	return s.Validate(rec)
}
