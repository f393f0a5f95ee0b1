package table

import (
	"context"
	"fmt"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
)

// FormState is the lifecycle state of a Form.
type FormState int

const (
	Closed FormState = iota
	Creating
	Editing
)

func (s FormState) String() string {
	switch s {
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return "closed"
	}
}

// Form is a create/edit buffer bound to a Store. Edits touch only the
// buffer until Commit succeeds. A Form is not safe for concurrent use.
type Form[T any] struct {
	store  *Store[T]
	state  FormState
	editID domain.ID
	buf    T
}

// NewForm returns a closed form over store.
func NewForm[T any](store *Store[T]) *Form[T] {
	return &Form[T]{store: store}
}

// State returns the current state.
func (f *Form[T]) State() FormState { return f.state }

// EditingID returns the id of the record being edited, or 0.
func (f *Form[T]) EditingID() domain.ID { return f.editID }

// Buffer returns a copy of the working record.
func (f *Form[T]) Buffer() T { return f.store.schema.clone(f.buf) }

// OpenCreate starts a new record from the schema template.
func (f *Form[T]) OpenCreate() error {
	if f.state != Closed {
		return fmt.Errorf("open create: form is %s: %w", f.state, domain.ErrConflict)
	}

	var blank T
	if f.store.schema.Template != nil {
		blank = f.store.schema.Template()
	}
	f.buf = blank
	f.editID = 0
	f.state = Creating
	return nil
}

// OpenEdit loads a copy of the record with the given id into the buffer.
func (f *Form[T]) OpenEdit(id domain.ID) error {
	if f.state != Closed {
		return fmt.Errorf("open edit: form is %s: %w", f.state, domain.ErrConflict)
	}

	rec, err := f.store.Get(id)
	if err != nil {
		return fmt.Errorf("open edit: %w", err)
	}
	f.buf = rec
	f.editID = id
	f.state = Editing
	return nil
}

// Set writes raw input into one buffer field, coercing it to the field's type.
func (f *Form[T]) Set(key, raw string) error {
	if f.state == Closed {
		return fmt.Errorf("set %s: form is closed: %w", key, domain.ErrConflict)
	}

	field, ok := f.store.schema.Field(key)
	if !ok {
		return domain.NewValidationError(key, "unknown field")
	}
	if field.Set == nil {
		return domain.NewValidationError(key, "read-only field")
	}
	field.Set(&f.buf, raw)
	return nil
}

// Edit applies fn to the buffer. It is used for structured edits such as
// order line items that do not map to a single raw field.
func (f *Form[T]) Edit(fn func(*T)) error {
	if f.state == Closed {
		return fmt.Errorf("edit: form is closed: %w", domain.ErrConflict)
	}
	fn(&f.buf)
	return nil
}

// Commit validates the buffer and writes it to the store. On success the
// form closes and the stored record is returned. On failure the form stays
// open with the buffer intact.
func (f *Form[T]) Commit(ctx context.Context) (T, error) {
	var zero T

	switch f.state {
	case Creating:
		rec, err := f.store.Create(ctx, f.buf)
		if err != nil {
			return zero, err
		}
		f.reset()
		return rec, nil

	case Editing:
		if err := f.store.Update(ctx, f.editID, f.buf); err != nil {
			return zero, err
		}
		rec, err := f.store.Get(f.editID)
		if err != nil {
			return zero, err
		}
		f.reset()
		return rec, nil

	default:
		return zero, fmt.Errorf("commit: form is closed: %w", domain.ErrConflict)
	}
}

// Cancel discards the buffer and closes the form.
func (f *Form[T]) Cancel() {
	f.reset()
}

func (f *Form[T]) reset() {
	var zero T
	f.buf = zero
	f.editID = 0
	f.state = Closed
}
