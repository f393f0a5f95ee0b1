package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/heartmarshall/premier-dashboard/internal/export"
	"github.com/heartmarshall/premier-dashboard/internal/table"
)

// Resource is the untyped face of one entity table, used where the entity is
// chosen at runtime (HTTP routes, CLI arguments).
type Resource interface {
	Entity() domain.EntityType
	Keys() []string
	List(q table.Query) (any, error)
	Rows(q table.Query) ([][]string, error)
	Get(id domain.ID) (any, error)
	Create(ctx context.Context, fields map[string]json.RawMessage) (any, error)
	Update(ctx context.Context, id domain.ID, fields map[string]json.RawMessage) (any, error)
	Delete(ctx context.Context, id domain.ID) error
	Stats() any
	Sheet(q table.Query) (export.Sheet, error)
	Export(q table.Query) ([]byte, error)
}

// binder handles form fields that are not single schema values.
type binder[T any] func(form *table.Form[T], key string, raw json.RawMessage) (handled bool, err error)

type resource[T any] struct {
	ws      *Workspace
	table   *table.Table[T]
	columns []export.Column[T]
	stats   func() any
	bind    binder[T]
}

func (r *resource[T]) Entity() domain.EntityType { return r.table.Entity() }

// Keys lists the schema field keys in column order.
func (r *resource[T]) Keys() []string {
	fields := r.table.Schema().Fields
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}

func (r *resource[T]) List(q table.Query) (any, error) {
	return r.table.View(q)
}

// Rows renders the view as display text, one cell per schema field.
func (r *resource[T]) Rows(q table.Query) ([][]string, error) {
	records, err := r.table.View(q)
	if err != nil {
		return nil, err
	}
	fields := r.table.Schema().Fields
	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(fields))
		for j, f := range fields {
			row[j] = f.Get(rec).Text()
		}
		rows[i] = row
	}
	return rows, nil
}

func (r *resource[T]) Get(id domain.ID) (any, error) {
	return r.table.Get(id)
}

func (r *resource[T]) Create(ctx context.Context, fields map[string]json.RawMessage) (any, error) {
	form := r.table.NewForm()
	if err := form.OpenCreate(); err != nil {
		return nil, err
	}
	return r.commit(ctx, form, fields)
}

// Update applies fields over the stored record. Absent fields keep their value.
func (r *resource[T]) Update(ctx context.Context, id domain.ID, fields map[string]json.RawMessage) (any, error) {
	form := r.table.NewForm()
	if err := form.OpenEdit(id); err != nil {
		return nil, err
	}
	return r.commit(ctx, form, fields)
}

func (r *resource[T]) Delete(ctx context.Context, id domain.ID) error {
	return r.table.Delete(ctx, id)
}

func (r *resource[T]) Stats() any { return r.stats() }

func (r *resource[T]) Sheet(q table.Query) (export.Sheet, error) {
	records, err := r.table.View(q)
	if err != nil {
		return export.Sheet{}, err
	}
	return export.BuildSheet(r.ws.exporter, sheetKey(r.Entity()), records, r.columns)
}

func (r *resource[T]) Export(q table.Query) ([]byte, error) {
	sh, err := r.Sheet(q)
	if err != nil {
		return nil, err
	}
	return r.ws.exporter.Workbook(sh)
}

// commit binds fields into the open form and commits it. Schema fields are
// applied first, then structured ones, so line-item edits see final values.
func (r *resource[T]) commit(ctx context.Context, form *table.Form[T], fields map[string]json.RawMessage) (any, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k != "id" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	var errs []domain.FieldError
	var deferred []string

	for _, key := range keys {
		if _, ok := r.table.Schema().Field(key); !ok && r.bind != nil {
			deferred = append(deferred, key)
			continue
		}
		raw, err := rawText(fields[key])
		if err != nil {
			errs = append(errs, domain.FieldError{Field: key, Message: "must be a scalar value"})
			continue
		}
		if err := form.Set(key, raw); err != nil {
			errs = appendFieldError(errs, key, err)
		}
	}

	for _, key := range deferred {
		handled, err := r.bind(form, key, fields[key])
		switch {
		case err != nil:
			errs = appendFieldError(errs, key, err)
		case !handled:
			errs = append(errs, domain.FieldError{Field: key, Message: "unknown field"})
		}
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	rec, err := form.Commit(ctx)
	if err != nil {
		return nil, err
	}

	r.ws.log.InfoContext(ctx, "record saved",
		slog.String("entity", r.Entity().String()),
		slog.Int("fields", len(keys)))
	return rec, nil
}

func appendFieldError(errs []domain.FieldError, key string, err error) []domain.FieldError {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return append(errs, ve.Errors...)
	}
	return append(errs, domain.FieldError{Field: key, Message: err.Error()})
}

// rawText turns a JSON scalar into the raw text a form input would hold.
// Strings are unquoted, null is empty and numbers keep their literal form.
func rawText(v json.RawMessage) (string, error) {
	v = bytes.TrimSpace(v)
	switch {
	case len(v) == 0, bytes.Equal(v, []byte("null")):
		return "", nil
	case v[0] == '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return "", err
		}
		return s, nil
	case v[0] == '{', v[0] == '[':
		return "", fmt.Errorf("not a scalar")
	default:
		return string(v), nil
	}
}

// bindOrderField handles the order line-item inputs:
// "productIds" selects lines and "quantities" maps product id to quantity.
func (w *Workspace) bindOrderField(form *table.Form[domain.Order], key string, raw json.RawMessage) (bool, error) {
	of := &OrderForm{Form: form, catalogue: w.Catalogue}

	switch key {
	case "productIds":
		var ids []domain.ID
		if err := json.Unmarshal(raw, &ids); err != nil {
			return true, domain.NewValidationError(key, "must be a list of product ids")
		}
		return true, of.SelectProducts(ids)

	case "quantities":
		var qty map[domain.ID]int
		if err := json.Unmarshal(raw, &qty); err != nil {
			return true, domain.NewValidationError(key, "must map product ids to quantities")
		}
		ids := make([]domain.ID, 0, len(qty))
		for id := range qty {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		for _, id := range ids {
			if err := of.SetQuantity(id, qty[id]); err != nil {
				return true, domain.NewValidationError(key, fmt.Sprintf("product %s is not on the order", id))
			}
		}
		return true, nil
	}
	return false, nil
}

func sheetKey(e domain.EntityType) string {
	return "sheet." + e.String()
}
