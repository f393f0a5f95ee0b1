package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
)

// Collection stores an ordered list of T as one JSON array under Key. It
// satisfies table.Repository.
type Collection[T any] struct {
	kv  KV
	key string
}

// NewCollection binds a collection to key in kv.
func NewCollection[T any](kv KV, key string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key}
}

// Key returns the storage key.
func (c *Collection[T]) Key() string { return c.key }

// Load returns the stored records. A missing key is an empty collection.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	data, err := c.kv.Get(ctx, c.key)
	if errors.Is(err, domain.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", c.key, err)
	}

	records, err := Decode[T](data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	return records, nil
}

// Save replaces the stored records.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	data, err := Encode(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.kv.Put(ctx, c.key, data); err != nil {
		return fmt.Errorf("put %s: %w", c.key, err)
	}
	return nil
}

// Encode serialises records as a JSON array. A nil slice encodes as [].
func Encode[T any](records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}
	return json.Marshal(records)
}

// Decode parses a JSON array of T. Empty input is an empty collection.
func Decode[T any](data []byte) ([]T, error) {
	records := []T{}
	if len(data) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}
