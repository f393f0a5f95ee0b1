// Package storage provides the key-value backends that persist dashboard
// collections, and the JSON codec that maps a collection onto one key.
package storage

import "context"

// KV is a flat key-value store. Get returns domain.ErrNotFound for a
// missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	// PutMany writes all entries atomically where the backend supports it.
	PutMany(ctx context.Context, entries map[string][]byte) error
	Ping(ctx context.Context) error
	Close() error
}
