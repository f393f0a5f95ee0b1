package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueKey returns a collection key that does not collide with other tests
// sharing the container.
func UniqueKey(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedCollection writes a raw JSON payload under key.
func SeedCollection(t *testing.T, pool *pgxpool.Pool, key, payload string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO collections (key, payload) VALUES ($1, $2::jsonb)
		 ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload`,
		key, payload,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCollection %s: %v", key, err)
	}
}
