// Package kv implements storage.KV on a PostgreSQL collections table.
package kv

import (
	"context"
	"encoding/json"
	"maps"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/premier-dashboard/internal/adapter/postgres"
)

const (
	tableName = "collections"
	entity    = "collection"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo stores each key as one row of the collections table. The payload is
// kept as JSONB.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a repository on pool.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, tx: postgres.NewTxManager(pool)}
}

// Get returns the stored payload or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psql.
		Select("payload").
		From(tableName).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var payload []byte
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&payload)
	if err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	return payload, nil
}

// Put upserts one key.
func (r *Repo) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := upsert(key, value).ToSql()
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, key)
	}
	return nil
}

// PutMany upserts all entries in one transaction, in key order.
func (r *Repo) PutMany(ctx context.Context, entries map[string][]byte) error {
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, key := range slices.Sorted(maps.Keys(entries)) {
			if err := r.Put(ctx, key, entries[key]); err != nil {
				return err
			}
		}
		return nil
	})
}

// Keys lists the stored keys in order.
func (r *Repo) Keys(ctx context.Context) ([]string, error) {
	query, args, err := psql.Select("key").From(tableName).OrderBy("key ASC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, "*")
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, postgres.MapError(err, entity, "*")
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity, "*")
	}
	return keys, nil
}

func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close releases the pool.
func (r *Repo) Close() error {
	r.pool.Close()
	return nil
}

func upsert(key string, value []byte) squirrel.InsertBuilder {
	return psql.
		Insert(tableName).
		Columns("key", "payload", "updated_at").
		Values(key, json.RawMessage(value), squirrel.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at")
}
