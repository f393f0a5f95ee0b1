package table

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
)

// Repository persists a whole collection at once. Load runs once at
// startup; Save receives the full ordered list after every mutation.
type Repository[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, records []T) error
}

// Store holds the ordered records of one entity type.
//
// Identifiers are max(existing)+1. The store also remembers the highest id
// it has handed out, so deleting the newest record does not free its id for
// the rest of the process lifetime.
type Store[T any] struct {
	mu      sync.RWMutex
	schema  *Schema[T]
	records []T
	lastID  domain.ID
	repo    Repository[T]
	log     *slog.Logger
}

// NewStore creates an empty store. repo may be nil for a purely in-memory store.
func NewStore[T any](schema *Schema[T], repo Repository[T], logger *slog.Logger) *Store[T] {
	return &Store[T]{
		schema: schema,
		repo:   repo,
		log:    logger.With("store", schema.Entity.String()),
	}
}

// Load replaces the in-memory records with the repository contents.
func (s *Store[T]) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	records, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.schema.Entity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = records
	s.lastID = 0
	for _, rec := range records {
		s.lastID = max(s.lastID, s.schema.ID(rec))
	}

	s.log.Debug("collection loaded", slog.Int("records", len(records)))
	return nil
}

// List returns a copy of all records in insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.records))
	for i, rec := range s.records {
		out[i] = s.schema.clone(rec)
	}
	return out
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id domain.ID) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("%s %d: %w", s.schema.Entity, id, domain.ErrNotFound)
	}
	return s.schema.clone(s.records[i]), nil
}

// Create validates rec, assigns it the next identifier and appends it.
// On validation failure the store is left unchanged.
func (s *Store[T]) Create(ctx context.Context, rec T) (T, error) {
	if err := s.schema.validate(rec); err != nil {
		var zero T
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	rec = s.schema.clone(rec)
	s.schema.SetID(&rec, id)
	s.records = append(s.records, rec)
	s.lastID = id

	s.persist(ctx)

	s.log.InfoContext(ctx, "record created", slog.Int64("id", int64(id)))
	return s.schema.clone(rec), nil
}

// Update replaces the record matching id with rec. The stored record keeps
// id regardless of the id carried by rec.
func (s *Store[T]) Update(ctx context.Context, id domain.ID, rec T) error {
	if err := s.schema.validate(rec); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%s %d: %w", s.schema.Entity, id, domain.ErrNotFound)
	}

	rec = s.schema.clone(rec)
	s.schema.SetID(&rec, id)
	s.records[i] = rec

	s.persist(ctx)

	s.log.InfoContext(ctx, "record updated", slog.Int64("id", int64(id)))
	return nil
}

// Delete removes the record matching id.
func (s *Store[T]) Delete(ctx context.Context, id domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%s %d: %w", s.schema.Entity, id, domain.ErrNotFound)
	}

	s.records = slices.Delete(s.records, i, i+1)

	s.persist(ctx)

	s.log.InfoContext(ctx, "record deleted", slog.Int64("id", int64(id)))
	return nil
}

func (s *Store[T]) indexOf(id domain.ID) int {
	return slices.IndexFunc(s.records, func(rec T) bool {
		return s.schema.ID(rec) == id
	})
}

// nextID must be called with mu held.
func (s *Store[T]) nextID() domain.ID {
	next := s.lastID
	for _, rec := range s.records {
		next = max(next, s.schema.ID(rec))
	}
	return next + 1
}

// persist writes the full collection. A failed write is logged and
// otherwise ignored: the in-memory state stays authoritative.
// Must be called with mu held.
func (s *Store[T]) persist(ctx context.Context) {
	if s.repo == nil {
		return
	}

	snapshot := make([]T, len(s.records))
	copy(snapshot, s.records)

	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.log.WarnContext(ctx, "persist collection",
			slog.String("error", err.Error()),
			slog.Int("records", len(snapshot)),
		)
	}
}
