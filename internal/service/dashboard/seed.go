package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/premier-dashboard/internal/adapter/storage"
	"github.com/heartmarshall/premier-dashboard/internal/domain"
)

// Demo data shown on a fresh install.
var (
	seedProducts = []domain.Product{
		{ID: 1, Name: "لحمة مفرومه", Category: domain.ProductCategoryMeat, Price: 59.99, Stock: 143, Sales: 0},
	}
	seedUsers = []domain.User{
		{ID: 1, Name: "أحمد محمد", Email: "ahmed@example.com", Points: 150, Status: domain.UserStatusActive,
			JoinDate: domain.NewDate(2023, 1, 15), LastActivity: domain.NewDate(2023, 1, 15)},
		{ID: 2, Name: "سارة علي", Email: "sara@example.com", Points: 230, Status: domain.UserStatusActive,
			JoinDate: domain.NewDate(2023, 2, 20), LastActivity: domain.NewDate(2023, 1, 15)},
		{ID: 3, Name: "محمد خالد", Email: "mohamed@example.com", Points: 75, Status: domain.UserStatusInactive,
			JoinDate: domain.NewDate(2023, 3, 10), LastActivity: domain.NewDate(2023, 1, 15)},
	}
	seedSuppliers = []domain.Supplier{
		{ID: 1, Name: "محمد أحمد", Email: "mohamed@example.com", Country: domain.CountryEgypt},
	}
	seedEmployees = []domain.Employee{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Income: 1000, Status: "manager"},
	}
)

// Seed writes the demo data into every collection that has never been
// stored and reloads the workspace. A collection the admin emptied keeps its
// stored empty list. All collections are written in one batch. It returns
// the entities that were seeded.
func (w *Workspace) Seed(ctx context.Context) ([]domain.EntityType, error) {
	entries := make(map[string][]byte)
	var seeded []domain.EntityType

	add := func(e domain.EntityType, encode func() ([]byte, error)) error {
		_, err := w.kv.Get(ctx, e.String())
		switch {
		case err == nil:
			return nil
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get %s: %w", e, err)
		}
		data, err := encode()
		if err != nil {
			return fmt.Errorf("encode %s: %w", e, err)
		}
		entries[e.String()] = data
		seeded = append(seeded, e)
		return nil
	}

	steps := []error{
		add(domain.EntityTypeProduct, func() ([]byte, error) { return storage.Encode(seedProducts) }),
		add(domain.EntityTypeUser, func() ([]byte, error) { return storage.Encode(seedUsers) }),
		add(domain.EntityTypeSupplier, func() ([]byte, error) { return storage.Encode(seedSuppliers) }),
		add(domain.EntityTypeEmployee, func() ([]byte, error) { return storage.Encode(seedEmployees) }),
	}
	for _, err := range steps {
		if err != nil {
			return nil, fmt.Errorf("dashboard.Seed: %w", err)
		}
	}

	if len(entries) > 0 {
		if err := w.kv.PutMany(ctx, entries); err != nil {
			return nil, fmt.Errorf("dashboard.Seed write: %w", err)
		}
	}
	if err := w.Load(ctx); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	w.log.InfoContext(ctx, "demo data seeded", slog.Any("entities", seeded))
	return seeded, nil
}
