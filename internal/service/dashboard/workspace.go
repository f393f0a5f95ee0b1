// Package dashboard wires the five entity tables into one workspace that the
// HTTP server and the CLI share.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/premier-dashboard/internal/adapter/storage"
	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/heartmarshall/premier-dashboard/internal/entity"
	"github.com/heartmarshall/premier-dashboard/internal/export"
	"github.com/heartmarshall/premier-dashboard/internal/table"
)

// Workspace owns every table of the dashboard and the exporter.
type Workspace struct {
	log      *slog.Logger
	kv       storage.KV
	exporter *export.Exporter

	products  *table.Table[domain.Product]
	orders    *table.Table[domain.Order]
	users     *table.Table[domain.User]
	suppliers *table.Table[domain.Supplier]
	employees *table.Table[domain.Employee]

	resources map[domain.EntityType]Resource
}

// NewWorkspace creates the tables over kv. Nothing is read until Load.
func NewWorkspace(logger *slog.Logger, kv storage.KV, exporter *export.Exporter) *Workspace {
	w := &Workspace{
		log:      logger.With("service", "dashboard"),
		kv:       kv,
		exporter: exporter,
	}

	w.products = table.New(entity.ProductSchema(), collection[domain.Product](kv, domain.EntityTypeProduct), logger)
	w.orders = table.New(entity.OrderSchema(), collection[domain.Order](kv, domain.EntityTypeOrder), logger)
	w.users = table.New(entity.UserSchema(), collection[domain.User](kv, domain.EntityTypeUser), logger)
	w.suppliers = table.New(entity.SupplierSchema(), collection[domain.Supplier](kv, domain.EntityTypeSupplier), logger)
	w.employees = table.New(entity.EmployeeSchema(), collection[domain.Employee](kv, domain.EntityTypeEmployee), logger)

	w.resources = map[domain.EntityType]Resource{
		domain.EntityTypeProduct: &resource[domain.Product]{
			ws: w, table: w.products, columns: entity.ProductColumns(), stats: w.productStats,
		},
		domain.EntityTypeOrder: &resource[domain.Order]{
			ws: w, table: w.orders, columns: entity.OrderColumns(), stats: w.orderStats, bind: w.bindOrderField,
		},
		domain.EntityTypeUser: &resource[domain.User]{
			ws: w, table: w.users, columns: entity.UserColumns(), stats: w.userStats,
		},
		domain.EntityTypeSupplier: &resource[domain.Supplier]{
			ws: w, table: w.suppliers, columns: entity.SupplierColumns(), stats: w.supplierStats,
		},
		domain.EntityTypeEmployee: &resource[domain.Employee]{
			ws: w, table: w.employees, columns: entity.EmployeeColumns(), stats: w.employeeStats,
		},
	}

	return w
}

func collection[T any](kv storage.KV, e domain.EntityType) *storage.Collection[T] {
	return storage.NewCollection[T](kv, e.String())
}

func (w *Workspace) Products() *table.Table[domain.Product]   { return w.products }
func (w *Workspace) Orders() *table.Table[domain.Order]       { return w.orders }
func (w *Workspace) Users() *table.Table[domain.User]         { return w.users }
func (w *Workspace) Suppliers() *table.Table[domain.Supplier] { return w.suppliers }
func (w *Workspace) Employees() *table.Table[domain.Employee] { return w.employees }

// Exporter returns the spreadsheet exporter of the workspace.
func (w *Workspace) Exporter() *export.Exporter { return w.exporter }

// Resource returns the untyped view of one entity table.
func (w *Workspace) Resource(e domain.EntityType) (Resource, error) {
	r, ok := w.resources[e]
	if !ok {
		return nil, fmt.Errorf("entity %q: %w", e, domain.ErrNotFound)
	}
	return r, nil
}

// Load reads every collection from storage, replacing in-memory state.
func (w *Workspace) Load(ctx context.Context) error {
	loaders := []interface {
		Load(context.Context) error
		Entity() domain.EntityType
	}{w.products, w.orders, w.users, w.suppliers, w.employees}

	for _, l := range loaders {
		if err := l.Load(ctx); err != nil {
			return fmt.Errorf("dashboard.Load %s: %w", l.Entity(), err)
		}
	}

	w.log.InfoContext(ctx, "workspace loaded",
		slog.Int("products", w.products.Len()),
		slog.Int("orders", w.orders.Len()),
		slog.Int("users", w.users.Len()),
		slog.Int("suppliers", w.suppliers.Len()),
		slog.Int("employees", w.employees.Len()))
	return nil
}

// Catalogue returns the products available for order lines.
func (w *Workspace) Catalogue() []domain.Product {
	return w.products.List()
}

// Counts returns the number of loaded records per collection.
func (w *Workspace) Counts() map[string]int {
	return map[string]int{
		domain.EntityTypeProduct.String():  w.products.Len(),
		domain.EntityTypeOrder.String():    w.orders.Len(),
		domain.EntityTypeUser.String():     w.users.Len(),
		domain.EntityTypeSupplier.String(): w.suppliers.Len(),
		domain.EntityTypeEmployee.String(): w.employees.Len(),
	}
}

// Ping checks the storage backend.
func (w *Workspace) Ping(ctx context.Context) error {
	return w.kv.Ping(ctx)
}
