package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/heartmarshall/premier-dashboard/internal/table"
)

// Highlight names the record behind a stat card value.
type Highlight struct {
	ID    domain.ID `json:"id"`
	Name  string    `json:"name"`
	Value int       `json:"value"`
}

// ProductStats are the stat cards of the products page.
type ProductStats struct {
	Count       int             `json:"count"`
	BestSeller  *Highlight      `json:"bestSeller"`
	LowestStock *Highlight      `json:"lowestStock"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// OrderStats are the stat cards of the orders page.
type OrderStats struct {
	Count     int             `json:"count"`
	Pending   int             `json:"pending"`
	Delivered int             `json:"delivered"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// UserStats are the stat cards of the users page.
type UserStats struct {
	Count  int `json:"count"`
	Active int `json:"active"`
	Points int `json:"points"`
}

// SupplierStats are the stat cards of the suppliers page.
type SupplierStats struct {
	Count     int `json:"count"`
	Countries int `json:"countries"`
}

// EmployeeStats are the stat cards of the employees page.
type EmployeeStats struct {
	Count   int             `json:"count"`
	Payroll decimal.Decimal `json:"payroll"`
}

func (w *Workspace) ProductStats() ProductStats {
	products := w.products.List()
	stats := ProductStats{
		Count:   len(products),
		Revenue: table.Sum(products, domain.Product.Revenue).Round(2),
	}
	if p, ok := table.MaxBy(products, func(p domain.Product) int { return p.Sales }); ok {
		stats.BestSeller = &Highlight{ID: p.ID, Name: p.Name, Value: p.Sales}
	}
	if p, ok := table.MinBy(products, func(p domain.Product) int { return p.Stock }); ok {
		stats.LowestStock = &Highlight{ID: p.ID, Name: p.Name, Value: p.Stock}
	}
	return stats
}

func (w *Workspace) OrderStats() OrderStats {
	orders := w.orders.List()
	return OrderStats{
		Count:     len(orders),
		Pending:   table.Count(orders, func(o domain.Order) bool { return o.Status == domain.OrderStatusPending }),
		Delivered: table.Count(orders, func(o domain.Order) bool { return o.Status == domain.OrderStatusDelivered }),
		Revenue: table.Sum(orders, func(o domain.Order) decimal.Decimal {
			return decimal.NewFromFloat(o.Total)
		}).Round(2),
	}
}

func (w *Workspace) UserStats() UserStats {
	users := w.users.List()
	points := 0
	for _, u := range users {
		points += u.Points
	}
	return UserStats{
		Count:  len(users),
		Active: table.Count(users, func(u domain.User) bool { return u.Status == domain.UserStatusActive }),
		Points: points,
	}
}

func (w *Workspace) SupplierStats() SupplierStats {
	suppliers := w.suppliers.List()
	return SupplierStats{
		Count:     len(suppliers),
		Countries: table.Distinct(suppliers, func(s domain.Supplier) domain.Country { return s.Country }),
	}
}

func (w *Workspace) EmployeeStats() EmployeeStats {
	employees := w.employees.List()
	return EmployeeStats{
		Count: len(employees),
		Payroll: table.Sum(employees, func(e domain.Employee) decimal.Decimal {
			return decimal.NewFromInt(int64(e.Income))
		}),
	}
}

func (w *Workspace) productStats() any  { return w.ProductStats() }
func (w *Workspace) orderStats() any    { return w.OrderStats() }
func (w *Workspace) userStats() any     { return w.UserStats() }
func (w *Workspace) supplierStats() any { return w.SupplierStats() }
func (w *Workspace) employeeStats() any { return w.EmployeeStats() }
