package entity

import (
	"slices"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/heartmarshall/premier-dashboard/internal/export"
	"github.com/heartmarshall/premier-dashboard/internal/table"
)

// OrderSchema describes the orders table. Total is derived from the line
// items and cannot be set directly.
func OrderSchema() *table.Schema[domain.Order] {
	return &table.Schema[domain.Order]{
		Entity: domain.EntityTypeOrder,
		Fields: []table.Field[domain.Order]{
			idField(func(o domain.Order) domain.ID { return o.ID }),
			textField("owner",
				func(o domain.Order) string { return o.Owner },
				func(o *domain.Order, raw string) { o.Owner = raw }),
			floatField("total", func(o domain.Order) float64 { return o.Total }, nil),
			textField("status",
				func(o domain.Order) string { return o.Status.String() },
				func(o *domain.Order, raw string) { o.Status = domain.OrderStatus(enumKey(raw)) }),
			dateField("date",
				func(o domain.Order) domain.Date { return o.Date },
				func(o *domain.Order, d domain.Date) { o.Date = d }),
		},
		Searchable: []string{"id", "owner"},
		ID:         func(o domain.Order) domain.ID { return o.ID },
		SetID:      func(o *domain.Order, id domain.ID) { o.ID = id },
		Template: func() domain.Order {
			return domain.Order{Status: domain.OrderStatusPending, Date: domain.Today()}
		},
		Clone:    domain.Order.Clone,
		Validate: domain.Order.Validate,
	}
}

// OrderColumns are the exported order columns.
func OrderColumns() []export.Column[domain.Order] {
	return []export.Column[domain.Order]{
		{Header: "column.order_id", Format: export.Integer, Width: 15, Value: func(o domain.Order) any { return o.ID }},
		{Header: "column.owner", Format: export.Text, Width: 25, Value: func(o domain.Order) any { return o.Owner }},
		{Header: "column.total", Format: export.Currency, Width: 15, Value: func(o domain.Order) any { return o.Total }},
		{Header: "column.status", Format: export.Label, Width: 20, Value: func(o domain.Order) any { return orderStatusKey(o.Status) }},
		{Header: "column.date", Format: export.Date, Width: 20, Value: func(o domain.Order) any { return o.Date }},
	}
}

func orderStatusKey(s domain.OrderStatus) string {
	if s == "" {
		return ""
	}
	return "order_status." + s.String()
}

// SelectProducts sets the order lines to the given products, in the given
// order. Lines already on the order keep their quantity; new lines start
// at 1 with name and price copied from the catalogue. Unknown product ids
// are skipped. The total is recomputed.
func SelectProducts(o *domain.Order, catalogue []domain.Product, ids []domain.ID) {
	items := make([]domain.OrderItem, 0, len(ids))
	for _, id := range ids {
		if slices.ContainsFunc(items, func(it domain.OrderItem) bool { return it.ProductID == id }) {
			continue
		}
		if i := slices.IndexFunc(o.Items, func(it domain.OrderItem) bool { return it.ProductID == id }); i >= 0 {
			items = append(items, o.Items[i])
			continue
		}
		if i := slices.IndexFunc(catalogue, func(p domain.Product) bool { return p.ID == id }); i >= 0 {
			p := catalogue[i]
			items = append(items, domain.OrderItem{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: 1})
		}
	}
	o.Items = items
	o.RecomputeTotal()
}

// SetQuantity changes the quantity of one line, clamped to at least 1, and
// recomputes the total. It reports whether the line exists.
func SetQuantity(o *domain.Order, productID domain.ID, qty int) bool {
	i := slices.IndexFunc(o.Items, func(it domain.OrderItem) bool { return it.ProductID == productID })
	if i < 0 {
		return false
	}
	o.Items[i].Quantity = max(1, qty)
	o.RecomputeTotal()
	return true
}
