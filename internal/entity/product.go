package entity

import (
	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/heartmarshall/premier-dashboard/internal/export"
	"github.com/heartmarshall/premier-dashboard/internal/table"
)

// ProductSchema describes the products table. Available stock is a
// read-only derived column.
func ProductSchema() *table.Schema[domain.Product] {
	return &table.Schema[domain.Product]{
		Entity: domain.EntityTypeProduct,
		Fields: []table.Field[domain.Product]{
			idField(func(p domain.Product) domain.ID { return p.ID }),
			textField("name",
				func(p domain.Product) string { return p.Name },
				func(p *domain.Product, raw string) { p.Name = raw }),
			enumField("category", "category.",
				func(p domain.Product) string { return p.Category.String() },
				func(p *domain.Product, raw string) { p.Category = domain.ProductCategory(enumKey(raw)) }),
			floatField("price",
				func(p domain.Product) float64 { return p.Price },
				func(p *domain.Product, v float64) { p.Price = v }),
			intField("stock",
				func(p domain.Product) int { return p.Stock },
				func(p *domain.Product, v int) { p.Stock = v }),
			intField("sales",
				func(p domain.Product) int { return p.Sales },
				func(p *domain.Product, v int) { p.Sales = v }),
			intField("available", domain.Product.AvailableStock, nil),
		},
		Searchable: []string{"name", "category"},
		ID:         func(p domain.Product) domain.ID { return p.ID },
		SetID:      func(p *domain.Product, id domain.ID) { p.ID = id },
		Template:   func() domain.Product { return domain.Product{} },
		Validate:   domain.Product.Validate,
	}
}

// ProductColumns are the exported product columns.
func ProductColumns() []export.Column[domain.Product] {
	return []export.Column[domain.Product]{
		{Header: "column.name", Format: export.Text, Width: 25, Value: func(p domain.Product) any { return p.Name }},
		{Header: "column.category", Format: export.Label, Width: 20, Value: func(p domain.Product) any { return categoryKey(p.Category) }},
		{Header: "column.price", Format: export.Currency, Width: 15, Value: func(p domain.Product) any { return p.Price }},
		{Header: "column.stock", Format: export.Integer, Width: 15, Value: func(p domain.Product) any { return p.Stock }},
		{Header: "column.sales", Format: export.Integer, Width: 15, Value: func(p domain.Product) any { return p.Sales }},
	}
}

func categoryKey(c domain.ProductCategory) string {
	if c == "" {
		return ""
	}
	return "category." + c.String()
}
