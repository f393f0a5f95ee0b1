package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a catalogue item. Stock counts units received, Sales units sold.
type Product struct {
	ID       ID              `json:"id"`
	Name     string          `json:"name"`
	Category ProductCategory `json:"category"`
	Price    float64         `json:"price"`
	Stock    int             `json:"stock"`
	Sales    int             `json:"sales"`
}

// AvailableStock is stock minus sales. It is derived on read and never stored.
func (p Product) AvailableStock() int {
	return p.Stock - p.Sales
}

// Revenue is price × sales.
func (p Product) Revenue() decimal.Decimal {
	return decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Sales)))
}

// Validate checks all fields and collects all errors.
func (p Product) Validate() error {
	var errs fieldErrors

	if strings.TrimSpace(p.Name) == "" {
		errs.add("name", "required")
	}
	switch {
	case p.Category == "":
		errs.add("category", "required")
	case !p.Category.IsValid():
		errs.add("category", "unknown category")
	}
	switch {
	case !finite(p.Price):
		errs.add("price", "must be a finite number")
	case p.Price < 0:
		errs.add("price", "must be >= 0")
	}
	if p.Stock < 0 {
		errs.add("stock", "must be >= 0")
	}
	if p.Sales < 0 {
		errs.add("sales", "must be >= 0")
	}

	return errs.err()
}
