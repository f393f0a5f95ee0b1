package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OrderItem is one order line. Name and Price are copied from the product
// when the line is added, so later catalogue changes do not affect the order.
type OrderItem struct {
	ProductID ID      `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// LineTotal is price × quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a customer order. Total is recomputed whenever Items change and
// is stored as computed at that moment.
type Order struct {
	ID     ID          `json:"id"`
	Owner  string      `json:"owner"`
	Total  float64     `json:"total"`
	Status OrderStatus `json:"status"`
	Date   Date        `json:"date"`
	Items  []OrderItem `json:"items"`
}

// ComputeTotal sums the line totals of items.
func ComputeTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// RecomputeTotal refreshes Total from Items, rounded to cents.
func (o *Order) RecomputeTotal() {
	o.Total = ComputeTotal(o.Items).Round(2).InexactFloat64()
}

// Clone returns a copy of o that shares no line items with it.
func (o Order) Clone() Order {
	c := o
	if o.Items != nil {
		c.Items = make([]OrderItem, len(o.Items))
		copy(c.Items, o.Items)
	}
	return c
}

// Validate checks all fields and collects all errors.
func (o Order) Validate() error {
	var errs fieldErrors

	if strings.TrimSpace(o.Owner) == "" {
		errs.add("owner", "required")
	}
	switch {
	case !finite(o.Total):
		errs.add("total", "must be a finite number")
	case o.Total <= 0:
		errs.add("total", "must be greater than 0")
	}
	if o.Status != "" && !o.Status.IsValid() {
		errs.add("status", "unknown status")
	}
	for _, item := range o.Items {
		if item.Quantity < 1 {
			errs.add("items", "quantity must be >= 1")
			break
		}
	}
	for _, item := range o.Items {
		if !finite(item.Price) || item.Price < 0 {
			errs.add("items", "price must be a finite number >= 0")
			break
		}
	}

	return errs.err()
}
