package dashboard

import (
	"fmt"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/heartmarshall/premier-dashboard/internal/entity"
	"github.com/heartmarshall/premier-dashboard/internal/table"
)

// OrderForm is the orders form with line-item editing bound to the product
// catalogue.
type OrderForm struct {
	*table.Form[domain.Order]
	catalogue func() []domain.Product
}

// OrderForm returns a closed order form.
func (w *Workspace) OrderForm() *OrderForm {
	return &OrderForm{Form: w.orders.NewForm(), catalogue: w.Catalogue}
}

// SelectProducts replaces the order lines with the given products. Existing
// lines keep their quantity and new ones start at 1.
func (f *OrderForm) SelectProducts(ids []domain.ID) error {
	catalogue := f.catalogue()
	return f.Edit(func(o *domain.Order) {
		entity.SelectProducts(o, catalogue, ids)
	})
}

// SetQuantity changes one line's quantity, clamped to at least 1.
func (f *OrderForm) SetQuantity(productID domain.ID, qty int) error {
	var found bool
	err := f.Edit(func(o *domain.Order) {
		found = entity.SetQuantity(o, productID, qty)
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("order line for product %s: %w", productID, domain.ErrNotFound)
	}
	return nil
}
