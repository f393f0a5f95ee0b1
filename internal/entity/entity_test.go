package entity

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/heartmarshall/premier-dashboard/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var catalogue = []domain.Product{
	{ID: 1, Name: "Chicken", Category: domain.ProductCategoryMeat, Price: 10, Stock: 5},
	{ID: 2, Name: "Cheese", Category: domain.ProductCategoryDairy, Price: 5, Stock: 8},
	{ID: 3, Name: "Chips", Category: domain.ProductCategorySnacks, Price: 0.1, Stock: 3},
}

// ---------------------------------------------------------------------------
// Order line items
// ---------------------------------------------------------------------------

func TestSelectProducts_TotalFromLines(t *testing.T) {
	t.Parallel()

	var o domain.Order
	SelectProducts(&o, catalogue, []domain.ID{1, 2})
	require.Len(t, o.Items, 2)
	assert.Equal(t, 1, o.Items[0].Quantity)
	assert.InDelta(t, 15.0, o.Total, 1e-9)

	require.True(t, SetQuantity(&o, 1, 2))
	require.True(t, SetQuantity(&o, 2, 3))
	assert.InDelta(t, 35.0, o.Total, 1e-9)
}

func TestSelectProducts_KeepsExistingQuantities(t *testing.T) {
	t.Parallel()

	var o domain.Order
	SelectProducts(&o, catalogue, []domain.ID{1})
	SetQuantity(&o, 1, 4)

	SelectProducts(&o, catalogue, []domain.ID{3, 1, 99, 3})

	require.Len(t, o.Items, 2)
	assert.Equal(t, domain.ID(3), o.Items[0].ProductID)
	assert.Equal(t, 1, o.Items[0].Quantity)
	assert.Equal(t, 4, o.Items[1].Quantity)
	assert.InDelta(t, 40.1, o.Total, 1e-9)
}

func TestSelectProducts_StalePriceKept(t *testing.T) {
	t.Parallel()

	var o domain.Order
	SelectProducts(&o, catalogue, []domain.ID{2})

	changed := []domain.Product{{ID: 2, Name: "Cheese", Price: 50}}
	SelectProducts(&o, changed, []domain.ID{2})

	assert.InDelta(t, 5.0, o.Items[0].Price, 1e-9)
}

func TestSetQuantity_ClampsToOne(t *testing.T) {
	t.Parallel()

	var o domain.Order
	SelectProducts(&o, catalogue, []domain.ID{1})

	require.True(t, SetQuantity(&o, 1, 0))
	assert.Equal(t, 1, o.Items[0].Quantity)
	require.True(t, SetQuantity(&o, 1, -5))
	assert.Equal(t, 1, o.Items[0].Quantity)
	assert.InDelta(t, 10.0, o.Total, 1e-9)

	assert.False(t, SetQuantity(&o, 42, 2))
}

// ---------------------------------------------------------------------------
// Forms over the real schemas
// ---------------------------------------------------------------------------

func TestOrderForm_BlankOwnerRejected(t *testing.T) {
	t.Parallel()

	orders := table.New(OrderSchema(), nil, discardLogger())
	form := orders.NewForm()

	require.NoError(t, form.OpenCreate())
	require.NoError(t, form.Edit(func(o *domain.Order) {
		SelectProducts(o, catalogue, []domain.ID{1})
	}))

	_, err := form.Commit(context.Background())

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "owner", verr.Errors[0].Field)
	assert.Equal(t, table.Creating, form.State())
	assert.Zero(t, orders.Len())
}

func TestOrderForm_Create(t *testing.T) {
	t.Parallel()

	orders := table.New(OrderSchema(), nil, discardLogger())
	form := orders.NewForm()

	require.NoError(t, form.OpenCreate())
	assert.Equal(t, domain.OrderStatusPending, form.Buffer().Status)
	assert.False(t, form.Buffer().Date.IsZero())

	require.NoError(t, form.Set("owner", "Sara"))
	require.NoError(t, form.Edit(func(o *domain.Order) {
		SelectProducts(o, catalogue, []domain.ID{1, 2})
		SetQuantity(o, 1, 2)
		SetQuantity(o, 2, 3)
	}))

	rec, err := form.Commit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ID(1), rec.ID)
	assert.InDelta(t, 35.0, rec.Total, 1e-9)

	require.ErrorIs(t, form.Set("total", "99"), domain.ErrConflict)
}

func TestOrderSchema_TotalIsReadOnly(t *testing.T) {
	t.Parallel()

	form := table.New(OrderSchema(), nil, discardLogger()).NewForm()
	require.NoError(t, form.OpenCreate())

	require.ErrorIs(t, form.Set("total", "99"), domain.ErrValidation)
}

func TestProductForm_Coercion(t *testing.T) {
	t.Parallel()

	products := table.New(ProductSchema(), nil, discardLogger())
	form := products.NewForm()

	require.NoError(t, form.OpenCreate())
	require.NoError(t, form.Set("name", "Milk"))
	require.NoError(t, form.Set("category", " dairy "))
	require.NoError(t, form.Set("price", "12.5"))
	require.NoError(t, form.Set("stock", "abc"))
	require.NoError(t, form.Set("sales", "3"))

	rec, err := form.Commit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Product{
		ID: 1, Name: "Milk", Category: domain.ProductCategoryDairy, Price: 12.5, Stock: 0, Sales: 3,
	}, rec)
}

func TestProductForm_UnknownCategoryRejected(t *testing.T) {
	t.Parallel()

	form := table.New(ProductSchema(), nil, discardLogger()).NewForm()
	require.NoError(t, form.OpenCreate())
	require.NoError(t, form.Set("name", "Fish"))
	require.NoError(t, form.Set("category", "fish"))

	_, err := form.Commit(context.Background())

	require.ErrorIs(t, err, domain.ErrValidation)
}

// ---------------------------------------------------------------------------
// Schemas
// ---------------------------------------------------------------------------

func TestSchemas_SearchableKeysExist(t *testing.T) {
	t.Parallel()

	assert.Len(t, ProductSchema().SearchFields(), len(ProductSchema().Searchable))
	assert.Len(t, OrderSchema().SearchFields(), len(OrderSchema().Searchable))
	assert.Len(t, UserSchema().SearchFields(), len(UserSchema().Searchable))
	assert.Len(t, SupplierSchema().SearchFields(), len(SupplierSchema().Searchable))
	assert.Len(t, EmployeeSchema().SearchFields(), len(EmployeeSchema().Searchable))
}

func TestProductView_SearchAndSort(t *testing.T) {
	t.Parallel()

	products := table.New(ProductSchema(), nil, discardLogger())
	ctx := context.Background()
	for _, p := range catalogue {
		_, err := products.Create(ctx, p)
		require.NoError(t, err)
	}

	got, err := products.View(table.Query{Search: "ch", Sort: table.SortState{Key: "price", Dir: table.Asc}})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Chips", "Cheese", "Chicken"}, []string{got[0].Name, got[1].Name, got[2].Name})

	got, err = products.View(table.Query{Search: "dairy"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cheese", got[0].Name)

	got, err = products.View(table.Query{Sort: table.SortState{Key: "available", Dir: table.Desc}})
	require.NoError(t, err)
	assert.Equal(t, "Cheese", got[0].Name)
}

func TestSearch_MatchesTranslatedEnumLabels(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	products := table.New(ProductSchema(), nil, discardLogger())
	for _, p := range catalogue {
		_, err := products.Create(ctx, p)
		require.NoError(t, err)
	}
	suppliers := table.New(SupplierSchema(), nil, discardLogger())
	_, err := suppliers.Create(ctx, domain.Supplier{Name: "Nile Foods", Email: "nile@example.com", Country: domain.CountryEgypt})
	require.NoError(t, err)
	_, err = suppliers.Create(ctx, domain.Supplier{Name: "Gulf Trade", Email: "gulf@example.com", Country: domain.CountrySaudiArabia})
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "arabic category", query: "لحوم", want: "Chicken"},
		{name: "english category", query: "Meat", want: "Chicken"},
		{name: "category key", query: "MEAT", want: "Chicken"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := products.View(table.Query{Search: tt.query})
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Name)
		})
	}

	got, err := suppliers.View(table.Query{Search: "مصر"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Nile Foods", got[0].Name)

	got, err = suppliers.View(table.Query{Search: "saudi"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Gulf Trade", got[0].Name)
}

func TestUserSchema_DateFields(t *testing.T) {
	t.Parallel()

	users := table.New(UserSchema(), nil, discardLogger())
	form := users.NewForm()

	require.NoError(t, form.OpenCreate())
	require.NoError(t, form.Set("name", "Ahmed"))
	require.NoError(t, form.Set("email", " ahmed@example.com "))
	require.NoError(t, form.Set("status", "inactive"))
	require.NoError(t, form.Set("joinDate", "2023-01-15"))
	require.NoError(t, form.Set("lastActivityDate", "garbage"))

	rec, err := form.Commit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ahmed@example.com", rec.Email)
	assert.Equal(t, domain.UserStatusInactive, rec.Status)
	assert.Equal(t, domain.NewDate(2023, 1, 15), rec.JoinDate)
	assert.True(t, rec.LastActivity.IsZero())
}
