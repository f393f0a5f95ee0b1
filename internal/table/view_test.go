package table

import (
	"math"
	"testing"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Filter
// ---------------------------------------------------------------------------

func TestFilter(t *testing.T) {
	t.Parallel()

	records := []item{
		{ID: 1, Name: "Chicken Breast", Price: 45},
		{ID: 2, Name: "Milk", Price: 12.5},
		{ID: 3, Name: "chips", Price: 5},
		{ID: 4, Name: "Cheese", Price: 60},
	}
	fields := itemSchema().SearchFields()

	tests := []struct {
		name  string
		query string
		want  []domain.ID
	}{
		{name: "empty query keeps order", query: "", want: []domain.ID{1, 2, 3, 4}},
		{name: "case insensitive", query: "CH", want: []domain.ID{1, 3, 4}},
		{name: "substring", query: "ilk", want: []domain.ID{2}},
		{name: "numeric field", query: "12.5", want: []domain.ID{2}},
		{name: "any field matches", query: "5", want: []domain.ID{1, 2, 3}},
		{name: "no match", query: "bread", want: []domain.ID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ids(Filter(records, tt.query, fields)))
		})
	}
}

func TestFilter_UnsearchedFieldIgnored(t *testing.T) {
	t.Parallel()

	records := []item{{ID: 1, Name: "a", Qty: 77}}

	got := Filter(records, "77", itemSchema().SearchFields())

	assert.Empty(t, got)
}

// ---------------------------------------------------------------------------
// Sort
// ---------------------------------------------------------------------------

func TestSort_ByKind(t *testing.T) {
	t.Parallel()

	schema := itemSchema()
	records := []item{
		{ID: 1, Name: "b", Price: 10, Day: domain.NewDate(2024, 3, 1)},
		{ID: 2, Name: "a", Price: 9, Day: domain.NewDate(2023, 12, 31)},
		{ID: 3, Name: "c", Price: 100, Day: domain.NewDate(2024, 1, 15)},
	}

	tests := []struct {
		key  string
		dir  Direction
		want []domain.ID
	}{
		{key: "name", dir: Asc, want: []domain.ID{2, 1, 3}},
		{key: "name", dir: Desc, want: []domain.ID{3, 1, 2}},
		{key: "price", dir: Asc, want: []domain.ID{2, 1, 3}},
		{key: "price", dir: Desc, want: []domain.ID{3, 1, 2}},
		{key: "day", dir: Asc, want: []domain.ID{2, 3, 1}},
		{key: "day", dir: Desc, want: []domain.ID{1, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.key+"_"+tt.dir.String(), func(t *testing.T) {
			t.Parallel()
			field, ok := schema.Field(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, ids(Sort(records, field, tt.dir)))
		})
	}
}

func TestSort_StableOnTies(t *testing.T) {
	t.Parallel()

	field, _ := itemSchema().Field("qty")
	records := []item{
		{ID: 1, Qty: 2}, {ID: 2, Qty: 1}, {ID: 3, Qty: 2}, {ID: 4, Qty: 1},
	}

	assert.Equal(t, []domain.ID{2, 4, 1, 3}, ids(Sort(records, field, Asc)))
	assert.Equal(t, []domain.ID{1, 3, 2, 4}, ids(Sort(records, field, Desc)))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	field, _ := itemSchema().Field("name")
	records := []item{{ID: 1, Name: "b"}, {ID: 2, Name: "a"}}

	_ = Sort(records, field, Asc)

	assert.Equal(t, []domain.ID{1, 2}, ids(records))
}

func TestSortState_Toggle(t *testing.T) {
	t.Parallel()

	var s SortState

	s = s.Toggle("price")
	assert.Equal(t, SortState{Key: "price", Dir: Asc}, s)

	s = s.Toggle("price")
	assert.Equal(t, SortState{Key: "price", Dir: Desc}, s)

	s = s.Toggle("price")
	assert.Equal(t, SortState{Key: "price", Dir: Asc}, s)

	s = s.Toggle("price").Toggle("name")
	assert.Equal(t, SortState{Key: "name", Dir: Asc}, s)
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Desc, ParseDirection("desc"))
	assert.Equal(t, Desc, ParseDirection(" DESC "))
	assert.Equal(t, Asc, ParseDirection("asc"))
	assert.Equal(t, Asc, ParseDirection(""))
	assert.Equal(t, Asc, ParseDirection("sideways"))
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func TestTable_View(t *testing.T) {
	t.Parallel()

	tbl := newItemTable(
		item{ID: 1, Name: "Milk", Price: 12},
		item{ID: 2, Name: "Cheese", Price: 60},
		item{ID: 3, Name: "Chips", Price: 5},
	)

	got, err := tbl.View(Query{})
	require.NoError(t, err)
	assert.Equal(t, []domain.ID{1, 2, 3}, ids(got))

	got, err = tbl.View(Query{Search: "ch", Sort: SortState{Key: "price", Dir: Desc}})
	require.NoError(t, err)
	assert.Equal(t, []domain.ID{2, 3}, ids(got))
}

func TestTable_View_UnknownSortKey(t *testing.T) {
	t.Parallel()

	tbl := newItemTable(item{ID: 1, Name: "a"})

	_, err := tbl.View(Query{Sort: SortState{Key: "colour"}})

	require.ErrorIs(t, err, domain.ErrValidation)
}

// ---------------------------------------------------------------------------
// Value
// ---------------------------------------------------------------------------

func TestCompare_MixedKindsUseText(t *testing.T) {
	t.Parallel()

	assert.Negative(t, Compare(Num(1), Str("b")))
	assert.Zero(t, Compare(Num(2), Str("2")))
}

func TestValue_Text(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12.5", Num(12.5).Text())
	assert.Equal(t, "3", Int(3).Text())
	assert.Equal(t, "2024-02-29", Day(domain.NewDate(2024, 2, 29)).Text())
	assert.Equal(t, "", Day(domain.Date{}).Text())
}

func TestCoerce(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ParseInt("abc"))
	assert.Equal(t, 0, ParseInt(""))
	assert.Equal(t, 7, ParseInt(" 7 "))
	assert.Equal(t, 7, ParseInt("7.9"))
	assert.InDelta(t, 0.0, ParseFloat("x"), 1e-9)
	assert.InDelta(t, 12.5, ParseFloat("12.5"), 1e-9)
	assert.True(t, ParseDay("not a date").IsZero())
	assert.Equal(t, domain.NewDate(2024, 5, 1), ParseDay("2024-05-01"))
}

func TestParse_NonFiniteBecomesZero(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"NaN", "nan", "Inf", "-Inf", "+Infinity", "1e400"} {
		assert.Zero(t, ParseFloat(raw), raw)
		assert.Zero(t, ParseInt(raw), raw)
	}
}

func TestParseInt_ClampsLargeFloats(t *testing.T) {
	t.Parallel()

	assert.Equal(t, math.MaxInt, ParseInt("1e300"))
	assert.Equal(t, math.MinInt, ParseInt("-1e300"))
	assert.InDelta(t, 1e300, ParseFloat("1e300"), 1e285)
}

// ---------------------------------------------------------------------------
// Aggregates
// ---------------------------------------------------------------------------

func TestAggregates(t *testing.T) {
	t.Parallel()

	records := []item{
		{ID: 1, Name: "a", Qty: 3, Price: 1.1},
		{ID: 2, Name: "b", Qty: 9, Price: 2.2},
		{ID: 3, Name: "a", Qty: 9, Price: 3.3},
	}

	best, ok := MaxBy(records, func(r item) int { return r.Qty })
	require.True(t, ok)
	assert.Equal(t, domain.ID(2), best.ID)

	low, ok := MinBy(records, func(r item) int { return r.Qty })
	require.True(t, ok)
	assert.Equal(t, domain.ID(1), low.ID)

	_, ok = MaxBy([]item(nil), func(r item) int { return r.Qty })
	assert.False(t, ok)

	assert.Equal(t, 2, Count(records, func(r item) bool { return r.Qty == 9 }))
	assert.Equal(t, 2, Distinct(records, func(r item) string { return r.Name }))
	assert.Equal(t, "6.6", Sum(records, func(r item) decimal.Decimal {
		return decimal.NewFromFloat(r.Price)
	}).String())
}
