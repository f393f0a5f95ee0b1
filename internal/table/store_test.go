package table

import (
	"context"
	"sync"
	"testing"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestStore_Create_AppendsOnce(t *testing.T) {
	t.Parallel()

	tbl := newItemTable()
	ctx := context.Background()

	created, err := tbl.Create(ctx, item{Name: "Milk", Price: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.ID(1), created.ID)

	list := tbl.List()
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
}

func TestStore_Create_NextIDIsMaxPlusOne(t *testing.T) {
	t.Parallel()

	tbl := newItemTable(item{ID: 1, Name: "a"}, item{ID: 3, Name: "b"})

	created, err := tbl.Create(context.Background(), item{Name: "c"})
	require.NoError(t, err)
	assert.Equal(t, domain.ID(4), created.ID)
	assert.Equal(t, []domain.ID{1, 3, 4}, ids(tbl.List()))
}

func TestStore_Create_IgnoresSuppliedID(t *testing.T) {
	t.Parallel()

	tbl := newItemTable(item{ID: 5, Name: "a"})

	created, err := tbl.Create(context.Background(), item{ID: 2, Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, domain.ID(6), created.ID)
}

func TestStore_Create_DoesNotReuseDeletedTopID(t *testing.T) {
	t.Parallel()

	tbl := newItemTable(item{ID: 1, Name: "a"}, item{ID: 2, Name: "b"})
	ctx := context.Background()

	require.NoError(t, tbl.Delete(ctx, 2))

	created, err := tbl.Create(ctx, item{Name: "c"})
	require.NoError(t, err)
	assert.Equal(t, domain.ID(3), created.ID)
}

func TestStore_Create_ValidationLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	repo := &memRepo{records: []item{{ID: 1, Name: "a"}}}
	tbl := New(itemSchema(), repo, discardLogger())
	require.NoError(t, tbl.Load(context.Background()))

	_, err := tbl.Create(context.Background(), item{Name: ""})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, []domain.ID{1}, ids(tbl.List()))
	_, saves := repo.snapshot()
	assert.Zero(t, saves)
}

func TestStore_Create_PersistsFullCollection(t *testing.T) {
	t.Parallel()

	repo := &memRepo{records: []item{{ID: 1, Name: "a"}}}
	tbl := New(itemSchema(), repo, discardLogger())
	require.NoError(t, tbl.Load(context.Background()))

	_, err := tbl.Create(context.Background(), item{Name: "b"})
	require.NoError(t, err)

	saved, saves := repo.snapshot()
	assert.Equal(t, 1, saves)
	assert.Equal(t, []string{"a", "b"}, names(saved))
}

func TestStore_Create_SaveFailureKeepsMutation(t *testing.T) {
	t.Parallel()

	repo := &memRepo{saveErr: errDiskFull}
	tbl := New(itemSchema(), repo, discardLogger())

	_, err := tbl.Create(context.Background(), item{Name: "a"})

	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
}

// ---------------------------------------------------------------------------
// Update / Delete / Get
// ---------------------------------------------------------------------------

func TestStore_Update(t *testing.T) {
	t.Parallel()

	tbl := newItemTable(item{ID: 1, Name: "a"}, item{ID: 2, Name: "b"})

	err := tbl.Update(context.Background(), 2, item{ID: 99, Name: "B", Qty: 7})
	require.NoError(t, err)

	got, err := tbl.Get(2)
	require.NoError(t, err)
	assert.Equal(t, item{ID: 2, Name: "B", Qty: 7}, got)
	assert.Equal(t, []string{"a", "B"}, names(tbl.List()))
}

func TestStore_Update_UnknownID(t *testing.T) {
	t.Parallel()

	tbl := newItemTable(item{ID: 1, Name: "a"})

	err := tbl.Update(context.Background(), 42, item{Name: "x"})

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []string{"a"}, names(tbl.List()))
}

func TestStore_Update_Validation(t *testing.T) {
	t.Parallel()

	tbl := newItemTable(item{ID: 1, Name: "a"})

	err := tbl.Update(context.Background(), 1, item{Name: ""})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, []string{"a"}, names(tbl.List()))
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	tbl := newItemTable(item{ID: 1, Name: "a"}, item{ID: 2, Name: "b"}, item{ID: 3, Name: "c"})

	require.NoError(t, tbl.Delete(context.Background(), 2))

	assert.Equal(t, []domain.ID{1, 3}, ids(tbl.List()))
	_, err := tbl.Get(2)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Delete_UnknownIDLeavesListUnchanged(t *testing.T) {
	t.Parallel()

	tbl := newItemTable(item{ID: 1, Name: "a"}, item{ID: 2, Name: "b"})
	before := tbl.List()

	err := tbl.Delete(context.Background(), 9)

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, before, tbl.List())
}

func TestStore_ListReturnsCopies(t *testing.T) {
	t.Parallel()

	tbl := newItemTable(item{ID: 1, Name: "a", Tags: []string{"x"}})

	list := tbl.List()
	list[0].Name = "mutated"
	list[0].Tags[0] = "mutated"

	got, err := tbl.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name)
	assert.Equal(t, []string{"x"}, got.Tags)
}

// ---------------------------------------------------------------------------
// Load / concurrency
// ---------------------------------------------------------------------------

func TestStore_Load_Error(t *testing.T) {
	t.Parallel()

	tbl := New(itemSchema(), &memRepo{loadErr: errDiskFull}, discardLogger())

	err := tbl.Load(context.Background())

	require.ErrorIs(t, err, errDiskFull)
	assert.Zero(t, tbl.Len())
}

func TestStore_NilRepository(t *testing.T) {
	t.Parallel()

	tbl := New(itemSchema(), nil, discardLogger())
	ctx := context.Background()

	require.NoError(t, tbl.Load(ctx))
	_, err := tbl.Create(ctx, item{Name: "a"})
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
}

func TestStore_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	t.Parallel()

	tbl := newItemTable()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tbl.Create(ctx, item{Name: "x"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	seen := make(map[domain.ID]bool, n)
	for _, rec := range tbl.List() {
		assert.False(t, seen[rec.ID], "duplicate id %d", rec.ID)
		seen[rec.ID] = true
	}
	assert.Len(t, seen, n)
}
