package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkozlov/orderboard/internal/domain"
	"github.com/dkozlov/orderboard/internal/testutil"
)

func newTestRepo(t *testing.T) *SheetOrderRepo {
	t.Helper()
	return NewSheetOrderRepo(testutil.NewTestDB(t))
}

func TestSheetOrderRepo_LoadOrders_RowOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seed := []domain.Order{
		testutil.NewTestOrder("N-301"),
		testutil.NewTestOrder("N-100"),
		testutil.NewTestOrder("N-205"),
	}
	require.NoError(t, repo.SeedOrders(ctx, seed))

	orders, err := repo.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "N-301", orders[0].OrderNumber)
	assert.Equal(t, "N-100", orders[1].OrderNumber)
	assert.Equal(t, "N-205", orders[2].OrderNumber)
}

func TestSheetOrderRepo_LoadOrders_CanonicalizesDates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	o := testutil.NewTestOrder("N-1", testutil.WithPlannedDate("2026-09-01"))
	o.OrderDate = "20/08/2026"
	require.NoError(t, repo.SeedOrders(ctx, []domain.Order{o}))

	orders, err := repo.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "01.09.2026", orders[0].PlannedDate)
	assert.Equal(t, "20.08.2026", orders[0].OrderDate)
}

func TestSheetOrderRepo_LoadOrders_ParsesStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SeedOrders(ctx, []domain.Order{
		testutil.NewTestOrder("N-1", testutil.WithStatus("Delivered")),
		testutil.NewTestOrder("N-2", testutil.WithStatus("READY")),
	}))

	orders, err := repo.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, orders[0].Status)
	assert.Equal(t, domain.StatusReady, orders[1].Status)
}

func TestSheetOrderRepo_UpdatePlannedDate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SeedOrders(ctx, []domain.Order{
		testutil.NewTestOrder("N-1", testutil.WithPlannedDate("01.09.2026")),
		testutil.NewTestOrder("N-2", testutil.WithPlannedDate("01.09.2026")),
	}))
	_, err := repo.LoadOrders(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.UpdatePlannedDate(ctx, "N-2", "03/09/2026"))

	orders, err := repo.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, "01.09.2026", orders[0].PlannedDate)
	assert.Equal(t, "03.09.2026", orders[1].PlannedDate, "target date is canonicalized on write")
}

func TestSheetOrderRepo_UpdatePlannedDate_RequiresSnapshot(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SeedOrders(ctx, []domain.Order{testutil.NewTestOrder("N-1")}))

	err := repo.UpdatePlannedDate(ctx, "N-1", "03.09.2026")
	assert.Error(t, err, "mutations resolve rows against the last loaded snapshot")
}

func TestSheetOrderRepo_UpdatePlannedDate_UnknownOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SeedOrders(ctx, []domain.Order{testutil.NewTestOrder("N-1")}))
	_, err := repo.LoadOrders(ctx)
	require.NoError(t, err)

	err = repo.UpdatePlannedDate(ctx, "N-999", "03.09.2026")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSheetOrderRepo_UpdateStatus_SetAndClearDelivery(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SeedOrders(ctx, []domain.Order{
		testutil.NewTestOrder("N-1", testutil.WithStatus(domain.StatusReady)),
	}))
	_, err := repo.LoadOrders(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, "N-1", domain.StatusDelivered, "01.09.2026"))
	orders, err := repo.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, orders[0].Status)
	assert.Equal(t, "01.09.2026", orders[0].DeliveryDate)

	require.NoError(t, repo.UpdateStatus(ctx, "N-1", domain.StatusReady, ""))
	orders, err = repo.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReady, orders[0].Status)
	assert.Equal(t, "", orders[0].DeliveryDate)
}

func TestSheetOrderRepo_CheckEditAccess(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSheetOrderRepo(database)
	ctx := context.Background()

	assert.True(t, repo.CheckEditAccess(ctx))

	_, err := database.Exec(`UPDATE sheet_meta SET value = '0' WHERE key = 'can_edit'`)
	require.NoError(t, err)
	assert.False(t, repo.CheckEditAccess(ctx))

	// Fail closed on any underlying error.
	_, err = database.Exec(`DROP TABLE sheet_meta`)
	require.NoError(t, err)
	assert.False(t, repo.CheckEditAccess(ctx))
}

func TestSheetOrderRepo_SeedReplacesExistingRows(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SeedOrders(ctx, testutil.NewTestOrders(3, "01.09.2026")))
	require.NoError(t, repo.SeedOrders(ctx, []domain.Order{testutil.NewTestOrder("N-9")}))

	orders, err := repo.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "N-9", orders[0].OrderNumber)
}
