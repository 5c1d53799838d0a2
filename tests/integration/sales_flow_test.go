//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	salesdomain "github.com/light-bringer/ecom-backoffice/internal/app/sales/domain"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/queries/get_sale"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/queries/sales_summary"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/repo"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/usecases/create_sale"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/usecases/delete_sale"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/usecases/update_sale"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
	"github.com/light-bringer/ecom-backoffice/tests/testutil"
)

func TestSalesFlow_CreateReadDelete(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	logger := zaptest.NewLogger(t)
	clk := clock.NewMockClock(time.Now())

	txRunner := repo.NewSpannerTxRunner(client, clk)
	readModel := repo.NewReadModel(client, logger)

	categoryID := testutil.CreateTestCategory(t, client, "Electronics")
	keyboardID := testutil.CreateTestProduct(t, client, categoryID, "Keyboard", 4999, 10)
	mouseID := testutil.CreateTestProduct(t, client, categoryID, "Mouse", 1999, 4)

	createUC := create_sale.NewInteractor(txRunner, clk, logger)

	created, err := createUC.Execute(ctx, &create_sale.Request{
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		CustomerAddress: "12 Analytical Way",
		Items: []create_sale.ItemRequest{
			{ProductID: keyboardID, Quantity: 2},
			{ProductID: mouseID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.SaleID)

	// Stock was decremented atomically with the sale insert.
	assert.Equal(t, int64(8), testutil.ProductStock(t, client, keyboardID))
	assert.Equal(t, int64(3), testutil.ProductStock(t, client, mouseID))
	testutil.AssertOutboxEvent(t, client, "sale.created")

	getQ := get_sale.NewQuery(readModel)
	sale, err := getQ.Execute(ctx, &get_sale.Request{SaleID: created.SaleID})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", sale.CustomerName)
	assert.Equal(t, int64(2*4999+1999), sale.TotalCents)
	require.Len(t, sale.Items, 2)

	deleteUC := delete_sale.NewInteractor(txRunner, clk, logger)
	require.NoError(t, deleteUC.Execute(ctx, &delete_sale.Request{SaleID: created.SaleID}))

	// Hard delete: sale and its items are gone, stock stays consumed.
	testutil.AssertRowCount(t, client, "sales", 0)
	testutil.AssertRowCount(t, client, "sale_items", 0)
	assert.Equal(t, int64(8), testutil.ProductStock(t, client, keyboardID))

	_, err = getQ.Execute(ctx, &get_sale.Request{SaleID: created.SaleID})
	assert.ErrorIs(t, err, salesdomain.ErrSaleNotFound)
}

func TestSalesFlow_InsufficientStockWritesNothing(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	logger := zaptest.NewLogger(t)
	clk := clock.NewMockClock(time.Now())
	txRunner := repo.NewSpannerTxRunner(client, clk)

	categoryID := testutil.CreateTestCategory(t, client, "Electronics")
	keyboardID := testutil.CreateTestProduct(t, client, categoryID, "Keyboard", 4999, 10)
	mouseID := testutil.CreateTestProduct(t, client, categoryID, "Mouse", 1999, 1)

	createUC := create_sale.NewInteractor(txRunner, clk, logger)

	_, err := createUC.Execute(ctx, &create_sale.Request{
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		CustomerAddress: "12 Analytical Way",
		Items: []create_sale.ItemRequest{
			{ProductID: keyboardID, Quantity: 1},
			{ProductID: mouseID, Quantity: 5},
		},
	})
	require.ErrorIs(t, err, salesdomain.ErrInsufficientStock)

	testutil.AssertRowCount(t, client, "sales", 0)
	testutil.AssertRowCount(t, client, "outbox_events", 0)
	assert.Equal(t, int64(10), testutil.ProductStock(t, client, keyboardID))
	assert.Equal(t, int64(1), testutil.ProductStock(t, client, mouseID))
}

func TestSalesFlow_UpdateRestoresAndReapplies(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	logger := zaptest.NewLogger(t)
	clk := clock.NewMockClock(time.Now())
	txRunner := repo.NewSpannerTxRunner(client, clk)
	readModel := repo.NewReadModel(client, logger)

	categoryID := testutil.CreateTestCategory(t, client, "Electronics")
	keyboardID := testutil.CreateTestProduct(t, client, categoryID, "Keyboard", 4999, 10)
	mouseID := testutil.CreateTestProduct(t, client, categoryID, "Mouse", 1999, 4)

	createUC := create_sale.NewInteractor(txRunner, clk, logger)
	created, err := createUC.Execute(ctx, &create_sale.Request{
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		CustomerAddress: "12 Analytical Way",
		Items:           []create_sale.ItemRequest{{ProductID: keyboardID, Quantity: 3}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), testutil.ProductStock(t, client, keyboardID))

	// Swap the keyboard line for a mouse line.
	updateUC := update_sale.NewInteractor(txRunner, clk, logger)
	err = updateUC.Execute(ctx, &update_sale.Request{
		SaleID: created.SaleID,
		Items:  []update_sale.ItemRequest{{ProductID: mouseID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), testutil.ProductStock(t, client, keyboardID), "old quantities returned to stock")
	assert.Equal(t, int64(2), testutil.ProductStock(t, client, mouseID))

	sale, err := get_sale.NewQuery(readModel).Execute(ctx, &get_sale.Request{SaleID: created.SaleID})
	require.NoError(t, err)
	assert.Equal(t, int64(2*1999), sale.TotalCents)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, mouseID, sale.Items[0].ProductID)
}

func TestSalesFlow_Summary(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	logger := zaptest.NewLogger(t)
	clk := clock.NewMockClock(time.Now())
	txRunner := repo.NewSpannerTxRunner(client, clk)
	readModel := repo.NewReadModel(client, logger)

	categoryID := testutil.CreateTestCategory(t, client, "Electronics")
	keyboardID := testutil.CreateTestProduct(t, client, categoryID, "Keyboard", 4999, 10)
	mouseID := testutil.CreateTestProduct(t, client, categoryID, "Mouse", 1999, 10)

	createUC := create_sale.NewInteractor(txRunner, clk, logger)
	for _, items := range [][]create_sale.ItemRequest{
		{{ProductID: keyboardID, Quantity: 2}},
		{{ProductID: keyboardID, Quantity: 1}, {ProductID: mouseID, Quantity: 3}},
	} {
		_, err := createUC.Execute(ctx, &create_sale.Request{
			CustomerName:    "Ada Lovelace",
			CustomerEmail:   "ada@example.com",
			CustomerAddress: "12 Analytical Way",
			Items:           items,
		})
		require.NoError(t, err)
	}

	summary, err := sales_summary.NewQuery(readModel).Execute(ctx, &sales_summary.Request{})
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.DistinctSales)
	assert.Equal(t, int64(6), summary.TotalUnits)
	assert.Equal(t, int64(3*4999+3*1999), summary.TotalRevCents)
	require.Len(t, summary.Rows, 2)
	assert.Equal(t, "Keyboard", summary.Rows[0].ProductName, "rows ordered by revenue, keyboards first")
}
