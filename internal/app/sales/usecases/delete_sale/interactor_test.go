package delete_sale

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/light-bringer/ecom-backoffice/internal/app/sales/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/domain"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/salestest"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/usecases/create_sale"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
)

func setup(t *testing.T) (*salestest.Store, *Interactor, string) {
	t.Helper()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	store := salestest.NewStore()
	clk := clock.NewMockClock(now)
	logger := zaptest.NewLogger(t)

	store.SeedProduct(&contracts.ProductRow{ProductID: "p-1", PriceCents: 1000, Stock: 10, IsActive: true})

	creator := create_sale.NewInteractor(salestest.NewRunner(store), clk, logger)
	created, err := creator.Execute(context.Background(), &create_sale.Request{
		CustomerName:    "Alice",
		CustomerEmail:   "alice@example.com",
		CustomerAddress: "1 Main St",
		Items:           []create_sale.ItemRequest{{ProductID: "p-1", Quantity: 4}},
	})
	require.NoError(t, err)

	return store, NewInteractor(salestest.NewRunner(store), clk, logger), created.SaleID
}

func TestDeleteSale(t *testing.T) {
	t.Run("removes sale and items without restoring stock", func(t *testing.T) {
		store, interactor, saleID := setup(t)
		require.Equal(t, int64(6), store.Product("p-1").Stock)

		err := interactor.Execute(context.Background(), &Request{SaleID: saleID})
		require.NoError(t, err)

		sale, items := store.Sale(saleID)
		assert.Nil(t, sale)
		assert.Empty(t, items)

		// Deleting the record does not undo the fulfilment.
		assert.Equal(t, int64(6), store.Product("p-1").Stock)
	})

	t.Run("unknown sale fails", func(t *testing.T) {
		_, interactor, _ := setup(t)
		err := interactor.Execute(context.Background(), &Request{SaleID: "ghost"})
		assert.ErrorIs(t, err, domain.ErrSaleNotFound)
	})

	t.Run("emits sale.deleted event", func(t *testing.T) {
		store, interactor, saleID := setup(t)

		err := interactor.Execute(context.Background(), &Request{SaleID: saleID})
		require.NoError(t, err)

		events := store.Events()
		require.Len(t, events, 2) // created + deleted
		assert.Equal(t, "sale.deleted", events[1].EventType)
		assert.Equal(t, saleID, events[1].AggregateID)
	})
}
