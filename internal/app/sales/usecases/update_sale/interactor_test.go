package update_sale

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

// setup seeds two products and records an initial sale of 3 units of p-1,
// leaving p-1 with 7 in stock.
func setup(t *testing.T) (*salestest.Store, *Interactor, string, time.Time) {
	t.Helper()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	store := salestest.NewStore()
	clk := clock.NewMockClock(now)
	logger := zaptest.NewLogger(t)

	store.SeedProduct(&contracts.ProductRow{ProductID: "p-1", Name: "Widget", PriceCents: 1000, Stock: 10, IsActive: true})
	store.SeedProduct(&contracts.ProductRow{ProductID: "p-2", Name: "Gadget", PriceCents: 2000, Stock: 4, IsActive: true})

	creator := create_sale.NewInteractor(salestest.NewRunner(store), clk, logger)
	created, err := creator.Execute(context.Background(), &create_sale.Request{
		CustomerName:    "Alice",
		CustomerEmail:   "alice@example.com",
		CustomerAddress: "1 Main St",
		Items:           []create_sale.ItemRequest{{ProductID: "p-1", Quantity: 3}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), store.Product("p-1").Stock)

	interactor := NewInteractor(salestest.NewRunner(store), clk, logger)
	return store, interactor, created.SaleID, now
}

func TestUpdateSale(t *testing.T) {
	t.Run("quantity change on same product nets against restored stock", func(t *testing.T) {
		store, interactor, saleID, _ := setup(t)

		err := interactor.Execute(context.Background(), &Request{
			SaleID: saleID,
			Items:  []ItemRequest{{ProductID: "p-1", Quantity: 8}},
		})
		require.NoError(t, err)

		// 7 in stock + 3 restored - 8 sold = 2.
		assert.Equal(t, int64(2), store.Product("p-1").Stock)

		sale, items := store.Sale(saleID)
		assert.Equal(t, int64(8000), sale.TotalCents)
		require.Len(t, items, 1)
		assert.Equal(t, int64(8), items[0].Quantity)
	})

	t.Run("swapping products restores old stock and decrements new", func(t *testing.T) {
		store, interactor, saleID, _ := setup(t)

		err := interactor.Execute(context.Background(), &Request{
			SaleID: saleID,
			Items:  []ItemRequest{{ProductID: "p-2", Quantity: 2}},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(10), store.Product("p-1").Stock)
		assert.Equal(t, int64(2), store.Product("p-2").Stock)

		sale, items := store.Sale(saleID)
		assert.Equal(t, int64(4000), sale.TotalCents)
		require.Len(t, items, 1)
		assert.Equal(t, "p-2", items[0].ProductID)
	})

	t.Run("new quantity beyond restored stock fails atomically", func(t *testing.T) {
		store, interactor, saleID, _ := setup(t)

		err := interactor.Execute(context.Background(), &Request{
			SaleID: saleID,
			Items:  []ItemRequest{{ProductID: "p-1", Quantity: 11}},
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)

		// Unchanged: the restore never committed.
		assert.Equal(t, int64(7), store.Product("p-1").Stock)
		sale, items := store.Sale(saleID)
		assert.Equal(t, int64(3000), sale.TotalCents)
		assert.Equal(t, int64(3), items[0].Quantity)
	})

	t.Run("update re-snapshots the current price", func(t *testing.T) {
		store, interactor, saleID, _ := setup(t)

		p := store.Product("p-1")
		p.PriceCents = 1500
		store.SeedProduct(p)

		err := interactor.Execute(context.Background(), &Request{
			SaleID: saleID,
			Items:  []ItemRequest{{ProductID: "p-1", Quantity: 3}},
		})
		require.NoError(t, err)

		sale, items := store.Sale(saleID)
		assert.Equal(t, int64(4500), sale.TotalCents)
		assert.Equal(t, int64(1500), items[0].UnitPriceCents)
	})

	t.Run("customer fields update without items changing semantics", func(t *testing.T) {
		store, interactor, saleID, _ := setup(t)

		name := "Bob"
		err := interactor.Execute(context.Background(), &Request{
			SaleID:       saleID,
			CustomerName: &name,
			Items:        []ItemRequest{{ProductID: "p-1", Quantity: 3}},
		})
		require.NoError(t, err)

		sale, _ := store.Sale(saleID)
		assert.Equal(t, "Bob", sale.CustomerName)
		assert.Equal(t, "alice@example.com", sale.CustomerEmail)
		assert.Equal(t, int64(7), store.Product("p-1").Stock)
	})

	t.Run("unknown sale fails", func(t *testing.T) {
		_, interactor, _, _ := setup(t)

		err := interactor.Execute(context.Background(), &Request{
			SaleID: "ghost",
			Items:  []ItemRequest{{ProductID: "p-1", Quantity: 1}},
		})
		assert.ErrorIs(t, err, domain.ErrSaleNotFound)
	})

	t.Run("empty replacement item set fails", func(t *testing.T) {
		_, interactor, saleID, _ := setup(t)

		err := interactor.Execute(context.Background(), &Request{SaleID: saleID})
		assert.ErrorIs(t, err, domain.ErrNoLineItems)
	})

	t.Run("emits sale.updated event", func(t *testing.T) {
		store, interactor, saleID, _ := setup(t)

		err := interactor.Execute(context.Background(), &Request{
			SaleID: saleID,
			Items:  []ItemRequest{{ProductID: "p-1", Quantity: 1}},
		})
		require.NoError(t, err)

		events := store.Events()
		require.Len(t, events, 2) // created + updated
		assert.Equal(t, "sale.updated", events[1].EventType)
		assert.Equal(t, saleID, events[1].AggregateID)
	})
}
