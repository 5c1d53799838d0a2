package create_sale

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/light-bringer/ecom-backoffice/internal/app/sales/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/domain"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/salestest"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
)

func setup(t *testing.T) (*salestest.Store, *Interactor, time.Time) {
	t.Helper()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	store := salestest.NewStore()
	interactor := NewInteractor(salestest.NewRunner(store), clock.NewMockClock(now), zaptest.NewLogger(t))
	return store, interactor, now
}

func seedProduct(store *salestest.Store, id string, priceCents, stock int64) {
	store.SeedProduct(&contracts.ProductRow{
		ProductID:  id,
		Name:       "Product " + id,
		PriceCents: priceCents,
		Stock:      stock,
		IsActive:   true,
	})
}

func validRequest(items ...ItemRequest) *Request {
	return &Request{
		CustomerName:    "Alice",
		CustomerEmail:   "alice@example.com",
		CustomerAddress: "1 Main St",
		Items:           items,
	}
}

func TestCreateSale(t *testing.T) {
	t.Run("records sale, snapshots prices, decrements stock", func(t *testing.T) {
		store, interactor, now := setup(t)
		seedProduct(store, "p-1", 1000, 10)
		seedProduct(store, "p-2", 2550, 3)

		result, err := interactor.Execute(context.Background(), validRequest(
			ItemRequest{ProductID: "p-1", Quantity: 2},
			ItemRequest{ProductID: "p-2", Quantity: 1},
		))
		require.NoError(t, err)
		require.NotEmpty(t, result.SaleID)
		assert.Equal(t, int64(4550), result.TotalCents)
		require.Len(t, result.Items, 2)
		assert.Equal(t, int64(2000), result.Items[0].LineTotalCents)

		saleID := result.SaleID
		sale, items := store.Sale(saleID)
		require.NotNil(t, sale)
		assert.Equal(t, int64(4550), sale.TotalCents)
		assert.Equal(t, now, sale.SaleDate)
		require.Len(t, items, 2)
		assert.Equal(t, int64(1000), items[0].UnitPriceCents)
		assert.Equal(t, int64(2550), items[1].UnitPriceCents)

		assert.Equal(t, int64(8), store.Product("p-1").Stock)
		assert.Equal(t, int64(2), store.Product("p-2").Stock)

		events := store.Events()
		require.Len(t, events, 1)
		assert.Equal(t, "sale.created", events[0].EventType)
		assert.Equal(t, saleID, events[0].AggregateID)
	})

	t.Run("insufficient stock on one line writes nothing", func(t *testing.T) {
		store, interactor, _ := setup(t)
		seedProduct(store, "p-1", 1000, 10)
		seedProduct(store, "p-2", 2000, 1)

		_, err := interactor.Execute(context.Background(), validRequest(
			ItemRequest{ProductID: "p-1", Quantity: 2},
			ItemRequest{ProductID: "p-2", Quantity: 5},
		))
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)

		// Nothing moved: no sale, no stock change, no event.
		assert.Equal(t, 0, store.SaleCount())
		assert.Equal(t, int64(10), store.Product("p-1").Stock)
		assert.Equal(t, int64(1), store.Product("p-2").Stock)
		assert.Empty(t, store.Events())
	})

	t.Run("exact stock boundary succeeds and leaves zero", func(t *testing.T) {
		store, interactor, _ := setup(t)
		seedProduct(store, "p-1", 1000, 5)

		_, err := interactor.Execute(context.Background(), validRequest(
			ItemRequest{ProductID: "p-1", Quantity: 5},
		))
		require.NoError(t, err)
		assert.Equal(t, int64(0), store.Product("p-1").Stock)

		// The next unit is refused.
		_, err = interactor.Execute(context.Background(), validRequest(
			ItemRequest{ProductID: "p-1", Quantity: 1},
		))
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	})

	t.Run("unknown product fails", func(t *testing.T) {
		store, interactor, _ := setup(t)
		seedProduct(store, "p-1", 1000, 10)

		_, err := interactor.Execute(context.Background(), validRequest(
			ItemRequest{ProductID: "ghost", Quantity: 1},
		))
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.Equal(t, 0, store.SaleCount())
	})

	t.Run("deleted product fails", func(t *testing.T) {
		store, interactor, _ := setup(t)
		store.SeedProduct(&contracts.ProductRow{
			ProductID: "p-1", PriceCents: 1000, Stock: 10, IsActive: true, IsDeleted: true,
		})

		_, err := interactor.Execute(context.Background(), validRequest(
			ItemRequest{ProductID: "p-1", Quantity: 1},
		))
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("inactive product fails", func(t *testing.T) {
		store, interactor, _ := setup(t)
		store.SeedProduct(&contracts.ProductRow{
			ProductID: "p-1", PriceCents: 1000, Stock: 10, IsActive: false,
		})

		_, err := interactor.Execute(context.Background(), validRequest(
			ItemRequest{ProductID: "p-1", Quantity: 1},
		))
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("empty items fails before touching storage", func(t *testing.T) {
		_, interactor, _ := setup(t)
		_, err := interactor.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, domain.ErrNoLineItems)
	})

	t.Run("zero quantity fails", func(t *testing.T) {
		store, interactor, _ := setup(t)
		seedProduct(store, "p-1", 1000, 10)

		_, err := interactor.Execute(context.Background(), validRequest(
			ItemRequest{ProductID: "p-1", Quantity: 0},
		))
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("duplicate product lines fail", func(t *testing.T) {
		store, interactor, _ := setup(t)
		seedProduct(store, "p-1", 1000, 10)

		_, err := interactor.Execute(context.Background(), validRequest(
			ItemRequest{ProductID: "p-1", Quantity: 1},
			ItemRequest{ProductID: "p-1", Quantity: 2},
		))
		assert.ErrorIs(t, err, domain.ErrDuplicateProduct)
	})

	t.Run("future sale date fails", func(t *testing.T) {
		store, interactor, now := setup(t)
		seedProduct(store, "p-1", 1000, 10)

		req := validRequest(ItemRequest{ProductID: "p-1", Quantity: 1})
		req.SaleDate = now.Add(time.Hour)

		_, err := interactor.Execute(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrFutureSaleDate)
	})

	t.Run("missing customer fields fail", func(t *testing.T) {
		store, interactor, _ := setup(t)
		seedProduct(store, "p-1", 1000, 10)

		req := validRequest(ItemRequest{ProductID: "p-1", Quantity: 1})
		req.CustomerName = ""
		_, err := interactor.Execute(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrMissingCustomer)

		req = validRequest(ItemRequest{ProductID: "p-1", Quantity: 1})
		req.CustomerEmail = ""
		_, err = interactor.Execute(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrMissingEmail)

		req = validRequest(ItemRequest{ProductID: "p-1", Quantity: 1})
		req.CustomerAddress = ""
		_, err = interactor.Execute(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrMissingAddress)

		assert.Equal(t, 0, store.SaleCount())
		assert.Equal(t, int64(10), store.Product("p-1").Stock)
	})

	t.Run("whitespace-only customer fields count as blank", func(t *testing.T) {
		store, interactor, _ := setup(t)
		seedProduct(store, "p-1", 1000, 10)

		req := validRequest(ItemRequest{ProductID: "p-1", Quantity: 1})
		req.CustomerName = "   "
		_, err := interactor.Execute(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrMissingCustomer)

		req = validRequest(ItemRequest{ProductID: "p-1", Quantity: 1})
		req.CustomerEmail = "\t"
		_, err = interactor.Execute(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrMissingEmail)

		req = validRequest(ItemRequest{ProductID: "p-1", Quantity: 1})
		req.CustomerAddress = "  \n "
		_, err = interactor.Execute(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrMissingAddress)

		assert.Equal(t, 0, store.SaleCount())
	})
}

func TestCreateSale_PriceSnapshotIgnoresLaterChanges(t *testing.T) {
	store, interactor, _ := setup(t)
	seedProduct(store, "p-1", 1000, 10)

	result, err := interactor.Execute(context.Background(), validRequest(
		ItemRequest{ProductID: "p-1", Quantity: 2},
	))
	require.NoError(t, err)

	// Reprice the product after the sale.
	p := store.Product("p-1")
	p.PriceCents = 9999
	store.SeedProduct(p)

	sale, items := store.Sale(result.SaleID)
	assert.Equal(t, int64(2000), sale.TotalCents)
	assert.Equal(t, int64(1000), items[0].UnitPriceCents)
}

func TestCreateSale_ConcurrentOversell(t *testing.T) {
	// Two sales race for the last 5 units. Exactly one must win; stock
	// must never go negative.
	store, interactor, _ := setup(t)
	seedProduct(store, "p-1", 1000, 5)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for n := 0; n < 2; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = interactor.Execute(context.Background(), validRequest(
				ItemRequest{ProductID: "p-1", Quantity: 5},
			))
		}(n)
	}
	wg.Wait()

	var succeeded, failed int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
			failed++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, failed)
	assert.Equal(t, int64(0), store.Product("p-1").Stock)
	assert.Equal(t, 1, store.SaleCount())
}
