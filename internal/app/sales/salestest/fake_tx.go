// Package salestest provides an in-memory TxRunner for exercising sale
// workflows without Spanner. Transactions are serialized by a mutex and
// writes are staged until the transaction function returns nil, which
// mirrors the commit semantics the workflows rely on: a failed
// transaction leaves no trace, and two racing transactions observe each
// other's committed writes.
package salestest

import (
	"context"
	"fmt"
	"sync"

	"github.com/light-bringer/ecom-backoffice/internal/app/sales/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/domain"
)

// Event is an outbox event captured by the fake.
type Event struct {
	EventType   string
	AggregateID string
	Payload     string
}

// Store is the in-memory state behind the fake TxRunner.
type Store struct {
	mu       sync.Mutex
	products map[string]*contracts.ProductRow
	sales    map[string]*contracts.SaleRow
	items    map[string][]*contracts.SaleItemRow
	events   []Event
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		products: make(map[string]*contracts.ProductRow),
		sales:    make(map[string]*contracts.SaleRow),
		items:    make(map[string][]*contracts.SaleItemRow),
	}
}

// SeedProduct adds a product row to the store.
func (s *Store) SeedProduct(p *contracts.ProductRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.products[p.ProductID] = &cp
}

// Product returns a copy of a product row, or nil if absent.
func (s *Store) Product(productID string) *contracts.ProductRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// Sale returns copies of a sale row and its items, or nil if absent.
func (s *Store) Sale(saleID string) (*contracts.SaleRow, []*contracts.SaleItemRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sale, ok := s.sales[saleID]
	if !ok {
		return nil, nil
	}
	cp := *sale
	items := make([]*contracts.SaleItemRow, len(s.items[saleID]))
	for n, item := range s.items[saleID] {
		icp := *item
		items[n] = &icp
	}
	return &cp, items
}

// SaleCount returns the number of stored sales.
func (s *Store) SaleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sales)
}

// Events returns the captured outbox events.
func (s *Store) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	return events
}

// Runner implements contracts.TxRunner over a Store.
type Runner struct {
	store *Store
}

// NewRunner creates a TxRunner backed by store.
func NewRunner(store *Store) *Runner {
	return &Runner{store: store}
}

// ReadWrite runs fn as one serialized transaction. Buffered writes apply
// only if fn returns nil.
func (r *Runner) ReadWrite(ctx context.Context, fn func(ctx context.Context, tx contracts.Tx) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tx := &fakeTx{
		store:        r.store,
		stagedStock:  make(map[string]int64),
		stagedSales:  make(map[string]*contracts.SaleRow),
		stagedItems:  make(map[string][]*contracts.SaleItemRow),
		deletedSales: make(map[string]bool),
	}

	if err := fn(ctx, tx); err != nil {
		return err
	}

	tx.commit()
	return nil
}

type fakeTx struct {
	store *Store

	stagedStock  map[string]int64
	stagedSales  map[string]*contracts.SaleRow
	stagedItems  map[string][]*contracts.SaleItemRow
	deletedSales map[string]bool
	stagedEvents []Event
}

func (t *fakeTx) ProductsByID(_ context.Context, productIDs []string) (map[string]*contracts.ProductRow, error) {
	result := make(map[string]*contracts.ProductRow, len(productIDs))
	for _, id := range productIDs {
		if p, ok := t.store.products[id]; ok {
			cp := *p
			result[id] = &cp
		}
	}
	return result, nil
}

func (t *fakeTx) SaleByID(_ context.Context, saleID string) (*contracts.SaleRow, []*contracts.SaleItemRow, error) {
	sale, ok := t.store.sales[saleID]
	if !ok {
		return nil, nil, domain.ErrSaleNotFound
	}
	cp := *sale
	items := make([]*contracts.SaleItemRow, len(t.store.items[saleID]))
	for n, item := range t.store.items[saleID] {
		icp := *item
		items[n] = &icp
	}
	return &cp, items, nil
}

func (t *fakeTx) InsertSale(sale *contracts.SaleRow, items []*contracts.SaleItemRow) error {
	if _, exists := t.store.sales[sale.SaleID]; exists {
		return fmt.Errorf("sale %s already exists", sale.SaleID)
	}
	t.stagedSales[sale.SaleID] = sale
	t.stagedItems[sale.SaleID] = items
	return nil
}

func (t *fakeTx) UpdateSale(sale *contracts.SaleRow, items []*contracts.SaleItemRow) error {
	if _, exists := t.store.sales[sale.SaleID]; !exists {
		return domain.ErrSaleNotFound
	}
	t.stagedSales[sale.SaleID] = sale
	t.stagedItems[sale.SaleID] = items
	return nil
}

func (t *fakeTx) DeleteSale(saleID string) error {
	t.deletedSales[saleID] = true
	return nil
}

func (t *fakeTx) SetStock(productID string, stock int64) error {
	if _, ok := t.store.products[productID]; !ok {
		return fmt.Errorf("product %s not found", productID)
	}
	t.stagedStock[productID] = stock
	return nil
}

func (t *fakeTx) AppendEvent(eventType, aggregateID, payload string) error {
	t.stagedEvents = append(t.stagedEvents, Event{
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     payload,
	})
	return nil
}

func (t *fakeTx) commit() {
	for id, stock := range t.stagedStock {
		t.store.products[id].Stock = stock
	}
	for id, sale := range t.stagedSales {
		t.store.sales[id] = sale
		t.store.items[id] = t.stagedItems[id]
	}
	for id := range t.deletedSales {
		delete(t.store.sales, id)
		delete(t.store.items, id)
	}
	t.store.events = append(t.store.events, t.stagedEvents...)
}
