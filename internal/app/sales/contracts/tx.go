package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/ecom-backoffice/internal/app/sales/domain"
)

// ProductRow is the slice of product state the sale workflow needs inside
// a transaction: availability, stock, and the price to snapshot.
type ProductRow struct {
	ProductID  string
	Name       string
	PriceCents int64
	Stock      int64
	IsActive   bool
	IsDeleted  bool
	DeletedAt  *time.Time
}

// AvailableAt reports whether the product existed, from a customer's
// point of view, at the given instant. A soft-deleted product was
// available strictly before its deletion time. Every point-in-time
// read of sale history goes through this predicate, so a deleted flag
// with no recorded deletion time reads as never available rather than
// always available.
func (p *ProductRow) AvailableAt(t time.Time) bool {
	if !p.IsDeleted {
		return true
	}
	return p.DeletedAt != nil && p.DeletedAt.After(t)
}

// Sellable reports whether the product can appear on a new sale right
// now: active and not soft-deleted.
func (p *ProductRow) Sellable(now time.Time) bool {
	return p.IsActive && p.AvailableAt(now)
}

// Reserve takes qty units out of the row's stock for a sale line. The
// caller must persist the decrement in the same transaction that read
// the level, otherwise two racing sales could both pass the check.
func (p *ProductRow) Reserve(qty int64) error {
	if qty <= 0 {
		return domain.ErrInvalidQuantity
	}
	if p.Stock < qty {
		return domain.ErrInsufficientStock
	}
	p.Stock -= qty
	return nil
}

// Restock returns qty units to the row's stock, used when a sale's line
// items are replaced or removed.
func (p *ProductRow) Restock(qty int64) error {
	if qty <= 0 {
		return domain.ErrInvalidQuantity
	}
	p.Stock += qty
	return nil
}

// SaleRow mirrors a row of the sales table.
type SaleRow struct {
	SaleID          string
	SaleDate        time.Time
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	TotalCents      int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SaleItemRow mirrors a row of the sale_items table.
type SaleItemRow struct {
	SaleID         string
	ProductID      string
	Quantity       int64
	UnitPriceCents int64
}

// Tx is the set of reads and buffered writes available to a sale workflow
// inside one read-write transaction. Reads acquire locks on the rows they
// touch, so a stock level read through Tx cannot change under the
// transaction before its writes commit. Buffered writes only land if the
// whole transaction commits.
type Tx interface {
	// ProductsByID reads the given products for update. Missing IDs are
	// absent from the result map, not an error.
	ProductsByID(ctx context.Context, productIDs []string) (map[string]*ProductRow, error)

	// SaleByID reads a sale and its line items. Returns
	// domain.ErrSaleNotFound if the sale does not exist.
	SaleByID(ctx context.Context, saleID string) (*SaleRow, []*SaleItemRow, error)

	// InsertSale buffers the insert of a sale and its line items.
	InsertSale(sale *SaleRow, items []*SaleItemRow) error

	// UpdateSale buffers replacement of a sale's mutable columns and its
	// entire line item set.
	UpdateSale(sale *SaleRow, items []*SaleItemRow) error

	// DeleteSale buffers deletion of a sale; interleaved line items go
	// with it.
	DeleteSale(saleID string) error

	// SetStock buffers a stock update for a product.
	SetStock(productID string, stock int64) error

	// AppendEvent buffers an outbox event insert.
	AppendEvent(eventType, aggregateID, payload string) error
}

// TxRunner executes a function inside a single read-write transaction.
// The function may be invoked more than once if the transaction aborts
// and is retried, so it must be idempotent up to its buffered writes.
type TxRunner interface {
	ReadWrite(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
