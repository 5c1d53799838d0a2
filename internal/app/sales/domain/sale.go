package domain

import (
	"strings"
	"time"

	catalog "github.com/light-bringer/ecom-backoffice/internal/app/catalog/domain"
)

// LineItem is one product position inside a sale. The unit price is a
// snapshot of the product's list price at sale time; later price changes
// never alter what this sale charged.
type LineItem struct {
	productID string
	quantity  int64
	unitPrice catalog.Money
}

// NewLineItem creates a line item with a snapshotted unit price.
func NewLineItem(productID string, quantity int64, unitPrice catalog.Money) (LineItem, error) {
	if productID == "" {
		return LineItem{}, ErrProductNotFound
	}
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	if !unitPrice.IsPositive() {
		return LineItem{}, ErrNegativeUnitPrice
	}

	return LineItem{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

func (li LineItem) ProductID() string        { return li.productID }
func (li LineItem) Quantity() int64          { return li.quantity }
func (li LineItem) UnitPrice() catalog.Money { return li.unitPrice }

// LineTotal returns quantity times the snapshotted unit price.
func (li LineItem) LineTotal() catalog.Money {
	return li.unitPrice.MulQty(li.quantity)
}

// Sale is the aggregate for a completed sale. Its total is derived from
// the line items exactly once, at construction; it is stored and never
// recomputed on reads, so historical sales keep their original amount
// even when products are later repriced or deleted.
type Sale struct {
	id              string
	saleDate        time.Time
	customerName    string
	customerEmail   string
	customerAddress string
	items           []LineItem
	total           catalog.Money
	createdAt       time.Time
	updatedAt       time.Time
}

// NewSale creates a Sale from already-priced line items and derives the
// total. Item order is preserved. now bounds the sale date: sales cannot
// be recorded for the future.
func NewSale(
	id string,
	saleDate time.Time,
	customerName, customerEmail, customerAddress string,
	items []LineItem,
	now time.Time,
) (*Sale, error) {
	// Whitespace-only customer fields count as blank.
	if strings.TrimSpace(customerName) == "" {
		return nil, ErrMissingCustomer
	}
	if strings.TrimSpace(customerEmail) == "" {
		return nil, ErrMissingEmail
	}
	if strings.TrimSpace(customerAddress) == "" {
		return nil, ErrMissingAddress
	}
	if len(items) == 0 {
		return nil, ErrNoLineItems
	}
	if saleDate.After(now) {
		return nil, ErrFutureSaleDate
	}

	seen := make(map[string]bool, len(items))
	total := catalog.NewMoneyFromCents(0)
	for _, item := range items {
		if seen[item.productID] {
			return nil, ErrDuplicateProduct
		}
		seen[item.productID] = true
		total = total.Add(item.LineTotal())
	}

	return &Sale{
		id:              id,
		saleDate:        saleDate,
		customerName:    customerName,
		customerEmail:   customerEmail,
		customerAddress: customerAddress,
		items:           items,
		total:           total,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructSale reconstitutes a Sale from the database. The stored
// total is trusted as-is.
func ReconstructSale(
	id string,
	saleDate time.Time,
	customerName, customerEmail, customerAddress string,
	items []LineItem,
	total catalog.Money,
	createdAt, updatedAt time.Time,
) *Sale {
	return &Sale{
		id:              id,
		saleDate:        saleDate,
		customerName:    customerName,
		customerEmail:   customerEmail,
		customerAddress: customerAddress,
		items:           items,
		total:           total,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Getters
func (s *Sale) ID() string              { return s.id }
func (s *Sale) SaleDate() time.Time     { return s.saleDate }
func (s *Sale) CustomerName() string    { return s.customerName }
func (s *Sale) CustomerEmail() string   { return s.customerEmail }
func (s *Sale) CustomerAddress() string { return s.customerAddress }
func (s *Sale) Total() catalog.Money    { return s.total }
func (s *Sale) CreatedAt() time.Time    { return s.createdAt }
func (s *Sale) UpdatedAt() time.Time    { return s.updatedAt }

// Items returns a copy of the line items to keep the aggregate immutable
// from outside.
func (s *Sale) Items() []LineItem {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalQuantity returns the number of units across all line items.
func (s *Sale) TotalQuantity() int64 {
	var qty int64
	for _, item := range s.items {
		qty += item.quantity
	}
	return qty
}
