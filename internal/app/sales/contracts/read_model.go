package contracts

import (
	"context"
	"time"
)

// SaleItemDTO is a line item in a sale view. Product name and category
// come from the catalog as it exists today; price and quantity are the
// sale-time snapshot.
type SaleItemDTO struct {
	ProductID      string
	ProductName    string
	Quantity       int64
	UnitPrice      float64
	UnitPriceCents int64
	LineTotalCents int64
	ProductDeleted bool // the product has since been soft-deleted
}

// SaleDTO is a data transfer object for sale queries. Total is the stored
// amount from sale time, never recomputed from current catalog prices.
type SaleDTO struct {
	SaleID          string
	SaleDate        time.Time
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	Total           float64
	TotalCents      int64
	ItemCount       int64
	Items           []*SaleItemDTO
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SaleListFilter defines filtering options for listing sales.
type SaleListFilter struct {
	CustomerSearch string // case-insensitive substring match on customer name
	From           *time.Time
	To             *time.Time
	Page           int
	PageSize       int
}

// SaleListResult contains paginated sale list results. List rows carry
// item counts but not the items themselves.
type SaleListResult struct {
	Sales      []*SaleDTO
	Page       int
	PageSize   int
	TotalCount int64
}

// SummaryRow aggregates sold units and revenue for one product.
type SummaryRow struct {
	ProductID    string
	ProductName  string
	CategoryName string
	UnitsSold    int64
	RevenueCents int64
	Revenue      float64
	LastSoldAt   time.Time
}

// SalesSummary is the result of the sales summary query.
type SalesSummary struct {
	Rows          []*SummaryRow
	TotalUnits    int64
	TotalRevenue  float64
	TotalRevCents int64
	DistinctSales int64
}

// ReadModel defines the interface for sale queries.
type ReadModel interface {
	// GetSaleByID retrieves a sale with its line items, resolved against
	// the catalog as of the sale date.
	GetSaleByID(ctx context.Context, saleID string) (*SaleDTO, error)

	// ListSales retrieves a paginated list of sales with filtering.
	ListSales(ctx context.Context, filter *SaleListFilter) (*SaleListResult, error)

	// Summary aggregates units and revenue per product over an optional
	// date range.
	Summary(ctx context.Context, from, to *time.Time) (*SalesSummary, error)
}
