package list_sales

import (
	"context"
	"time"

	"github.com/light-bringer/ecom-backoffice/internal/app/sales/contracts"
)

// Request contains filtering and pagination parameters.
type Request struct {
	CustomerSearch string
	From           *time.Time
	To             *time.Time
	Page           int
	PageSize       int
}

// Query handles the list sales query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list sales query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a paginated list of sales with filtering.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.SaleListResult, error) {
	filter := &contracts.SaleListFilter{
		CustomerSearch: req.CustomerSearch,
		From:           req.From,
		To:             req.To,
		Page:           req.Page,
		PageSize:       req.PageSize,
	}

	return q.readModel.ListSales(ctx, filter)
}
