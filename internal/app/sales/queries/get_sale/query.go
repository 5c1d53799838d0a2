package get_sale

import (
	"context"

	"github.com/light-bringer/ecom-backoffice/internal/app/sales/contracts"
)

// Request contains the sale ID to retrieve.
type Request struct {
	SaleID string
}

// Query handles the get sale query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get sale query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a sale with line items resolved as of the sale date.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.SaleDTO, error) {
	return q.readModel.GetSaleByID(ctx, req.SaleID)
}
