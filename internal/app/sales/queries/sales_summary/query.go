package sales_summary

import (
	"context"
	"time"

	"github.com/light-bringer/ecom-backoffice/internal/app/sales/contracts"
)

// Request contains the optional date range bounds.
type Request struct {
	From *time.Time
	To   *time.Time
}

// Query handles the sales summary query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new sales summary query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute aggregates units and revenue per product, ordered by revenue.
// Figures come from sale-time price snapshots, so they are stable under
// later catalog changes.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.SalesSummary, error) {
	return q.readModel.Summary(ctx, req.From, req.To)
}
