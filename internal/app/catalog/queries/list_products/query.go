package list_products

import (
	"context"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/contracts"
)

// Request contains filtering and pagination parameters.
type Request struct {
	Search         string
	CategoryID     string
	ActiveOnly     bool
	MinPriceCents  *int64
	MaxPriceCents  *int64
	IncludeDeleted bool
	Page           int
	PageSize       int
}

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a paginated list of products with filtering.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ProductListResult, error) {
	filter := &contracts.ProductListFilter{
		Search:         req.Search,
		CategoryID:     req.CategoryID,
		ActiveOnly:     req.ActiveOnly,
		MinPriceCents:  req.MinPriceCents,
		MaxPriceCents:  req.MaxPriceCents,
		IncludeDeleted: req.IncludeDeleted,
		Page:           req.Page,
		PageSize:       req.PageSize,
	}

	return q.readModel.ListProducts(ctx, filter)
}
