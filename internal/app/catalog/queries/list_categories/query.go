package list_categories

import (
	"context"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/contracts"
)

// Request contains filtering and pagination parameters.
type Request struct {
	Search         string
	IncludeDeleted bool
	Page           int
	PageSize       int
}

// Query handles the list categories query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list categories query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a paginated list of categories with filtering.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.CategoryListResult, error) {
	filter := &contracts.CategoryListFilter{
		Search:         req.Search,
		IncludeDeleted: req.IncludeDeleted,
		Page:           req.Page,
		PageSize:       req.PageSize,
	}

	return q.readModel.ListCategories(ctx, filter)
}
