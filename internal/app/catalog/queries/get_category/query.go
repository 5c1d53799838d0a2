package get_category

import (
	"context"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/contracts"
)

// Request contains the category ID to retrieve.
type Request struct {
	CategoryID string
}

// Query handles the get category query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get category query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a category by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.CategoryDTO, error) {
	return q.readModel.GetCategoryByID(ctx, req.CategoryID)
}
