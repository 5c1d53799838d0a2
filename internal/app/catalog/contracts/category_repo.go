package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/domain"
)

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	// InsertMut creates a mutation for inserting a new category
	InsertMut(category *domain.Category) *spanner.Mutation

	// UpdateMut creates a mutation for updating a category (only dirty fields)
	UpdateMut(category *domain.Category) *spanner.Mutation

	// GetByID retrieves a category by ID, reconstructing the domain aggregate
	GetByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// Exists checks if a non-deleted category exists. Used to validate
	// category references on product writes.
	Exists(ctx context.Context, categoryID string) (bool, error)
}
