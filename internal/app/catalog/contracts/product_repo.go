package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/domain"
)

// ProductRepository defines the interface for product persistence.
// Repositories return mutations, they don't apply them; use cases gather
// mutations into a CommitPlan and commit once.
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product
	InsertMut(product *domain.Product) *spanner.Mutation

	// UpdateMut creates a mutation for updating a product (only dirty fields).
	// Returns nil when the aggregate has no tracked changes.
	UpdateMut(product *domain.Product) *spanner.Mutation

	// GetByID retrieves a product by ID, reconstructing the domain aggregate.
	// Soft-deleted products are returned too; callers decide what deleted
	// means for their operation.
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// Exists checks if a product exists (deleted or not)
	Exists(ctx context.Context, productID string) (bool, error)
}
