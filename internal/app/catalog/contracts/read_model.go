package contracts

import (
	"context"
	"time"
)

// ProductDTO is a data transfer object for product queries.
type ProductDTO struct {
	ProductID    string
	CategoryID   string
	CategoryName string
	Name         string
	Description  string
	Price        float64 // Approximate representation for display
	PriceCents   int64
	Stock        int64
	IsActive     bool
	IsDeleted    bool
	DeletedAt    *time.Time
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CategoryDTO is a data transfer object for category queries.
type CategoryDTO struct {
	CategoryID  string
	Name        string
	Description string
	IsDeleted   bool
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductListFilter defines filtering options for listing products.
// Deleted rows are excluded unless IncludeDeleted is set.
type ProductListFilter struct {
	Search         string // case-insensitive substring match on name
	CategoryID     string
	ActiveOnly     bool
	MinPriceCents  *int64
	MaxPriceCents  *int64
	IncludeDeleted bool
	Page           int
	PageSize       int
}

// CategoryListFilter defines filtering options for listing categories.
type CategoryListFilter struct {
	Search         string
	IncludeDeleted bool
	Page           int
	PageSize       int
}

// ProductListResult contains paginated product list results.
type ProductListResult struct {
	Products   []*ProductDTO
	Page       int
	PageSize   int
	TotalCount int64
}

// CategoryListResult contains paginated category list results.
type CategoryListResult struct {
	Categories []*CategoryDTO
	Page       int
	PageSize   int
	TotalCount int64
}

// ReadModel defines the interface for catalog queries.
// Read models can bypass the domain layer for performance.
type ReadModel interface {
	// GetProductByID retrieves a product DTO by ID (including soft-deleted rows)
	GetProductByID(ctx context.Context, productID string) (*ProductDTO, error)

	// ListProducts retrieves a paginated list of products with filtering
	ListProducts(ctx context.Context, filter *ProductListFilter) (*ProductListResult, error)

	// GetCategoryByID retrieves a category DTO by ID
	GetCategoryByID(ctx context.Context, categoryID string) (*CategoryDTO, error)

	// ListCategories retrieves a paginated list of categories with filtering
	ListCategories(ctx context.Context, filter *CategoryListFilter) (*CategoryListResult, error)
}
