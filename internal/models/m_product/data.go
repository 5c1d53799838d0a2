package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID   string           `spanner:"product_id"`
	CategoryID  string           `spanner:"category_id"`
	Name        string           `spanner:"name"`
	Description string           `spanner:"description"`
	PriceCents  int64            `spanner:"price_cents"`
	Stock       int64            `spanner:"stock"`
	IsActive    bool             `spanner:"is_active"`
	IsDeleted   bool             `spanner:"is_deleted"`
	DeletedAt   spanner.NullTime `spanner:"deleted_at"`
	Version     int64            `spanner:"version"`
	CreatedAt   time.Time        `spanner:"created_at"`
	UpdatedAt   time.Time        `spanner:"updated_at"`
}
