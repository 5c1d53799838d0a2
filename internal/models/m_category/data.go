package m_category

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the categories table.
type Data struct {
	CategoryID  string           `spanner:"category_id"`
	Name        string           `spanner:"name"`
	Description string           `spanner:"description"`
	IsDeleted   bool             `spanner:"is_deleted"`
	DeletedAt   spanner.NullTime `spanner:"deleted_at"`
	CreatedAt   time.Time        `spanner:"created_at"`
	UpdatedAt   time.Time        `spanner:"updated_at"`
}
