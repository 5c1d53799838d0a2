package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID   = "product_id"
	CategoryID  = "category_id"
	Name        = "name"
	Description = "description"
	PriceCents  = "price_cents"
	Stock       = "stock"
	IsActive    = "is_active"
	IsDeleted   = "is_deleted"
	DeletedAt   = "deleted_at"
	Version     = "version"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
)

// AllColumns lists every column, in schema order, for reads.
var AllColumns = []string{
	ProductID,
	CategoryID,
	Name,
	Description,
	PriceCents,
	Stock,
	IsActive,
	IsDeleted,
	DeletedAt,
	Version,
	CreatedAt,
	UpdatedAt,
}
