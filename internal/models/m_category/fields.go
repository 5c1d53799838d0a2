package m_category

// Field name constants for the categories table.
const (
	TableName = "categories"

	CategoryID  = "category_id"
	Name        = "name"
	Description = "description"
	IsDeleted   = "is_deleted"
	DeletedAt   = "deleted_at"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
)

// AllColumns lists every column, in schema order, for reads.
var AllColumns = []string{
	CategoryID,
	Name,
	Description,
	IsDeleted,
	DeletedAt,
	CreatedAt,
	UpdatedAt,
}
