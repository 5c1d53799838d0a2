package m_sale

// Field name constants for the sales table.
const (
	TableName = "sales"

	SaleID          = "sale_id"
	SaleDate        = "sale_date"
	CustomerName    = "customer_name"
	CustomerEmail   = "customer_email"
	CustomerAddress = "customer_address"
	TotalCents      = "total_cents"
	CreatedAt       = "created_at"
	UpdatedAt       = "updated_at"
)

// AllColumns lists every column, in schema order, for reads.
var AllColumns = []string{
	SaleID,
	SaleDate,
	CustomerName,
	CustomerEmail,
	CustomerAddress,
	TotalCents,
	CreatedAt,
	UpdatedAt,
}
