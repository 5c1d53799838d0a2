package m_sale_item

// Field name constants for the sale_items table.
// sale_items is interleaved in sales; the composite key is (sale_id, product_id).
const (
	TableName = "sale_items"

	SaleID         = "sale_id"
	ProductID      = "product_id"
	Quantity       = "quantity"
	UnitPriceCents = "unit_price_cents"
)

// AllColumns lists every column, in schema order, for reads.
var AllColumns = []string{
	SaleID,
	ProductID,
	Quantity,
	UnitPriceCents,
}
