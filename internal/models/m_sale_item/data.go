package m_sale_item

// Data represents the database model for the sale_items table.
type Data struct {
	SaleID         string `spanner:"sale_id"`
	ProductID      string `spanner:"product_id"`
	Quantity       int64  `spanner:"quantity"`
	UnitPriceCents int64  `spanner:"unit_price_cents"`
}
