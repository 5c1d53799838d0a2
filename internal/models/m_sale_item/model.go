package m_sale_item

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the sale_items table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a sale line item.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		AllColumns,
		[]interface{}{
			data.SaleID,
			data.ProductID,
			data.Quantity,
			data.UnitPriceCents,
		},
	)
}

// DeleteForSaleMut creates a mutation deleting every line item of a sale.
func (m *Model) DeleteForSaleMut(saleID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.KeyRange{
		Start: spanner.Key{saleID},
		End:   spanner.Key{saleID},
		Kind:  spanner.ClosedClosed,
	})
}
