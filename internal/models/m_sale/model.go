package m_sale

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the sales table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a sale.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		AllColumns,
		[]interface{}{
			data.SaleID,
			data.SaleDate,
			data.CustomerName,
			data.CustomerEmail,
			data.CustomerAddress,
			data.TotalCents,
			data.CreatedAt,
			data.UpdatedAt,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific sale fields.
func (m *Model) UpdateMut(saleID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, SaleID)
	values = append(values, saleID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a Spanner mutation for deleting a sale.
// Interleaved sale_items rows are removed by ON DELETE CASCADE.
func (m *Model) DeleteMut(saleID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{saleID})
}
