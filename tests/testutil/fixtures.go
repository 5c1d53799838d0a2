package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/ecom-backoffice/internal/models/m_category"
	"github.com/light-bringer/ecom-backoffice/internal/models/m_product"
)

// CreateTestCategory inserts a category directly and returns its ID.
func CreateTestCategory(t *testing.T, client *spanner.Client, name string) string {
	t.Helper()

	ctx := context.Background()
	categoryID := uuid.New().String()
	now := time.Now()

	model := m_category.NewModel()
	data := &m_category.Data{
		CategoryID:  categoryID,
		Name:        name,
		Description: "Test category",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test category")

	return categoryID
}

// CreateTestProduct inserts an active product directly and returns its ID.
func CreateTestProduct(t *testing.T, client *spanner.Client, categoryID, name string, priceCents, stock int64) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()
	now := time.Now()

	model := m_product.NewModel()
	data := &m_product.Data{
		ProductID:   productID,
		CategoryID:  categoryID,
		Name:        name,
		Description: "Test product",
		PriceCents:  priceCents,
		Stock:       stock,
		IsActive:    true,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// ProductStock reads the current stock level of a product.
func ProductStock(t *testing.T, client *spanner.Client, productID string) int64 {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{m_product.Stock})
	require.NoError(t, err, "failed to read product stock")

	var stock int64
	require.NoError(t, row.Columns(&stock))
	return stock
}
