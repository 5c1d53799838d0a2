//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/domain"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/repo"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
	"github.com/light-bringer/ecom-backoffice/tests/testutil"
)

func TestProductRepo_InsertAndGet(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now()
	clk := clock.NewMockClock(now)
	repository := repo.NewProductRepo(client, clk)

	categoryID := testutil.CreateTestCategory(t, client, "Electronics")

	product, err := domain.NewProduct("test-id-1", categoryID, "Keyboard", "Mechanical keyboard", domain.NewMoneyFromCents(4999), 25, now, clk)
	require.NoError(t, err)

	_, err = client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(product)})
	require.NoError(t, err)

	testutil.AssertRowCount(t, client, "products", 1)

	retrieved, err := repository.GetByID(ctx, "test-id-1")
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", retrieved.Name())
	assert.Equal(t, categoryID, retrieved.CategoryID())
	assert.Equal(t, int64(4999), retrieved.Price().Cents())
	assert.Equal(t, int64(25), retrieved.Stock())
	assert.True(t, retrieved.IsActive())
	assert.Equal(t, int64(1), retrieved.Version())
}

func TestProductRepo_UpdateDirtyFields(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now()
	clk := clock.NewMockClock(now)
	repository := repo.NewProductRepo(client, clk)

	categoryID := testutil.CreateTestCategory(t, client, "Electronics")

	product, err := domain.NewProduct("test-id-2", categoryID, "Original", "Desc", domain.NewMoneyFromCents(1000), 5, now, clk)
	require.NoError(t, err)

	_, err = client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(product)})
	require.NoError(t, err)

	retrieved, err := repository.GetByID(ctx, "test-id-2")
	require.NoError(t, err)

	require.NoError(t, retrieved.SetName("Renamed"))
	require.NoError(t, retrieved.SetPrice(domain.NewMoneyFromCents(1500)))

	_, err = client.Apply(ctx, []*spanner.Mutation{repository.UpdateMut(retrieved)})
	require.NoError(t, err)

	updated, err := repository.GetByID(ctx, "test-id-2")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name())
	assert.Equal(t, int64(1500), updated.Price().Cents())
	assert.Equal(t, "Desc", updated.Description(), "untouched field survives a partial update")
	assert.Equal(t, int64(2), updated.Version())
}

func TestProductRepo_SoftDeleteRoundTrip(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now()
	clk := clock.NewMockClock(now)
	repository := repo.NewProductRepo(client, clk)

	categoryID := testutil.CreateTestCategory(t, client, "Electronics")

	product, err := domain.NewProduct("test-id-3", categoryID, "Doomed", "Desc", domain.NewMoneyFromCents(1000), 5, now, clk)
	require.NoError(t, err)

	_, err = client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(product)})
	require.NoError(t, err)

	retrieved, err := repository.GetByID(ctx, "test-id-3")
	require.NoError(t, err)
	require.NoError(t, retrieved.SoftDelete(clk.Now()))

	_, err = client.Apply(ctx, []*spanner.Mutation{repository.UpdateMut(retrieved)})
	require.NoError(t, err)

	// Soft-deleted products are still loadable by the repository.
	deleted, err := repository.GetByID(ctx, "test-id-3")
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted())
	require.NotNil(t, deleted.DeletedAt())
	assert.False(t, deleted.AvailableAt(clk.Now()))
	assert.True(t, deleted.AvailableAt(clk.Now().Add(-time.Hour)))
}

func TestProductRepo_GetByID_NotFound(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	clk := clock.NewMockClock(time.Now())
	repository := repo.NewProductRepo(client, clk)

	_, err := repository.GetByID(context.Background(), "no-such-product")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
