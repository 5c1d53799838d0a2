package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name", "price_cents").
		Build()

	assert.Equal(t, "SELECT product_id, name, price_cents FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("sales").Build()

	assert.Equal(t, "SELECT * FROM sales", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SingleWhereCondition(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Where(Eq("category_id", "cat-1")).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products WHERE category_id = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "cat-1",
	}, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Where(Eq("category_id", "cat-1")).
		Where(Eq("is_deleted", false)).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products WHERE category_id = @p0 AND is_deleted = @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "cat-1",
		"p1": false,
	}, stmt.Params)
}

func TestBuilder_RangeConditions(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(Gte("price_cents", int64(1000))).
		Where(Lte("price_cents", int64(5000))).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE price_cents >= @p0 AND price_cents <= @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": int64(1000),
		"p1": int64(5000),
	}, stmt.Params)
}

func TestBuilder_ContainsCondition(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(Contains("name", "lap")).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE LOWER(name) LIKE CONCAT('%', LOWER(@p0), '%')", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "lap",
	}, stmt.Params)
}

func TestBuilder_NullConditions(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(IsNull("deleted_at")).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE deleted_at IS NULL", stmt.SQL)
	assert.Empty(t, stmt.Params)

	stmt = From("products").
		Select("product_id").
		Where(IsNotNull("deleted_at")).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE deleted_at IS NOT NULL", stmt.SQL)
}

func TestBuilder_OrderBy(t *testing.T) {
	stmt := From("sales").
		Select("sale_id").
		OrderBy("sale_date", Desc).
		Build()

	assert.Equal(t, "SELECT sale_id FROM sales ORDER BY sale_date DESC", stmt.SQL)

	stmt = From("sales").
		Select("sale_id").
		OrderBy("sale_date", Asc).
		Build()

	assert.Equal(t, "SELECT sale_id FROM sales ORDER BY sale_date ASC", stmt.SQL)
}

func TestBuilder_Pagination(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Limit(10).
		Offset(20).
		Build()

	assert.Equal(t, "SELECT product_id FROM products LIMIT @limit OFFSET @offset", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit":  int64(10),
		"offset": int64(20),
	}, stmt.Params)
}

func TestBuilder_Count(t *testing.T) {
	base := From("products").
		Select("product_id", "name").
		Where(Eq("is_deleted", false)).
		OrderBy("created_at", Desc).
		Limit(10).
		Offset(20)

	stmt := base.Count().Build()

	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE is_deleted = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": false,
	}, stmt.Params)

	// The original builder must be unaffected.
	stmt = base.Build()
	assert.Contains(t, stmt.SQL, "SELECT product_id, name")
	assert.Contains(t, stmt.SQL, "LIMIT @limit")
}
