package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/domain"
	"github.com/light-bringer/ecom-backoffice/internal/models/m_category"
	"github.com/light-bringer/ecom-backoffice/internal/models/m_product"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/query"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetProductByID retrieves a product DTO by ID.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.AllColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	dto := productDataToDTO(&data)

	// Resolve category name; deleted categories still resolve so the
	// product view never shows a dangling reference.
	catRow, err := rm.client.Single().ReadRow(ctx, m_category.TableName, spanner.Key{data.CategoryID}, []string{m_category.Name})
	if err == nil {
		var name string
		if err := catRow.Column(0, &name); err == nil {
			dto.CategoryName = name
		}
	}

	return dto, nil
}

// ListProducts retrieves a paginated list of products with filtering.
func (rm *ReadModelImpl) ListProducts(ctx context.Context, filter *contracts.ProductListFilter) (*contracts.ProductListResult, error) {
	page, pageSize := normalizePage(filter.Page, filter.PageSize)

	base := query.From(m_product.TableName)

	if !filter.IncludeDeleted {
		base = base.Where(query.Eq(m_product.IsDeleted, false))
	}

	if filter.ActiveOnly {
		base = base.Where(query.Eq(m_product.IsActive, true))
	}

	if filter.CategoryID != "" {
		base = base.Where(query.Eq(m_product.CategoryID, filter.CategoryID))
	}

	if filter.Search != "" {
		base = base.Where(query.Contains(m_product.Name, filter.Search))
	}

	if filter.MinPriceCents != nil {
		base = base.Where(query.Gte(m_product.PriceCents, *filter.MinPriceCents))
	}

	if filter.MaxPriceCents != nil {
		base = base.Where(query.Lte(m_product.PriceCents, *filter.MaxPriceCents))
	}

	totalCount, err := rm.queryCount(ctx, base)
	if err != nil {
		return nil, err
	}

	stmt := base.
		Select(m_product.AllColumns...).
		OrderBy(m_product.CreatedAt, query.Desc).
		Limit(int64(pageSize)).
		Offset(int64((page - 1) * pageSize)).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]*contracts.ProductDTO, 0, pageSize)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		products = append(products, productDataToDTO(&data))
	}

	return &contracts.ProductListResult{
		Products:   products,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}, nil
}

// GetCategoryByID retrieves a category DTO by ID.
func (rm *ReadModelImpl) GetCategoryByID(ctx context.Context, categoryID string) (*contracts.CategoryDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_category.TableName, spanner.Key{categoryID}, m_category.AllColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to read category: %w", err)
	}

	var data m_category.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse category: %w", err)
	}

	return categoryDataToDTO(&data), nil
}

// ListCategories retrieves a paginated list of categories with filtering.
func (rm *ReadModelImpl) ListCategories(ctx context.Context, filter *contracts.CategoryListFilter) (*contracts.CategoryListResult, error) {
	page, pageSize := normalizePage(filter.Page, filter.PageSize)

	base := query.From(m_category.TableName)

	if !filter.IncludeDeleted {
		base = base.Where(query.Eq(m_category.IsDeleted, false))
	}

	if filter.Search != "" {
		base = base.Where(query.Contains(m_category.Name, filter.Search))
	}

	totalCount, err := rm.queryCount(ctx, base)
	if err != nil {
		return nil, err
	}

	stmt := base.
		Select(m_category.AllColumns...).
		OrderBy(m_category.Name, query.Asc).
		Limit(int64(pageSize)).
		Offset(int64((page - 1) * pageSize)).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	categories := make([]*contracts.CategoryDTO, 0, pageSize)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate categories: %w", err)
		}

		var data m_category.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse category: %w", err)
		}

		categories = append(categories, categoryDataToDTO(&data))
	}

	return &contracts.CategoryListResult{
		Categories: categories,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}, nil
}

func (rm *ReadModelImpl) queryCount(ctx context.Context, base *query.Builder) (int64, error) {
	iter := rm.client.Single().Query(ctx, base.Count().Build())
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}

	var count int64
	if err := row.Column(0, &count); err != nil {
		return 0, fmt.Errorf("failed to scan count: %w", err)
	}

	return count, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func productDataToDTO(data *m_product.Data) *contracts.ProductDTO {
	dto := &contracts.ProductDTO{
		ProductID:   data.ProductID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		Price:       domain.NewMoneyFromCents(data.PriceCents).Float64(),
		PriceCents:  data.PriceCents,
		Stock:       data.Stock,
		IsActive:    data.IsActive,
		IsDeleted:   data.IsDeleted,
		Version:     data.Version,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.DeletedAt.Valid {
		t := data.DeletedAt.Time
		dto.DeletedAt = &t
	}

	return dto
}

func categoryDataToDTO(data *m_category.Data) *contracts.CategoryDTO {
	dto := &contracts.CategoryDTO{
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		IsDeleted:   data.IsDeleted,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.DeletedAt.Valid {
		t := data.DeletedAt.Time
		dto.DeletedAt = &t
	}

	return dto
}
