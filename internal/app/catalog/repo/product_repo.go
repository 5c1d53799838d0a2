package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/domain"
	"github.com/light-bringer/ecom-backoffice/internal/models/m_product"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client *spanner.Client
	model  *m_product.Model
	clock  clock.Clock
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client, clk clock.Clock) contracts.ProductRepository {
	return &ProductRepo{
		client: client,
		model:  m_product.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) *spanner.Mutation {
	return r.model.InsertMut(domainToData(product))
}

// UpdateMut creates a mutation for updating a product (only dirty fields).
func (r *ProductRepo) UpdateMut(product *domain.Product) *spanner.Mutation {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldName) {
		updates[m_product.Name] = product.Name()
	}

	if changes.Dirty(domain.FieldDescription) {
		updates[m_product.Description] = product.Description()
	}

	if changes.Dirty(domain.FieldCategoryID) {
		updates[m_product.CategoryID] = product.CategoryID()
	}

	if changes.Dirty(domain.FieldPrice) {
		updates[m_product.PriceCents] = product.Price().Cents()
	}

	if changes.Dirty(domain.FieldStock) {
		updates[m_product.Stock] = product.Stock()
	}

	if changes.Dirty(domain.FieldIsActive) {
		updates[m_product.IsActive] = product.IsActive()
	}

	if changes.Dirty(domain.FieldSoftDelete) {
		updates[m_product.IsDeleted] = product.IsDeleted()
		if deletedAt := product.DeletedAt(); deletedAt != nil {
			updates[m_product.DeletedAt] = *deletedAt
		} else {
			updates[m_product.DeletedAt] = spanner.NullTime{}
		}
	}

	if len(updates) == 0 {
		return nil
	}

	// Always update the updated_at timestamp when any field changes
	updates[m_product.UpdatedAt] = r.clock.Now()

	// Increment version for optimistic locking
	updates[m_product.Version] = product.Version() + 1

	return r.model.UpdateMut(product.ID(), updates)
}

// GetByID retrieves a product by ID, reconstructing the domain aggregate.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.AllColumns)
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

	return dataToDomain(&data, r.clock), nil
}

// Exists checks if a product exists.
func (r *ProductRepo) Exists(ctx context.Context, productID string) (bool, error) {
	_, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{m_product.ProductID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return true, nil
}

// domainToData converts a domain Product to database Data.
func domainToData(product *domain.Product) *m_product.Data {
	data := &m_product.Data{
		ProductID:   product.ID(),
		CategoryID:  product.CategoryID(),
		Name:        product.Name(),
		Description: product.Description(),
		PriceCents:  product.Price().Cents(),
		Stock:       product.Stock(),
		IsActive:    product.IsActive(),
		IsDeleted:   product.IsDeleted(),
		Version:     product.Version(),
		CreatedAt:   product.CreatedAt(),
		UpdatedAt:   product.UpdatedAt(),
	}

	if deletedAt := product.DeletedAt(); deletedAt != nil {
		data.DeletedAt = spanner.NullTime{Time: *deletedAt, Valid: true}
	}

	return data
}

// dataToDomain converts database Data to a domain Product.
func dataToDomain(data *m_product.Data, clk clock.Clock) *domain.Product {
	var deletedAt *time.Time
	if data.DeletedAt.Valid {
		t := data.DeletedAt.Time
		deletedAt = &t
	}

	return domain.ReconstructProduct(
		data.ProductID,
		data.CategoryID,
		data.Name,
		data.Description,
		domain.NewMoneyFromCents(data.PriceCents),
		data.Stock,
		data.IsActive,
		data.IsDeleted,
		deletedAt,
		data.Version,
		data.CreatedAt,
		data.UpdatedAt,
		clk,
	)
}
