package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/domain"
	"github.com/light-bringer/ecom-backoffice/internal/models/m_category"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
)

// CategoryRepo implements CategoryRepository for Spanner.
type CategoryRepo struct {
	client *spanner.Client
	model  *m_category.Model
	clock  clock.Clock
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(client *spanner.Client, clk clock.Clock) contracts.CategoryRepository {
	return &CategoryRepo{
		client: client,
		model:  m_category.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a new category.
func (r *CategoryRepo) InsertMut(category *domain.Category) *spanner.Mutation {
	data := &m_category.Data{
		CategoryID:  category.ID(),
		Name:        category.Name(),
		Description: category.Description(),
		IsDeleted:   category.IsDeleted(),
		CreatedAt:   category.CreatedAt(),
		UpdatedAt:   category.UpdatedAt(),
	}

	if deletedAt := category.DeletedAt(); deletedAt != nil {
		data.DeletedAt = spanner.NullTime{Time: *deletedAt, Valid: true}
	}

	return r.model.InsertMut(data)
}

// UpdateMut creates a mutation for updating a category (only dirty fields).
func (r *CategoryRepo) UpdateMut(category *domain.Category) *spanner.Mutation {
	changes := category.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldName) {
		updates[m_category.Name] = category.Name()
	}

	if changes.Dirty(domain.FieldDescription) {
		updates[m_category.Description] = category.Description()
	}

	if changes.Dirty(domain.FieldSoftDelete) {
		updates[m_category.IsDeleted] = category.IsDeleted()
		if deletedAt := category.DeletedAt(); deletedAt != nil {
			updates[m_category.DeletedAt] = *deletedAt
		} else {
			updates[m_category.DeletedAt] = spanner.NullTime{}
		}
	}

	if len(updates) == 0 {
		return nil
	}

	updates[m_category.UpdatedAt] = r.clock.Now()

	return r.model.UpdateMut(category.ID(), updates)
}

// GetByID retrieves a category by ID, reconstructing the domain aggregate.
func (r *CategoryRepo) GetByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	row, err := r.client.Single().ReadRow(ctx, m_category.TableName, spanner.Key{categoryID}, m_category.AllColumns)
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

	var deletedAt *time.Time
	if data.DeletedAt.Valid {
		t := data.DeletedAt.Time
		deletedAt = &t
	}

	return domain.ReconstructCategory(
		data.CategoryID,
		data.Name,
		data.Description,
		data.IsDeleted,
		deletedAt,
		data.CreatedAt,
		data.UpdatedAt,
		r.clock,
	), nil
}

// Exists checks if a non-deleted category exists.
func (r *CategoryRepo) Exists(ctx context.Context, categoryID string) (bool, error) {
	row, err := r.client.Single().ReadRow(ctx, m_category.TableName, spanner.Key{categoryID}, []string{m_category.IsDeleted})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}

	var isDeleted bool
	if err := row.Column(0, &isDeleted); err != nil {
		return false, fmt.Errorf("failed to scan category: %w", err)
	}

	return !isDeleted, nil
}
