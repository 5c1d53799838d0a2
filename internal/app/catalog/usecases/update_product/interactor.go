package update_product

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/domain"
	"github.com/light-bringer/ecom-backoffice/internal/models/m_product"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/committer"
)

// Request contains the data needed to update a product. Nil fields are
// left unchanged.
type Request struct {
	ProductID   string
	Name        *string
	Description *string
	CategoryID  *string
	PriceCents  *int64
	IsActive    *bool
}

// Interactor handles the update product use case.
type Interactor struct {
	repo         contracts.ProductRepository
	categoryRepo contracts.CategoryRepository
	outboxRepo   contracts.OutboxRepository
	committer    *committer.Committer
}

// NewInteractor creates a new update product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	categoryRepo contracts.CategoryRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
) *Interactor {
	return &Interactor{
		repo:         repo,
		categoryRepo: categoryRepo,
		outboxRepo:   outboxRepo,
		committer:    committer,
	}
}

// Execute applies partial updates to a product. The write is guarded by an
// optimistic version check: if another writer updated the row after the
// aggregate was loaded, committer.ErrVersionConflict is returned.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.ProductID == "" {
		return domain.ErrProductNotFound
	}

	// 1. Load aggregate
	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}
	loadedVersion := product.Version()

	// 2. Apply requested changes through domain methods
	if req.Name != nil {
		if err := product.SetName(*req.Name); err != nil {
			return err
		}
	}

	if req.Description != nil {
		if err := product.SetDescription(*req.Description); err != nil {
			return err
		}
	}

	if req.CategoryID != nil {
		exists, err := i.categoryRepo.Exists(ctx, *req.CategoryID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrCategoryNotFound
		}
		if err := product.SetCategory(*req.CategoryID); err != nil {
			return err
		}
	}

	if req.PriceCents != nil {
		if err := product.SetPrice(domain.NewMoneyFromCents(*req.PriceCents)); err != nil {
			return err
		}
	}

	if req.IsActive != nil {
		if *req.IsActive {
			err = product.Activate()
		} else {
			err = product.Deactivate()
		}
		if err != nil {
			return err
		}
	}

	// 3. Create commit plan
	plan := committer.NewPlan()

	if mut := i.repo.UpdateMut(product); mut != nil {
		plan.Add(mut)
	}

	// 4. Add outbox events
	for _, event := range product.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.EnrichEvent(event, payload)
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	if plan.IsEmpty() {
		return nil // No changes
	}

	// 5. Apply plan with optimistic version check
	err = i.committer.ApplyWithVersionCheck(
		ctx,
		m_product.TableName,
		m_product.Version,
		spanner.Key{product.ID()},
		loadedVersion,
		plan,
	)
	if err != nil {
		return err
	}

	product.ClearEvents()
	return nil
}

func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
