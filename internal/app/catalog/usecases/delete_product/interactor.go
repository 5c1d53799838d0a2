package delete_product

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/committer"
)

// Request contains the product ID to soft-delete.
type Request struct {
	ProductID string
}

// Interactor handles the delete product use case.
type Interactor struct {
	repo       contracts.ProductRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute soft-deletes a product. The row stays in place with a deletion
// timestamp so past sales keep resolving; only future sales and default
// listings stop seeing it. Returns the deletion timestamp.
func (i *Interactor) Execute(ctx context.Context, req *Request) (time.Time, error) {
	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return time.Time{}, err
	}

	now := i.clock.Now()
	if err := product.SoftDelete(now); err != nil {
		return time.Time{}, err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(product))

	for _, event := range product.DomainEvents() {
		payload, err := json.Marshal(event)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.EnrichEvent(event, string(payload))
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return time.Time{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	product.ClearEvents()
	return now, nil
}
