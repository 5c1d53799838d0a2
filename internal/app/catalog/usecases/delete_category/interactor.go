package delete_category

import (
	"context"
	"fmt"
	"time"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/committer"
)

// Request contains the category ID to soft-delete.
type Request struct {
	CategoryID string
}

// Interactor handles the delete category use case.
type Interactor struct {
	repo      contracts.CategoryRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new delete category interactor.
func NewInteractor(
	repo contracts.CategoryRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
		clock:     clock,
	}
}

// Execute soft-deletes a category. Products in the category are left
// untouched; they keep their reference and the category keeps resolving
// for historical views. Returns the deletion timestamp.
func (i *Interactor) Execute(ctx context.Context, req *Request) (time.Time, error) {
	category, err := i.repo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return time.Time{}, err
	}

	now := i.clock.Now()
	if err := category.SoftDelete(now); err != nil {
		return time.Time{}, err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(category))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return time.Time{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return now, nil
}
