package restore_category

import (
	"context"
	"fmt"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/committer"
)

// Request contains the category ID to restore.
type Request struct {
	CategoryID string
}

// Interactor handles the restore category use case.
type Interactor struct {
	repo      contracts.CategoryRepository
	committer *committer.Committer
}

// NewInteractor creates a new restore category interactor.
func NewInteractor(repo contracts.CategoryRepository, committer *committer.Committer) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute reverses a soft delete on a category.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	category, err := i.repo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return err
	}

	if err := category.Restore(); err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(category))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
