package update_category

import (
	"context"
	"fmt"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/committer"
)

// Request contains the data needed to update a category. Nil fields are
// left unchanged.
type Request struct {
	CategoryID  string
	Name        *string
	Description *string
}

// Interactor handles the update category use case.
type Interactor struct {
	repo      contracts.CategoryRepository
	committer *committer.Committer
}

// NewInteractor creates a new update category interactor.
func NewInteractor(repo contracts.CategoryRepository, committer *committer.Committer) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute applies partial updates to a category.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	category, err := i.repo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		if err := category.SetName(*req.Name); err != nil {
			return err
		}
	}

	if req.Description != nil {
		if err := category.SetDescription(*req.Description); err != nil {
			return err
		}
	}

	plan := committer.NewPlan()
	if mut := i.repo.UpdateMut(category); mut != nil {
		plan.Add(mut)
	}

	if plan.IsEmpty() {
		return nil
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
