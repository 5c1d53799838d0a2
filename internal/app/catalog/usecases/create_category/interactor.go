package create_category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/domain"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/committer"
)

// Request contains the data needed to create a category.
type Request struct {
	Name        string
	Description string
}

// Interactor handles the create category use case.
type Interactor struct {
	repo      contracts.CategoryRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new create category interactor.
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

// Execute creates a new category and returns its ID.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	categoryID := uuid.New().String()
	now := i.clock.Now()

	category, err := domain.NewCategory(categoryID, req.Name, req.Description, now, i.clock)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(category))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return category.ID(), nil
}
