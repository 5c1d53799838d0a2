package create_product

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/contracts"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/domain"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/committer"
)

// Request contains the data needed to create a product.
type Request struct {
	Name        string
	Description string
	CategoryID  string
	PriceCents  int64
	Stock       int64
}

// Interactor handles the create product use case.
type Interactor struct {
	repo         contracts.ProductRepository
	categoryRepo contracts.CategoryRepository
	outboxRepo   contracts.OutboxRepository
	committer    *committer.Committer
	clock        clock.Clock
}

// NewInteractor creates a new create product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	categoryRepo contracts.CategoryRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:         repo,
		categoryRepo: categoryRepo,
		outboxRepo:   outboxRepo,
		committer:    committer,
		clock:        clock,
	}
}

// Execute creates a new product. The insert and its outbox events land in
// one transaction.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	// 1. Validate request
	if err := i.validate(req); err != nil {
		return "", err
	}

	// 2. The referenced category must exist and not be deleted
	exists, err := i.categoryRepo.Exists(ctx, req.CategoryID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrCategoryNotFound
	}

	// 3. Create domain aggregate
	productID := uuid.New().String()
	now := i.clock.Now()

	product, err := domain.NewProduct(
		productID,
		req.CategoryID,
		req.Name,
		req.Description,
		domain.NewMoneyFromCents(req.PriceCents),
		req.Stock,
		now,
		i.clock,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	// 4. Create commit plan
	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(product))

	// 5. Add outbox events
	for _, event := range product.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return "", fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.EnrichEvent(event, payload)
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	// 6. Apply plan (usecase applies, not handler)
	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return product.ID(), nil
}

func (i *Interactor) validate(req *Request) error {
	if req.Name == "" {
		return domain.ErrEmptyName
	}
	if req.CategoryID == "" {
		return domain.ErrInvalidCategory
	}
	if req.PriceCents <= 0 {
		return domain.ErrInvalidPrice
	}
	if req.Stock < 0 {
		return domain.ErrNegativeStock
	}
	return nil
}

func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
