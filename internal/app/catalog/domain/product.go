package domain

import (
	"time"

	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
)

// Field names for change tracking
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldCategoryID  = "category_id"
	FieldPrice       = "price"
	FieldStock       = "stock"
	FieldIsActive    = "is_active"
	FieldSoftDelete  = "soft_delete"
)

// Product is the aggregate root for the inventory ledger. It owns the
// stock level and the soft-delete state, and is the single place where
// both are mutated.
type Product struct {
	id          string
	categoryID  string
	name        string
	description string
	price       Money
	stock       int64
	isActive    bool
	isDeleted   bool
	deletedAt   *time.Time
	version     int64
	createdAt   time.Time
	updatedAt   time.Time

	clock   clock.Clock
	changes *ChangeTracker
	events  []DomainEvent
}

// NewProduct creates a new Product aggregate (for creation).
func NewProduct(id, categoryID, name, description string, price Money, stock int64, now time.Time, clk clock.Clock) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if categoryID == "" {
		return nil, ErrInvalidCategory
	}

	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	if stock < 0 {
		return nil, ErrNegativeStock
	}

	p := &Product{
		id:          id,
		categoryID:  categoryID,
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		isActive:    true,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
		clock:       clk,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}

	p.changes.MarkDirty(FieldName)
	p.changes.MarkDirty(FieldDescription)
	p.changes.MarkDirty(FieldCategoryID)
	p.changes.MarkDirty(FieldPrice)
	p.changes.MarkDirty(FieldStock)
	p.changes.MarkDirty(FieldIsActive)

	p.recordEvent(&ProductCreatedEvent{
		ProductID:  p.id,
		CategoryID: p.categoryID,
		Name:       p.name,
		PriceCents: p.price.Cents(),
		Stock:      p.stock,
		CreatedAt:  p.createdAt,
	})

	return p, nil
}

// ReconstructProduct reconstitutes a Product from the database.
func ReconstructProduct(
	id, categoryID, name, description string,
	price Money,
	stock int64,
	isActive, isDeleted bool,
	deletedAt *time.Time,
	version int64,
	createdAt, updatedAt time.Time,
	clk clock.Clock,
) *Product {
	return &Product{
		id:          id,
		categoryID:  categoryID,
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		isActive:    isActive,
		isDeleted:   isDeleted,
		deletedAt:   deletedAt,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		clock:       clk,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}
}

// Getters
func (p *Product) ID() string                  { return p.id }
func (p *Product) CategoryID() string          { return p.categoryID }
func (p *Product) Name() string                { return p.name }
func (p *Product) Description() string         { return p.description }
func (p *Product) Price() Money                { return p.price }
func (p *Product) Stock() int64                { return p.stock }
func (p *Product) IsActive() bool              { return p.isActive }
func (p *Product) IsDeleted() bool             { return p.isDeleted }
func (p *Product) DeletedAt() *time.Time       { return p.deletedAt }
func (p *Product) Version() int64              { return p.version }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
func (p *Product) Changes() *ChangeTracker     { return p.changes }
func (p *Product) DomainEvents() []DomainEvent { return p.events }

// SetName updates the product name.
func (p *Product) SetName(name string) error {
	if err := p.checkNotDeleted(); err != nil {
		return err
	}

	if name == "" {
		return ErrEmptyName
	}

	p.name = name
	p.changes.MarkDirty(FieldName)
	p.recordUpdated()
	return nil
}

// SetDescription updates the product description.
func (p *Product) SetDescription(description string) error {
	if err := p.checkNotDeleted(); err != nil {
		return err
	}

	p.description = description
	p.changes.MarkDirty(FieldDescription)
	p.recordUpdated()
	return nil
}

// SetCategory moves the product to another category.
func (p *Product) SetCategory(categoryID string) error {
	if err := p.checkNotDeleted(); err != nil {
		return err
	}

	if categoryID == "" {
		return ErrInvalidCategory
	}

	p.categoryID = categoryID
	p.changes.MarkDirty(FieldCategoryID)
	p.recordUpdated()
	return nil
}

// SetPrice updates the list price. Existing sales are unaffected because
// line items snapshot the unit price at sale time.
func (p *Product) SetPrice(price Money) error {
	if err := p.checkNotDeleted(); err != nil {
		return err
	}

	if !price.IsPositive() {
		return ErrInvalidPrice
	}

	p.price = price
	p.changes.MarkDirty(FieldPrice)
	p.recordUpdated()
	return nil
}

// Activate makes the product purchasable.
func (p *Product) Activate() error {
	if err := p.checkNotDeleted(); err != nil {
		return err
	}

	p.isActive = true
	p.changes.MarkDirty(FieldIsActive)
	p.recordUpdated()
	return nil
}

// Deactivate withdraws the product from sale without deleting it.
func (p *Product) Deactivate() error {
	if err := p.checkNotDeleted(); err != nil {
		return err
	}

	p.isActive = false
	p.changes.MarkDirty(FieldIsActive)
	p.recordUpdated()
	return nil
}

// SoftDelete marks the product unavailable as of the given time. The row
// is never physically removed, so historical sales keep resolving.
func (p *Product) SoftDelete(at time.Time) error {
	if p.isDeleted {
		return ErrAlreadyDeleted
	}

	p.isDeleted = true
	p.deletedAt = &at
	p.changes.MarkDirty(FieldSoftDelete)

	p.recordEvent(&ProductDeletedEvent{
		ProductID: p.id,
		DeletedAt: at,
	})

	return nil
}

// Restore reverses a soft delete.
func (p *Product) Restore() error {
	if !p.isDeleted {
		return ErrNotDeleted
	}

	p.isDeleted = false
	p.deletedAt = nil
	p.changes.MarkDirty(FieldSoftDelete)

	p.recordEvent(&ProductRestoredEvent{
		ProductID:  p.id,
		RestoredAt: p.clock.Now(),
	})

	return nil
}

// AvailableAt reports whether the product existed (was not yet deleted)
// at the given point in time. This is the single predicate used by all
// historical reconstruction; a product deleted after pointInTime is still
// considered available for views of that earlier moment.
func (p *Product) AvailableAt(pointInTime time.Time) bool {
	if !p.isDeleted {
		return true
	}
	return p.deletedAt != nil && p.deletedAt.After(pointInTime)
}

func (p *Product) checkNotDeleted() error {
	if p.isDeleted {
		return ErrCannotModifyDeleted
	}
	return nil
}

func (p *Product) recordUpdated() {
	p.recordEvent(&ProductUpdatedEvent{
		ProductID:  p.id,
		Name:       p.name,
		PriceCents: p.price.Cents(),
		IsActive:   p.isActive,
		UpdatedAt:  p.clock.Now(),
	})
}

func (p *Product) recordEvent(event DomainEvent) {
	p.events = append(p.events, event)
}

// ClearEvents clears all recorded domain events (called after the events
// are handed to the outbox).
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}
