package domain

import (
	"time"

	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
)

// Category groups products. It carries the same soft-delete state as
// Product so historical sale views can resolve category names for
// since-removed groupings.
type Category struct {
	id          string
	name        string
	description string
	isDeleted   bool
	deletedAt   *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	clock   clock.Clock
	changes *ChangeTracker
}

// NewCategory creates a new Category aggregate.
func NewCategory(id, name, description string, now time.Time, clk clock.Clock) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	c := &Category{
		id:          id,
		name:        name,
		description: description,
		createdAt:   now,
		updatedAt:   now,
		clock:       clk,
		changes:     NewChangeTracker(),
	}

	c.changes.MarkDirty(FieldName)
	c.changes.MarkDirty(FieldDescription)

	return c, nil
}

// ReconstructCategory reconstitutes a Category from the database.
func ReconstructCategory(
	id, name, description string,
	isDeleted bool,
	deletedAt *time.Time,
	createdAt, updatedAt time.Time,
	clk clock.Clock,
) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		isDeleted:   isDeleted,
		deletedAt:   deletedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		clock:       clk,
		changes:     NewChangeTracker(),
	}
}

// Getters
func (c *Category) ID() string              { return c.id }
func (c *Category) Name() string            { return c.name }
func (c *Category) Description() string     { return c.description }
func (c *Category) IsDeleted() bool         { return c.isDeleted }
func (c *Category) DeletedAt() *time.Time   { return c.deletedAt }
func (c *Category) CreatedAt() time.Time    { return c.createdAt }
func (c *Category) UpdatedAt() time.Time    { return c.updatedAt }
func (c *Category) Changes() *ChangeTracker { return c.changes }

// SetName updates the category name.
func (c *Category) SetName(name string) error {
	if c.isDeleted {
		return ErrCannotModifyDeleted
	}

	if name == "" {
		return ErrEmptyName
	}

	c.name = name
	c.changes.MarkDirty(FieldName)
	return nil
}

// SetDescription updates the category description.
func (c *Category) SetDescription(description string) error {
	if c.isDeleted {
		return ErrCannotModifyDeleted
	}

	c.description = description
	c.changes.MarkDirty(FieldDescription)
	return nil
}

// SoftDelete marks the category deleted as of the given time. Products in
// the category are not cascaded; they keep their category_id and the
// category stays resolvable for historical views.
func (c *Category) SoftDelete(at time.Time) error {
	if c.isDeleted {
		return ErrAlreadyDeleted
	}

	c.isDeleted = true
	c.deletedAt = &at
	c.changes.MarkDirty(FieldSoftDelete)
	return nil
}

// Restore reverses a soft delete.
func (c *Category) Restore() error {
	if !c.isDeleted {
		return ErrNotDeleted
	}

	c.isDeleted = false
	c.deletedAt = nil
	c.changes.MarkDirty(FieldSoftDelete)
	return nil
}

// AvailableAt reports whether the category existed at the given time.
func (c *Category) AvailableAt(pointInTime time.Time) bool {
	if !c.isDeleted {
		return true
	}
	return c.deletedAt != nil && c.deletedAt.After(pointInTime)
}
