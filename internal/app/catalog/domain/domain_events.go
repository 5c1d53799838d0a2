package domain

import "time"

// DomainEvent is implemented by all catalog events. Events are written to
// the outbox table in the same transaction as the state change they record.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ProductCreatedEvent is emitted when a new product enters the catalog.
type ProductCreatedEvent struct {
	ProductID  string    `json:"product_id"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	Stock      int64     `json:"stock"`
	CreatedAt  time.Time `json:"created_at"`
}

func (e *ProductCreatedEvent) EventType() string   { return "product.created" }
func (e *ProductCreatedEvent) AggregateID() string { return e.ProductID }

// ProductUpdatedEvent is emitted when product details change.
type ProductUpdatedEvent struct {
	ProductID  string    `json:"product_id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	IsActive   bool      `json:"is_active"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (e *ProductUpdatedEvent) EventType() string   { return "product.updated" }
func (e *ProductUpdatedEvent) AggregateID() string { return e.ProductID }

// ProductDeletedEvent is emitted when a product is soft-deleted.
type ProductDeletedEvent struct {
	ProductID string    `json:"product_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

func (e *ProductDeletedEvent) EventType() string   { return "product.deleted" }
func (e *ProductDeletedEvent) AggregateID() string { return e.ProductID }

// ProductRestoredEvent is emitted when a soft-deleted product is restored.
type ProductRestoredEvent struct {
	ProductID  string    `json:"product_id"`
	RestoredAt time.Time `json:"restored_at"`
}

func (e *ProductRestoredEvent) EventType() string   { return "product.restored" }
func (e *ProductRestoredEvent) AggregateID() string { return e.ProductID }
