package domain

import "time"

// DomainEvent is implemented by all sales events. Events are written to
// the outbox table in the same transaction as the sale mutation.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// SaleCreatedEvent is emitted when a sale is recorded.
type SaleCreatedEvent struct {
	SaleID     string    `json:"sale_id"`
	SaleDate   time.Time `json:"sale_date"`
	TotalCents int64     `json:"total_cents"`
	ItemCount  int       `json:"item_count"`
	Units      int64     `json:"units"`
}

func (e *SaleCreatedEvent) EventType() string   { return "sale.created" }
func (e *SaleCreatedEvent) AggregateID() string { return e.SaleID }

// SaleUpdatedEvent is emitted when a sale's line items or customer
// details are replaced.
type SaleUpdatedEvent struct {
	SaleID     string    `json:"sale_id"`
	SaleDate   time.Time `json:"sale_date"`
	TotalCents int64     `json:"total_cents"`
	ItemCount  int       `json:"item_count"`
}

func (e *SaleUpdatedEvent) EventType() string   { return "sale.updated" }
func (e *SaleUpdatedEvent) AggregateID() string { return e.SaleID }

// SaleDeletedEvent is emitted when a sale is removed. Stock is not
// restored on deletion.
type SaleDeletedEvent struct {
	SaleID    string    `json:"sale_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

func (e *SaleDeletedEvent) EventType() string   { return "sale.deleted" }
func (e *SaleDeletedEvent) AggregateID() string { return e.SaleID }
