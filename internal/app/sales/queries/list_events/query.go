package list_events

import (
	"context"

	"github.com/light-bringer/ecom-backoffice/internal/models/m_outbox"
)

// Request contains filtering parameters for listing outbox events.
type Request struct {
	EventType   *string // e.g. "sale.created", "product.deleted"
	AggregateID *string
	Status      *string // "pending", "completed", "failed"
	Limit       int
}

// EventsReadModel defines the interface for reading outbox events.
type EventsReadModel interface {
	ListEvents(ctx context.Context, req *Request) ([]*m_outbox.Data, int64, error)
}

// Query handles the list events query use case.
type Query struct {
	readModel EventsReadModel
}

// NewQuery creates a new list events query.
func NewQuery(readModel EventsReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a list of events with filtering.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*m_outbox.Data, int64, error) {
	if req.Limit <= 0 {
		req.Limit = 100
	}
	if req.Limit > 1000 {
		req.Limit = 1000
	}

	return q.readModel.ListEvents(ctx, req)
}
