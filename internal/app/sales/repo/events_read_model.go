package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/ecom-backoffice/internal/app/sales/queries/list_events"
	"github.com/light-bringer/ecom-backoffice/internal/models/m_outbox"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/query"
)

// EventsReadModel reads outbox events for Spanner. The outbox is shared
// across contexts, so this surface returns catalog and sales events alike.
type EventsReadModel struct {
	client *spanner.Client
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(client *spanner.Client) *EventsReadModel {
	return &EventsReadModel{
		client: client,
	}
}

// ListEvents retrieves events from the outbox_events table with filtering.
func (r *EventsReadModel) ListEvents(ctx context.Context, req *list_events.Request) ([]*m_outbox.Data, int64, error) {
	base := query.From(m_outbox.TableName)

	if req.EventType != nil {
		base = base.Where(query.Eq(m_outbox.EventType, *req.EventType))
	}
	if req.AggregateID != nil {
		base = base.Where(query.Eq(m_outbox.AggregateID, *req.AggregateID))
	}
	if req.Status != nil {
		base = base.Where(query.Eq(m_outbox.Status, *req.Status))
	}

	countIter := r.client.Single().Query(ctx, base.Count().Build())
	defer countIter.Stop()

	countRow, err := countIter.Next()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}
	var totalCount int64
	if err := countRow.Column(0, &totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to scan event count: %w", err)
	}

	stmt := base.
		Select(m_outbox.AllColumns...).
		OrderBy(m_outbox.CreatedAt, query.Desc).
		Limit(int64(req.Limit)).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var events []*m_outbox.Data
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to iterate events: %w", err)
		}

		var event m_outbox.Data
		if err := row.ToStruct(&event); err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, &event)
	}

	return events, totalCount, nil
}
