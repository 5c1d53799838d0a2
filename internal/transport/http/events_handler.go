package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/light-bringer/ecom-backoffice/internal/app/sales/queries/list_events"
)

// EventsHandler exposes the outbox event feed for debugging and
// downstream consumers that poll instead of subscribing.
type EventsHandler struct {
	listQ  *list_events.Query
	logger *zap.Logger
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(listQ *list_events.Query, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{
		listQ:  listQ,
		logger: logger,
	}
}

// Register binds the event routes onto a router group.
func (h *EventsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/events", h.list)
}

func (h *EventsHandler) list(c *gin.Context) {
	req := &list_events.Request{
		Limit: queryInt(c, "limit"),
	}
	if v := c.Query("event_type"); v != "" {
		req.EventType = &v
	}
	if v := c.Query("aggregate_id"); v != "" {
		req.AggregateID = &v
	}
	if v := c.Query("status"); v != "" {
		req.Status = &v
	}

	events, totalCount, err := h.listQ.Execute(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := make([]*eventResponse, 0, len(events))
	for _, event := range events {
		resp = append(resp, toEventResponse(event))
	}

	c.JSON(http.StatusOK, gin.H{
		"events":      resp,
		"total_count": totalCount,
	})
}
