package handlers

import (
	"io"
	"sieeg_orders/internal/events"

	"github.com/gin-gonic/gin"
)

// EventsHandler exposes the orders-changed bus as a server-sent event
// stream so list and dashboard views refresh without polling.

type EventsHandler struct {
	bus *events.Bus
}

func NewEventsHandler(bus *events.Bus) *EventsHandler {
	return &EventsHandler{bus: bus}
}

// StreamChanges godoc
// @Summary Subscribe to order change notifications (SSE)
// @Tags events
// @Produce text/event-stream
// @Success 200 {string} string "stream of orders-changed events"
// @Router /eventos/ordenes [get]
func (h *EventsHandler) StreamChanges(c *gin.Context) {
	ch, cancel := h.bus.Subscribe()
	defer cancel()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("orders-changed", gin.H{
				"type":    string(ev.Type),
				"orderId": ev.OrderID,
			})
			return true
		}
	})
}
