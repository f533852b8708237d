package handlers

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"bakehouse/internal/flan"
)

// defaultHistoryLimit caps the history response when the client does not ask
// for a specific window.
const defaultHistoryLimit = 50

// @Summary      Recent kitchen events
// @Description  Bounded replay of the event bus, oldest first.
// @Tags         events
// @Produce      json
// @Param        limit  query     int  false  "Max events to return"  default(50)
// @Success      200    {object}  flan.Response
// @Router       /api/flan/history [get]
func (h *Handler) history(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	events, total, err := h.services.Events.History(c.Request.Context(), limit)
	if err != nil {
		h.logAndProtocolError(c, flan.StatusOvenBroken, "the event log is unreadable", "history_failed", err)
		return
	}

	st := flan.StatusFlanPerfect
	c.JSON(st.Code, flan.NewResponse(st, gin.H{
		"events": events,
		"count":  len(events),
		"total":  total,
	}, ""))
}

// @Summary      Live event stream
// @Description  Server-sent events; one data line per kitchen event, with heartbeats while idle.
// @Tags         events
// @Produce      text/event-stream
// @Success      200  {string}  string  "event stream"
// @Router       /api/flan/events [get]
func (h *Handler) streamEvents(c *gin.Context) {
	sub := h.services.Events.Subscribe()
	defer h.services.Events.Unsubscribe(sub.ID())

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	// Flush the headers right away so clients see the stream open before
	// the first event lands.
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		ev, ok := sub.Next(c.Request.Context())
		if !ok {
			return false
		}
		c.SSEvent("", ev)
		return true
	})
}
