package handlers

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"

	"bakehouse/internal/flan"
	"bakehouse/internal/models"
)

// @Summary      Liveness and kitchen capacity
// @Tags         meta
// @Produce      json
// @Success      200  {object}  flan.Response
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	ovens := h.services.Monitoring.Ovens(c.Request.Context())
	available := 0
	for _, o := range ovens {
		if o.Status == models.OvenIdle {
			available++
		}
	}

	st := flan.StatusFlanPerfect
	c.JSON(st.Code, flan.NewResponse(st, gin.H{
		"status": "ok",
		"ovens": gin.H{
			"available": available,
			"total":     len(ovens),
		},
		"stream": h.services.Events.Stats(),
	}, ""))
}

// @Summary      Ping the kitchen
// @Description  Latency probe with a simulated oven-door round trip.
// @Tags         meta
// @Produce      json
// @Success      200  {object}  flan.Response
// @Router       /api/flan/ping [get]
func (h *Handler) ping(c *gin.Context) {
	delay := time.Duration(10+rand.Intn(40)) * time.Millisecond
	time.Sleep(delay)

	st := flan.StatusFlanPerfect
	c.JSON(st.Code, flan.NewResponse(st, gin.H{
		"pong":       "🍮",
		"latency_ms": delay.Milliseconds(),
		"texture":    "wobbly",
	}, ""))
}

// @Summary      Teapot
// @Tags         meta
// @Produce      json
// @Success      418  {object}  flan.Response
// @Router       /api/flan/teapot [get]
func (h *Handler) teapot(c *gin.Context) {
	st := flan.StatusTeapot
	c.JSON(st.Code, flan.NewResponse(st, gin.H{"rfc": "RFC 2324"},
		"I'm a teapot, not a flan mold 🫖"))
}

// @Summary      Protocol self-description
// @Description  The FLAN endpoints mapped to their network equivalents, plus the full status table.
// @Tags         meta
// @Produce      json
// @Success      200  {object}  flan.Response
// @Router       /api/flan/documentation [get]
func (h *Handler) documentation(c *gin.Context) {
	endpoints := []gin.H{
		{"method": "POST", "path": "/api/flan/preheat", "description": "Reserve and preheat an oven", "network_equivalent": "TCP handshake (SYN / SYN-ACK)"},
		{"method": "POST", "path": "/api/flan/order", "description": "Submit an order and start the pipeline", "network_equivalent": "Data transfer"},
		{"method": "GET", "path": "/api/flan/order/{id}", "description": "Poll one order", "network_equivalent": "Status query"},
		{"method": "GET", "path": "/api/flan/recipes", "description": "List the recipe book", "network_equivalent": "Service discovery"},
		{"method": "GET", "path": "/api/flan/ovens", "description": "Inspect the oven pool", "network_equivalent": "Resource inventory"},
		{"method": "GET", "path": "/api/flan/history", "description": "Replay recent events", "network_equivalent": "Packet capture"},
		{"method": "GET", "path": "/api/flan/events", "description": "Live event stream (SSE)", "network_equivalent": "Broadcast channel"},
		{"method": "GET", "path": "/ws", "description": "Live event feed (WebSocket)", "network_equivalent": "Full-duplex session"},
		{"method": "GET", "path": "/api/flan/ping", "description": "Latency probe", "network_equivalent": "ICMP echo"},
	}

	st := flan.StatusFlanPerfect
	c.JSON(st.Code, flan.NewResponse(st, gin.H{
		"protocol":     flan.ProtocolVersion,
		"full_name":    "Flan Layered Access Network",
		"rfc":          "RFC 3141 (Request For Caramel)",
		"endpoints":    endpoints,
		"status_codes": flan.All(),
	}, ""))
}
