package handlers

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"bakehouse/internal/flan"
)

// RateLimit caps how fast one client may hit the protocol endpoints.
type RateLimit struct {
	RPS   float64 // sustained requests per second per client
	Burst int     // short-burst allowance per client
}

// House defaults applied when the configured limit is unset.
const (
	defaultRateRPS   = 20.0
	defaultRateBurst = 40
)

// rateGate hands one token bucket to each client address.
type rateGate struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newRateGate(limit RateLimit) *rateGate {
	if limit.RPS <= 0 {
		limit.RPS = defaultRateRPS
	}
	if limit.Burst <= 0 {
		limit.Burst = defaultRateBurst
	}
	return &rateGate{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(limit.RPS),
		burst:    limit.Burst,
	}
}

func (g *rateGate) limiter(addr string) *rate.Limiter {
	g.mu.Lock()
	defer g.mu.Unlock()
	if l, ok := g.limiters[addr]; ok {
		return l
	}
	l := rate.NewLimiter(g.rps, g.burst)
	g.limiters[addr] = l
	return l
}

func (h *Handler) tooManyOrdersMiddleware(c *gin.Context) {
	if !h.gate.limiter(c.ClientIP()).Allow() {
		st := flan.StatusTooManyOrders
		c.AbortWithStatusJSON(st.Code, flan.NewResponse(st, nil,
			"Slow down; the oven door only opens so fast"))
		return
	}
	c.Next()
}
