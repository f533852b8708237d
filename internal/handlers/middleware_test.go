package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"bakehouse/internal/service"
)

// minimal router wiring only the rate gate + a guarded endpoint
func newGateOnlyRouter(limit RateLimit) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(&service.Service{}, nil, limit)
	r.GET("/guarded", h.tooManyOrdersMiddleware, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestTooManyOrders_BurstThenRefusal(t *testing.T) {
	// Refill so slow the bucket cannot recover mid-test.
	r := newGateOnlyRouter(RateLimit{RPS: 0.01, Burst: 2})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status=%d, body=%s", i+1, w.Code, w.Body.String())
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status=%d, want 429, body=%s", w.Code, w.Body.String())
	}
	resp := decodeEnvelope(t, w.Body.Bytes())
	if resp.Status.Name != "Too Many Orders" {
		t.Fatalf("status name=%q", resp.Status.Name)
	}
	if resp.Message == "" {
		t.Fatal("refusal should tell the client to slow down")
	}
}

func TestTooManyOrders_BucketsPerClient(t *testing.T) {
	r := newGateOnlyRouter(RateLimit{RPS: 0.01, Burst: 1})

	// First client exhausts its bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.RemoteAddr = "10.1.1.1:5000"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("first client: status=%d", w.Code)
	}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.RemoteAddr = "10.1.1.1:5001"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("first client again: status=%d, want 429", w.Code)
	}

	// A different address gets its own bucket.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.RemoteAddr = "10.2.2.2:5000"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("second client: status=%d, body=%s", w.Code, w.Body.String())
	}
}

func TestHealth_BypassesRateGate(t *testing.T) {
	h := NewHandler(&service.Service{Monitoring: &mockMonitoring{}, Events: newMockEvents()}, nil, RateLimit{RPS: 0.01, Burst: 1})
	gin.SetMode(gin.TestMode)
	r := h.InitRoutes()

	// Use up the protocol bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flan/ovens", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("ovens: status=%d", w.Code)
	}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/flan/ovens", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("ovens again: status=%d, want 429", w.Code)
	}

	// Probes keep working regardless.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("health: status=%d, body=%s", w.Code, w.Body.String())
	}
}

func TestRateGate_Defaults(t *testing.T) {
	g := newRateGate(RateLimit{})
	if g.rps != rate.Limit(defaultRateRPS) || g.burst != defaultRateBurst {
		t.Fatalf("got rps=%v burst=%d, want house defaults", g.rps, g.burst)
	}

	// Same address reuses its limiter.
	if g.limiter("10.0.0.1") != g.limiter("10.0.0.1") {
		t.Fatal("limiter not reused for the same client")
	}
	if g.limiter("10.0.0.1") == g.limiter("10.0.0.2") {
		t.Fatal("distinct clients share a limiter")
	}
}
