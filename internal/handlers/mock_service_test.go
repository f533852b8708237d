package handlers

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"bakehouse/internal/catalog"
	"bakehouse/internal/flan"
	"bakehouse/internal/models"
	"bakehouse/internal/service"
	"bakehouse/internal/stream"
)

// ---- Service Mocks ----

type mockKitchen struct {
	preheatRes service.PreheatResult
	preheatErr error
	ticket     service.OrderTicket
	submitErr  error

	lastPreheat  service.PreheatParams
	lastOrder    service.OrderParams
	preheatCalls int
	submitCalls  int
}

func (m *mockKitchen) Preheat(ctx context.Context, p service.PreheatParams) (service.PreheatResult, error) {
	m.preheatCalls++
	m.lastPreheat = p
	return m.preheatRes, m.preheatErr
}

func (m *mockKitchen) Submit(ctx context.Context, p service.OrderParams) (service.OrderTicket, error) {
	m.submitCalls++
	m.lastOrder = p
	return m.ticket, m.submitErr
}

type mockMonitoring struct {
	statusView service.OrderStatusView
	statusErr  error
	ovens      []models.Oven
	recipes    []catalog.Recipe

	lastOrderID string
}

func (m *mockMonitoring) OrderStatus(ctx context.Context, orderID string) (service.OrderStatusView, error) {
	m.lastOrderID = orderID
	return m.statusView, m.statusErr
}

func (m *mockMonitoring) Ovens(ctx context.Context) []models.Oven {
	return m.ovens
}

func (m *mockMonitoring) Recipes(ctx context.Context) []catalog.Recipe {
	return m.recipes
}

// mockEvents records publishes and serves canned history, while delegating
// fan-out to a real broker so the streaming handlers behave normally.
type mockEvents struct {
	broker *stream.Broker

	mu        sync.Mutex
	published []models.KitchenEvent

	historyEvents []models.KitchenEvent
	historyTotal  int
	historyErr    error
	lastLimit     int
}

func newMockEvents(opts ...stream.BrokerOption) *mockEvents {
	return &mockEvents{broker: stream.NewBroker(opts...)}
}

func (m *mockEvents) Publish(ctx context.Context, e models.KitchenEvent) error {
	m.mu.Lock()
	m.published = append(m.published, e)
	m.mu.Unlock()
	m.broker.Publish(e)
	return nil
}

func (m *mockEvents) History(ctx context.Context, limit int) ([]models.KitchenEvent, int, error) {
	m.lastLimit = limit
	return m.historyEvents, m.historyTotal, m.historyErr
}

func (m *mockEvents) Subscribe() *stream.Subscriber { return m.broker.Subscribe() }
func (m *mockEvents) Unsubscribe(id string)         { m.broker.Remove(id) }
func (m *mockEvents) Stats() stream.Stats           { return m.broker.Stats() }

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, RateLimit{})
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func decodeEnvelope(t *testing.T, body []byte) flan.Response {
	t.Helper()
	var resp flan.Response
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return resp
}

func dataMap(t *testing.T, resp flan.Response) map[string]any {
	t.Helper()
	m, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("envelope data is %T, want an object", resp.Data)
	}
	return m
}
