package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bakehouse/internal/catalog"
	"bakehouse/internal/models"
	"bakehouse/internal/service"
)

func TestOrderStatus_InProgress(t *testing.T) {
	mon := &mockMonitoring{statusView: service.OrderStatusView{
		OrderID:  "CMD-0001",
		Icon:     "🍮",
		Progress: 50,
		Stage:    models.StageMixing,
		LastStep: &models.StageRecord{
			Stage:       models.StageMixing,
			Description: "Mixing the custard",
			Progress:    50,
			At:          time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}}
	r := newTestRouter(&service.Service{Monitoring: mon, Events: newMockEvents()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flan/order/CMD-0001", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if mon.lastOrderID != "CMD-0001" {
		t.Fatalf("order id not forwarded: %q", mon.lastOrderID)
	}
	resp := decodeEnvelope(t, w.Body.Bytes())
	data := dataMap(t, resp)
	if data["status"] != orderInProgress || data["progress"] != float64(50) {
		t.Fatalf("unexpected data: %v", data)
	}
	stage, ok := data["current_stage"].(map[string]any)
	if !ok {
		t.Fatalf("current_stage missing: %v", data)
	}
	if stage["stage"] != string(models.StageMixing) || stage["description"] != "Mixing the custard" {
		t.Fatalf("unexpected stage: %v", stage)
	}
	if !strings.Contains(resp.Message, "50%") {
		t.Fatalf("message should carry progress, got %q", resp.Message)
	}
}

func TestOrderStatus_BeforeFirstStage(t *testing.T) {
	mon := &mockMonitoring{statusView: service.OrderStatusView{
		OrderID: "CMD-0002",
		Icon:    "🍊",
		Stage:   models.StageSubmitted,
	}}
	r := newTestRouter(&service.Service{Monitoring: mon, Events: newMockEvents()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flan/order/CMD-0002", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	data := dataMap(t, decodeEnvelope(t, w.Body.Bytes()))
	if data["current_stage"] != nil {
		t.Fatalf("current_stage should be null before the pipeline starts: %v", data["current_stage"])
	}
	if data["progress"] != float64(0) {
		t.Fatalf("progress=%v", data["progress"])
	}
}

func TestOrderStatus_Ready(t *testing.T) {
	mon := &mockMonitoring{statusView: service.OrderStatusView{
		OrderID:  "CMD-0003",
		Done:     true,
		Icon:     "🍫",
		Progress: 100,
		Stage:    models.StageComplete,
		Flan: &service.FlanView{
			Recipe:   "flan_chocolate",
			Texture:  "silky",
			Caramel:  "glossy",
			Portions: 4,
		},
		Meta: &service.OrderMetaView{
			Chef:            "Auguste",
			TotalTime:       "5.8s",
			StagesCompleted: 7,
		},
	}}
	r := newTestRouter(&service.Service{Monitoring: mon, Events: newMockEvents()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flan/order/CMD-0003", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	data := dataMap(t, decodeEnvelope(t, w.Body.Bytes()))
	if data["status"] != orderReady {
		t.Fatalf("status label=%v", data["status"])
	}
	fl, ok := data["flan"].(map[string]any)
	if !ok {
		t.Fatalf("flan block missing: %v", data)
	}
	if fl["recipe"] != "flan_chocolate" || fl["texture"] != "silky" || fl["caramel"] != "glossy" || fl["portions"] != float64(4) {
		t.Fatalf("unexpected flan: %v", fl)
	}
	meta, ok := data["metadata"].(map[string]any)
	if !ok {
		t.Fatalf("metadata block missing: %v", data)
	}
	if meta["chef"] != "Auguste" || meta["total_time"] != "5.8s" || meta["stages_completed"] != float64(7) {
		t.Fatalf("unexpected metadata: %v", meta)
	}
}

func TestOrderStatus_NotFound(t *testing.T) {
	mon := &mockMonitoring{statusErr: service.ErrOrderNotFound}
	r := newTestRouter(&service.Service{Monitoring: mon, Events: newMockEvents()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flan/order/CMD-9999", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	resp := decodeEnvelope(t, w.Body.Bytes())
	if resp.Status.Name != "Flan Not Found" {
		t.Fatalf("status name=%q", resp.Status.Name)
	}
}

func TestListRecipes(t *testing.T) {
	mon := &mockMonitoring{recipes: []catalog.Recipe{
		{
			ID:   "flan_vanilla",
			Name: "Vanilla Flan",
			Icon: "🍮",
			Ingredients: []catalog.Ingredient{
				{Name: "eggs", Quantity: "4"}, {Name: "milk", Quantity: "500mL"},
			},
			Bake: catalog.BakeSpec{Mode: "bain-marie", TemperatureC: 150, OvenTime: "40min"},
		},
		{ID: "flan_orange", Name: "Orange Flan", Icon: "🍊"},
	}}
	r := newTestRouter(&service.Service{Monitoring: mon, Events: newMockEvents()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flan/recipes", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	data := dataMap(t, decodeEnvelope(t, w.Body.Bytes()))
	if data["total"] != float64(2) {
		t.Fatalf("total=%v", data["total"])
	}
	recipes, ok := data["recipes"].([]any)
	if !ok || len(recipes) != 2 {
		t.Fatalf("recipes missing: %v", data)
	}
	first, _ := recipes[0].(map[string]any)
	if first["id"] != "flan_vanilla" || first["name"] != "Vanilla Flan" {
		t.Fatalf("unexpected first recipe: %v", first)
	}
	ingredients, ok := first["ingredients"].(map[string]any)
	if !ok || ingredients["eggs"] != "4" || ingredients["milk"] != "500mL" {
		t.Fatalf("ingredients not keyed by name: %v", first["ingredients"])
	}
	bake, ok := first["bake"].(map[string]any)
	if !ok || bake["temperature_c"] != float64(150) || bake["mode"] != "bain-marie" {
		t.Fatalf("unexpected bake block: %v", first["bake"])
	}
}

func TestListOvens(t *testing.T) {
	mon := &mockMonitoring{ovens: []models.Oven{
		{ID: "oven_1", Status: models.OvenIdle, TemperatureC: 21},
		{ID: "oven_2", Status: models.OvenBusy, OrderID: "CMD-0001", TemperatureC: 150},
		{ID: "oven_3", Status: models.OvenIdle, TemperatureC: 23.5},
	}}
	r := newTestRouter(&service.Service{Monitoring: mon, Events: newMockEvents()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flan/ovens", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	data := dataMap(t, decodeEnvelope(t, w.Body.Bytes()))
	if data["total"] != float64(3) || data["available"] != float64(2) {
		t.Fatalf("unexpected counts: %v", data)
	}
	ovens, ok := data["ovens"].([]any)
	if !ok || len(ovens) != 3 {
		t.Fatalf("ovens missing: %v", data)
	}
	second, _ := ovens[1].(map[string]any)
	if second["id"] != "oven_2" || second["status"] != string(models.OvenBusy) || second["order_id"] != "CMD-0001" {
		t.Fatalf("unexpected oven: %v", second)
	}
}
