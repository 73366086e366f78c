package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cargo-route-service/internal/adapters/catalog"
	"cargo-route-service/internal/api/dto"
	"cargo-route-service/internal/services"
)

func testOptimizeHandler(t *testing.T) *OptimizeHandler {
	t.Helper()

	store := catalog.NewStore(catalog.NewBuiltinSource())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return &OptimizeHandler{
		Catalog:            store,
		Optimizer:          services.DefaultOptimizerConfig(),
		DefaultCapacitySCU: 168,
	}
}

func postOptimize(t *testing.T, h *OptimizeHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/optimize", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Optimize(rec, req)
	return rec
}

func TestOptimizeHandlerSuccess(t *testing.T) {
	h := testOptimizeHandler(t)

	rec := postOptimize(t, h, `{
		"start_location": "Port Olisar",
		"missions": [
			{
				"id": "ICC-1",
				"pickup": "Port Olisar",
				"payout": 9500,
				"dropoffs": [{"location": "Everus Harbor", "cargo_type": "Medical Supplies", "amount": 12}]
			}
		]
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.OptimizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Route) != 3 || res.Route[0] != "Port Olisar" {
		t.Fatalf("route = %v", res.Route)
	}
	if res.Route[1] != "Port Olisar" || res.Route[2] != "Everus Harbor" {
		t.Fatalf("route = %v", res.Route)
	}
	if res.MissionOrder[0] != "Pickup ICC-1" || res.MissionOrder[1] != "Dropoff ICC-1" {
		t.Fatalf("mission order = %v", res.MissionOrder)
	}
	if res.TotalPayout != 9500 {
		t.Fatalf("payout = %v, want 9500", res.TotalPayout)
	}
	if !res.Optimal {
		t.Fatal("expected optimal result")
	}
	if res.TotalDistance <= 0 {
		t.Fatalf("distance = %v, want positive", res.TotalDistance)
	}
}

func TestOptimizeHandlerShipCapacityFromID(t *testing.T) {
	h := testOptimizeHandler(t)

	// The Cutlass Black holds 46 SCU; a 100 SCU mission cannot fit.
	rec := postOptimize(t, h, `{
		"ship_id": "cutlass_black",
		"missions": [
			{
				"pickup": "Port Olisar",
				"dropoffs": [{"location": "Everus Harbor", "amount": 100}]
			}
		]
	}`)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body = %s", rec.Code, rec.Body.String())
	}
}

func TestOptimizeHandlerUnknownShip(t *testing.T) {
	h := testOptimizeHandler(t)

	rec := postOptimize(t, h, `{"ship_id": "bengal", "missions": []}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestOptimizeHandlerValidationErrors(t *testing.T) {
	h := testOptimizeHandler(t)

	cases := []struct {
		name string
		body string
	}{
		{"empty missions", `{"missions": []}`},
		{"unknown field", `{"missions": [], "warp_speed": true}`},
		{"unknown location", `{"missions": [{"pickup": "Atlantis", "dropoffs": [{"location": "Everus Harbor", "amount": 1}]}]}`},
		{"malformed json", `{"missions":`},
		{"trailing object", `{"missions": []}{"missions": []}`},
	}

	for _, tc := range cases {
		rec := postOptimize(t, h, tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400, body = %s", tc.name, rec.Code, rec.Body.String())
		}
	}
}

func TestOptimizeHandlerMethodNotAllowed(t *testing.T) {
	h := testOptimizeHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/optimize", nil)
	rec := httptest.NewRecorder()
	h.Optimize(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if rec.Header().Get("Allow") != http.MethodPost {
		t.Fatalf("allow = %q", rec.Header().Get("Allow"))
	}
}

func TestOptimizeHandlerCatalogNotLoaded(t *testing.T) {
	h := &OptimizeHandler{
		Catalog:            catalog.NewStore(catalog.NewBuiltinSource()),
		Optimizer:          services.DefaultOptimizerConfig(),
		DefaultCapacitySCU: 168,
	}

	rec := postOptimize(t, h, `{"missions": [{"pickup": "Port Olisar", "dropoffs": [{"location": "Everus Harbor", "amount": 1}]}]}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
