package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cargo-route-service/internal/adapters/catalog"
	"cargo-route-service/internal/api/dto"
)

func TestLocationHandlerList(t *testing.T) {
	store := catalog.NewStore(catalog.NewBuiltinSource())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := &LocationHandler{Catalog: store}

	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.ListLocationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Locations) != store.Snapshot().Len() {
		t.Fatalf("len = %d, want %d", len(res.Locations), store.Snapshot().Len())
	}
	// Listings are name-sorted and carry flattened map coordinates.
	if res.Locations[0].Name >= res.Locations[1].Name {
		t.Fatalf("expected sorted names, got %q then %q", res.Locations[0].Name, res.Locations[1].Name)
	}
	if len(res.Locations[0].Coordinates) != 2 {
		t.Fatalf("coordinates = %v", res.Locations[0].Coordinates)
	}
}

func TestLocationHandlerListBeforeLoad(t *testing.T) {
	h := &LocationHandler{Catalog: catalog.NewStore(catalog.NewBuiltinSource())}

	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestLocationHandlerReload(t *testing.T) {
	store := catalog.NewStore(catalog.NewBuiltinSource())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := &LocationHandler{Catalog: store}

	req := httptest.NewRequest(http.MethodPost, "/api/catalog/reload", nil)
	rec := httptest.NewRecorder()
	h.Reload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res["status"] != "ok" {
		t.Fatalf("body = %v", res)
	}
}

func TestShipsHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/ships", nil)
	rec := httptest.NewRecorder()
	Ships(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var res dto.ListShipsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Ships) == 0 {
		t.Fatal("expected at least one ship")
	}

	found := false
	for _, s := range res.Ships {
		if s.ID == "taurus" && s.CargoCapacitySCU == 168 {
			found = true
		}
	}
	if !found {
		t.Fatalf("taurus missing from %v", res.Ships)
	}
}
