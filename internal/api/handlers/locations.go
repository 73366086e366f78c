package handlers

import (
	"log"
	"net/http"

	"cargo-route-service/internal/adapters/catalog"
	"cargo-route-service/internal/api/dto"
)

// LocationHandler exposes the catalog listing and the admin reload.
type LocationHandler struct {
	Catalog *catalog.Store
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snap := h.Catalog.Snapshot()
	if snap == nil {
		writeError(w, r, http.StatusServiceUnavailable, "catalog not loaded")
		return
	}

	locations := snap.Locations()
	res := dto.ListLocationsResponse{
		Locations: make([]dto.LocationResponse, 0, len(locations)),
	}
	for _, loc := range locations {
		res.Locations = append(res.Locations, dto.LocationResponse{
			Name:        loc.Name,
			Kind:        string(loc.Kind),
			Coordinates: loc.Coordinates.MapCoords(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Reload swaps in a freshly loaded catalog snapshot. In-flight requests
// keep the snapshot they started with.
func (h *LocationHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := h.Catalog.Reload(r.Context()); err != nil {
		log.Printf("catalog reload failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "catalog reload failed")
		return
	}

	res := map[string]any{"status": "ok", "locations": h.Catalog.Snapshot().Len()}
	writeJSON(w, r, http.StatusOK, res)
}
