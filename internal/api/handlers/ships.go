package handlers

import (
	"net/http"

	"cargo-route-service/internal/api/dto"
	"cargo-route-service/internal/domain"
)

// Ships lists the selectable hulls and their cargo capacities.
func Ships(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ships := domain.Ships()
	res := dto.ListShipsResponse{Ships: make([]dto.ShipResponse, 0, len(ships))}
	for _, s := range ships {
		res.Ships = append(res.Ships, dto.ShipResponse{
			ID:               s.ID,
			Name:             s.Name,
			CargoCapacitySCU: s.CargoCapacitySCU,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
