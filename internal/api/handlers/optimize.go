package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"cargo-route-service/internal/adapters/catalog"
	"cargo-route-service/internal/api/dto"
	"cargo-route-service/internal/domain"
	"cargo-route-service/internal/services"
)

// OptimizeHandler runs the route optimization pipeline for one request.
type OptimizeHandler struct {
	Catalog            *catalog.Store
	Optimizer          services.OptimizerConfig
	DefaultCapacitySCU float64
}

func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	capacity := req.ShipCapacitySCU
	if capacity <= 0 && req.ShipID != "" {
		ship, ok := domain.ShipByID(req.ShipID)
		if !ok {
			writeError(w, r, http.StatusBadRequest, "unknown ship_id")
			return
		}
		capacity = ship.CargoCapacitySCU
	}
	if capacity <= 0 {
		capacity = h.DefaultCapacitySCU
	}

	snap := h.Catalog.Snapshot()
	if snap == nil {
		writeError(w, r, http.StatusServiceUnavailable, "catalog not loaded")
		return
	}

	svcReq := services.OptimizeRequest{
		ShipCapacitySCU: capacity,
		StartLocation:   req.StartLocation,
		Missions:        make([]services.MissionInput, 0, len(req.Missions)),
	}
	for _, m := range req.Missions {
		in := services.MissionInput{
			ID:       m.ID,
			Pickup:   m.Pickup,
			Payout:   m.Payout,
			Dropoffs: make([]services.DropoffInput, 0, len(m.Dropoffs)),
		}
		for _, d := range m.Dropoffs {
			in.Dropoffs = append(in.Dropoffs, services.DropoffInput{
				Location:  d.Location,
				CargoType: d.CargoType,
				AmountSCU: d.AmountSCU,
			})
		}
		svcReq.Missions = append(svcReq.Missions, in)
	}

	report, err := services.PlanCargoRoute(r.Context(), svcReq, snap, h.Optimizer)
	if err != nil {
		h.writeOptimizeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.OptimizeResponse{
		Route:             report.Route,
		MissionOrder:      report.MissionOrder,
		CargoAtEachStep:   report.CargoAtEachStep,
		CargoTypesAtSteps: report.CargoTypesAtSteps,
		TotalDistance:     report.TotalDistance,
		TotalPayout:       report.TotalPayout,
		Optimal:           report.Optimal,
	})
}

// writeOptimizeError maps the service error taxonomy onto HTTP statuses.
// Failure responses carry only an error message, never a partial route.
func (h *OptimizeHandler) writeOptimizeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		inputErr   *services.InvalidInputError
		missionErr *services.InvalidMissionError
		unknownErr *services.UnknownLocationError
		capErr     *services.CapacityExceededError
	)

	switch {
	case errors.Is(err, services.ErrEmptyRequest),
		errors.As(err, &inputErr),
		errors.As(err, &missionErr),
		errors.As(err, &unknownErr):
		writeError(w, r, http.StatusBadRequest, trimPipeline(err).Error())

	case errors.As(err, &capErr):
		writeError(w, r, http.StatusUnprocessableEntity, capErr.Error())

	case errors.Is(err, services.ErrOptimizerTimeout):
		writeError(w, r, http.StatusServiceUnavailable, services.ErrOptimizerTimeout.Error())

	default:
		// Internal-consistency failures stay generic toward the caller.
		log.Printf("optimize failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// trimPipeline strips the orchestration prefix so callers see the
// validation message itself.
func trimPipeline(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}
