package services

import (
	"fmt"
	"strings"

	"cargo-route-service/internal/domain"
	"cargo-route-service/internal/ports"
)

// DropoffInput is one raw dropoff entry from the request boundary.
type DropoffInput struct {
	Location  string
	CargoType string
	AmountSCU float64
}

// MissionInput is one raw mission from the request boundary.
type MissionInput struct {
	ID       string
	Pickup   string
	Payout   float64
	Dropoffs []DropoffInput
}

// OptimizeRequest is the validated-boundary shape of an optimization
// request: ship capacity, optional start location, and missions.
type OptimizeRequest struct {
	ShipCapacitySCU float64
	StartLocation   string
	Missions        []MissionInput
}

// defaultCargoType tags dropoffs whose request entry names no type.
const defaultCargoType = "General"

// Model is the validated in-memory request: every location resolved
// against the catalog, every amount positive, start location decided.
type Model struct {
	CapacitySCU float64
	Start       string
	Missions    []*domain.Mission
}

// BuildMissionModel validates the raw request against the catalog and
// produces the in-memory model the optimizer runs on. All checks happen
// here, before any search; the optimizer can assume a well-formed model.
func BuildMissionModel(req OptimizeRequest, catalog ports.LocationCatalog) (*Model, error) {
	if len(req.Missions) == 0 {
		return nil, ErrEmptyRequest
	}
	if req.ShipCapacitySCU <= 0 {
		return nil, &InvalidInputError{Field: "ship_capacity_scu", Reason: "must be positive"}
	}

	missions := make([]*domain.Mission, 0, len(req.Missions))
	for i, in := range req.Missions {
		id := strings.TrimSpace(in.ID)
		if id == "" {
			id = fmt.Sprintf("M%d", i+1)
		}

		pickup := strings.TrimSpace(in.Pickup)
		if pickup == "" {
			return nil, &InvalidMissionError{MissionID: id, Reason: "pickup location is required"}
		}
		if _, ok := catalog.Get(pickup); !ok {
			return nil, &UnknownLocationError{Name: pickup}
		}

		if len(in.Dropoffs) == 0 {
			return nil, &InvalidMissionError{MissionID: id, Reason: "at least one dropoff is required"}
		}
		if in.Payout < 0 {
			return nil, &InvalidMissionError{MissionID: id, Reason: "payout must be non-negative"}
		}

		dropoffs := make([]domain.Dropoff, 0, len(in.Dropoffs))
		for j, d := range in.Dropoffs {
			loc := strings.TrimSpace(d.Location)
			if loc == "" {
				return nil, &InvalidMissionError{
					MissionID: id,
					Reason:    fmt.Sprintf("dropoff #%d: location is required", j+1),
				}
			}
			if _, ok := catalog.Get(loc); !ok {
				return nil, &UnknownLocationError{Name: loc}
			}
			if d.AmountSCU <= 0 {
				return nil, &InvalidMissionError{
					MissionID: id,
					Reason:    fmt.Sprintf("dropoff #%d: amount must be positive", j+1),
				}
			}

			cargoType := strings.TrimSpace(d.CargoType)
			if cargoType == "" {
				cargoType = defaultCargoType
			}

			// A dropoff at the pickup location is allowed; that leg
			// simply contributes zero distance.
			dropoffs = append(dropoffs, domain.Dropoff{
				Location:  loc,
				CargoType: cargoType,
				AmountSCU: d.AmountSCU,
			})
		}

		missions = append(missions, &domain.Mission{
			ID:       id,
			Pickup:   pickup,
			Payout:   in.Payout,
			Dropoffs: dropoffs,
		})
	}

	start := strings.TrimSpace(req.StartLocation)
	if start == "" {
		// Absent start location defaults to the first mission's pickup.
		start = missions[0].Pickup
	}
	if _, ok := catalog.Get(start); !ok {
		return nil, &UnknownLocationError{Name: start}
	}

	return &Model{
		CapacitySCU: req.ShipCapacitySCU,
		Start:       start,
		Missions:    missions,
	}, nil
}
