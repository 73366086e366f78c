package services

import (
	"fmt"

	"cargo-route-service/internal/domain"
)

// RouteReport is the reporting shape derived from a winning plan.
//
// Convention: Route[0] is always the start location, even when it equals
// the first event's location, so Route has exactly one more entry than
// the plan has events and start=A, pickup=A yields [A, A, ...].
type RouteReport struct {
	Route             []string
	MissionOrder      []string
	CargoAtEachStep   []float64
	CargoTypesAtSteps []map[string]float64
	TotalDistance     float64
	TotalPayout       float64
	Optimal           bool
}

// AssembleReport replays the plan's events through the capacity tracker
// and produces the per-step reporting data. The total payout is the sum
// over all missions; every mission is fully serviced, so it does not
// depend on the ordering.
func AssembleReport(plan *domain.Plan, model *Model) (*RouteReport, error) {
	steps := len(plan.Events)

	report := &RouteReport{
		Route:             make([]string, 0, steps+1),
		MissionOrder:      make([]string, 0, steps),
		CargoAtEachStep:   make([]float64, 0, steps+1),
		CargoTypesAtSteps: make([]map[string]float64, 0, steps+1),
		TotalDistance:     plan.TotalDistance,
		Optimal:           plan.Optimal,
	}

	report.Route = append(report.Route, plan.Start)
	report.CargoAtEachStep = append(report.CargoAtEachStep, 0)
	report.CargoTypesAtSteps = append(report.CargoTypesAtSteps, map[string]float64{})

	cargo := domain.NewCargoState()
	for _, e := range plan.Events {
		next, err := cargo.Apply(e, model.CapacitySCU)
		if err != nil {
			// The optimizer only emits feasible plans; failing here is a
			// modeling defect, not a user error.
			return nil, fmt.Errorf("assemble report: replay %s: %w", e.Label(), err)
		}
		cargo = next

		report.Route = append(report.Route, e.Location())
		report.MissionOrder = append(report.MissionOrder, e.Label())
		report.CargoAtEachStep = append(report.CargoAtEachStep, cargo.TotalSCU)

		byType := make(map[string]float64, len(cargo.ByType))
		for t, amt := range cargo.ByType {
			byType[t] = amt
		}
		report.CargoTypesAtSteps = append(report.CargoTypesAtSteps, byType)
	}

	for _, m := range model.Missions {
		report.TotalPayout += m.Payout
	}

	return report, nil
}
