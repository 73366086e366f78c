package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargo-route-service/internal/metrics"
	"cargo-route-service/internal/platform/obs"
	"cargo-route-service/internal/ports"
)

// PlanCargoRoute runs the full pipeline for one optimization request:
// validate the raw request into a mission model, search for the
// minimum-distance feasible event ordering, and assemble the route
// report. The catalog snapshot is read-only, so concurrent requests
// share it without coordination.
func PlanCargoRoute(
	ctx context.Context,
	req OptimizeRequest,
	catalog ports.LocationCatalog,
	cfg OptimizerConfig,
) (report *RouteReport, err error) {
	defer obs.Time(ctx, "plan_cargo_route")(&err)

	model, err := BuildMissionModel(req, catalog)
	if err != nil {
		return nil, fmt.Errorf("plan cargo route: %w", err)
	}

	start := time.Now()
	plan, err := OptimizeRoute(model, catalog, cfg)
	if err != nil {
		metrics.OptimizerRuns.WithLabelValues(outcomeLabel(err)).Inc()
		return nil, fmt.Errorf("plan cargo route: %w", err)
	}

	metrics.OptimizerRuns.WithLabelValues("ok").Inc()
	metrics.OptimizerDuration.WithLabelValues(plan.Strategy).Observe(time.Since(start).Seconds())
	metrics.OptimizerEvents.Observe(float64(len(plan.Events)))

	report, err = AssembleReport(plan, model)
	if err != nil {
		return nil, fmt.Errorf("plan cargo route: %w", err)
	}

	return report, nil
}

func outcomeLabel(err error) string {
	var capErr *CapacityExceededError
	switch {
	case errors.As(err, &capErr):
		return "capacity_exceeded"
	case errors.Is(err, ErrOptimizerTimeout):
		return "timeout"
	case errors.Is(err, ErrNoFeasibleOrdering):
		return "no_feasible_ordering"
	default:
		return "error"
	}
}
