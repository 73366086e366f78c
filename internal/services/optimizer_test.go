package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"cargo-route-service/internal/adapters/catalog"
	"cargo-route-service/internal/domain"
)

// testCatalog returns stations spread along the X axis so expected leg
// distances are easy to compute by hand.
func testCatalog(t *testing.T) *catalog.Snapshot {
	t.Helper()

	snap, err := catalog.NewSnapshot([]domain.Location{
		{Name: "Alpha", Kind: domain.KindStation, Coordinates: domain.Coordinates{X: 0}},
		{Name: "Bravo", Kind: domain.KindStation, Coordinates: domain.Coordinates{X: 100}},
		{Name: "Charlie", Kind: domain.KindStation, Coordinates: domain.Coordinates{X: 250}},
		{Name: "Delta", Kind: domain.KindOutpost, Coordinates: domain.Coordinates{X: -50}},
		{Name: "Echo", Kind: domain.KindOutpost, Coordinates: domain.Coordinates{X: 1000}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return snap
}

func singleDropoff(id, pickup, dropoff string, amount float64) MissionInput {
	return MissionInput{
		ID:       id,
		Pickup:   pickup,
		Dropoffs: []DropoffInput{{Location: dropoff, AmountSCU: amount}},
	}
}

func buildModel(t *testing.T, snap *catalog.Snapshot, req OptimizeRequest) *Model {
	t.Helper()

	model, err := BuildMissionModel(req, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return model
}

func TestOptimizeRouteStartAtPickup(t *testing.T) {
	snap := testCatalog(t)

	model := buildModel(t, snap, OptimizeRequest{
		ShipCapacitySCU: 100,
		StartLocation:   "Alpha",
		Missions:        []MissionInput{singleDropoff("M1", "Alpha", "Bravo", 10)},
	})

	plan, err := OptimizeRoute(model, snap, DefaultOptimizerConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Strategy != StrategyExhaustive {
		t.Fatalf("strategy = %q, want exhaustive", plan.Strategy)
	}
	if !plan.Optimal {
		t.Fatal("expected optimal plan")
	}
	if plan.TotalDistance != 100 {
		t.Fatalf("distance = %v, want 100", plan.TotalDistance)
	}
	if len(plan.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(plan.Events))
	}
	// Start coincides with the pickup; the first leg is zero-length but
	// the pickup event still appears in the sequence.
	if plan.Events[0].Kind != domain.EventPickup || plan.Events[0].Location() != "Alpha" {
		t.Fatalf("first event = %s at %s", plan.Events[0].Label(), plan.Events[0].Location())
	}
	if plan.Events[1].Kind != domain.EventDropoff || plan.Events[1].Location() != "Bravo" {
		t.Fatalf("second event = %s at %s", plan.Events[1].Label(), plan.Events[1].Location())
	}
}

func TestOptimizeRouteSharedPickup(t *testing.T) {
	snap := testCatalog(t)

	model := buildModel(t, snap, OptimizeRequest{
		ShipCapacitySCU: 100,
		StartLocation:   "Alpha",
		Missions: []MissionInput{
			singleDropoff("M1", "Alpha", "Bravo", 10),
			singleDropoff("M2", "Alpha", "Charlie", 10),
		},
	})

	plan, err := OptimizeRoute(model, snap, DefaultOptimizerConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both pickups share a location and the hold fits both loads, so the
	// optimal route takes them back to back before any dropoff.
	if plan.Events[0].Kind != domain.EventPickup || plan.Events[1].Kind != domain.EventPickup {
		t.Fatalf("expected both pickups first, got %s then %s",
			plan.Events[0].Label(), plan.Events[1].Label())
	}
	if plan.TotalDistance != 250 {
		t.Fatalf("distance = %v, want 250", plan.TotalDistance)
	}
}

func TestOptimizeRouteTieBreaks(t *testing.T) {
	snap := testCatalog(t)

	// Identical missions tie on every distance comparison; the winner must
	// follow request order with pickups ahead of dropoffs.
	model := buildModel(t, snap, OptimizeRequest{
		ShipCapacitySCU: 100,
		StartLocation:   "Alpha",
		Missions: []MissionInput{
			singleDropoff("M1", "Alpha", "Bravo", 10),
			singleDropoff("M2", "Alpha", "Bravo", 10),
		},
	})

	plan, err := OptimizeRoute(model, snap, DefaultOptimizerConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	labels := make([]string, len(plan.Events))
	for i, e := range plan.Events {
		labels[i] = e.Label()
	}

	want := []string{"Pickup M1", "Pickup M2", "Dropoff M1", "Dropoff M2"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("order = %v, want %v", labels, want)
	}
	if plan.TotalDistance != 100 {
		t.Fatalf("distance = %v, want 100", plan.TotalDistance)
	}
}

func TestOptimizeRouteCapacityForcesInterleaving(t *testing.T) {
	snap := testCatalog(t)

	// Each load fills the hold, so the second pickup cannot happen until
	// the first mission is delivered.
	model := buildModel(t, snap, OptimizeRequest{
		ShipCapacitySCU: 10,
		StartLocation:   "Alpha",
		Missions: []MissionInput{
			singleDropoff("M1", "Alpha", "Bravo", 10),
			singleDropoff("M2", "Alpha", "Charlie", 10),
		},
	})

	plan, err := OptimizeRoute(model, snap, DefaultOptimizerConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cargo := domain.NewCargoState()
	for _, e := range plan.Events {
		next, err := cargo.Apply(e, model.CapacitySCU)
		if err != nil {
			t.Fatalf("infeasible plan at %s: %v", e.Label(), err)
		}
		cargo = next
	}
	if cargo.TotalSCU != 0 {
		t.Fatalf("hold not empty after plan: %v", cargo.TotalSCU)
	}
}

func TestOptimizeRouteMissionExceedsCapacity(t *testing.T) {
	snap := testCatalog(t)

	model := buildModel(t, snap, OptimizeRequest{
		ShipCapacitySCU: 50,
		StartLocation:   "Alpha",
		Missions:        []MissionInput{singleDropoff("M1", "Alpha", "Bravo", 200)},
	})

	_, err := OptimizeRoute(model, snap, DefaultOptimizerConfig())

	var capErr *CapacityExceededError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityExceededError, got %v", err)
	}
	if capErr.MissionID != "M1" || capErr.CargoSCU != 200 || capErr.CapacitySCU != 50 {
		t.Fatalf("error detail = %+v", capErr)
	}
}

func TestOptimizeRouteDeterministic(t *testing.T) {
	snap := testCatalog(t)

	req := OptimizeRequest{
		ShipCapacitySCU: 30,
		StartLocation:   "Delta",
		Missions: []MissionInput{
			singleDropoff("M1", "Alpha", "Charlie", 15),
			singleDropoff("M2", "Bravo", "Echo", 15),
			singleDropoff("M3", "Charlie", "Alpha", 15),
		},
	}

	first, err := OptimizeRoute(buildModel(t, snap, req), snap, DefaultOptimizerConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for run := 0; run < 5; run++ {
		plan, err := OptimizeRoute(buildModel(t, snap, req), snap, DefaultOptimizerConfig())
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", run, err)
		}
		if plan.TotalDistance != first.TotalDistance {
			t.Fatalf("run %d: distance %v != %v", run, plan.TotalDistance, first.TotalDistance)
		}
		for i := range plan.Events {
			if plan.Events[i].Label() != first.Events[i].Label() {
				t.Fatalf("run %d: event %d = %s, want %s",
					run, i, plan.Events[i].Label(), first.Events[i].Label())
			}
		}
	}
}

func TestOptimizeRouteGreedyPath(t *testing.T) {
	snap := testCatalog(t)

	model := buildModel(t, snap, OptimizeRequest{
		ShipCapacitySCU: 30,
		StartLocation:   "Alpha",
		Missions: []MissionInput{
			singleDropoff("M1", "Alpha", "Bravo", 10),
			singleDropoff("M2", "Bravo", "Charlie", 10),
			singleDropoff("M3", "Charlie", "Echo", 10),
		},
	})

	cfg := DefaultOptimizerConfig()
	cfg.ExhaustiveEventLimit = 4 // force the greedy path for 6 events

	plan, err := OptimizeRoute(model, snap, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Strategy != StrategyGreedy {
		t.Fatalf("strategy = %q, want greedy", plan.Strategy)
	}
	if !plan.Optimal {
		t.Fatal("completed greedy refinement should not be flagged as cut short")
	}
	if len(plan.Events) != 6 {
		t.Fatalf("expected 6 events, got %d", len(plan.Events))
	}

	// The chain is collinear with pickups ahead of their dropoffs, so the
	// straight sweep Alpha..Echo is optimal and greedy finds it.
	if plan.TotalDistance != 1000 {
		t.Fatalf("distance = %v, want 1000", plan.TotalDistance)
	}

	placed := map[string]bool{}
	for _, e := range plan.Events {
		if e.Kind == domain.EventDropoff && !placed[e.Mission.ID] {
			t.Fatalf("dropoff before pickup for %s", e.Mission.ID)
		}
		if e.Kind == domain.EventPickup {
			placed[e.Mission.ID] = true
		}
	}
}

func TestOptimizeRouteIterationBudgetExhausted(t *testing.T) {
	snap := testCatalog(t)

	model := buildModel(t, snap, OptimizeRequest{
		ShipCapacitySCU: 100,
		StartLocation:   "Alpha",
		Missions: []MissionInput{
			singleDropoff("M1", "Alpha", "Bravo", 10),
			singleDropoff("M2", "Bravo", "Charlie", 10),
		},
	})

	cfg := DefaultOptimizerConfig()
	cfg.MaxIterations = 1 // budget gone before any complete sequence exists

	_, err := OptimizeRoute(model, snap, cfg)
	if !errors.Is(err, ErrOptimizerTimeout) {
		t.Fatalf("expected ErrOptimizerTimeout, got %v", err)
	}
}

func TestOptimizeRouteBestEffortUnderBudget(t *testing.T) {
	snap := testCatalog(t)

	model := buildModel(t, snap, OptimizeRequest{
		ShipCapacitySCU: 100,
		StartLocation:   "Alpha",
		Missions: []MissionInput{
			singleDropoff("M1", "Alpha", "Bravo", 10),
			singleDropoff("M2", "Bravo", "Charlie", 10),
			singleDropoff("M3", "Charlie", "Echo", 10),
		},
	})

	// Enough iterations to complete at least one depth-first descent but
	// not the whole tree: the plan comes back annotated non-optimal.
	cfg := DefaultOptimizerConfig()
	cfg.MaxIterations = 8
	cfg.TimeBudget = time.Second

	plan, err := OptimizeRoute(model, snap, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Optimal {
		t.Fatal("expected best-effort plan to be flagged non-optimal")
	}
	if len(plan.Events) != 6 {
		t.Fatalf("expected complete plan, got %d events", len(plan.Events))
	}
}
