package services

import (
	"errors"
	"fmt"
	"time"

	"cargo-route-service/internal/domain"
	"cargo-route-service/internal/ports"
)

// Search strategies recorded on the resulting plan.
const (
	StrategyExhaustive = "exhaustive"
	StrategyGreedy     = "greedy"
)

// distanceEpsilon guards swap acceptance against float noise so the
// refinement pass cannot oscillate between equal-length orderings.
const distanceEpsilon = 1e-9

// OptimizerConfig bounds the search. The exhaustive/greedy threshold and
// the tie-break rules are contractual: identical input must yield an
// identical route across runs.
type OptimizerConfig struct {
	// ExhaustiveEventLimit is the largest event count still searched
	// exhaustively; larger inputs take the greedy path.
	ExhaustiveEventLimit int
	// TimeBudget caps wall-clock search time for a single request.
	TimeBudget time.Duration
	// MaxIterations caps visited search nodes during exhaustive search.
	MaxIterations int
	// MaxRefinePasses caps adjacent-swap improvement passes after greedy
	// construction.
	MaxRefinePasses int
}

func DefaultOptimizerConfig() OptimizerConfig {
	return OptimizerConfig{
		ExhaustiveEventLimit: 10,
		TimeBudget:           2 * time.Second,
		MaxIterations:        5_000_000,
		MaxRefinePasses:      25,
	}
}

// OptimizeRoute finds a minimum-distance ordering of pickup/dropoff
// events for the validated model, honoring pickup-before-dropoff
// precedence and the ship's cargo capacity at every prefix.
//
// Small inputs (event count within ExhaustiveEventLimit) are searched
// exhaustively with capacity and distance-bound pruning. Larger inputs
// use greedy nearest-feasible-next construction plus a bounded
// adjacent-swap improvement pass. Ties are broken by request mission
// order, then Pickup before Dropoff, then dropoff entry order; both
// paths enumerate candidates in exactly that order, so results are
// deterministic for identical input.
func OptimizeRoute(model *Model, catalog ports.LocationCatalog, cfg OptimizerConfig) (*domain.Plan, error) {
	// Fast-fail before any search: a mission whose cargo alone exceeds
	// capacity can never be serviced, regardless of ordering.
	for _, m := range model.Missions {
		if total := m.TotalCargoSCU(); total > model.CapacitySCU {
			return nil, &CapacityExceededError{
				MissionID:   m.ID,
				CargoSCU:    total,
				CapacitySCU: model.CapacitySCU,
			}
		}
	}

	events, pickupOf := buildEvents(model)

	dist, err := buildDistanceTable(model.Start, events, catalog)
	if err != nil {
		return nil, fmt.Errorf("optimize route: %w", err)
	}

	budget := cfg.TimeBudget
	if budget <= 0 {
		budget = DefaultOptimizerConfig().TimeBudget
	}

	s := &searcher{
		events:    events,
		pickupOf:  pickupOf,
		capacity:  model.CapacitySCU,
		dist:      dist,
		deadline:  time.Now().Add(budget),
		iterLimit: cfg.MaxIterations,
		placed:    make([]bool, len(events)),
	}

	if len(events) <= cfg.ExhaustiveEventLimit {
		return s.runExhaustive(model.Start)
	}
	return s.runGreedy(model.Start, cfg.MaxRefinePasses)
}

// buildEvents expands missions into the event universe in enumeration
// order: missions in request order, each mission's Pickup first, then
// its Dropoffs in entry order. pickupOf maps every event to the index of
// its mission's Pickup event.
func buildEvents(model *Model) ([]domain.Event, []int) {
	count := 0
	for _, m := range model.Missions {
		count += 1 + len(m.Dropoffs)
	}

	events := make([]domain.Event, 0, count)
	pickupOf := make([]int, 0, count)
	for _, m := range model.Missions {
		pickupIdx := len(events)
		events = append(events, domain.Event{Kind: domain.EventPickup, Mission: m})
		pickupOf = append(pickupOf, pickupIdx)
		for j := range m.Dropoffs {
			events = append(events, domain.Event{Kind: domain.EventDropoff, Mission: m, DropoffIndex: j})
			pickupOf = append(pickupOf, pickupIdx)
		}
	}

	return events, pickupOf
}

// buildDistanceTable precomputes pairwise distances between every
// location the plan can touch, keyed "origin|destination".
func buildDistanceTable(start string, events []domain.Event, catalog ports.LocationCatalog) (map[string]float64, error) {
	seen := map[string]struct{}{start: {}}
	names := []string{start}
	for _, e := range events {
		loc := e.Location()
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		names = append(names, loc)
	}

	dist := make(map[string]float64, len(names)*len(names))
	for _, a := range names {
		for _, b := range names {
			d, err := catalog.Distance(a, b)
			if err != nil {
				return nil, fmt.Errorf("distance table: %w", err)
			}
			dist[a+"|"+b] = d
		}
	}

	return dist, nil
}

type searcher struct {
	events   []domain.Event
	pickupOf []int
	capacity float64
	dist     map[string]float64

	deadline   time.Time
	iterLimit  int
	iterations int
	budgetHit  bool

	placed   []bool
	seq      []int
	bestSeq  []int
	bestDist float64
	haveBest bool
}

// schedulable reports whether event i may be placed next given the
// events placed so far: pickups always, dropoffs only once their
// mission's pickup is in the sequence.
func (s *searcher) schedulable(i int) bool {
	if s.events[i].Kind == domain.EventPickup {
		return true
	}
	return s.placed[s.pickupOf[i]]
}

func (s *searcher) runExhaustive(start string) (*domain.Plan, error) {
	if err := s.exhaustive(start, domain.NewCargoState(), 0); err != nil {
		return nil, fmt.Errorf("optimize route: %w", err)
	}

	if !s.haveBest {
		if s.budgetHit {
			return nil, ErrOptimizerTimeout
		}
		return nil, ErrNoFeasibleOrdering
	}

	return s.plan(start, s.bestSeq, s.bestDist, StrategyExhaustive, !s.budgetHit), nil
}

// exhaustive walks every precedence-respecting permutation depth-first,
// pruned the moment a prefix would exceed capacity or already matches
// the best known distance. Candidates are tried in enumeration order and
// a complete sequence only replaces the incumbent when strictly shorter,
// so the first ordering found among equals wins.
func (s *searcher) exhaustive(current string, cargo domain.CargoState, travelled float64) error {
	s.iterations++
	if s.iterLimit > 0 && s.iterations > s.iterLimit {
		s.budgetHit = true
	} else if s.iterations&255 == 0 && time.Now().After(s.deadline) {
		s.budgetHit = true
	}
	if s.budgetHit {
		return nil
	}

	if len(s.seq) == len(s.events) {
		if !s.haveBest || travelled < s.bestDist {
			s.bestSeq = append(s.bestSeq[:0], s.seq...)
			s.bestDist = travelled
			s.haveBest = true
		}
		return nil
	}

	for i := range s.events {
		if s.placed[i] || !s.schedulable(i) {
			continue
		}

		leg := s.dist[current+"|"+s.events[i].Location()]
		if s.haveBest && travelled+leg >= s.bestDist {
			continue
		}

		next, err := cargo.Apply(s.events[i], s.capacity)
		if errors.Is(err, domain.ErrCapacityExceeded) {
			continue
		}
		if err != nil {
			return err
		}

		s.placed[i] = true
		s.seq = append(s.seq, i)

		err = s.exhaustive(s.events[i].Location(), next, travelled+leg)

		s.seq = s.seq[:len(s.seq)-1]
		s.placed[i] = false

		if err != nil {
			return err
		}
		if s.budgetHit {
			return nil
		}
	}

	return nil
}

func (s *searcher) runGreedy(start string, maxRefinePasses int) (*domain.Plan, error) {
	seq, total, err := s.greedy(start)
	if err != nil {
		return nil, fmt.Errorf("optimize route: %w", err)
	}

	seq, total, finished := s.refineAdjacentSwaps(start, seq, total, maxRefinePasses)

	return s.plan(start, seq, total, StrategyGreedy, finished), nil
}

// greedy repeatedly places the nearest schedulable event that keeps the
// hold within capacity. After the fast-fail check this always completes:
// with a mission in progress some dropoff is schedulable and unloading
// never violates capacity; with none in progress the hold is empty and
// any single mission fits.
func (s *searcher) greedy(start string) ([]int, float64, error) {
	current := start
	cargo := domain.NewCargoState()
	seq := make([]int, 0, len(s.events))
	total := 0.0

	for len(seq) < len(s.events) {
		bestIdx := -1
		bestLeg := 0.0
		var bestCargo domain.CargoState

		for i := range s.events {
			if s.placed[i] || !s.schedulable(i) {
				continue
			}

			next, err := cargo.Apply(s.events[i], s.capacity)
			if errors.Is(err, domain.ErrCapacityExceeded) {
				continue
			}
			if err != nil {
				return nil, 0, err
			}

			// Strict < keeps the earliest enumeration-order candidate on
			// ties (mission order, Pickup before Dropoff, entry order).
			leg := s.dist[current+"|"+s.events[i].Location()]
			if bestIdx == -1 || leg < bestLeg {
				bestIdx = i
				bestLeg = leg
				bestCargo = next
			}
		}

		if bestIdx == -1 {
			return nil, 0, ErrNoFeasibleOrdering
		}

		s.placed[bestIdx] = true
		seq = append(seq, bestIdx)
		total += bestLeg
		current = s.events[bestIdx].Location()
		cargo = bestCargo
	}

	return seq, total, nil
}

// refineAdjacentSwaps mitigates greedy myopia: repeatedly try swapping
// adjacent events, accepting a swap only when the full sequence stays
// feasible and gets strictly shorter. Stops when a pass finds no
// improvement, the pass cap is hit, or the time budget runs out; the
// returned flag is false only in the budget case.
func (s *searcher) refineAdjacentSwaps(start string, seq []int, total float64, maxPasses int) ([]int, float64, bool) {
	if maxPasses <= 0 {
		return seq, total, true
	}

	cand := make([]int, len(seq))
	for pass := 0; pass < maxPasses; pass++ {
		improved := false
		for i := 0; i+1 < len(seq); i++ {
			if time.Now().After(s.deadline) {
				return seq, total, false
			}

			copy(cand, seq)
			cand[i], cand[i+1] = cand[i+1], cand[i]

			d, ok := s.replay(start, cand)
			if ok && d+distanceEpsilon < total {
				copy(seq, cand)
				total = d
				improved = true
			}
		}
		if !improved {
			break
		}
	}

	return seq, total, true
}

// replay validates a candidate sequence end to end (precedence and
// capacity at every prefix) and returns its total distance.
func (s *searcher) replay(start string, seq []int) (float64, bool) {
	placed := make([]bool, len(s.events))
	cargo := domain.NewCargoState()
	current := start
	total := 0.0

	for _, i := range seq {
		if s.events[i].Kind == domain.EventDropoff && !placed[s.pickupOf[i]] {
			return 0, false
		}

		next, err := cargo.Apply(s.events[i], s.capacity)
		if err != nil {
			return 0, false
		}

		placed[i] = true
		total += s.dist[current+"|"+s.events[i].Location()]
		current = s.events[i].Location()
		cargo = next
	}

	return total, true
}

func (s *searcher) plan(start string, seq []int, total float64, strategy string, optimal bool) *domain.Plan {
	ordered := make([]domain.Event, len(seq))
	for i, idx := range seq {
		ordered[i] = s.events[idx]
	}

	return &domain.Plan{
		Start:         start,
		Events:        ordered,
		TotalDistance: total,
		Strategy:      strategy,
		Optimal:       optimal,
	}
}
