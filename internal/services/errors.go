package services

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRequest reports an optimization request with no missions.
	ErrEmptyRequest = errors.New("no missions provided")

	// ErrNoFeasibleOrdering reports that the search space was exhausted
	// without a complete feasible sequence. Once the per-mission capacity
	// fast-fail has passed this cannot happen, so it is surfaced as an
	// internal-consistency failure rather than a user error.
	ErrNoFeasibleOrdering = errors.New("no feasible event ordering")

	// ErrOptimizerTimeout reports that the search budget expired before
	// any complete feasible plan was found.
	ErrOptimizerTimeout = errors.New("optimizer budget exhausted before a feasible plan was found")
)

// InvalidInputError reports a malformed or missing top-level request
// field, rejected before optimization begins.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// UnknownLocationError reports a referenced name absent from the
// location catalog.
type UnknownLocationError struct {
	Name string
}

func (e *UnknownLocationError) Error() string {
	return fmt.Sprintf("unknown location %q", e.Name)
}

// InvalidMissionError reports a mission that fails validation: missing
// pickup, no dropoffs, or a non-positive cargo amount.
type InvalidMissionError struct {
	MissionID string
	Reason    string
}

func (e *InvalidMissionError) Error() string {
	return fmt.Sprintf("invalid mission %s: %s", e.MissionID, e.Reason)
}

// CapacityExceededError reports that a single mission's cargo alone
// cannot fit in the ship, so no ordering can service every mission.
type CapacityExceededError struct {
	MissionID   string
	CargoSCU    float64
	CapacitySCU float64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf(
		"mission %s requires %.2f SCU but ship capacity is %.2f SCU",
		e.MissionID, e.CargoSCU, e.CapacitySCU,
	)
}
