package domain

import (
	"errors"
	"fmt"
)

// cargoEpsilon absorbs float accumulation error when comparing amounts
// against capacity or zero.
const cargoEpsilon = 1e-9

var (
	// ErrCapacityExceeded reports that applying an event would push the
	// total onboard cargo past the ship's capacity.
	ErrCapacityExceeded = errors.New("cargo capacity exceeded")

	// ErrNegativeCargo reports that applying an event would drive an
	// onboard amount below zero. With pickup-before-dropoff precedence
	// enforced by the caller this cannot happen; it indicates a modeling
	// defect, not a user error.
	ErrNegativeCargo = errors.New("onboard cargo below zero")
)

// CargoState tracks onboard cargo as events are applied: the running
// total and the per-type composition. Values are immutable; Apply
// returns a fresh state and never mutates the receiver.
type CargoState struct {
	TotalSCU float64
	ByType   map[string]float64
}

// NewCargoState returns the empty hold.
func NewCargoState() CargoState {
	return CargoState{ByType: map[string]float64{}}
}

// Apply transitions the state by one event against the given ship
// capacity. A Pickup adds the mission's full cargo across its dropoff
// types; a Dropoff removes one consignment. Types whose amount reaches
// zero are dropped from the composition map.
func (s CargoState) Apply(e Event, capacitySCU float64) (CargoState, error) {
	next := CargoState{
		TotalSCU: s.TotalSCU,
		ByType:   make(map[string]float64, len(s.ByType)+len(e.Mission.Dropoffs)),
	}
	for t, amt := range s.ByType {
		next.ByType[t] = amt
	}

	switch e.Kind {
	case EventPickup:
		next.TotalSCU += e.Mission.TotalCargoSCU()
		if next.TotalSCU > capacitySCU+cargoEpsilon {
			return CargoState{}, fmt.Errorf(
				"pickup %s: %.2f SCU onboard vs capacity %.2f: %w",
				e.Mission.ID, next.TotalSCU, capacitySCU, ErrCapacityExceeded,
			)
		}
		for _, d := range e.Mission.Dropoffs {
			next.ByType[d.CargoType] += d.AmountSCU
		}

	case EventDropoff:
		d := e.Mission.Dropoffs[e.DropoffIndex]
		next.TotalSCU -= d.AmountSCU
		if next.TotalSCU < -cargoEpsilon {
			return CargoState{}, fmt.Errorf("dropoff %s: total: %w", e.Mission.ID, ErrNegativeCargo)
		}
		remaining := next.ByType[d.CargoType] - d.AmountSCU
		if remaining < -cargoEpsilon {
			return CargoState{}, fmt.Errorf(
				"dropoff %s: type %q: %w",
				e.Mission.ID, d.CargoType, ErrNegativeCargo,
			)
		}
		if remaining <= cargoEpsilon {
			delete(next.ByType, d.CargoType)
		} else {
			next.ByType[d.CargoType] = remaining
		}
		if next.TotalSCU < 0 {
			next.TotalSCU = 0
		}

	default:
		return CargoState{}, fmt.Errorf("apply cargo event: unknown event kind %d", e.Kind)
	}

	return next, nil
}
