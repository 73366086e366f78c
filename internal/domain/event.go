package domain

import "fmt"

// EventKind distinguishes the two atomic actions the optimizer sequences.
type EventKind int

const (
	EventPickup EventKind = iota
	EventDropoff
)

// Event is the atomic unit of a plan: a Pickup loads a mission's full
// cargo, a Dropoff unloads one of its typed consignments. Each event
// occurs at exactly one location.
type Event struct {
	Kind         EventKind
	Mission      *Mission
	DropoffIndex int // valid only when Kind == EventDropoff
}

// Location returns the catalog name where the event takes place.
func (e Event) Location() string {
	if e.Kind == EventPickup {
		return e.Mission.Pickup
	}
	return e.Mission.Dropoffs[e.DropoffIndex].Location
}

// Label renders the step label used in route reports.
func (e Event) Label() string {
	if e.Kind == EventPickup {
		return fmt.Sprintf("Pickup %s", e.Mission.ID)
	}
	return fmt.Sprintf("Dropoff %s", e.Mission.ID)
}
