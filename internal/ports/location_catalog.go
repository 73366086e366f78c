package ports

import "cargo-route-service/internal/domain"

// Contract for the read-only location reference consumed by the planner.
type LocationCatalog interface {
	// Get returns the location with the given name, if present.
	Get(name string) (domain.Location, bool)

	// Distance returns the Euclidean distance between two named
	// locations in the catalog's coordinate space.
	Distance(a, b string) (float64, error)

	// Names returns all catalog names in a stable order.
	Names() []string
}
