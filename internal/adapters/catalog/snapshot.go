package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"cargo-route-service/internal/domain"
	"cargo-route-service/internal/ports"
)

// Snapshot is an immutable, name-indexed view of the location catalog.
// Once built it is never mutated, so concurrent requests read it without
// locking.
type Snapshot struct {
	locations []domain.Location
	index     map[string]int
}

// NewSnapshot builds a snapshot from a location set. Names must be
// non-empty and unique. Locations are kept sorted by name so listings
// are stable across runs.
func NewSnapshot(locations []domain.Location) (*Snapshot, error) {
	sorted := make([]domain.Location, len(locations))
	copy(sorted, locations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	index := make(map[string]int, len(sorted))
	for i, loc := range sorted {
		name := strings.TrimSpace(loc.Name)
		if name == "" {
			return nil, errors.New("catalog snapshot: location with empty name")
		}
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("catalog snapshot: duplicate location %q", name)
		}
		sorted[i].Name = name
		index[name] = i
	}

	return &Snapshot{locations: sorted, index: index}, nil
}

// Get returns the location with the given name, if present.
func (s *Snapshot) Get(name string) (domain.Location, bool) {
	i, ok := s.index[name]
	if !ok {
		return domain.Location{}, false
	}
	return s.locations[i], true
}

// Distance returns the Euclidean distance between two named locations.
func (s *Snapshot) Distance(a, b string) (float64, error) {
	if a == b {
		return 0, nil
	}
	la, ok := s.Get(a)
	if !ok {
		return 0, fmt.Errorf("catalog distance: unknown location %q", a)
	}
	lb, ok := s.Get(b)
	if !ok {
		return 0, fmt.Errorf("catalog distance: unknown location %q", b)
	}
	return la.Coordinates.DistanceTo(lb.Coordinates), nil
}

// Names returns all location names sorted ascending.
func (s *Snapshot) Names() []string {
	out := make([]string, len(s.locations))
	for i, loc := range s.locations {
		out[i] = loc.Name
	}
	return out
}

// Locations returns the full location set in name order.
func (s *Snapshot) Locations() []domain.Location {
	out := make([]domain.Location, len(s.locations))
	copy(out, s.locations)
	return out
}

// Len returns the number of catalog entries.
func (s *Snapshot) Len() int { return len(s.locations) }

var _ ports.LocationCatalog = (*Snapshot)(nil)

// Store owns the process-wide catalog snapshot. Reload builds a fresh
// snapshot from the source and installs it atomically, so in-flight
// requests keep reading the snapshot they started with and never observe
// a partially updated catalog.
type Store struct {
	source ports.CatalogSource
	snap   atomic.Pointer[Snapshot]
}

func NewStore(source ports.CatalogSource) *Store {
	return &Store{source: source}
}

// Load populates the store from its source. Call once at startup before
// serving requests.
func (st *Store) Load(ctx context.Context) error {
	return st.Reload(ctx)
}

// Reload replaces the current snapshot wholesale. On source failure the
// previous snapshot stays installed.
func (st *Store) Reload(ctx context.Context) error {
	locations, err := st.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("reload catalog: %w", err)
	}
	if len(locations) == 0 {
		return errors.New("reload catalog: source returned no locations")
	}

	snap, err := NewSnapshot(locations)
	if err != nil {
		return fmt.Errorf("reload catalog: %w", err)
	}

	st.snap.Store(snap)
	return nil
}

// Snapshot returns the currently installed snapshot, or nil before the
// first successful Load.
func (st *Store) Snapshot() *Snapshot {
	return st.snap.Load()
}
