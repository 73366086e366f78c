package catalog

import (
	"context"

	"cargo-route-service/internal/domain"
)

// BuiltinSource serves the bundled Stanton system location set. It keeps
// the service usable with zero external data and backs the catalogtool
// seed command. Coordinates are approximate, in km.
type BuiltinSource struct{}

func NewBuiltinSource() BuiltinSource { return BuiltinSource{} }

func (BuiltinSource) Load(ctx context.Context) ([]domain.Location, error) {
	return StantonLocations(), nil
}

// StantonLocations returns a copy of the bundled location set.
func StantonLocations() []domain.Location {
	out := make([]domain.Location, len(stantonLocations))
	copy(out, stantonLocations)
	return out
}

var stantonLocations = []domain.Location{
	{Name: "ArcCorp", Kind: domain.KindPlanet, Coordinates: domain.Coordinates{X: 18371812, Y: 0, Z: 2652349}},
	{Name: "Area18", Kind: domain.KindLandingZone, Parent: "ArcCorp", Coordinates: domain.Coordinates{X: 18361812, Y: 10000, Z: 2662349}},
	{Name: "Baijini Point", Kind: domain.KindStation, Parent: "ArcCorp", Coordinates: domain.Coordinates{X: 18375812, Y: 50000, Z: 2692349}},

	{Name: "Crusader", Kind: domain.KindPlanet, Coordinates: domain.Coordinates{X: 0, Y: 0, Z: 0}},
	{Name: "Orison", Kind: domain.KindLandingZone, Parent: "Crusader", Coordinates: domain.Coordinates{X: 0, Y: 5000, Z: 5000}},
	{Name: "Port Olisar", Kind: domain.KindStation, Parent: "Crusader", Coordinates: domain.Coordinates{X: 0, Y: 80000, Z: 80000}},

	{Name: "Hurston", Kind: domain.KindPlanet, Coordinates: domain.Coordinates{X: -16550615, Y: 0, Z: -1652349}},
	{Name: "Lorville", Kind: domain.KindLandingZone, Parent: "Hurston", Coordinates: domain.Coordinates{X: -16540615, Y: 5000, Z: -1642349}},
	{Name: "Everus Harbor", Kind: domain.KindStation, Parent: "Hurston", Coordinates: domain.Coordinates{X: -16555615, Y: 60000, Z: -1602349}},

	{Name: "microTech", Kind: domain.KindPlanet, Coordinates: domain.Coordinates{X: 22999592, Y: 0, Z: 37919954}},
	{Name: "New Babbage", Kind: domain.KindLandingZone, Parent: "microTech", Coordinates: domain.Coordinates{X: 22989592, Y: 5000, Z: 37929954}},
	{Name: "Port Tressler", Kind: domain.KindStation, Parent: "microTech", Coordinates: domain.Coordinates{X: 22999592, Y: 70000, Z: 37989954}},

	{Name: "Cellin", Kind: domain.KindMoon, Parent: "Crusader", Coordinates: domain.Coordinates{X: 300000, Y: 0, Z: 0}},
	{Name: "Daymar", Kind: domain.KindMoon, Parent: "Crusader", Coordinates: domain.Coordinates{X: 0, Y: 0, Z: 500000}},
	{Name: "Yela", Kind: domain.KindMoon, Parent: "Crusader", Coordinates: domain.Coordinates{X: -400000, Y: 0, Z: -200000}},

	{Name: "CRU-L1", Kind: domain.KindLagrange, Coordinates: domain.Coordinates{X: 5000000, Y: 0, Z: 0}},
	{Name: "CRU-L5", Kind: domain.KindLagrange, Coordinates: domain.Coordinates{X: -2500000, Y: 0, Z: 4330127}},
	{Name: "ARC-L1", Kind: domain.KindLagrange, Coordinates: domain.Coordinates{X: 12000000, Y: 0, Z: 1500000}},
	{Name: "HUR-L1", Kind: domain.KindLagrange, Coordinates: domain.Coordinates{X: -12000000, Y: 0, Z: -1500000}},
	{Name: "MIC-L1", Kind: domain.KindLagrange, Coordinates: domain.Coordinates{X: 18000000, Y: 0, Z: 30000000}},
}
