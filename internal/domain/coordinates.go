package domain

import "math"

// Immutable position in the catalog's 3D coordinate space (km).
type Coordinates struct {
	X float64
	Y float64
	Z float64
}

// DistanceTo returns the Euclidean distance to other.
func (c Coordinates) DistanceTo(other Coordinates) float64 {
	dx := c.X - other.X
	dy := c.Y - other.Y
	dz := c.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// MapCoords returns flattened [x, z] coordinates in millions of km for
// external map rendering.
func (c Coordinates) MapCoords() []float64 {
	return []float64{c.X / 1_000_000, c.Z / 1_000_000}
}
