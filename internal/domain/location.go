package domain

// Kind classifies a catalog location.
type LocationKind string

const (
	KindStar        LocationKind = "star"
	KindPlanet      LocationKind = "planet"
	KindMoon        LocationKind = "moon"
	KindLandingZone LocationKind = "landing_zone"
	KindStation     LocationKind = "station"
	KindSpaceport   LocationKind = "spaceport"
	KindOutpost     LocationKind = "outpost"
	KindLagrange    LocationKind = "lagrange"
	KindOther       LocationKind = "other"
)

// Represents a single named point in the location reference catalog.
// Locations are immutable and owned by the catalog; planning code holds
// only names plus a distance query capability.
type Location struct {
	Name        string
	Kind        LocationKind
	Parent      string
	Coordinates Coordinates
}
