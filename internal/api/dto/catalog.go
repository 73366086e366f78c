package dto

type LocationResponse struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	// Flattened [x, z] map coordinates in millions of km.
	Coordinates []float64 `json:"coordinates"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}

type ShipResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	CargoCapacitySCU float64 `json:"cargo_capacity"`
}

type ListShipsResponse struct {
	Ships []ShipResponse `json:"ships"`
}
