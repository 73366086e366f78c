package dto

type DropoffRequest struct {
	Location  string  `json:"location"`
	CargoType string  `json:"cargo_type"`
	AmountSCU float64 `json:"amount"`
}

type MissionRequest struct {
	ID       string           `json:"id"`
	Pickup   string           `json:"pickup"`
	Payout   float64          `json:"payout"`
	Dropoffs []DropoffRequest `json:"dropoffs"`
}

// OptimizeRequest is the boundary shape of an optimization request.
// ship_capacity_scu wins when both it and ship_id are present; with
// neither, the default hull's capacity applies.
type OptimizeRequest struct {
	ShipCapacitySCU float64          `json:"ship_capacity_scu"`
	ShipID          string           `json:"ship_id"`
	StartLocation   string           `json:"start_location"`
	Missions        []MissionRequest `json:"missions"`
}

type OptimizeResponse struct {
	Route             []string             `json:"route"`
	MissionOrder      []string             `json:"mission_order"`
	CargoAtEachStep   []float64            `json:"cargo_at_each_step"`
	CargoTypesAtSteps []map[string]float64 `json:"cargo_types_at_steps"`
	TotalDistance     float64              `json:"total_distance"`
	TotalPayout       float64              `json:"total_payout"`
	Optimal           bool                 `json:"optimal"`
}
