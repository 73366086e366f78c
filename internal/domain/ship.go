package domain

// Ship describes a hull and its cargo capacity in SCU.
type Ship struct {
	ID               string
	Name             string
	CargoCapacitySCU float64
}

// DefaultShipID is the hull assumed when a request names neither a ship
// nor an explicit capacity.
const DefaultShipID = "taurus"

var ships = []Ship{
	{ID: "taurus", Name: "Constellation Taurus", CargoCapacitySCU: 168},
	{ID: "freelancer", Name: "Freelancer", CargoCapacitySCU: 66},
	{ID: "caterpillar", Name: "Caterpillar", CargoCapacitySCU: 576},
	{ID: "cutlass_black", Name: "Cutlass Black", CargoCapacitySCU: 46},
	{ID: "c2_hercules", Name: "C2 Hercules", CargoCapacitySCU: 696},
}

// Ships returns the selectable hull catalog.
func Ships() []Ship {
	out := make([]Ship, len(ships))
	copy(out, ships)
	return out
}

// ShipByID looks up a hull by its identifier.
func ShipByID(id string) (Ship, bool) {
	for _, s := range ships {
		if s.ID == id {
			return s, true
		}
	}
	return Ship{}, false
}
