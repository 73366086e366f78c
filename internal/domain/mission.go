package domain

// Dropoff is one typed consignment of a mission: a destination, a cargo
// type tag, and a positive amount in SCU.
type Dropoff struct {
	Location  string
	CargoType string
	AmountSCU float64
}

// Represents a hauling contract: one pickup location plus one or more
// typed drop-offs and a payout. A mission's full cargo is loaded at its
// pickup and unloaded one dropoff at a time.
type Mission struct {
	ID       string
	Pickup   string
	Payout   float64
	Dropoffs []Dropoff
}

// TotalCargoSCU returns the cargo loaded at the mission's pickup, which
// by construction equals the sum of its dropoff amounts.
func (m *Mission) TotalCargoSCU() float64 {
	total := 0.0
	for _, d := range m.Dropoffs {
		total += d.AmountSCU
	}
	return total
}
