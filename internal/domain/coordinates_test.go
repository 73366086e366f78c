package domain

import "testing"

func TestDistanceTo(t *testing.T) {
	a := Coordinates{X: 0, Y: 0, Z: 0}
	b := Coordinates{X: 3, Y: 4, Z: 0}

	if d := a.DistanceTo(b); d != 5 {
		t.Fatalf("distance = %v, want 5", d)
	}
	if d := b.DistanceTo(a); d != 5 {
		t.Fatalf("distance should be symmetric, got %v", d)
	}
	if d := a.DistanceTo(a); d != 0 {
		t.Fatalf("self distance = %v, want 0", d)
	}
}

func TestMapCoords(t *testing.T) {
	c := Coordinates{X: 18_587_664.74, Y: -22_151_916.92, Z: 0}

	mc := c.MapCoords()
	if len(mc) != 2 {
		t.Fatalf("expected [x, z] pair, got %v", mc)
	}
	if mc[0] != c.X/1_000_000 || mc[1] != c.Z/1_000_000 {
		t.Fatalf("map coords = %v", mc)
	}
}

func TestShipByID(t *testing.T) {
	ship, ok := ShipByID(DefaultShipID)
	if !ok {
		t.Fatalf("default ship %q not found", DefaultShipID)
	}
	if ship.CargoCapacitySCU != 168 {
		t.Fatalf("taurus capacity = %v, want 168", ship.CargoCapacitySCU)
	}

	if _, ok := ShipByID("nonexistent"); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}
