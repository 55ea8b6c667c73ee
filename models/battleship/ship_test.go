package battleship

import "testing"

func TestNewShipLengths(t *testing.T) {
	tests := []struct {
		name           string
		kind           uint8
		expectedLength int
	}{
		{name: "carrier", kind: ShipKindCarrier, expectedLength: 5},
		{name: "battleship", kind: ShipKindBattleship, expectedLength: 4},
		{name: "cruiser", kind: ShipKindCruiser, expectedLength: 3},
		{name: "submarine", kind: ShipKindSubmarine, expectedLength: 3},
		{name: "destroyer", kind: ShipKindDestroyer, expectedLength: 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ship, err := NewShip(test.kind)
			if err != nil {
				t.Fatal(err)
			}

			if ship.Length() != test.expectedLength {
				t.Fatalf("expected length: %d\t got: %d", test.expectedLength, ship.Length())
			}
			if ship.Hits() != 0 {
				t.Fatalf("new ship must have zero hits, got: %d", ship.Hits())
			}
			if ship.IsSunk() {
				t.Fatal("new ship must not be sunk")
			}
		})
	}
}

func TestNewShipInvalidKind(t *testing.T) {
	if _, err := NewShip(255); err == nil {
		t.Fatal("expected error for unrecognized ship kind")
	}
}

func TestShipHitsCappedAtLength(t *testing.T) {
	ship, err := NewShip(ShipKindDestroyer)
	if err != nil {
		t.Fatal(err)
	}

	ship.GotHit()
	if ship.Hits() != 1 {
		t.Fatalf("expected hits: 1\t got: %d", ship.Hits())
	}
	if ship.IsSunk() {
		t.Fatal("destroyer must not sink after one hit")
	}

	ship.GotHit()
	if !ship.IsSunk() {
		t.Fatal("destroyer must sink after two hits")
	}

	// hitting a sunken ship is a no-op
	ship.GotHit()
	ship.GotHit()
	if ship.Hits() != ship.Length() {
		t.Fatalf("hits must stay capped at length %d\t got: %d", ship.Length(), ship.Hits())
	}
}
