package battleship

import (
	"math/rand"
	"testing"
)

func TestValidatePlacementNoTouchPolicy(t *testing.T) {
	board := NewBoard()
	if err := board.PlaceShip(mustShip(t, ShipKindDestroyer), 5, 5, OrientationHorizontal); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		x, y        int
		orientation uint8
		expectErr   bool
	}{
		{name: "side by side", x: 4, y: 5, orientation: OrientationHorizontal, expectErr: true},
		{name: "diagonal corner", x: 4, y: 4, orientation: OrientationVertical, expectErr: true},
		{name: "end to end", x: 5, y: 7, orientation: OrientationHorizontal, expectErr: true},
		{name: "one cell gap", x: 7, y: 5, orientation: OrientationHorizontal, expectErr: false},
		{name: "far away", x: 0, y: 0, orientation: OrientationHorizontal, expectErr: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidatePlacement(board, mustShip(t, ShipKindCruiser), test.x, test.y, test.orientation, PlacementPolicyNoTouch)
			if test.expectErr && err == nil {
				t.Fatal("expected touching placement to be rejected")
			}
			if !test.expectErr && err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestValidatePlacementOverlapOnlyPolicyAllowsTouching(t *testing.T) {
	board := NewBoard()
	if err := board.PlaceShip(mustShip(t, ShipKindDestroyer), 5, 5, OrientationHorizontal); err != nil {
		t.Fatal(err)
	}

	if err := ValidatePlacement(board, mustShip(t, ShipKindCruiser), 4, 5, OrientationHorizontal, PlacementPolicyOverlapOnly); err != nil {
		t.Fatal(err)
	}
}

func TestIsFleetComplete(t *testing.T) {
	board := NewBoard()
	if IsFleetComplete(board) {
		t.Fatal("empty board must not have a complete fleet")
	}

	placeTestFleet(t, board)
	if !IsFleetComplete(board) {
		t.Fatal("expected complete fleet")
	}
}

func TestAutoPlaceFleet(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	for i := 0; i < 50; i++ {
		board := NewBoard()
		if err := AutoPlaceFleet(board, rng, PlacementPolicyNoTouch); err != nil {
			t.Fatal(err)
		}

		if !IsFleetComplete(board) {
			t.Fatal("auto placed board must have a complete fleet")
		}

		// every placed cell count must add up to the fleet total
		occupied := 0
		for x := 0; x < GameGridSize; x++ {
			for y := 0; y < GameGridSize; y++ {
				if board.ShipAt(x, y) != nil {
					occupied++
				}
			}
		}
		if occupied != 17 {
			t.Fatalf("expected 17 occupied cells, got: %d", occupied)
		}
	}
}

func TestAutoPlaceFleetSkipsPlacedKinds(t *testing.T) {
	board := NewBoard()
	carrier := mustShip(t, ShipKindCarrier)
	if err := board.PlaceShip(carrier, 0, 0, OrientationHorizontal); err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(17))
	if err := AutoPlaceFleet(board, rng, PlacementPolicyNoTouch); err != nil {
		t.Fatal(err)
	}

	if !IsFleetComplete(board) {
		t.Fatal("expected complete fleet")
	}
	if board.ShipAt(0, 0) != carrier {
		t.Fatal("manually placed carrier must stay where it was")
	}
}

// Legal no-touch layout used across the match tests: one ship per
// even row anchored at column 0.
func placeTestFleet(t *testing.T, board *Board) {
	t.Helper()

	placements := []struct {
		kind uint8
		x    int
	}{
		{kind: ShipKindCarrier, x: 0},
		{kind: ShipKindBattleship, x: 2},
		{kind: ShipKindCruiser, x: 4},
		{kind: ShipKindSubmarine, x: 6},
		{kind: ShipKindDestroyer, x: 8},
	}

	for _, placement := range placements {
		if err := board.PlaceShip(mustShip(t, placement.kind), placement.x, 0, OrientationHorizontal); err != nil {
			t.Fatal(err)
		}
	}
}
