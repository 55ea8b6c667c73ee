package battleship

import (
	"math/rand"

	cerr "github.com/saeidalz13/armada-backend/internal/error"
)

// Whether placements must keep a one-cell margin to every other
// ship, diagonals included. The margin rule is advisory in some
// rule sets, so it is a policy of the placement helpers rather
// than an invariant of Board itself.
const (
	PlacementPolicyOverlapOnly uint8 = iota
	PlacementPolicyNoTouch
)

// Placement order of a full fleet, longest first so random
// auto-placement fails less often on a crowded board.
var fleetShipKinds = [FleetSize]uint8{
	ShipKindCarrier,
	ShipKindBattleship,
	ShipKindCruiser,
	ShipKindSubmarine,
	ShipKindDestroyer,
}

const maxRandomPlacementAttempts = 200

// Runs the same validation PlaceShip does plus the policy margin
// scan, without mutating the board.
func ValidatePlacement(b *Board, ship *Ship, x, y int, orientation, policy uint8) error {
	cells, err := placementCells(ship.Length(), x, y, orientation)
	if err != nil {
		return err
	}

	for _, cell := range cells {
		if b.grid[cell.X][cell.Y] != nil {
			return cerr.ErrShipPlacementOverlap(cell.X, cell.Y)
		}
	}

	if policy == PlacementPolicyNoTouch {
		for _, cell := range cells {
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if b.ShipAt(cell.X+dx, cell.Y+dy) != nil {
						return cerr.ErrShipPlacementTouching(cell.X+dx, cell.Y+dy)
					}
				}
			}
		}
	}

	return nil
}

// True iff every fleet kind is placed exactly once.
func IsFleetComplete(b *Board) bool {
	if len(b.ships) != FleetSize {
		return false
	}

	placed := make(map[uint8]int, FleetSize)
	for _, ship := range b.ships {
		placed[ship.Kind()]++
	}

	for _, kind := range fleetShipKinds {
		if placed[kind] != 1 {
			return false
		}
	}
	return true
}

// Places every missing fleet kind at a random legal position.
// Random search is bounded per ship; on exhaustion it falls back
// to a deterministic row-major scan so placement can only fail
// when no legal cell exists at all.
func AutoPlaceFleet(b *Board, rng *rand.Rand, policy uint8) error {
	placed := make(map[uint8]bool, FleetSize)
	for _, ship := range b.ships {
		placed[ship.Kind()] = true
	}

	for _, kind := range fleetShipKinds {
		if placed[kind] {
			continue
		}

		ship, err := NewShip(kind)
		if err != nil {
			return err
		}

		if err := placeShipRandomly(b, ship, rng, policy); err != nil {
			return err
		}
	}

	return nil
}

func placeShipRandomly(b *Board, ship *Ship, rng *rand.Rand, policy uint8) error {
	for attempt := 0; attempt < maxRandomPlacementAttempts; attempt++ {
		x := rng.Intn(GameGridSize)
		y := rng.Intn(GameGridSize)
		orientation := uint8(rng.Intn(2))

		if ValidatePlacement(b, ship, x, y, orientation, policy) != nil {
			continue
		}
		return b.PlaceShip(ship, x, y, orientation)
	}

	// Deterministic fallback scan over every anchor and orientation.
	for x := 0; x < GameGridSize; x++ {
		for y := 0; y < GameGridSize; y++ {
			for _, orientation := range []uint8{OrientationHorizontal, OrientationVertical} {
				if ValidatePlacement(b, ship, x, y, orientation, policy) != nil {
					continue
				}
				return b.PlaceShip(ship, x, y, orientation)
			}
		}
	}

	return cerr.ErrAutoPlacementFailed()
}
