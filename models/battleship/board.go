package battleship

import (
	cerr "github.com/saeidalz13/armada-backend/internal/error"
)

// Board owns one player's defence grid: which cell belongs to
// which ship and which coordinates have been attacked so far.
// Mutation happens only through PlaceShip, ReceiveAttack and Reset.
type Board struct {
	grid     [][]*Ship
	attacked map[Coordinates]bool
	ships    []*Ship
}

func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

func (b *Board) GridSize() int {
	return GameGridSize
}

// Returns nil for empty cells and for out-of-range coordinates.
func (b *Board) ShipAt(x, y int) *Ship {
	if !NewCoordinates(x, y).InGridBound() {
		return nil
	}
	return b.grid[x][y]
}

func (b *Board) IsAttacked(x, y int) bool {
	return b.attacked[NewCoordinates(x, y)]
}

func (b *Board) Ships() []*Ship {
	return b.ships
}

// The footprint cells of a placement at (x, y) extending in
// the given orientation. Fails if any cell falls out of bound.
func placementCells(length, x, y int, orientation uint8) ([]Coordinates, error) {
	if orientation != OrientationHorizontal && orientation != OrientationVertical {
		return nil, cerr.ErrInvalidOrientation(orientation)
	}

	step := orientationStep(orientation)
	cells := make([]Coordinates, 0, length)

	coord := NewCoordinates(x, y)
	for i := 0; i < length; i++ {
		if !coord.InGridBound() {
			return nil, cerr.ErrXorYOutOfGridBound(coord.X, coord.Y)
		}
		cells = append(cells, coord)
		coord = coord.add(step)
	}

	return cells, nil
}

// Validates bounds and overlap before any cell is written, so a
// rejected placement leaves the board untouched. Adjacency is a
// placement policy of the fleet helpers, not a board invariant.
func (b *Board) PlaceShip(ship *Ship, x, y int, orientation uint8) error {
	cells, err := placementCells(ship.Length(), x, y, orientation)
	if err != nil {
		return err
	}

	for _, cell := range cells {
		if b.grid[cell.X][cell.Y] != nil {
			return cerr.ErrShipPlacementOverlap(cell.X, cell.Y)
		}
	}

	for _, cell := range cells {
		b.grid[cell.X][cell.Y] = ship
	}
	b.ships = append(b.ships, ship)

	return nil
}

// Resolves one attack. Out-of-bound coordinates are a caller error;
// attacking the same cell twice is a normal outcome that leaves
// every ship untouched.
func (b *Board) ReceiveAttack(x, y int) (uint8, error) {
	coord := NewCoordinates(x, y)
	if !coord.InGridBound() {
		return AttackOutcomeMiss, cerr.ErrXorYOutOfGridBound(x, y)
	}

	if b.attacked[coord] {
		return AttackOutcomeAlreadyAttacked, nil
	}
	b.attacked[coord] = true

	ship := b.grid[x][y]
	if ship == nil {
		return AttackOutcomeMiss, nil
	}

	ship.GotHit()
	if ship.IsSunk() {
		return AttackOutcomeSunk, nil
	}
	return AttackOutcomeHit, nil
}

// A board with zero ships is never "all sunk". Guards against
// win detection firing before setup completes.
func (b *Board) AllShipsSunk() bool {
	if len(b.ships) == 0 {
		return false
	}

	for _, ship := range b.ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

func (b *Board) Reset() {
	grid := make([][]*Ship, GameGridSize)
	for i := 0; i < GameGridSize; i++ {
		grid[i] = make([]*Ship, GameGridSize)
	}

	b.grid = grid
	b.attacked = make(map[Coordinates]bool)
	b.ships = make([]*Ship, 0, FleetSize)
}
