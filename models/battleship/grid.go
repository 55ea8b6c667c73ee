package battleship

// GameGridSize is the side length of every board. The classic
// rules play on a fixed 10x10 grid.
const GameGridSize int = 10

const (
	OrientationHorizontal uint8 = iota
	OrientationVertical
)

// Outcomes of a resolved attack. These are normal return values
// of the attack operations, not errors.
const (
	AttackOutcomeMiss uint8 = iota
	AttackOutcomeHit
	AttackOutcomeSunk
	AttackOutcomeAlreadyAttacked
)

// X is the row index, Y the column index. Horizontal placements
// advance Y, vertical placements advance X.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) InGridBound() bool {
	return c.X >= 0 && c.X < GameGridSize && c.Y >= 0 && c.Y < GameGridSize
}

// Unit step of one placement orientation, also used as the axis
// vector of the computer targeting state.
func orientationStep(orientation uint8) Coordinates {
	if orientation == OrientationHorizontal {
		return Coordinates{X: 0, Y: 1}
	}
	return Coordinates{X: 1, Y: 0}
}

func (c Coordinates) add(step Coordinates) Coordinates {
	return Coordinates{X: c.X + step.X, Y: c.Y + step.Y}
}

func (c Coordinates) negate() Coordinates {
	return Coordinates{X: -c.X, Y: -c.Y}
}
