package error

import "fmt"

const (
	ConstErrAttackFailed = "attack operation failed"
)

func ErrInvalidShipKind(kind uint8) error {
	return fmt.Errorf("ship kind is not in the recognized fleet enumeration, kind: %d", kind)
}

func ErrInvalidPlayerName() error {
	return fmt.Errorf("player name must not be empty")
}

func ErrInvalidPlayerKind(kind uint8) error {
	return fmt.Errorf("player kind must be either human or computer, kind: %d", kind)
}

func ErrInvalidOrientation(orientation uint8) error {
	return fmt.Errorf("orientation must be either horizontal or vertical, orientation: %d", orientation)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("incoming x or y is out of game grid bound\tx: %d\ty: %d", x, y)
}

func ErrShipPlacementOverlap(x, y int) error {
	return fmt.Errorf("a ship already occupies a cell of this placement\tx: %d\ty: %d", x, y)
}

func ErrShipPlacementTouching(x, y int) error {
	return fmt.Errorf("this placement touches another ship\tx: %d\ty: %d", x, y)
}

func ErrShipKindAlreadyPlaced(kind uint8) error {
	return fmt.Errorf("this ship kind is already placed on the board, kind: %d", kind)
}

func ErrFleetIncomplete() error {
	return fmt.Errorf("fleet is incomplete, every ship kind must be placed exactly once")
}

func ErrAutoPlacementFailed() error {
	return fmt.Errorf("no legal placement left for the remaining fleet")
}

func ErrMatchNotPlaying() error {
	return fmt.Errorf("match is not in the playing phase")
}

func ErrMatchAlreadyPlaying() error {
	return fmt.Errorf("match is already in the playing phase")
}

func ErrMatchNotReset() error {
	return fmt.Errorf("match has a winner, reset it before starting again")
}

func ErrMatchNotExists(matchUuid string) error {
	return fmt.Errorf("match with this uuid does not exist, uuid: %s", matchUuid)
}

func ErrMatchIsNil(matchUuid string) error {
	return fmt.Errorf("match with this uuid is nil, uuid: %s", matchUuid)
}

func ErrNoUnattackedCoordinates() error {
	return fmt.Errorf("every coordinate of the target board is already attacked")
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session with this id is nil, id: %s", sessionId)
}
