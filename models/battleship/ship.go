package battleship

import (
	cerr "github.com/saeidalz13/armada-backend/internal/error"
)

const (
	ShipKindCarrier uint8 = iota
	ShipKindBattleship
	ShipKindCruiser
	ShipKindSubmarine
	ShipKindDestroyer
)

const FleetSize = 5

// Every kind a complete fleet must place exactly once,
// mapped to its length in cells.
var shipKindLengths = map[uint8]int{
	ShipKindCarrier:    5,
	ShipKindBattleship: 4,
	ShipKindCruiser:    3,
	ShipKindSubmarine:  3,
	ShipKindDestroyer:  2,
}

type Ship struct {
	kind   uint8
	length int
	hits   int
}

func NewShip(kind uint8) (*Ship, error) {
	length, prs := shipKindLengths[kind]
	if !prs {
		return nil, cerr.ErrInvalidShipKind(kind)
	}

	return &Ship{kind: kind, length: length, hits: 0}, nil
}

func (sh *Ship) Kind() uint8 {
	return sh.kind
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Hits() int {
	return sh.hits
}

// Hitting an already sunken ship is a no-op so hits
// never exceed the ship length.
func (sh *Ship) GotHit() {
	if sh.hits < sh.length {
		sh.hits++
	}
}

func (sh *Ship) IsSunk() bool {
	return sh.hits == sh.length
}
