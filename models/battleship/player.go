package battleship

import (
	"math/rand"
	"time"

	cerr "github.com/saeidalz13/armada-backend/internal/error"
)

const (
	PlayerKindHuman uint8 = iota
	PlayerKindComputer
)

type Player struct {
	name      string
	kind      uint8
	score     int
	targeting *targetingState
	rng       *rand.Rand
}

func NewPlayer(name string, kind uint8) (*Player, error) {
	if name == "" {
		return nil, cerr.ErrInvalidPlayerName()
	}
	if kind != PlayerKindHuman && kind != PlayerKindComputer {
		return nil, cerr.ErrInvalidPlayerKind(kind)
	}

	return &Player{
		name:      name,
		kind:      kind,
		score:     0,
		targeting: newTargetingState(),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Kind() uint8 {
	return p.kind
}

func (p *Player) IsComputer() bool {
	return p.kind == PlayerKindComputer
}

// Count of successful hits, sinks included.
func (p *Player) Score() int {
	return p.score
}

func (p *Player) IsHunting() bool {
	return p.targeting.isHunting
}

// Delegates to the target board and keeps score plus the computer
// targeting state in sync with the outcome.
func (p *Player) MakeAttack(x, y int, targetBoard *Board) (uint8, error) {
	outcome, err := targetBoard.ReceiveAttack(x, y)
	if err != nil {
		return outcome, err
	}

	if outcome == AttackOutcomeHit || outcome == AttackOutcomeSunk {
		p.score++
	}

	if p.IsComputer() {
		p.targeting.observeOutcome(NewCoordinates(x, y), outcome, targetBoard)
	}

	return outcome, nil
}

// Produces a coordinate that is guaranteed not yet attacked on the
// target board. The computer drains its hunt queue first; humans
// and a non-hunting computer pick uniformly at random among the
// remaining cells, with a deterministic scan once rejection
// sampling has run its course.
func (p *Player) GenerateAttack(targetBoard *Board) (Coordinates, error) {
	if p.IsComputer() {
		if coord, ok := p.targeting.nextTarget(targetBoard); ok {
			return coord, nil
		}
	}

	maxSamples := GameGridSize * GameGridSize
	for i := 0; i < maxSamples; i++ {
		coord := NewCoordinates(p.rng.Intn(GameGridSize), p.rng.Intn(GameGridSize))
		if !targetBoard.IsAttacked(coord.X, coord.Y) {
			return coord, nil
		}
	}

	for x := 0; x < GameGridSize; x++ {
		for y := 0; y < GameGridSize; y++ {
			if !targetBoard.IsAttacked(x, y) {
				return NewCoordinates(x, y), nil
			}
		}
	}

	return Coordinates{}, cerr.ErrNoUnattackedCoordinates()
}

func (p *Player) ResetScore() {
	p.score = 0
	p.targeting.reset()
}
