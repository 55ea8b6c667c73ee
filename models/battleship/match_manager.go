package battleship

import (
	"sync"

	cerr "github.com/saeidalz13/armada-backend/internal/error"
)

// Name the computer opponent introduces itself with.
const ComputerPlayerName = "Admiral Gopher"

type MatchManager interface {
	CreateMatch(hostName string, placementPolicy uint8) (*Match, error)
	GetMatch(matchUuid string) (*Match, error)
	TerminateMatch(matchUuid string)
}

type ArmadaMatchManager struct {
	matches map[string]*Match
	mu      sync.RWMutex
}

var _ MatchManager = (*ArmadaMatchManager)(nil)

func NewArmadaMatchManager() *ArmadaMatchManager {
	return &ArmadaMatchManager{
		matches: make(map[string]*Match, 10),
	}
}

// Creates a human-vs-computer match hosted by hostName.
func (amm *ArmadaMatchManager) CreateMatch(hostName string, placementPolicy uint8) (*Match, error) {
	hostPlayer, err := NewPlayer(hostName, PlayerKindHuman)
	if err != nil {
		return nil, err
	}

	joinPlayer, err := NewPlayer(ComputerPlayerName, PlayerKindComputer)
	if err != nil {
		return nil, err
	}

	match := NewMatch(hostPlayer, joinPlayer, placementPolicy)

	amm.mu.Lock()
	amm.matches[match.Uuid()] = match
	amm.mu.Unlock()

	return match, nil
}

func (amm *ArmadaMatchManager) GetMatch(matchUuid string) (*Match, error) {
	amm.mu.RLock()
	match, prs := amm.matches[matchUuid]
	amm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrMatchNotExists(matchUuid)
	}

	if match == nil {
		return nil, cerr.ErrMatchIsNil(matchUuid)
	}

	return match, nil
}

func (amm *ArmadaMatchManager) TerminateMatch(matchUuid string) {
	amm.mu.Lock()
	delete(amm.matches, matchUuid)
	amm.mu.Unlock()
}
