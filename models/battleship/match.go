package battleship

import (
	"math/rand"
	"time"

	cerr "github.com/saeidalz13/armada-backend/internal/error"

	"github.com/google/uuid"
)

const (
	MatchPhaseNotPlaying uint8 = iota
	MatchPhasePlaying
)

// Match orchestrates one game between the host player and the
// join player. It owns both boards, enforces turn alternation and
// detects the win condition. The host always takes the first turn.
type Match struct {
	uuid            string
	hostPlayer      *Player
	joinPlayer      *Player
	hostBoard       *Board
	joinBoard       *Board
	currentPlayer   *Player
	phase           uint8
	winner          *Player
	turnCount       int
	placementPolicy uint8
	rng             *rand.Rand
}

func NewMatch(hostPlayer, joinPlayer *Player, placementPolicy uint8) *Match {
	return &Match{
		uuid:            uuid.NewString()[:6],
		hostPlayer:      hostPlayer,
		joinPlayer:      joinPlayer,
		hostBoard:       NewBoard(),
		joinBoard:       NewBoard(),
		currentPlayer:   hostPlayer,
		phase:           MatchPhaseNotPlaying,
		winner:          nil,
		turnCount:       0,
		placementPolicy: placementPolicy,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (m *Match) Uuid() string {
	return m.uuid
}

func (m *Match) HostPlayer() *Player {
	return m.hostPlayer
}

func (m *Match) JoinPlayer() *Player {
	return m.joinPlayer
}

func (m *Match) CurrentPlayer() *Player {
	return m.currentPlayer
}

func (m *Match) Phase() uint8 {
	return m.phase
}

func (m *Match) Winner() *Player {
	return m.winner
}

func (m *Match) TurnCount() int {
	return m.turnCount
}

func (m *Match) PlacementPolicy() uint8 {
	return m.placementPolicy
}

func (m *Match) BoardOf(player *Player) *Board {
	if player == m.hostPlayer {
		return m.hostBoard
	}
	return m.joinBoard
}

func (m *Match) OpponentOf(player *Player) *Player {
	if player == m.hostPlayer {
		return m.joinPlayer
	}
	return m.hostPlayer
}

// Transitions to the playing phase. A computer side with an empty
// board gets its fleet auto-placed first; after that both fleets
// must be complete or the start is refused and the phase stays
// not-playing. A finished match stays terminal: it must go
// through ResetMatch before it can start again.
func (m *Match) StartMatch() error {
	if m.phase == MatchPhasePlaying {
		return cerr.ErrMatchAlreadyPlaying()
	}
	if m.winner != nil {
		return cerr.ErrMatchNotReset()
	}

	for _, player := range []*Player{m.hostPlayer, m.joinPlayer} {
		board := m.BoardOf(player)
		if player.IsComputer() && len(board.Ships()) == 0 {
			if err := AutoPlaceFleet(board, m.rng, m.placementPolicy); err != nil {
				return err
			}
		}
	}

	if !IsFleetComplete(m.hostBoard) || !IsFleetComplete(m.joinBoard) {
		return cerr.ErrFleetIncomplete()
	}

	m.phase = MatchPhasePlaying
	m.currentPlayer = m.hostPlayer

	return nil
}

// Resolves the current player's attack against the opponent board,
// then checks both boards for a complete sink. The turn only
// advances while the match is still playing, so the winner stays
// the attacker who landed the final blow.
func (m *Match) MakeAttack(x, y int) (uint8, error) {
	if m.phase != MatchPhasePlaying {
		return AttackOutcomeMiss, cerr.ErrMatchNotPlaying()
	}

	attacker := m.currentPlayer
	defender := m.OpponentOf(attacker)

	outcome, err := attacker.MakeAttack(x, y, m.BoardOf(defender))
	if err != nil {
		return outcome, err
	}

	if m.BoardOf(defender).AllShipsSunk() {
		m.winner = attacker
		m.phase = MatchPhaseNotPlaying
	} else if m.BoardOf(attacker).AllShipsSunk() {
		// Unreachable in normal alternation; kept for symmetry
		// with boards set up mid-game.
		m.winner = defender
		m.phase = MatchPhaseNotPlaying
	}

	if m.phase == MatchPhasePlaying {
		m.currentPlayer = defender
		m.turnCount++
	}

	return outcome, nil
}

type PlayerState struct {
	Name  string `json:"name"`
	Kind  uint8  `json:"kind"`
	Score int    `json:"score"`
}

type MatchState struct {
	Phase         uint8       `json:"phase"`
	CurrentPlayer string      `json:"currentPlayer"`
	Winner        string      `json:"winner,omitempty"`
	HostPlayer    PlayerState `json:"hostPlayer"`
	JoinPlayer    PlayerState `json:"joinPlayer"`
	TurnCount     int         `json:"turnCount"`
}

// Immutable snapshot for the presentation layer.
func (m *Match) State() MatchState {
	state := MatchState{
		Phase:         m.phase,
		CurrentPlayer: m.currentPlayer.Name(),
		HostPlayer: PlayerState{
			Name:  m.hostPlayer.Name(),
			Kind:  m.hostPlayer.Kind(),
			Score: m.hostPlayer.Score(),
		},
		JoinPlayer: PlayerState{
			Name:  m.joinPlayer.Name(),
			Kind:  m.joinPlayer.Kind(),
			Score: m.joinPlayer.Score(),
		},
		TurnCount: m.turnCount,
	}

	if m.winner != nil {
		state.Winner = m.winner.Name()
	}
	return state
}

// Returns the match to its just-created shape: empty boards, zero
// scores, host to move first.
func (m *Match) ResetMatch() {
	m.phase = MatchPhaseNotPlaying
	m.winner = nil
	m.currentPlayer = m.hostPlayer
	m.turnCount = 0

	m.hostBoard.Reset()
	m.joinBoard.Reset()
	m.hostPlayer.ResetScore()
	m.joinPlayer.ResetScore()
}
