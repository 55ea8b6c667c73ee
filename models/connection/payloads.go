package connection

import (
	mb "github.com/saeidalz13/armada-backend/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"sessionID"`
}

type ReqNewMatch struct {
	HostName        string `json:"hostName"`
	PlacementPolicy uint8  `json:"placementPolicy"`
}

type RespNewMatch struct {
	MatchUuid string `json:"matchUuid"`
	HostName  string `json:"hostName"`
	JoinName  string `json:"joinName"`
}

type ReqPlaceShip struct {
	Kind        uint8 `json:"kind"`
	X           int   `json:"x"`
	Y           int   `json:"y"`
	Orientation uint8 `json:"orientation"`
}

type RespPlaceShip struct {
	Kind        uint8 `json:"kind"`
	X           int   `json:"x"`
	Y           int   `json:"y"`
	Orientation uint8 `json:"orientation"`
}

type ReqAttack struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Outcome of one resolved attack; the server pushes the same
// shape for the computer's reply with CodeComputerAttack.
type RespAttack struct {
	AttackerName string        `json:"attackerName"`
	X            int           `json:"x"`
	Y            int           `json:"y"`
	Outcome      uint8         `json:"outcome"`
	State        mb.MatchState `json:"state"`
}

type RespMatchState struct {
	State mb.MatchState `json:"state"`
}

type RespEndMatch struct {
	Winner string        `json:"winner"`
	State  mb.MatchState `json:"state"`
}
