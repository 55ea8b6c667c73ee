package api

import (
	"encoding/json"

	cerr "github.com/saeidalz13/armada-backend/internal/error"
	mb "github.com/saeidalz13/armada-backend/models/battleship"
	mc "github.com/saeidalz13/armada-backend/models/connection"
)

// Every incoming valid request is translated here from its wire
// payload into core match operations. Handlers never write to the
// connection themselves; they hand a response message back to the
// session loop.
type Request struct {
	payload []byte
}

func NewRequest(payload ...[]byte) Request {
	var req Request
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return req
}

// Creates a fresh human-vs-computer match hosted by the client.
func (r Request) HandleNewMatch(matchManager mb.MatchManager) (*mb.Match, mc.Message[mc.RespNewMatch]) {
	resp := mc.NewMessage[mc.RespNewMatch](mc.CodeNewMatch)

	var reqNewMatch mc.Message[mc.ReqNewMatch]
	if err := json.Unmarshal(r.payload, &reqNewMatch); err != nil {
		resp.AddError(err.Error(), "failed to create match")
		return nil, resp
	}

	match, err := matchManager.CreateMatch(reqNewMatch.Payload.HostName, reqNewMatch.Payload.PlacementPolicy)
	if err != nil {
		resp.AddError(err.Error(), "failed to create match")
		return nil, resp
	}

	resp.AddPayload(mc.RespNewMatch{
		MatchUuid: match.Uuid(),
		HostName:  match.HostPlayer().Name(),
		JoinName:  match.JoinPlayer().Name(),
	})
	return match, resp
}

// Places one ship of the requested kind on the host board. Every
// violation (bad kind, duplicate kind, out of bound, overlap,
// touching under the no-touch policy) comes back as an error
// payload and leaves the board untouched.
func (r Request) HandlePlaceShip(match *mb.Match) mc.Message[mc.RespPlaceShip] {
	resp := mc.NewMessage[mc.RespPlaceShip](mc.CodePlaceShip)

	var reqPlaceShip mc.Message[mc.ReqPlaceShip]
	if err := json.Unmarshal(r.payload, &reqPlaceShip); err != nil {
		resp.AddError(err.Error(), "failed to place ship")
		return resp
	}
	p := reqPlaceShip.Payload

	if match.Phase() == mb.MatchPhasePlaying {
		resp.AddError(cerr.ErrMatchAlreadyPlaying().Error(), "failed to place ship")
		return resp
	}

	board := match.BoardOf(match.HostPlayer())
	for _, placed := range board.Ships() {
		if placed.Kind() == p.Kind {
			resp.AddError(cerr.ErrShipKindAlreadyPlaced(p.Kind).Error(), "failed to place ship")
			return resp
		}
	}

	ship, err := mb.NewShip(p.Kind)
	if err != nil {
		resp.AddError(err.Error(), "failed to place ship")
		return resp
	}

	if err := mb.ValidatePlacement(board, ship, p.X, p.Y, p.Orientation, match.PlacementPolicy()); err != nil {
		resp.AddError(err.Error(), "failed to place ship")
		return resp
	}

	if err := board.PlaceShip(ship, p.X, p.Y, p.Orientation); err != nil {
		resp.AddError(err.Error(), "failed to place ship")
		return resp
	}

	resp.AddPayload(mc.RespPlaceShip(p))
	return resp
}

// Starts the match. The computer fleet is auto-placed by the core;
// an incomplete host fleet refuses the start.
func (r Request) HandleStartMatch(match *mb.Match) mc.Message[mc.RespMatchState] {
	resp := mc.NewMessage[mc.RespMatchState](mc.CodeStartMatch)

	if err := match.StartMatch(); err != nil {
		resp.AddError(err.Error(), "failed to start match")
		return resp
	}

	resp.AddPayload(mc.RespMatchState{State: match.State()})
	return resp
}

// Resolves the host player's attack.
func (r Request) HandleAttack(match *mb.Match) mc.Message[mc.RespAttack] {
	resp := mc.NewMessage[mc.RespAttack](mc.CodeAttack)

	var reqAttack mc.Message[mc.ReqAttack]
	if err := json.Unmarshal(r.payload, &reqAttack); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrAttackFailed)
		return resp
	}

	attacker := match.CurrentPlayer()
	outcome, err := match.MakeAttack(reqAttack.Payload.X, reqAttack.Payload.Y)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrAttackFailed)
		return resp
	}

	resp.AddPayload(mc.RespAttack{
		AttackerName: attacker.Name(),
		X:            reqAttack.Payload.X,
		Y:            reqAttack.Payload.Y,
		Outcome:      outcome,
		State:        match.State(),
	})
	return resp
}

func (r Request) HandleMatchState(match *mb.Match) mc.Message[mc.RespMatchState] {
	resp := mc.NewMessage[mc.RespMatchState](mc.CodeMatchState)
	resp.AddPayload(mc.RespMatchState{State: match.State()})
	return resp
}

func (r Request) HandleResetMatch(match *mb.Match) mc.Message[mc.RespMatchState] {
	resp := mc.NewMessage[mc.RespMatchState](mc.CodeResetMatch)
	match.ResetMatch()
	resp.AddPayload(mc.RespMatchState{State: match.State()})
	return resp
}
