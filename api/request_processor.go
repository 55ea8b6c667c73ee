package api

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saeidalz13/armada-backend/db/sqlc"
	mb "github.com/saeidalz13/armada-backend/models/battleship"
	mc "github.com/saeidalz13/armada-backend/models/connection"
	"github.com/sqlc-dev/pqtype"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"

	// Pacing of the computer's reply attack. Purely cosmetic so a
	// browser client can animate the exchange; the core behaves
	// identically with zero delay.
	computerTurnDelay = time.Millisecond * 800
)

var (
	upgrader = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// probably more than enough but this is a good average size
		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

type RequestProcessor struct {
	sessionManager mc.SessionManager
	matchManager   mb.MatchManager
	q              sqlc.Querier
	ipnet          net.IPNet
}

// q may be nil; analytics recording is then skipped and the
// server runs standalone.
func NewRequestProcessor(
	sessionManager mc.SessionManager,
	matchManager mb.MatchManager,
	q sqlc.Querier,
) RequestProcessor {
	rp := RequestProcessor{
		sessionManager: sessionManager,
		matchManager:   matchManager,
		q:              q,
	}

	rp = rp.mustGetServerIpNet()
	return rp
}

func (rp RequestProcessor) mustGetServerIpNet() RequestProcessor {
	ifaces, err := net.Interfaces()
	if err != nil {
		panic(err)
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			panic(err)
		}

		for _, addr := range addrs {
			var ipnet *net.IPNet
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ipnet = v
				ip = v.IP

			case *net.IPAddr:
				ip = v.IP
			}

			if ip != nil && ip.To4() != nil && !ip.IsLoopback() {
				rp.ipnet = *ipnet
				return rp
			}
		}
	}

	panic("ipnet could not be found!")
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
		rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		session, err := rp.sessionManager.FindSession(sessionIdQuery)
		if err != nil {
			_ = conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID))
			conn.Close()
			return
		}
		rp.sessionManager.ReconnectSession(session, conn)
	}
}

const (
	analyticsMatchCreated uint8 = iota
	analyticsMatchCompleted
	analyticsComputerWin
)

// Best-effort analytics write; a failing counter never interrupts
// the session.
func (rp RequestProcessor) recordAnalytics(counter uint8) {
	if rp.q == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	serverPqtypeInet := pqtype.Inet{IPNet: rp.ipnet, Valid: true}

	var err error
	switch counter {
	case analyticsMatchCreated:
		err = rp.q.AnalyticsIncrementMatchesCreatedCount(ctx, serverPqtypeInet)
	case analyticsMatchCompleted:
		err = rp.q.AnalyticsIncrementMatchesCompletedCount(ctx, serverPqtypeInet)
	case analyticsComputerWin:
		err = rp.q.AnalyticsIncrementComputerWinsCount(ctx, serverPqtypeInet)
	}

	if err != nil {
		log.Println(err)
	}
}

func (rp *RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionId := rp.sessionManager.GetSessionId(session)

	defer func() {
		if match := rp.sessionManager.GetSessionMatch(session); match != nil {
			rp.matchManager.TerminateMatch(match.Uuid())
		}
		if session != nil && session.Conn() != nil {
			session.Conn().Close()
		}
		rp.sessionManager.TerminateSession(session)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

sessionLoop:
	for {
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// Read retries are exhausted; the session connection
			// is beyond recovery.
			break sessionLoop
		}

		var signal mc.Signal

		if err := json.Unmarshal(payload, &signal); err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		sessionMatch := rp.sessionManager.GetSessionMatch(session)

		// Everything past match creation needs a match bound to
		// the session.
		if sessionMatch == nil && signalNeedsMatch(signal.Code) {
			msg := mc.NewMessage[mc.NoPayload](signal.Code)
			msg.AddError("no match bound to this session yet", "create a match first")
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch signal.Code {

		case mc.CodeNewMatch:
			rp.recordAnalytics(analyticsMatchCreated)

			match, respMsg := NewRequest(payload).HandleNewMatch(rp.matchManager)
			if match != nil {
				// a session holds one match at a time; the replaced
				// one would otherwise linger in the manager map
				if sessionMatch != nil {
					rp.matchManager.TerminateMatch(sessionMatch.Uuid())
				}
				rp.sessionManager.SetSessionMatch(session, match)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodePlaceShip:
			respMsg := NewRequest(payload).HandlePlaceShip(sessionMatch)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeStartMatch:
			respMsg := NewRequest(payload).HandleStartMatch(sessionMatch)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		// The host attack resolves first; if the match is still
		// going the in-process computer replies after the pacing
		// delay, and both outcomes reach the client in order.
		case mc.CodeAttack:
			respMsg := NewRequest(payload).HandleAttack(sessionMatch)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

			if respMsg.Error != nil {
				continue sessionLoop
			}

			if rp.finishIfOver(session, sessionMatch) {
				continue sessionLoop
			}

			if err := rp.playComputerTurn(session, sessionMatch); err != nil {
				break sessionLoop
			}

		case mc.CodeMatchState:
			respMsg := NewRequest(payload).HandleMatchState(sessionMatch)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeResetMatch:
			respMsg := NewRequest(payload).HandleResetMatch(sessionMatch)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}

func signalNeedsMatch(code uint8) bool {
	switch code {
	case mc.CodePlaceShip, mc.CodeStartMatch, mc.CodeAttack, mc.CodeMatchState, mc.CodeResetMatch:
		return true
	default:
		return false
	}
}

// Resolves the computer's reply attack and pushes its outcome.
func (rp *RequestProcessor) playComputerTurn(session *mc.Session, match *mb.Match) error {
	computer := match.CurrentPlayer()
	if !computer.IsComputer() || match.Phase() != mb.MatchPhasePlaying {
		return nil
	}

	time.Sleep(computerTurnDelay)

	targetBoard := match.BoardOf(match.OpponentOf(computer))
	coord, err := computer.GenerateAttack(targetBoard)
	if err != nil {
		log.Println(err)
		return nil
	}

	outcome, err := match.MakeAttack(coord.X, coord.Y)
	if err != nil {
		log.Println(err)
		return nil
	}

	respMsg := mc.NewMessage[mc.RespAttack](mc.CodeComputerAttack)
	respMsg.AddPayload(mc.RespAttack{
		AttackerName: computer.Name(),
		X:            coord.X,
		Y:            coord.Y,
		Outcome:      outcome,
		State:        match.State(),
	})
	if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
		return err
	}

	rp.finishIfOver(session, match)
	return nil
}

// Pushes the end-of-match message and records analytics once a
// winner is set. Reports whether the match is over.
func (rp *RequestProcessor) finishIfOver(session *mc.Session, match *mb.Match) bool {
	winner := match.Winner()
	if winner == nil {
		return false
	}

	rp.recordAnalytics(analyticsMatchCompleted)
	if winner.IsComputer() {
		rp.recordAnalytics(analyticsComputerWin)
	}

	respEnd := mc.NewMessage[mc.RespEndMatch](mc.CodeEndMatch)
	respEnd.AddPayload(mc.RespEndMatch{Winner: winner.Name(), State: match.State()})
	if err := rp.sessionManager.WriteToSessionConn(session, respEnd, mc.MessageTypeJSON); err != nil {
		log.Println(err)
	}

	return true
}
