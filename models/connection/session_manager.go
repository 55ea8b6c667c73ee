package connection

import (
	"encoding/base64"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/armada-backend/internal/error"
	mb "github.com/saeidalz13/armada-backend/models/battleship"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	CleanupPeriodically()

	FindSession(sessionId string) (*Session, error)
	TerminateSession(session *Session)
	ReconnectSession(session *Session, conn *websocket.Conn)
	HandleAbnormalClosureSession(session *Session) error
	GetSessionId(session *Session) string

	GetSessionMatch(session *Session) *mb.Match
	SetSessionMatch(session *Session, match *mb.Match)

	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
}

type ArmadaSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

func NewArmadaSessionManager() *ArmadaSessionManager {
	initMapSize := 10

	return &ArmadaSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: time.Minute * 20,
	}
}

var _ SessionManager = (*ArmadaSessionManager)(nil)

func (asm *ArmadaSessionManager) GetSessionMatch(session *Session) *mb.Match {
	return session.match
}

func (asm *ArmadaSessionManager) SetSessionMatch(session *Session, match *mb.Match) {
	session.match = match
}

func (asm *ArmadaSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))

	asm.mu.Lock()
	asm.sessions[sessionId] = NewSession(sessionId, conn)
	session := asm.sessions[sessionId]
	asm.mu.Unlock()

	return session
}

func (asm *ArmadaSessionManager) FindSession(sessionId string) (*Session, error) {
	asm.mu.RLock()
	defer asm.mu.RUnlock()

	session, prs := asm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}

	return session, nil
}

func (asm *ArmadaSessionManager) TerminateSession(session *Session) {
	asm.mu.Lock()
	delete(asm.sessions, session.id)
	asm.mu.Unlock()
}

func (asm *ArmadaSessionManager) ReconnectSession(session *Session, conn *websocket.Conn) {
	session.reconnectionAfterAbnormalClosure(conn)
}

func (asm *ArmadaSessionManager) GetSessionId(session *Session) string {
	return session.id
}

// Sessions older than the cleanup interval are assumed dangling
// and removed so the map never grows unbounded.
func (asm *ArmadaSessionManager) CleanupPeriodically() {
	assumedClosedConns := 10

	for {
		time.Sleep(asm.cleanupInterval)

		asm.mu.Lock()
		toDelete := make([]string, 0, assumedClosedConns)

		for ID, session := range asm.sessions {
			if time.Since(session.createdAt) > asm.cleanupInterval {
				toDelete = append(toDelete, ID)
			}
		}

		log.Println("Clean up sessions:")
		for _, ID := range toDelete {
			delete(asm.sessions, ID)
			log.Printf("removed: %s", ID)
		}
		asm.mu.Unlock()
	}
}

// After an abnormal closure the client gets a grace period to
// reconnect with its session id. The opponent is the in-process
// computer, so nobody needs notifying; the match simply waits.
func (asm *ArmadaSessionManager) HandleAbnormalClosureSession(s *Session) error {
	if s.match == nil {
		return NewConnErr(ConnLoopBreak).AddDesc("session has no match; nothing to wait for")
	}

	timer := time.NewTimer(gracePeriod)
	select {
	case <-timer.C:
		log.Printf("session terminated: %s\n", s.id)
		return NewConnErr(ConnLoopBreak).AddDesc("grace period is over for session: " + s.id)

	case <-s.reconnectionSignalChan:
		timer.Stop()
		log.Printf("player reconnected, session: %s\n", s.id)
		return nil
	}
}

func (asm *ArmadaSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	err := session.writeToConnWithRetry(msg, msgType)

	if err != nil {
		connErr, ok := err.(ConnErr)
		if !ok {
			panic("this will never happen")
		}

		switch connErr.Code() {
		case ConnLoopBreak, ConnInvalidMsgType:
			return connErr

		case ConnLoopAbnormalClosureRetry:
			if err := asm.HandleAbnormalClosureSession(session); err != nil {
				return connErr
			}
		}
	}

	return nil
}

func (asm *ArmadaSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		messageType, payload, err := session.conn.ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		switch session.handleReadFromConnErr(err, retries) {
		case ConnLoopContinue:
			retries++
			continue

		case ConnLoopAbnormalClosureRetry:
			if err := asm.HandleAbnormalClosureSession(session); err != nil {
				return -1, []byte{}, err
			}

		default:
			return -1, []byte{}, err
		}
	}
}
