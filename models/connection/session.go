package connection

import (
	"log"
	"net"
	"time"

	"github.com/gorilla/websocket"

	mb "github.com/saeidalz13/armada-backend/models/battleship"
)

const (
	maxWriteWsRetries uint8         = 2
	backOffFactor     uint8         = 2
	gracePeriod       time.Duration = time.Minute * 2
)

const (
	MessageTypeBytes uint8 = iota
	MessageTypeJSON
)

// Close codes that are worth another attempt on the same
// connection, and codes where the client is gone for good.
var (
	retriableCloseCodes = []int{
		websocket.CloseTryAgainLater,
	}
	fatalCloseCodes = []int{
		websocket.CloseGoingAway,
		websocket.CloseNormalClosure,
		websocket.CloseProtocolError,
		websocket.CloseInternalServerErr,
		websocket.CloseTLSHandshake,
		websocket.CloseMandatoryExtension,
		websocket.CloseInvalidFramePayloadData,
		websocket.CloseUnsupportedData,
		websocket.CloseMessageTooBig,
		websocket.ClosePolicyViolation,
		websocket.CloseServiceRestart,
		websocket.CloseNoStatusReceived,
	}
)

type ConnectionHandler interface {
	reconnectionAfterAbnormalClosure(conn *websocket.Conn)
	handleReadFromConnErr(err error, retries uint8) uint8
	writeToConnWithRetry(msg interface{}, msgType uint8) error
	onConnErr(err error) uint8
}

// One client connection playing one match against the in-process
// computer opponent. The match pointer is set once the client
// creates a match and survives an abnormal-closure reconnect.
type Session struct {
	id                     string
	conn                   *websocket.Conn
	match                  *mb.Match
	reconnectionSignalChan chan bool
	createdAt              time.Time
}

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:                     id,
		conn:                   conn,
		reconnectionSignalChan: make(chan bool),
		createdAt:              time.Now(),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Conn() *websocket.Conn {
	return s.conn
}

// Sorts a connection error into the retry/break decision the
// read and write loops act on.
func (s *Session) onConnErr(err error) uint8 {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		log.Println("conn timeout:", err)
		return ConnLoopRetry
	}

	switch {
	case websocket.IsCloseError(err, retriableCloseCodes...):
		log.Println("transient close:", err)
		return ConnLoopRetry

	// Mobile clients backgrounding the app close this way; the
	// session waits out the grace period for a reconnect.
	case websocket.IsCloseError(err, websocket.CloseAbnormalClosure):
		log.Println("abnormal closure:", err)
		return ConnLoopAbnormalClosureRetry

	case websocket.IsCloseError(err, fatalCloseCodes...):
		log.Println("conn closed:", err)
		return ConnLoopBreak

	default:
		log.Println("unexpected conn error:", err)
		return ConnLoopBreak
	}
}

func (s *Session) writeMessage(msg interface{}, msgType uint8) error {
	switch msgType {
	case MessageTypeJSON:
		return s.conn.WriteJSON(msg)

	case MessageTypeBytes:
		respBytes, ok := msg.([]byte)
		if !ok {
			return NewConnErr(ConnInvalidMsgType).AddDesc("msg type expected: []byte got invalid")
		}
		return s.conn.WriteMessage(websocket.TextMessage, respBytes)

	default:
		return NewConnErr(ConnInvalidMsgType).AddDesc("invalid message type to write with retry")
	}
}

// Writes to the session connection, retrying with backoff on
// transient errors.
func (s *Session) writeToConnWithRetry(msg interface{}, msgType uint8) error {
	var retries uint8

	for {
		err := s.writeMessage(msg, msgType)
		if err == nil {
			return nil
		}

		if connErr, ok := err.(ConnErr); ok {
			return connErr
		}

		switch s.onConnErr(err) {
		case ConnLoopRetry:
			if retries >= maxWriteWsRetries {
				log.Printf("max retries reached for writing to ws [%s]: %s", s.conn.RemoteAddr().String(), err)
				return NewConnErr(ConnLoopBreak)
			}
			retries++
			log.Printf("writing failed to ws [%s]; retrying... (retry no. %d)\n", s.conn.RemoteAddr().String(), retries)
			time.Sleep(time.Duration(retries*backOffFactor) * time.Second)

		case ConnLoopAbnormalClosureRetry:
			return NewConnErr(ConnLoopAbnormalClosureRetry)

		default:
			return NewConnErr(ConnLoopBreak).AddDesc("breaking write loop due to: " + err.Error())
		}
	}
}

// Decides what the session read loop does with a read error.
func (s *Session) handleReadFromConnErr(err error, retries uint8) uint8 {
	switch s.onConnErr(err) {
	case ConnLoopAbnormalClosureRetry:
		return ConnLoopAbnormalClosureRetry

	case ConnLoopRetry:
		if retries >= maxWriteWsRetries {
			return ConnLoopBreak
		}
		log.Printf("failed to read from ws conn [%s]; retrying... (retry no. %d)\n", s.conn.RemoteAddr().String(), retries)
		time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
		return ConnLoopContinue

	default:
		log.Printf("break ws conn loop [%s] due to: %s\n", s.conn.RemoteAddr().String(), err)
		return ConnLoopBreak
	}
}

// Swings the session over to the freshly upgraded connection and
// releases whoever is blocked on the grace-period wait.
func (s *Session) reconnectionAfterAbnormalClosure(conn *websocket.Conn) {
	close(s.reconnectionSignalChan)

	s.conn = conn
	s.reconnectionSignalChan = make(chan bool)
}

var _ ConnectionHandler = (*Session)(nil)
