package connection

import "fmt"

// What the session loops should do after a connection error.
const (
	ConnLoopBreak uint8 = iota
	ConnLoopRetry
	ConnLoopAbnormalClosureRetry
	ConnLoopContinue
	ConnInvalidMsgType
)

var connErrCodeNames = map[uint8]string{
	ConnLoopBreak:                "break",
	ConnLoopRetry:                "retry",
	ConnLoopAbnormalClosureRetry: "abnormal-closure-retry",
	ConnLoopContinue:             "continue",
	ConnInvalidMsgType:           "invalid-msg-type",
}

type ConnErr struct {
	code uint8
	desc string
}

func NewConnErr(code uint8) ConnErr {
	return ConnErr{code: code}
}

func (c ConnErr) AddDesc(desc string) ConnErr {
	c.desc = desc
	return c
}

func (c ConnErr) Error() string {
	name, prs := connErrCodeNames[c.code]
	if !prs {
		name = "unknown"
	}
	if c.desc == "" {
		return fmt.Sprintf("conn error [%s]", name)
	}
	return fmt.Sprintf("conn error [%s]: %s", name, c.desc)
}

func (c ConnErr) Code() uint8 {
	return c.code
}
