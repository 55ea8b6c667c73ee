package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID

	CodeNewMatch
	CodePlaceShip
	CodeStartMatch
	CodeAttack

	// Pushed by the server when the computer opponent resolves
	// its reply attack.
	CodeComputerAttack

	CodeMatchState
	CodeResetMatch
	CodeEndMatch

	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
