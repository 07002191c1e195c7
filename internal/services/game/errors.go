package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    GameError = "config cannot be nil"
	ErrNilLedger    GameError = "ledger service cannot be nil"
	ErrNilRegistry  GameError = "session registry cannot be nil"
	ErrNilMessaging GameError = "messaging service cannot be nil"
	ErrInvalidInput GameError = "input cannot be nil"
	ErrInvalidUser  GameError = "user ID cannot be empty"
	ErrInstantKind  GameError = "game kind is played instantly"
	ErrSessionKind  GameError = "game kind needs a session"
	ErrNoEngine     GameError = "no engine registered for game kind"
)
