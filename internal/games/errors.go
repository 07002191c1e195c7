package games

// EngineError is a custom error type for engine errors
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

const (
	ErrInvalidAction    EngineError = "invalid action"
	ErrUnknownState     EngineError = "state does not belong to this engine"
	ErrCannotAfford     EngineError = "balance too low for this action"
	ErrUnknownKind      EngineError = "unknown game kind"
	ErrEngineRegistered EngineError = "engine already registered for kind"
	ErrBetOutOfRange    EngineError = "bet out of range"
)
