package session

import (
	"fmt"

	"github.com/KirkDiggler/arcade/internal/models"
)

// SessionError is a custom error type for registry errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       SessionError = "config cannot be nil"
	ErrNilClock        SessionError = "clock cannot be nil"
	ErrNilKeyGenerator SessionError = "key generator cannot be nil"
	ErrInvalidInput    SessionError = "input cannot be nil"
	ErrInvalidOwner    SessionError = "session owner cannot be empty"
	ErrInvalidKind     SessionError = "session kind cannot be empty"
	ErrSessionNotFound SessionError = "session expired or not found"
	ErrNotOwner        SessionError = "session belongs to another user"
	ErrKeyCollision    SessionError = "generated session key already in use"
	ErrSessionActive   SessionError = "a session of this kind is already active"
)

// ActiveError reports the session that blocks a new one
type ActiveError struct {
	Kind models.GameKind
	Key  string
}

func (e *ActiveError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrSessionActive, e.Kind, e.Key)
}

// Is matches ErrSessionActive
func (e *ActiveError) Is(target error) bool {
	return target == ErrSessionActive
}
