package session

import (
	"time"

	"github.com/KirkDiggler/arcade/internal/common/clock"
	"github.com/KirkDiggler/arcade/internal/common/uuid"
	"github.com/KirkDiggler/arcade/internal/models"
)

// Config holds configuration for the session registry
type Config struct {
	// Clock for timestamps and expiry timers
	Clock clock.Clock

	// KeyGenerator issues session keys
	KeyGenerator uuid.KeyGenerator
}

// CreateInput contains parameters for creating a session
type CreateInput struct {
	Kind      models.GameKind
	OwnerID   string
	ChannelID string
	Wager     int64
	TTL       time.Duration
	Payload   any
}

// GetInput contains parameters for reading a session
type GetInput struct {
	Key string
}

// FindByOwnerInput contains parameters for finding a user's session
type FindByOwnerInput struct {
	OwnerID string
	Kind    models.GameKind
}

// RemoveInput contains parameters for removing a session
type RemoveInput struct {
	Key string
}

// ScheduleExpiryInput contains parameters for rescheduling expiry
type ScheduleExpiryInput struct {
	Key string
	TTL time.Duration
}

// Transition is what an action did to a session
type Transition struct {
	// Payload replaces the session payload
	Payload any

	// Terminal ends the session
	Terminal bool
}

// ActInput contains one action against a session
type ActInput struct {
	Key     string
	ActorID string

	// Apply computes the transition from a snapshot of the session.
	// An error leaves the session untouched.
	Apply func(sess *models.Session) (*Transition, error)
}

// ActOutput contains the session after the action
type ActOutput struct {
	// Session is a snapshot carrying the new payload
	Session *models.Session

	// Terminal is true for the single caller that ended the session
	Terminal bool
}

// SetMessageInput contains parameters for recording the session message
type SetMessageInput struct {
	Key       string
	ChannelID string
	MessageID string
}

// SweepOutput reports what a sweep removed
type SweepOutput struct {
	Expired int
}
