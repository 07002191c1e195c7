package game

import (
	"github.com/KirkDiggler/arcade/internal/common/lock"
	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/KirkDiggler/arcade/internal/services/messaging"
	"github.com/KirkDiggler/arcade/internal/services/session"
)

// TimeoutReason is the outcome reason of a forfeited session
const TimeoutReason = "timeout"

// Config holds configuration for the game service
type Config struct {
	Ledger    ledger.Service
	Registry  session.Registry
	Messaging messaging.Service

	// Engines defaults to every built-in game
	Engines *games.Registry

	// Rand drives the engines, a time-seeded source is used when nil
	Rand random.Source

	// Locks serializes starts, actions and forfeits per user, a fresh lock is used when nil.
	// It must not be the ledger's lock.
	Locks *lock.UserLock

	// Notifier edits the session message when a session times out, optional
	Notifier messaging.Notifier
}

// StartGameInput contains parameters for starting a session game
type StartGameInput struct {
	UserID    string
	ChannelID string
	Kind      models.GameKind
	Wager     int64
}

// StartGameOutput contains the new session. A game decided on the deal
// (a natural blackjack) has no session and carries its settlement instead.
type StartGameOutput struct {
	Session    *models.Session
	Settlement *models.Settlement
	Display    *models.Display
}

// HandleActionInput contains one player action
type HandleActionInput struct {
	ActorID string
	Action  models.Action
}

// HandleActionOutput contains the session after the action
type HandleActionOutput struct {
	Session *models.Session

	// Settlement is set when the action ended the game
	Settlement *models.Settlement

	Display *models.Display
}

// PlayInstantInput contains parameters for a single-shot game
type PlayInstantInput struct {
	UserID string
	Kind   models.GameKind
	Wager  int64
}

// PlayInstantOutput contains the settled result
type PlayInstantOutput struct {
	Play       *games.Play
	Settlement *models.Settlement
	Display    *models.Display
}

// FindActiveSessionInput contains parameters for finding a live session
type FindActiveSessionInput struct {
	UserID string
	Kind   models.GameKind
}

// SetMessageInput contains the message presenting a session
type SetMessageInput struct {
	Key       string
	ChannelID string
	MessageID string
}
