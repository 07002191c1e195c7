package session

//go:generate mockgen -package=mocks -destination=mocks/mock_registry.go github.com/KirkDiggler/arcade/internal/services/session Registry

import (
	"context"

	"github.com/KirkDiggler/arcade/internal/models"
)

// ExpiryHandler is called once for every session removed by its timeout.
// It runs on the timer goroutine after the session has left the registry.
type ExpiryHandler func(ctx context.Context, sess *models.Session)

// Registry holds the in-memory sessions of every multi-step interaction
type Registry interface {
	// Create stores a new session under a fresh key and arms its expiry timer
	Create(ctx context.Context, input *CreateInput) (*models.Session, error)

	// Get returns a snapshot of a live session
	Get(ctx context.Context, input *GetInput) (*models.Session, error)

	// FindByOwner returns the newest live session of a kind owned by a user
	FindByOwner(ctx context.Context, input *FindByOwnerInput) (*models.Session, error)

	// Remove claims and deletes a session without calling its expiry handler
	Remove(ctx context.Context, input *RemoveInput) (*models.Session, error)

	// ScheduleExpiry replaces a session's timer with a new timeout
	ScheduleExpiry(ctx context.Context, input *ScheduleExpiryInput) error

	// Act runs one owner action against a session, serialized with every other
	// action and with expiry. A terminal transition removes the session, so
	// exactly one caller ever observes it.
	Act(ctx context.Context, input *ActInput) (*ActOutput, error)

	// SetMessage records where the session is displayed
	SetMessage(ctx context.Context, input *SetMessageInput) error

	// OnExpire registers the handler for expired sessions of a kind
	OnExpire(kind models.GameKind, handler ExpiryHandler)

	// Sweep expires every session idle past its timeout, backstopping lost timers
	Sweep(ctx context.Context) (*SweepOutput, error)

	// Count returns the number of live sessions
	Count() int
}
