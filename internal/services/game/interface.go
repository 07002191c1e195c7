package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/arcade/internal/services/game Service

import (
	"context"

	"github.com/KirkDiggler/arcade/internal/models"
)

// Service orchestrates mini-games: preconditions, engine routing, settlement and timeouts
type Service interface {
	// StartGame checks bet, cooldown, balance and active sessions, then opens a session
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// HandleAction applies one player action to a session and settles it when it ends
	HandleAction(ctx context.Context, input *HandleActionInput) (*HandleActionOutput, error)

	// PlayInstant plays and settles a single-shot game
	PlayInstant(ctx context.Context, input *PlayInstantInput) (*PlayInstantOutput, error)

	// FindActiveSession returns the user's live session of a kind
	FindActiveSession(ctx context.Context, input *FindActiveSessionInput) (*models.Session, error)

	// SetMessage records the message presenting a session, so expiry can edit it
	SetMessage(ctx context.Context, input *SetMessageInput) error
}
