package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/arcade/internal/services/messaging Service,Notifier

import "context"

// Service turns game state and errors into platform-neutral displays
type Service interface {
	// RenderSession presents a live session, or its final state when a settlement is given
	RenderSession(ctx context.Context, input *RenderSessionInput) (*RenderOutput, error)

	// RenderInstant presents the result of a single-shot game
	RenderInstant(ctx context.Context, input *RenderInstantInput) (*RenderOutput, error)

	// RenderExpired presents a session that ran out of time
	RenderExpired(ctx context.Context, input *RenderExpiredInput) (*RenderOutput, error)

	// RenderTrade presents a trade offer in the given status
	RenderTrade(ctx context.Context, input *RenderTradeInput) (*RenderOutput, error)

	// RenderError presents an error as a display
	RenderError(ctx context.Context, input *GetErrorMessageInput) (*RenderOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}

// Notifier replaces the display of an already sent message
type Notifier interface {
	Notify(ctx context.Context, input *NotifyInput) error
}
