package trade

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/arcade/internal/services/trade Service

import (
	"context"
)

// Service defines the interface for trades between users
type Service interface {
	// Propose validates an offer and holds it for the target to answer
	Propose(ctx context.Context, input *ProposeInput) (*ProposeOutput, error)

	// Respond accepts or declines a pending offer. Only the target may respond.
	Respond(ctx context.Context, input *RespondInput) (*RespondOutput, error)
}
