package admin

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/arcade/internal/services/admin Service

import (
	"context"

	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/KirkDiggler/arcade/internal/services/shop"
)

// Service defines the interface for operator actions on the economy
type Service interface {
	// Login grants admin rights for the process lifetime when the key matches
	Login(ctx context.Context, input *LoginInput) error

	// Authorize fails with ErrAccessDenied unless the user is an admin
	Authorize(ctx context.Context, input *AuthorizeInput) error

	// Give credits coins to a user
	Give(ctx context.Context, input *AmountInput) (*ledger.BalanceOutput, error)

	// Take debits coins from a user, stopping at zero
	Take(ctx context.Context, input *AmountInput) (*ledger.BalanceOutput, error)

	// SetBalance overwrites a user's balance
	SetBalance(ctx context.Context, input *AmountInput) (*ledger.BalanceOutput, error)

	// GiveItem grants a catalog item without charging
	GiveItem(ctx context.Context, input *GiveItemInput) (*GiveItemOutput, error)

	// Reset wipes a user back to the default record
	Reset(ctx context.Context, input *ResetInput) error

	// Godmode maxes out a user's balance, inventory and stats
	Godmode(ctx context.Context, input *GodmodeInput) (*GodmodeOutput, error)

	// SaveRole adds or updates a shop role
	SaveRole(ctx context.Context, input *shop.SaveRoleInput) (*shop.SaveRoleOutput, error)

	// RemoveRole deletes a shop role
	RemoveRole(ctx context.Context, input *shop.RemoveRoleInput) (*shop.RemoveRoleOutput, error)

	// Stats summarizes the running economy
	Stats(ctx context.Context) (*StatsOutput, error)
}
