package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/arcade/internal/services/ledger Service

import (
	"context"

	"github.com/KirkDiggler/arcade/internal/models"
)

// Service defines the interface for economy ledger operations
type Service interface {
	// GetUser returns a user's record, creating the default record on first sight
	GetUser(ctx context.Context, input *GetUserInput) (*GetUserOutput, error)

	// Credit adds coins to a user's balance
	Credit(ctx context.Context, input *CreditInput) (*BalanceOutput, error)

	// Debit removes coins, failing with InsufficientFunds when the balance is too low
	Debit(ctx context.Context, input *DebitInput) (*BalanceOutput, error)

	// SetBalance overwrites a user's balance
	SetBalance(ctx context.Context, input *SetBalanceInput) (*BalanceOutput, error)

	// ApplyGameResult settles a terminal outcome: balance, stats and cooldown in one write
	ApplyGameResult(ctx context.Context, input *ApplyGameResultInput) (*models.Settlement, error)

	// CheckCooldown reports whether a user may start a game kind
	CheckCooldown(ctx context.Context, input *CheckCooldownInput) (*CheckCooldownOutput, error)

	// StampCooldown records now as the last play of a game kind
	StampCooldown(ctx context.Context, input *StampCooldownInput) error

	// ClaimDaily grants the daily reward once per calendar day
	ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error)

	// GetLeaderboard returns the top users by a metric
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// AddItem appends an item to a user's inventory
	AddItem(ctx context.Context, input *AddItemInput) error

	// RemoveItem takes an item out of a user's inventory
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)

	// ResetUser deletes a user's record so the next read starts fresh
	ResetUser(ctx context.Context, input *ResetUserInput) error

	// Mutate runs a read-modify-write over one or more users under their locks.
	// Nothing is saved when Apply returns an error.
	Mutate(ctx context.Context, input *MutateInput) (*MutateOutput, error)

	// CountUsers returns the number of known users
	CountUsers(ctx context.Context) (int64, error)
}
