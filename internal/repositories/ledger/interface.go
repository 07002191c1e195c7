package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/arcade/internal/repositories/ledger Repository

import (
	"context"

	"github.com/KirkDiggler/arcade/internal/models"
)

// Repository defines the interface for user record persistence
type Repository interface {
	// GetUser retrieves a user record, returning ErrUserNotFound when absent
	GetUser(ctx context.Context, input *GetUserInput) (*models.UserRecord, error)

	// SaveUser persists a user record and refreshes its leaderboard scores
	SaveUser(ctx context.Context, input *SaveUserInput) error

	// SaveUsers persists several user records in one transaction
	SaveUsers(ctx context.Context, input *SaveUsersInput) error

	// DeleteUser removes a user record and its leaderboard scores
	DeleteUser(ctx context.Context, input *DeleteUserInput) error

	// GetLeaderboard returns the top users for a metric
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// CountUsers returns the number of stored users
	CountUsers(ctx context.Context) (int64, error)
}
