package ledger

import "github.com/KirkDiggler/arcade/internal/models"

// GetUserInput contains parameters for retrieving a user
type GetUserInput struct {
	UserID string
}

// SaveUserInput contains parameters for saving a user
type SaveUserInput struct {
	User *models.UserRecord
}

// SaveUsersInput contains parameters for saving several users at once
type SaveUsersInput struct {
	Users []*models.UserRecord
}

// DeleteUserInput contains parameters for deleting a user
type DeleteUserInput struct {
	UserID string
}

// GetLeaderboardInput contains parameters for reading a leaderboard
type GetLeaderboardInput struct {
	Metric models.LeaderboardMetric
	Limit  int
}

// GetLeaderboardOutput contains the ranked entries, best first
type GetLeaderboardOutput struct {
	Entries []*models.LeaderboardEntry
}
