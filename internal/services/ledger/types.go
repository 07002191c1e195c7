package ledger

import (
	"time"

	"github.com/KirkDiggler/arcade/internal/common/clock"
	"github.com/KirkDiggler/arcade/internal/common/lock"
	"github.com/KirkDiggler/arcade/internal/models"
	ledgerRepo "github.com/KirkDiggler/arcade/internal/repositories/ledger"
)

const (
	DefaultStartingBalance int64 = 100
	DefaultDailyBase       int64 = 25
	DefaultStreakBonus     int64 = 5
	DefaultMaxStreakBonus  int64 = 50
	DefaultLeaderboardSize       = 10
	GodmodeBalance         int64 = 999_999_999
)

// Config holds configuration for the ledger service
type Config struct {
	// Repository stores user records
	Repository ledgerRepo.Repository

	// Clock for time-based operations
	Clock clock.Clock

	// Locks serializes mutations per user, a fresh lock is used when nil
	Locks *lock.UserLock

	// StartingBalance is the balance of a newly seen user
	StartingBalance int64

	// Location decides calendar days for the daily reward
	Location *time.Location

	// DailyBase is the flat daily reward
	DailyBase int64

	// StreakBonus is added per streak day
	StreakBonus int64

	// MaxStreakBonus caps the streak bonus
	MaxStreakBonus int64
}

// GetUserInput contains parameters for reading a user
type GetUserInput struct {
	UserID string
}

// GetUserOutput contains the user record
type GetUserOutput struct {
	User *models.UserRecord
}

// CreditInput contains parameters for crediting coins
type CreditInput struct {
	UserID string
	Amount int64
}

// DebitInput contains parameters for debiting coins
type DebitInput struct {
	UserID string
	Amount int64
}

// SetBalanceInput contains parameters for overwriting a balance
type SetBalanceInput struct {
	UserID  string
	Balance int64
}

// BalanceOutput contains the balance after a change
type BalanceOutput struct {
	Balance int64

	// Applied is the signed change actually made
	Applied int64
}

// ApplyGameResultInput contains a terminal outcome to settle
type ApplyGameResultInput struct {
	UserID  string
	Kind    models.GameKind
	Outcome *models.Outcome
}

// CheckCooldownInput contains parameters for a cooldown check
type CheckCooldownInput struct {
	UserID string
	Kind   models.GameKind
	Window time.Duration
}

// CheckCooldownOutput reports whether the kind can be played
type CheckCooldownOutput struct {
	CanPlay bool

	// Remaining is zero when CanPlay is true
	Remaining time.Duration
}

// RemainingSeconds rounds the remaining time up to whole seconds
func (o *CheckCooldownOutput) RemainingSeconds() int {
	return ceilSeconds(o.Remaining)
}

// StampCooldownInput contains parameters for stamping a cooldown
type StampCooldownInput struct {
	UserID string
	Kind   models.GameKind
}

// ClaimDailyInput contains parameters for claiming the daily reward
type ClaimDailyInput struct {
	UserID string
}

// ClaimDailyOutput contains the claimed reward
type ClaimDailyOutput struct {
	Reward  int64
	Streak  int
	Balance int64
}

// GetLeaderboardInput contains parameters for a leaderboard read
type GetLeaderboardInput struct {
	Metric models.LeaderboardMetric

	// Limit defaults to DefaultLeaderboardSize
	Limit int
}

// GetLeaderboardOutput contains the ranked entries
type GetLeaderboardOutput struct {
	Metric  models.LeaderboardMetric
	Entries []*models.LeaderboardEntry
}

// AddItemInput contains parameters for granting an item
type AddItemInput struct {
	UserID string
	Item   *models.Item
}

// RemoveItemInput contains parameters for taking an item
type RemoveItemInput struct {
	UserID string
	ItemID string
}

// RemoveItemOutput contains the removed item
type RemoveItemOutput struct {
	Item *models.Item
}

// ResetUserInput contains parameters for resetting a user
type ResetUserInput struct {
	UserID string
}

// MutateInput contains a read-modify-write over several users
type MutateInput struct {
	UserIDs []string

	// Apply receives every listed user's record keyed by ID
	Apply func(users map[string]*models.UserRecord) error
}

// MutateOutput contains the saved records
type MutateOutput struct {
	Users map[string]*models.UserRecord
}
