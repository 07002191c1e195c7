package models

import (
	"time"
)

// Stats holds the aggregate game statistics for a user
type Stats struct {
	// GamesPlayed counts every settled game, pushes included
	GamesPlayed int64 `json:"gamesPlayed"`

	// GamesWon counts settled games with a win outcome
	GamesWon int64 `json:"gamesWon"`

	// TotalEarned is the sum of all positive credits
	TotalEarned int64 `json:"totalEarned"`

	// TotalSpent is the sum of all debits
	TotalSpent int64 `json:"totalSpent"`
}

// WinRate returns the percentage of played games that were won
func (s Stats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.GamesWon) / float64(s.GamesPlayed) * 100
}

// UserRecord is the persisted economy state of a single user
type UserRecord struct {
	// ID is the Discord user ID
	ID string `json:"id"`

	// Balance is the user's coin balance, never negative
	Balance int64 `json:"balance"`

	// Inventory holds the items the user owns, in purchase order
	Inventory []*Item `json:"inventory"`

	// Stats holds aggregate game statistics
	Stats Stats `json:"stats"`

	// DailyStreak is the number of consecutive days the daily reward was claimed
	DailyStreak int `json:"dailyStreak"`

	// LastDaily is when the daily reward was last claimed
	LastDaily time.Time `json:"lastDaily"`

	// Cooldowns maps a game kind to the time it was last settled
	Cooldowns map[GameKind]time.Time `json:"cooldowns"`

	// CreatedAt is when the record was first created
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserRecord returns the default record for a user seen for the first time
func NewUserRecord(id string, balance int64, now time.Time) *UserRecord {
	return &UserRecord{
		ID:        id,
		Balance:   balance,
		Inventory: []*Item{},
		Cooldowns: make(map[GameKind]time.Time),
		CreatedAt: now,
	}
}

// HasItem reports whether the user owns an item with the given ID
func (u *UserRecord) HasItem(itemID string) bool {
	return u.FindItem(itemID) >= 0
}

// FindItem returns the inventory index of the item, or -1
func (u *UserRecord) FindItem(itemID string) int {
	for i, item := range u.Inventory {
		if item != nil && item.ID == itemID {
			return i
		}
	}
	return -1
}

// LeaderboardMetric selects the stat a leaderboard is ranked by
type LeaderboardMetric string

const (
	LeaderboardBalance LeaderboardMetric = "balance"
	LeaderboardWins    LeaderboardMetric = "wins"
	LeaderboardGames   LeaderboardMetric = "games"
)

// Value returns the user's score for the metric
func (m LeaderboardMetric) Value(u *UserRecord) int64 {
	switch m {
	case LeaderboardWins:
		return u.Stats.GamesWon
	case LeaderboardGames:
		return u.Stats.GamesPlayed
	default:
		return u.Balance
	}
}

// LeaderboardEntry is a single ranked row
type LeaderboardEntry struct {
	Rank   int
	UserID string
	Score  int64
}
