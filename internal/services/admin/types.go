package admin

import (
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/KirkDiggler/arcade/internal/services/session"
	"github.com/KirkDiggler/arcade/internal/services/shop"
)

// Godmode stat values
const (
	GodmodeGames  int64 = 9999
	GodmodeEarned int64 = 999_999_999
	GodmodeStreak       = 365
)

// Config holds configuration for the admin service
type Config struct {
	Ledger   ledger.Service
	Shop     shop.Service
	Registry session.Registry

	// AdminIDs are always authorized
	AdminIDs []string

	// KeyHash is the bcrypt hash checked by Login, login is disabled when empty
	KeyHash string
}

// LoginInput contains an admin key attempt
type LoginInput struct {
	UserID string
	Key    string
}

// AuthorizeInput contains the user to check
type AuthorizeInput struct {
	UserID string
}

// AmountInput contains a target user and an amount
type AmountInput struct {
	UserID string
	Amount int64
}

// GiveItemInput contains parameters for granting an item
type GiveItemInput struct {
	UserID string

	// ItemID is a catalog item ID or role ID
	ItemID string
}

// GiveItemOutput contains the granted item
type GiveItemOutput struct {
	Item *models.Item
}

// ResetInput contains the user to reset
type ResetInput struct {
	UserID string
}

// GodmodeInput contains the user to max out
type GodmodeInput struct {
	UserID string
}

// GodmodeOutput contains the resulting record
type GodmodeOutput struct {
	User *models.UserRecord
}

// StatsOutput summarizes the running economy
type StatsOutput struct {
	Users          int64
	ActiveSessions int
}
