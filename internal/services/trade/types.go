package trade

import (
	"time"

	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/KirkDiggler/arcade/internal/services/messaging"
	"github.com/KirkDiggler/arcade/internal/services/session"
)

// DefaultTTL is how long an offer stays open
const DefaultTTL = 60 * time.Second

// Config holds configuration for the trade service
type Config struct {
	Ledger    ledger.Service
	Registry  session.Registry
	Messaging messaging.Service

	// Notifier edits the offer message when it expires, optional
	Notifier messaging.Notifier

	// TTL defaults to DefaultTTL
	TTL time.Duration
}

// Pending is the session payload of an open offer
type Pending struct {
	Offer *models.TradeOffer

	// Items are captured at proposal for display
	OfferItem   *models.Item
	RequestItem *models.Item
}

// ProposeInput contains a new offer
type ProposeInput struct {
	SenderID string
	TargetID string

	// TargetIsBot rejects offers to bot accounts
	TargetIsBot bool

	ChannelID string

	OfferItemID   string
	OfferCoins    int64
	RequestItemID string
	RequestCoins  int64
}

// ProposeOutput contains the held offer
type ProposeOutput struct {
	Session *models.Session
	Pending *Pending
	Display *models.Display
}

// RespondInput contains the target's answer
type RespondInput struct {
	Key     string
	ActorID string
	Accept  bool
}

// RespondOutput contains the resolved offer
type RespondOutput struct {
	Pending  *Pending
	Accepted bool
	Display  *models.Display
}
