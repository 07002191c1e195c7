package messaging

import (
	"time"

	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
)

// Config holds configuration for the messaging service
type Config struct {
	// Rand picks flavor lines, a time-seeded source is used when nil
	Rand random.Source
}

// RenderSessionInput contains a session to present
type RenderSessionInput struct {
	Session *models.Session

	// Settlement is set once the session has ended
	Settlement *models.Settlement
}

// RenderInstantInput contains a single-shot result to present
type RenderInstantInput struct {
	Kind       models.GameKind
	Wager      int64
	Play       *games.Play
	Settlement *models.Settlement
}

// RenderExpiredInput contains a timed-out session
type RenderExpiredInput struct {
	Session *models.Session

	// Settlement is the forfeit, nil for unwagered sessions
	Settlement *models.Settlement
}

// TradeStatus is the state a trade offer is shown in
type TradeStatus string

const (
	TradePending  TradeStatus = "pending"
	TradeAccepted TradeStatus = "accepted"
	TradeDeclined TradeStatus = "declined"
	TradeExpired  TradeStatus = "expired"
)

// RenderTradeInput contains a trade offer to present
type RenderTradeInput struct {
	// SessionKey binds the accept and decline options, only used while pending
	SessionKey string

	Offer       *models.TradeOffer
	OfferItem   *models.Item
	RequestItem *models.Item
	Status      TradeStatus
}

// RenderOutput contains the display to send
type RenderOutput struct {
	Display *models.Display
}

// GetErrorMessageInput contains the error to explain
type GetErrorMessageInput struct {
	ErrorType ErrorType

	// Amount is the shortfall for insufficient funds or the upper bet limit
	Amount int64

	// MinAmount is the lower bet limit
	MinAmount int64

	// Remaining is the wait for cooldowns and daily claims
	Remaining time.Duration

	// Kind is the game involved, if any
	Kind models.GameKind

	// Detail replaces the default message when set
	Detail string
}

// GetErrorMessageOutput contains the explanation shown to the user
type GetErrorMessageOutput struct {
	Title   string
	Message string
}

// NotifyInput contains a display to put on an existing message
type NotifyInput struct {
	ChannelID string
	MessageID string
	Display   *models.Display
}
