package discord

import (
	"errors"

	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/services/admin"
	"github.com/KirkDiggler/arcade/internal/services/game"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/KirkDiggler/arcade/internal/services/messaging"
	"github.com/KirkDiggler/arcade/internal/services/session"
	"github.com/KirkDiggler/arcade/internal/services/shop"
	"github.com/KirkDiggler/arcade/internal/services/trade"
)

// tradeDetails explains each trade validation failure
var tradeDetails = map[error]string{
	trade.ErrSelfTrade:          "You can't trade with yourself!",
	trade.ErrBotTrade:           "You can't trade with bots!",
	trade.ErrEmptyTrade:         "You must offer or request something!",
	trade.ErrNegativeCoins:      "Coin amounts can't be negative.",
	trade.ErrOfferItemMissing:   "The offered item is no longer in the sender's inventory.",
	trade.ErrRequestItemMissing: "The requested item is no longer in the target's inventory.",
	trade.ErrSenderFunds:        "The sender doesn't have enough coins.",
	trade.ErrTargetFunds:        "The target doesn't have enough coins.",
}

// classifyError maps a service error onto the message shown to the user
func classifyError(err error) *messaging.GetErrorMessageInput {
	var (
		betRange *games.BetRangeError
		funds    *ledger.InsufficientFundsError
		cooldown *ledger.CooldownError
		claimed  *ledger.AlreadyClaimedError
		active   *session.ActiveError
	)

	switch {
	case errors.As(err, &betRange):
		return &messaging.GetErrorMessageInput{
			ErrorType: messaging.ErrorTypeInvalidBet,
			Kind:      betRange.Kind,
			MinAmount: betRange.Min,
			Amount:    betRange.Max,
		}
	case errors.As(err, &funds):
		return &messaging.GetErrorMessageInput{
			ErrorType: messaging.ErrorTypeInsufficientFunds,
			Amount:    funds.Need - funds.Have,
		}
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeInsufficientFunds}
	case errors.Is(err, games.ErrCannotAfford):
		return &messaging.GetErrorMessageInput{
			ErrorType: messaging.ErrorTypeInsufficientFunds,
			Detail:    "You need twice your bet to double down.",
		}
	case errors.As(err, &cooldown):
		return &messaging.GetErrorMessageInput{
			ErrorType: messaging.ErrorTypeOnCooldown,
			Remaining: cooldown.Remaining,
		}
	case errors.As(err, &claimed):
		return &messaging.GetErrorMessageInput{
			ErrorType: messaging.ErrorTypeAlreadyClaimed,
			Remaining: claimed.Remaining,
		}
	case errors.As(err, &active):
		return &messaging.GetErrorMessageInput{
			ErrorType: messaging.ErrorTypeSessionActive,
			Kind:      active.Kind,
		}
	case errors.Is(err, session.ErrSessionNotFound):
		return &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeSessionExpired}
	case errors.Is(err, session.ErrNotOwner):
		return &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeNotOwner}
	case errors.Is(err, games.ErrInvalidAction), errors.Is(err, games.ErrUnknownState):
		return &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeInvalidAction}
	case errors.Is(err, games.ErrUnknownKind), errors.Is(err, game.ErrNoEngine),
		errors.Is(err, game.ErrInstantKind), errors.Is(err, game.ErrSessionKind):
		return &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeUnknownGame}
	case errors.Is(err, shop.ErrItemNotFound):
		return &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeItemNotFound}
	case errors.Is(err, shop.ErrAlreadyOwned):
		return &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeAlreadyOwned}
	case errors.Is(err, ledger.ErrItemNotOwned):
		return &messaging.GetErrorMessageInput{
			ErrorType: messaging.ErrorTypeItemNotFound,
			Detail:    "That item is not in the inventory.",
		}
	case errors.Is(err, admin.ErrInvalidKey):
		return &messaging.GetErrorMessageInput{
			ErrorType: messaging.ErrorTypeAccessDenied,
			Detail:    "Invalid admin key.",
		}
	case errors.Is(err, admin.ErrNotEnabled):
		return &messaging.GetErrorMessageInput{
			ErrorType: messaging.ErrorTypeAccessDenied,
			Detail:    "Admin login is not enabled.",
		}
	case errors.Is(err, admin.ErrAccessDenied):
		return &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeAccessDenied}
	case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, ledger.ErrNegativeBalance),
		errors.Is(err, shop.ErrInvalidPrice), errors.Is(err, shop.ErrInvalidRole):
		return &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeInvalidInput}
	}

	for target, detail := range tradeDetails {
		if errors.Is(err, target) {
			return &messaging.GetErrorMessageInput{
				ErrorType: messaging.ErrorTypeInvalidTrade,
				Detail:    detail,
			}
		}
	}

	return &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeUnknown}
}

// classifyTradeError is classifyError for an accept whose offer no longer validates
func classifyTradeError(err error) *messaging.GetErrorMessageInput {
	input := classifyError(err)
	if input.ErrorType == messaging.ErrorTypeInvalidTrade {
		input.ErrorType = messaging.ErrorTypeTradeFailed
	}
	return input
}

// isSilent reports errors acknowledged without a reply, the message keeps its current state
func isSilent(err error) bool {
	return errors.Is(err, games.ErrInvalidAction)
}
