package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/arcade/internal/models"
)

// customIDPrefix marks components created by this bot
const customIDPrefix = "arc"

// HandlerError is a custom error type for the Discord adapter
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig         HandlerError = "config cannot be nil"
	ErrEmptyToken        HandlerError = "token cannot be empty"
	ErrNilGameService    HandlerError = "game service cannot be nil"
	ErrNilLedgerService  HandlerError = "ledger service cannot be nil"
	ErrNilShopService    HandlerError = "shop service cannot be nil"
	ErrNilTradeService   HandlerError = "trade service cannot be nil"
	ErrNilAdminService   HandlerError = "admin service cannot be nil"
	ErrNilMessaging      HandlerError = "messaging service cannot be nil"
	ErrMalformedCustomID HandlerError = "malformed component custom ID"
	ErrUnknownCommand    HandlerError = "unknown command"
	ErrNilDisplay        HandlerError = "display cannot be nil"
	ErrNoGuild           HandlerError = "no guild to grant the role in"
	ErrNilSession        HandlerError = "discord session cannot be nil"
)

// EncodeAction packs an action into a component custom ID: arc:<key>:<type>:<index>
func EncodeAction(action models.Action) string {
	return fmt.Sprintf("%s:%s:%s:%d", customIDPrefix, action.SessionKey, action.Type, action.Index)
}

// ParseAction unpacks a custom ID produced by EncodeAction
func ParseAction(customID string) (models.Action, error) {
	parts := strings.Split(customID, ":")
	if len(parts) != 4 || parts[0] != customIDPrefix || parts[1] == "" || parts[2] == "" {
		return models.Action{}, fmt.Errorf("%w: %q", ErrMalformedCustomID, customID)
	}

	index, err := strconv.Atoi(parts[3])
	if err != nil {
		return models.Action{}, fmt.Errorf("%w: %q", ErrMalformedCustomID, customID)
	}

	return models.Action{
		SessionKey: parts[1],
		Type:       models.ActionType(parts[2]),
		Index:      index,
	}, nil
}
