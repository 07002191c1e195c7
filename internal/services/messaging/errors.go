package messaging

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/KirkDiggler/arcade/internal/models"
)

// ErrorType classifies an error for the user
type ErrorType string

const (
	ErrorTypeInvalidBet        ErrorType = "invalid_bet"
	ErrorTypeInsufficientFunds ErrorType = "insufficient_funds"
	ErrorTypeOnCooldown        ErrorType = "on_cooldown"
	ErrorTypeAlreadyClaimed    ErrorType = "already_claimed"
	ErrorTypeSessionActive     ErrorType = "session_active"
	ErrorTypeSessionExpired    ErrorType = "session_expired"
	ErrorTypeNotOwner          ErrorType = "not_owner"
	ErrorTypeInvalidAction     ErrorType = "invalid_action"
	ErrorTypeUnknownGame       ErrorType = "unknown_game"
	ErrorTypeItemNotFound      ErrorType = "item_not_found"
	ErrorTypeAlreadyOwned      ErrorType = "already_owned"
	ErrorTypeInvalidTrade      ErrorType = "invalid_trade"
	ErrorTypeTradeFailed       ErrorType = "trade_failed"
	ErrorTypeAccessDenied      ErrorType = "access_denied"
	ErrorTypeInvalidInput      ErrorType = "invalid_input"
	ErrorTypeUnknown           ErrorType = "unknown"
)

// ErrNilInput is returned when a render input is missing
var ErrNilInput = errors.New("input cannot be nil")

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out := &GetErrorMessageOutput{}
	switch input.ErrorType {
	case ErrorTypeInvalidBet:
		out.Title = "Invalid Bet"
		out.Message = fmt.Sprintf("Bet must be between **%s** and **%s**.", FormatCoins(input.MinAmount), FormatCoins(input.Amount))
	case ErrorTypeInsufficientFunds:
		out.Title = "Insufficient Funds"
		if input.Amount > 0 {
			out.Message = fmt.Sprintf("You need **%s** more.", FormatCoins(input.Amount))
		} else {
			out.Message = "You don't have enough coins!"
		}
	case ErrorTypeOnCooldown:
		out.Title = "Cooldown"
		out.Message = fmt.Sprintf("Please wait **%d** seconds before playing again.", ceilSeconds(input.Remaining))
	case ErrorTypeAlreadyClaimed:
		out.Title = "Already Claimed"
		out.Message = fmt.Sprintf("You already claimed your daily reward!\nCome back in **%s**.", FormatWait(input.Remaining))
	case ErrorTypeSessionActive:
		out.Title = "Game In Progress"
		out.Message = fmt.Sprintf("You already have an active %s game! Finish it first.", input.Kind)
	case ErrorTypeSessionExpired:
		out.Title = "Expired"
		out.Message = s.pick([]string{
			"This game has expired or was already completed.",
			"Too late! This one is already over.",
			"That game is gone. Start a new one!",
		})
	case ErrorTypeNotOwner:
		out.Title = "Not Yours"
		out.Message = s.pick([]string{
			"This is not your game!",
			"Hands off! Start your own game.",
			"Nice try, but this one belongs to someone else.",
		})
	case ErrorTypeInvalidAction:
		out.Title = "Invalid Move"
		out.Message = "That move isn't allowed right now."
	case ErrorTypeUnknownGame:
		out.Title = "Unknown Game"
		out.Message = "That game doesn't exist."
	case ErrorTypeItemNotFound:
		out.Title = "Item Not Found"
		out.Message = "That item does not exist in the shop."
	case ErrorTypeAlreadyOwned:
		out.Title = "Already Owned"
		out.Message = "You already own this item!"
	case ErrorTypeInvalidTrade:
		out.Title = "Invalid Trade"
		out.Message = "That trade can't be made."
	case ErrorTypeTradeFailed:
		out.Title = "Trade Failed"
		out.Message = "The trade could no longer be completed."
	case ErrorTypeAccessDenied:
		out.Title = "Access Denied"
		out.Message = "You must login first with `/admin login`."
	case ErrorTypeInvalidInput:
		out.Title = "Invalid Input"
		out.Message = "Please check your options and try again."
	default:
		out.Title = "Error"
		out.Message = s.pick([]string{
			"Something went wrong! Try again later.",
			"Oops! The dice got confused. Try again.",
			"Technical difficulties! The machines are being recalibrated.",
		})
	}

	if input.Detail != "" {
		out.Message = input.Detail
	}

	return out, nil
}

// RenderError presents an error as a display
func (s *service) RenderError(ctx context.Context, input *GetErrorMessageInput) (*RenderOutput, error) {
	msg, err := s.GetErrorMessage(ctx, input)
	if err != nil {
		return nil, err
	}

	return &RenderOutput{
		Display: &models.Display{
			Title:       "❌ " + msg.Title,
			Description: msg.Message,
			Color:       models.ColorError,
		},
	}, nil
}

// FormatWait renders a duration as hours and minutes, or seconds under a minute
func FormatWait(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", ceilSeconds(d))
	}
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}
