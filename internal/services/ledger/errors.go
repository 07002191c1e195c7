package ledger

import (
	"fmt"
	"math"
	"time"
)

// LedgerError is a custom error type for ledger errors
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig         LedgerError = "config cannot be nil"
	ErrNilRepository     LedgerError = "ledger repository cannot be nil"
	ErrNilClock          LedgerError = "clock cannot be nil"
	ErrNilLocks          LedgerError = "user lock cannot be nil"
	ErrInvalidInput      LedgerError = "input cannot be nil"
	ErrInvalidUserID     LedgerError = "user ID cannot be empty"
	ErrInvalidAmount     LedgerError = "amount must be positive"
	ErrNegativeBalance   LedgerError = "balance cannot be negative"
	ErrInsufficientFunds LedgerError = "insufficient funds"
	ErrOnCooldown        LedgerError = "game is on cooldown"
	ErrAlreadyClaimed    LedgerError = "daily reward already claimed"
	ErrItemNotOwned      LedgerError = "item not in inventory"
)

// InsufficientFundsError reports how much was needed
type InsufficientFundsError struct {
	Need int64
	Have int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: need %d, have %d", ErrInsufficientFunds, e.Need, e.Have)
}

// Is matches ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// CooldownError reports the time left before a kind can be played again
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: wait %ds", ErrOnCooldown, e.RemainingSeconds())
}

// Is matches ErrOnCooldown
func (e *CooldownError) Is(target error) bool {
	return target == ErrOnCooldown
}

// RemainingSeconds rounds the remaining time up to whole seconds
func (e *CooldownError) RemainingSeconds() int {
	return ceilSeconds(e.Remaining)
}

// AlreadyClaimedError reports the time until the next daily claim
type AlreadyClaimedError struct {
	Remaining time.Duration
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("%s: next claim in %s", ErrAlreadyClaimed, e.Remaining.Round(time.Minute))
}

// Is matches ErrAlreadyClaimed
func (e *AlreadyClaimedError) Is(target error) bool {
	return target == ErrAlreadyClaimed
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}
