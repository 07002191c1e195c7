package trade

// TradeError is a custom error type for trade errors
type TradeError string

// Error implements the error interface
func (e TradeError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    TradeError = "config cannot be nil"
	ErrNilLedger    TradeError = "ledger service cannot be nil"
	ErrNilRegistry  TradeError = "session registry cannot be nil"
	ErrNilMessaging TradeError = "messaging service cannot be nil"
	ErrInvalidInput TradeError = "input cannot be nil"
	ErrInvalidUser  TradeError = "sender and target cannot be empty"

	ErrSelfTrade     TradeError = "cannot trade with yourself"
	ErrBotTrade      TradeError = "cannot trade with bots"
	ErrEmptyTrade    TradeError = "trade must offer or request something"
	ErrNegativeCoins TradeError = "coin amounts cannot be negative"

	// Both sides are checked at proposal and again at acceptance
	ErrOfferItemMissing   TradeError = "sender does not own the offered item"
	ErrRequestItemMissing TradeError = "target does not own the requested item"
	ErrSenderFunds        TradeError = "sender does not have enough coins"
	ErrTargetFunds        TradeError = "target does not have enough coins"

	ErrNotTrade TradeError = "session is not a trade"
)
