package games

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/arcade/internal/models"
)

// Rules are the fixed limits of a game kind
type Rules struct {
	Kind     models.GameKind
	MinBet   int64
	MaxBet   int64
	Cooldown time.Duration

	// TTL is the session inactivity timeout, zero for instant games
	TTL time.Duration
}

// Instant reports whether the kind settles without a session
func (r Rules) Instant() bool {
	return r.TTL == 0
}

// CheckBet validates a wager against the kind's range
func (r Rules) CheckBet(wager int64) error {
	if wager < r.MinBet || wager > r.MaxBet {
		return &BetRangeError{Kind: r.Kind, Min: r.MinBet, Max: r.MaxBet}
	}
	return nil
}

// BetRangeError reports the accepted wager range of a kind
type BetRangeError struct {
	Kind models.GameKind
	Min  int64
	Max  int64
}

func (e *BetRangeError) Error() string {
	return fmt.Sprintf("%s: %s accepts %d to %d", ErrBetOutOfRange, e.Kind, e.Min, e.Max)
}

// Is matches ErrBetOutOfRange
func (e *BetRangeError) Is(target error) bool {
	return target == ErrBetOutOfRange
}

var catalog = map[models.GameKind]Rules{
	models.GameKindBlackjack: {Kind: models.GameKindBlackjack, MinBet: 10, MaxBet: 1000, Cooldown: 20 * time.Second, TTL: 120 * time.Second},
	models.GameKindTicTacToe: {Kind: models.GameKindTicTacToe, MinBet: 5, MaxBet: 75, Cooldown: 45 * time.Second, TTL: 120 * time.Second},
	models.GameKindMemory:    {Kind: models.GameKindMemory, MinBet: 10, MaxBet: 300, Cooldown: 30 * time.Second, TTL: 180 * time.Second},
	models.GameKindHighLow:   {Kind: models.GameKindHighLow, MinBet: 10, MaxBet: 500, Cooldown: 10 * time.Second, TTL: 120 * time.Second},
	models.GameKindGuess:     {Kind: models.GameKindGuess, MinBet: 10, MaxBet: 500, Cooldown: 10 * time.Second, TTL: 60 * time.Second},
	models.GameKindTrivia:    {Kind: models.GameKindTrivia, MinBet: 5, MaxBet: 100, Cooldown: 45 * time.Second, TTL: 15 * time.Second},
	models.GameKindScramble:  {Kind: models.GameKindScramble, MinBet: 5, MaxBet: 100, Cooldown: 45 * time.Second, TTL: 30 * time.Second},
	models.GameKindCoinFlip:  {Kind: models.GameKindCoinFlip, MinBet: 5, MaxBet: 50, Cooldown: 20 * time.Second, TTL: 60 * time.Second},
	models.GameKindRPS:       {Kind: models.GameKindRPS, MinBet: 5, MaxBet: 75, Cooldown: 30 * time.Second, TTL: 60 * time.Second},
	models.GameKindDice:      {Kind: models.GameKindDice, MinBet: 10, MaxBet: 1000, Cooldown: 8 * time.Second},
	models.GameKindSlots:     {Kind: models.GameKindSlots, MinBet: 10, MaxBet: 500, Cooldown: 15 * time.Second},
}

// RulesFor returns the rules of a game kind
func RulesFor(kind models.GameKind) (Rules, error) {
	r, ok := catalog[kind]
	if !ok {
		return Rules{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return r, nil
}

// Kinds returns every game kind in the catalog
func Kinds() []models.GameKind {
	return []models.GameKind{
		models.GameKindBlackjack,
		models.GameKindTicTacToe,
		models.GameKindMemory,
		models.GameKindHighLow,
		models.GameKindGuess,
		models.GameKindTrivia,
		models.GameKindScramble,
		models.GameKindCoinFlip,
		models.GameKindRPS,
		models.GameKindDice,
		models.GameKindSlots,
	}
}
