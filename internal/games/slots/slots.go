// Package slots implements a three-reel weighted slot machine.
package slots

import (
	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
)

// Symbol is a reel symbol with its draw weight and three-of-a-kind multiplier
type Symbol struct {
	Name       string
	Weight     int
	Multiplier int64
}

// Symbols from most to least common
var Symbols = []Symbol{
	{Name: "Cherry", Weight: 30, Multiplier: 3},
	{Name: "Lemon", Weight: 25, Multiplier: 5},
	{Name: "Orange", Weight: 20, Multiplier: 8},
	{Name: "Grape", Weight: 12, Multiplier: 10},
	{Name: "Bell", Weight: 8, Multiplier: 15},
	{Name: "Diamond", Weight: 4, Multiplier: 25},
	{Name: "Seven", Weight: 1, Multiplier: 50},
}

const Reels = 3

// Result holds the symbol index on each reel and the total payout
type Result struct {
	Reels  [Reels]int
	Payout int64
}

// Jackpot reports whether all reels show the rarest symbol
func (r *Result) Jackpot() bool {
	last := len(Symbols) - 1
	return r.Reels[0] == last && r.Reels[1] == last && r.Reels[2] == last
}

// Payout returns the total paid for a spin
func Payout(reels [Reels]int, wager int64) int64 {
	a, b, c := reels[0], reels[1], reels[2]
	switch {
	case a == b && b == c:
		return wager * Symbols[a].Multiplier
	case a == b || b == c || a == c:
		return wager * 3 / 2
	default:
		return 0
	}
}

// Game implements games.Instant
type Game struct {
	weights []int
}

// New creates a new slot machine with the default reel weights
func New() *Game {
	weights := make([]int, len(Symbols))
	for i, s := range Symbols {
		weights[i] = s.Weight
	}
	return &Game{weights: weights}
}

// Kind returns models.GameKindSlots
func (g *Game) Kind() models.GameKind {
	return models.GameKindSlots
}

// Play spins the reels and pays out the result
func (g *Game) Play(input *games.PlayInput) (*games.Play, error) {
	result := &Result{}
	for i := range result.Reels {
		result.Reels[i] = random.Weighted(input.Rand, g.weights)
	}
	result.Payout = Payout(result.Reels, input.Wager)

	if result.Payout == 0 {
		return &games.Play{Detail: result, Outcome: models.Lose(input.Wager, "no_match")}, nil
	}
	return &games.Play{Detail: result, Outcome: models.Win(result.Payout-input.Wager, "match")}, nil
}
