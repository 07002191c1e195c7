// Package dice implements the instant dice duel: higher roll wins.
package dice

import (
	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
)

const Sides = 6

// Result holds both rolls
type Result struct {
	Player int
	Bot    int
}

// Game implements games.Instant
type Game struct{}

// New creates a new dice game
func New() *Game {
	return &Game{}
}

// Kind returns models.GameKindDice
func (g *Game) Kind() models.GameKind {
	return models.GameKindDice
}

// Play rolls one die each for the player and the bot. The higher roll wins.
func (g *Game) Play(input *games.PlayInput) (*games.Play, error) {
	result := &Result{
		Player: random.Between(input.Rand, 1, Sides),
		Bot:    random.Between(input.Rand, 1, Sides),
	}

	var outcome *models.Outcome
	switch {
	case result.Player > result.Bot:
		outcome = models.Win(input.Wager, "higher_roll")
	case result.Player < result.Bot:
		outcome = models.Lose(input.Wager, "lower_roll")
	default:
		outcome = models.Push("same_roll")
	}

	return &games.Play{Detail: result, Outcome: outcome}, nil
}
