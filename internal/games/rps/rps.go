// Package rps implements rock-paper-scissors against a random bot throw.
package rps

import (
	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
)

const (
	Rock     = 0
	Paper    = 1
	Scissors = 2
)

// Throws names each throw by index
var Throws = []string{"Rock", "Paper", "Scissors"}

// State is the rock-paper-scissors state
type State struct {
	// Player and Bot are -1 until thrown
	Player int
	Bot    int
}

// Engine implements games.Engine
type Engine struct{}

// New creates a new rock paper scissors engine
func New() *Engine {
	return &Engine{}
}

// Kind returns models.GameKindRPS
func (e *Engine) Kind() models.GameKind {
	return models.GameKindRPS
}

// Start waits for the player to throw
func (e *Engine) Start(input *games.StartInput) (*games.Step, error) {
	return &games.Step{State: &State{Player: -1, Bot: -1}}, nil
}

// Apply throws for the bot and settles the round
func (e *Engine) Apply(input *games.ApplyInput) (*games.Step, error) {
	if _, ok := input.State.(*State); !ok {
		return nil, games.ErrUnknownState
	}

	throw := input.Action.Index
	if input.Action.Type != models.ActionChoice || throw < Rock || throw > Scissors {
		return nil, games.ErrInvalidAction
	}

	next := &State{Player: throw, Bot: input.Rand.Intn(len(Throws))}
	switch (next.Player - next.Bot + 3) % 3 {
	case 0:
		return &games.Step{State: next, Outcome: models.Push("same_throw")}, nil
	case 1:
		return &games.Step{State: next, Outcome: models.Win(input.Wager, "beats_bot")}, nil
	default:
		return &games.Step{State: next, Outcome: models.Lose(input.Wager, "beaten_by_bot")}, nil
	}
}
