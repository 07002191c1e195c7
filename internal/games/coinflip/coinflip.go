// Package coinflip implements a single heads-or-tails call.
package coinflip

import (
	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
)

const (
	Heads = 0
	Tails = 1
)

// Sides names each side by index
var Sides = []string{"Heads", "Tails"}

// State is the coin flip state
type State struct {
	// Call and Result are -1 until the coin is flipped
	Call   int
	Result int
}

// Engine implements games.Engine
type Engine struct{}

// New creates a new coin flip engine
func New() *Engine {
	return &Engine{}
}

// Kind returns models.GameKindCoinFlip
func (e *Engine) Kind() models.GameKind {
	return models.GameKindCoinFlip
}

// Start waits for a heads or tails call
func (e *Engine) Start(input *games.StartInput) (*games.Step, error) {
	return &games.Step{State: &State{Call: -1, Result: -1}}, nil
}

// Apply flips the coin and settles the call
func (e *Engine) Apply(input *games.ApplyInput) (*games.Step, error) {
	if _, ok := input.State.(*State); !ok {
		return nil, games.ErrUnknownState
	}

	call := input.Action.Index
	if input.Action.Type != models.ActionChoice || (call != Heads && call != Tails) {
		return nil, games.ErrInvalidAction
	}

	next := &State{Call: call, Result: input.Rand.Intn(2)}
	if next.Result == call {
		return &games.Step{State: next, Outcome: models.Win(input.Wager, "called_it")}, nil
	}
	return &games.Step{State: next, Outcome: models.Lose(input.Wager, "wrong_side")}, nil
}
