// Package games holds the contract shared by the mini-game engines and the catalog of
// per-kind rules. Engines are pure: they never touch the ledger or a rendering API and
// never mutate the state they are given.
package games

import (
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
)

// Engine drives a session-bearing mini-game
type Engine interface {
	// Kind returns the game kind the engine handles
	Kind() models.GameKind

	// Start builds the initial state. The returned step may already be terminal.
	Start(input *StartInput) (*Step, error)

	// Apply computes the transition for one player action
	Apply(input *ApplyInput) (*Step, error)
}

// Instant is a single-shot game settled in the same call that starts it
type Instant interface {
	Kind() models.GameKind
	Play(input *PlayInput) (*Play, error)
}

// StartInput contains parameters for starting a game
type StartInput struct {
	Wager int64
	Rand  random.Source
}

// ApplyInput contains parameters for applying an action
type ApplyInput struct {
	// State is the current engine state, as returned by a previous step
	State any

	Action models.Action
	Wager  int64

	// Balance is the player's current balance, for actions that raise the stake
	Balance int64

	Rand random.Source
}

// Step is the result of a transition
type Step struct {
	// State is the next engine state, also kept for display on terminal steps
	State any

	// Outcome is set when the game is over
	Outcome *models.Outcome
}

// Terminal reports whether the step ends the game
func (s *Step) Terminal() bool {
	return s.Outcome != nil
}

// PlayInput contains parameters for an instant game
type PlayInput struct {
	Wager int64
	Rand  random.Source
}

// Play is the result of an instant game
type Play struct {
	// Detail is the kind-specific result, e.g. the rolled dice
	Detail any

	Outcome *models.Outcome
}
