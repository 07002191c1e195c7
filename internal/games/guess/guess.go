// Package guess implements the number guessing game: find a secret between 1 and 10
// in three attempts.
package guess

import (
	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
)

const (
	MaxNumber = 10
	Attempts  = 3

	// Payout is the total returned on a win, as a multiple of the wager
	Payout = 5
)

// Hint tells the player where the secret lies relative to the last guess
type Hint string

const (
	HintNone   Hint = ""
	HintHigher Hint = "higher"
	HintLower  Hint = "lower"
)

// State is the guess game state
type State struct {
	Secret       int
	AttemptsLeft int
	Guesses      []int
	LastHint     Hint
}

// Guessed reports whether n was already tried
func (s *State) Guessed(n int) bool {
	for _, g := range s.Guesses {
		if g == n {
			return true
		}
	}
	return false
}

// Engine implements games.Engine
type Engine struct{}

// New creates a new number guess engine
func New() *Engine {
	return &Engine{}
}

// Kind returns models.GameKindGuess
func (e *Engine) Kind() models.GameKind {
	return models.GameKindGuess
}

// Start picks the secret number
func (e *Engine) Start(input *games.StartInput) (*games.Step, error) {
	return &games.Step{
		State: &State{
			Secret:       random.Between(input.Rand, 1, MaxNumber),
			AttemptsLeft: Attempts,
		},
	}, nil
}

// Apply checks a guess. A miss returns a hint until the attempts run out.
func (e *Engine) Apply(input *games.ApplyInput) (*games.Step, error) {
	state, ok := input.State.(*State)
	if !ok {
		return nil, games.ErrUnknownState
	}

	n := input.Action.Index
	if input.Action.Type != models.ActionChoice || n < 1 || n > MaxNumber || state.Guessed(n) {
		return nil, games.ErrInvalidAction
	}

	next := &State{
		Secret:       state.Secret,
		AttemptsLeft: state.AttemptsLeft - 1,
		Guesses:      append(append([]int{}, state.Guesses...), n),
	}

	switch {
	case n == state.Secret:
		return &games.Step{State: next, Outcome: models.Win((Payout-1)*input.Wager, "correct")}, nil
	case next.AttemptsLeft <= 0:
		return &games.Step{State: next, Outcome: models.Lose(input.Wager, "out_of_attempts")}, nil
	case n < state.Secret:
		next.LastHint = HintHigher
	default:
		next.LastHint = HintLower
	}

	return &games.Step{State: next}, nil
}
