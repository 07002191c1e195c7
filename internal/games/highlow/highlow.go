// Package highlow implements higher-or-lower: call whether the next number beats the
// current one and cash out a growing multiplier.
package highlow

import (
	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
)

const (
	MinStart = 2
	MaxStart = 99
	MinValue = 1
	MaxValue = 100

	// maxHalves caps the multiplier at 10x, counted in half steps
	maxHalves = 20
)

// State is the higher-or-lower game state
type State struct {
	Current int
	Streak  int

	// Previous is the value before the last draw, zero before the first call
	Previous int

	// LastCall is the player's last higher or lower call
	LastCall models.ActionType
}

// Multiplier returns min(1 + streak*0.5, 10)
func Multiplier(streak int) float64 {
	return float64(halves(streak)) / 2
}

// CashOut returns floor(wager * Multiplier(streak))
func CashOut(wager int64, streak int) int64 {
	return wager * int64(halves(streak)) / 2
}

func halves(streak int) int {
	h := 2 + streak
	if h > maxHalves {
		return maxHalves
	}
	return h
}

// Engine implements games.Engine
type Engine struct{}

// New creates a new higher-or-lower engine
func New() *Engine {
	return &Engine{}
}

// Kind returns models.GameKindHighLow
func (e *Engine) Kind() models.GameKind {
	return models.GameKindHighLow
}

// Start draws the first number with an empty streak
func (e *Engine) Start(input *games.StartInput) (*games.Step, error) {
	return &games.Step{
		State: &State{Current: random.Between(input.Rand, MinStart, MaxStart)},
	}, nil
}

// Apply scores a higher or lower call, or cashes out the current streak
func (e *Engine) Apply(input *games.ApplyInput) (*games.Step, error) {
	state, ok := input.State.(*State)
	if !ok {
		return nil, games.ErrUnknownState
	}

	switch input.Action.Type {
	case models.ActionCashOut:
		if state.Streak == 0 {
			return nil, games.ErrInvalidAction
		}
		next := *state
		return &games.Step{
			State:   &next,
			Outcome: models.Win(CashOut(input.Wager, state.Streak)-input.Wager, "cash_out"),
		}, nil

	case models.ActionHigher, models.ActionLower:
		drawn := random.Between(input.Rand, MinValue, MaxValue)
		next := &State{
			Current:  drawn,
			Streak:   state.Streak,
			Previous: state.Current,
			LastCall: input.Action.Type,
		}

		if drawn == state.Current {
			return &games.Step{State: next, Outcome: models.Push("same_number")}, nil
		}

		higher := drawn > state.Current
		if higher != (input.Action.Type == models.ActionHigher) {
			return &games.Step{State: next, Outcome: models.Lose(input.Wager, "wrong_call")}, nil
		}

		next.Streak++
		return &games.Step{State: next}, nil
	}

	return nil, games.ErrInvalidAction
}
