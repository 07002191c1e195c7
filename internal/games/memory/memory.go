// Package memory implements the memory match game: find six pairs in twelve face-down
// cards within a fixed move budget.
package memory

import (
	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
)

const (
	Pairs      = 6
	Cells      = Pairs * 2
	MoveBudget = 15

	// SpeedBonus is paid per move left under the budget on a win
	SpeedBonus = 10
)

// State is the memory game state. A move is one completed pair of flips.
type State struct {
	// Cards holds the symbol index of each cell
	Cards [Cells]int

	// Matched marks cells whose pair has been found
	Matched [Cells]bool

	// Revealed is the cell flipped this turn, at most one
	Revealed []int

	// LastMismatch is the failed pair from the previous move, shown until the next flip
	LastMismatch []int

	Moves int
}

// MatchedCount returns the number of matched cells
func (s *State) MatchedCount() int {
	n := 0
	for _, m := range s.Matched {
		if m {
			n++
		}
	}
	return n
}

// FaceUp reports whether a cell is currently visible
func (s *State) FaceUp(cell int) bool {
	if s.Matched[cell] {
		return true
	}
	for _, c := range s.Revealed {
		if c == cell {
			return true
		}
	}
	for _, c := range s.LastMismatch {
		if c == cell {
			return true
		}
	}
	return false
}

// Bonus returns the speed bonus earned for the current move count
func (s *State) Bonus() int64 {
	if s.Moves >= MoveBudget {
		return 0
	}
	return int64(MoveBudget-s.Moves) * SpeedBonus
}

// Engine implements games.Engine
type Engine struct{}

// New creates a new memory match engine
func New() *Engine {
	return &Engine{}
}

// Kind returns models.GameKindMemory
func (e *Engine) Kind() models.GameKind {
	return models.GameKindMemory
}

// Start deals the pairs face down
func (e *Engine) Start(input *games.StartInput) (*games.Step, error) {
	cards := make([]int, 0, Cells)
	for p := 0; p < Pairs; p++ {
		cards = append(cards, p, p)
	}
	random.Shuffle(input.Rand, cards)

	state := &State{}
	copy(state.Cards[:], cards)
	return &games.Step{State: state}, nil
}

// Apply flips a cell. A second flip either keeps the pair or hides both cells again.
func (e *Engine) Apply(input *games.ApplyInput) (*games.Step, error) {
	state, ok := input.State.(*State)
	if !ok {
		return nil, games.ErrUnknownState
	}

	cell := input.Action.Index
	if input.Action.Type != models.ActionCell || cell < 0 || cell >= Cells || state.Matched[cell] {
		return nil, games.ErrInvalidAction
	}
	for _, c := range state.Revealed {
		if c == cell {
			return nil, games.ErrInvalidAction
		}
	}

	next := &State{
		Cards:   state.Cards,
		Matched: state.Matched,
		Moves:   state.Moves,
	}

	if len(state.Revealed) == 0 {
		next.Revealed = []int{cell}
		return &games.Step{State: next}, nil
	}

	first := state.Revealed[0]
	next.Moves++

	if next.Cards[first] == next.Cards[cell] {
		next.Matched[first] = true
		next.Matched[cell] = true
	} else {
		next.LastMismatch = []int{first, cell}
	}

	if next.MatchedCount() == Cells {
		return &games.Step{State: next, Outcome: models.Win(input.Wager+next.Bonus(), "all_matched")}, nil
	}
	if next.Moves >= MoveBudget {
		return &games.Step{State: next, Outcome: models.Lose(input.Wager, "out_of_moves")}, nil
	}

	return &games.Step{State: next}, nil
}
