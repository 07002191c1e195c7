package memory

import (
	"testing"

	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func flip(t *testing.T, state *State, cell int) *games.Step {
	t.Helper()
	step, err := New().Apply(&games.ApplyInput{
		State:  state,
		Action: models.Action{Type: models.ActionCell, Index: cell},
		Wager:  100,
	})
	require.NoError(t, err)
	return step
}

func orderedState() *State {
	s := &State{}
	for i := 0; i < Cells; i++ {
		s.Cards[i] = i / 2
	}
	return s
}

func TestStartDealsSixPairs(t *testing.T) {
	step, err := New().Start(&games.StartInput{Wager: 10, Rand: random.New(&random.Config{Seed: 3})})
	require.NoError(t, err)

	counts := map[int]int{}
	for _, c := range step.State.(*State).Cards {
		counts[c]++
	}
	assert.Len(t, counts, Pairs)
	for _, n := range counts {
		assert.Equal(t, 2, n)
	}
}

func TestPerfectGameWinsWithBonus(t *testing.T) {
	state := orderedState()
	var step *games.Step
	for i := 0; i < Cells; i += 2 {
		step = flip(t, state, i)
		state = step.State.(*State)
		step = flip(t, state, i+1)
		state = step.State.(*State)
	}

	require.True(t, step.Terminal())
	assert.Equal(t, models.OutcomeWin, step.Outcome.Result)
	assert.Equal(t, 6, state.Moves)
	// wager + (15-6)*10
	assert.Equal(t, int64(190), step.Outcome.Amount)
}

func TestMismatchShowsPairThenHides(t *testing.T) {
	state := orderedState()
	state = flip(t, state, 0).State.(*State)
	step := flip(t, state, 2)
	state = step.State.(*State)

	assert.False(t, step.Terminal())
	assert.Equal(t, []int{0, 2}, state.LastMismatch)
	assert.True(t, state.FaceUp(2))
	assert.Equal(t, 1, state.Moves)

	state = flip(t, state, 4).State.(*State)
	assert.Nil(t, state.LastMismatch)
	assert.False(t, state.FaceUp(2))
}

func TestMatchedAndRevealedCellsAreNoOps(t *testing.T) {
	state := orderedState()
	state.Matched[0], state.Matched[1] = true, true
	state.Revealed = []int{4}

	for _, cell := range []int{0, 4, -1, Cells} {
		_, err := New().Apply(&games.ApplyInput{
			State:  state,
			Action: models.Action{Type: models.ActionCell, Index: cell},
			Wager:  100,
		})
		assert.ErrorIs(t, err, games.ErrInvalidAction, "cell %d", cell)
	}
}

func TestBudgetExhaustedLoses(t *testing.T) {
	state := orderedState()
	state.Moves = MoveBudget - 1
	state.Revealed = []int{0}

	step := flip(t, state, 3)
	require.True(t, step.Terminal())
	assert.Equal(t, models.OutcomeLose, step.Outcome.Result)
	assert.Equal(t, int64(100), step.Outcome.Amount)
}

// A win is only reported with every cell matched, and the move count never passes the budget.
func TestMemoryInvariantsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64Range(1, 1<<40).Draw(t, "seed")
		step, _ := New().Start(&games.StartInput{Wager: 10, Rand: random.New(&random.Config{Seed: seed})})
		state := step.State.(*State)

		for i := 0; i < 200; i++ {
			cell := rapid.IntRange(0, Cells-1).Draw(t, "cell")
			step, err := New().Apply(&games.ApplyInput{
				State:  state,
				Action: models.Action{Type: models.ActionCell, Index: cell},
				Wager:  10,
			})
			if err != nil {
				continue
			}
			state = step.State.(*State)

			if state.Moves > MoveBudget {
				t.Fatalf("moves %d exceed budget", state.Moves)
			}
			if step.Terminal() {
				if step.Outcome.Result == models.OutcomeWin && state.MatchedCount() != Cells {
					t.Fatalf("win with %d matched", state.MatchedCount())
				}
				if step.Outcome.Result == models.OutcomeLose && state.Moves != MoveBudget {
					t.Fatalf("loss at %d moves", state.Moves)
				}
				return
			}
		}
	})
}
