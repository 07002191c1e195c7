package tictactoe

import (
	"testing"

	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const (
	X = Player
	O = Bot
)

func play(t *testing.T, state *State, cell int) *games.Step {
	t.Helper()
	step, err := New().Apply(&games.ApplyInput{
		State:  state,
		Action: models.Action{Type: models.ActionCell, Index: cell},
		Wager:  50,
		Rand:   random.New(&random.Config{Seed: 7}),
	})
	require.NoError(t, err)
	return step
}

func TestBotPriority(t *testing.T) {
	rng := random.New(&random.Config{Seed: 1})

	// Player threatens 0-1-2, bot could win on 3-4-5. Blocking comes first.
	b := Board{X, X, Empty, O, O, Empty, X, Empty, Empty}
	assert.Equal(t, 2, BotMove(b, rng))

	// No threat, bot takes its own win.
	b = Board{X, Empty, Empty, O, O, Empty, Empty, Empty, X}
	assert.Equal(t, 5, BotMove(b, rng))

	// Nothing pending, center is free.
	b = Board{X}
	assert.Equal(t, 4, BotMove(b, rng))

	// Center taken, a corner is picked.
	b = Board{Empty, Empty, Empty, Empty, X}
	assert.Contains(t, []int{0, 2, 6, 8}, BotMove(b, rng))

	// Corners and center taken, any open edge.
	b = Board{X, Empty, O, Empty, X, Empty, O, Empty, X}
	assert.Contains(t, []int{1, 3, 5, 7}, BotMove(b, rng))

	assert.Equal(t, -1, BotMove(Board{X, O, X, X, O, O, O, X, X}, rng))
}

func TestPlayerWins(t *testing.T) {
	state := &State{Board: Board{X, X, Empty, O, O, Empty, Empty, Empty, Empty}, LastBotMove: 4}
	step := play(t, state, 2)

	require.True(t, step.Terminal())
	assert.Equal(t, models.OutcomeWin, step.Outcome.Result)
	assert.Equal(t, int64(50), step.Outcome.Amount)
	assert.Equal(t, []int{0, 1, 2}, step.State.(*State).WinningLine)
}

func TestBotWins(t *testing.T) {
	// Player misplays, bot completes 3-4-5.
	state := &State{Board: Board{X, Empty, Empty, O, O, Empty, Empty, Empty, Empty}, LastBotMove: 4}
	step := play(t, state, 8)

	require.True(t, step.Terminal())
	assert.Equal(t, models.OutcomeLose, step.Outcome.Result)
	assert.Equal(t, int64(50), step.Outcome.Amount)
}

func TestDrawIsPush(t *testing.T) {
	// X O X
	// X O O
	// O X _
	state := &State{Board: Board{X, O, X, X, O, O, O, X, Empty}}
	step := play(t, state, 8)

	require.True(t, step.Terminal())
	assert.Equal(t, models.OutcomePush, step.Outcome.Result)
	assert.Equal(t, int64(0), step.Outcome.Delta())
}

func TestOccupiedCellRejected(t *testing.T) {
	state := &State{Board: Board{X}}
	_, err := New().Apply(&games.ApplyInput{
		State:  state,
		Action: models.Action{Type: models.ActionCell, Index: 0},
		Rand:   random.New(nil),
	})
	assert.ErrorIs(t, err, games.ErrInvalidAction)
}

// For any reachable board, if the player has an immediate winning cell the bot takes it.
func TestBotAlwaysBlocksProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rng := random.New(&random.Config{Seed: rapid.Int64Range(1, 1<<40).Draw(t, "seed")})
		state := &State{LastBotMove: -1}

		for {
			open := state.Board.Open(nil)
			cell := rapid.SampledFrom(open).Draw(t, "cell")

			step, err := New().Apply(&games.ApplyInput{
				State:  state,
				Action: models.Action{Type: models.ActionCell, Index: cell},
				Wager:  10,
				Rand:   rng,
			})
			if err != nil {
				t.Fatalf("apply: %v", err)
			}

			next := step.State.(*State)
			if step.Terminal() {
				return
			}

			// Board before the bot answered: the player's move only.
			before := state.Board
			before[cell] = Player
			if threat := before.CompletingCell(Player); threat >= 0 {
				if next.Board[threat] != Bot {
					t.Fatalf("bot ignored threat at %d on %v", threat, before)
				}
			}
			state = next
		}
	})
}
