package guess

import (
	"testing"

	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStartUsesSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockSource(ctrl)
	rng.EXPECT().Intn(MaxNumber).Return(6)

	step, err := New().Start(&games.StartInput{Wager: 10, Rand: rng})
	require.NoError(t, err)
	assert.False(t, step.Terminal())

	state := step.State.(*State)
	assert.Equal(t, 7, state.Secret)
	assert.Equal(t, Attempts, state.AttemptsLeft)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		state      *State
		pick       int
		wantErr    error
		wantResult models.OutcomeResult
		wantAmount int64
		wantHint   Hint
	}{
		{
			name:       "correct first try pays four times net",
			state:      &State{Secret: 7, AttemptsLeft: 3},
			pick:       7,
			wantResult: models.OutcomeWin,
			wantAmount: 40,
		},
		{
			name:     "low guess hints higher",
			state:    &State{Secret: 7, AttemptsLeft: 3},
			pick:     2,
			wantHint: HintHigher,
		},
		{
			name:     "high guess hints lower",
			state:    &State{Secret: 7, AttemptsLeft: 3},
			pick:     9,
			wantHint: HintLower,
		},
		{
			name:       "last attempt wrong loses wager",
			state:      &State{Secret: 7, AttemptsLeft: 1, Guesses: []int{1, 2}},
			pick:       3,
			wantResult: models.OutcomeLose,
			wantAmount: 10,
		},
		{
			name:    "out of range",
			state:   &State{Secret: 7, AttemptsLeft: 3},
			pick:    11,
			wantErr: games.ErrInvalidAction,
		},
		{
			name:    "repeat guess",
			state:   &State{Secret: 7, AttemptsLeft: 2, Guesses: []int{4}},
			pick:    4,
			wantErr: games.ErrInvalidAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := *tt.state
			step, err := New().Apply(&games.ApplyInput{
				State:  tt.state,
				Action: models.Action{Type: models.ActionChoice, Index: tt.pick},
				Wager:  10,
			})

			assert.Equal(t, before.AttemptsLeft, tt.state.AttemptsLeft, "input state must not change")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			if tt.wantResult == "" {
				assert.False(t, step.Terminal())
				assert.Equal(t, tt.wantHint, step.State.(*State).LastHint)
				return
			}
			require.True(t, step.Terminal())
			assert.Equal(t, tt.wantResult, step.Outcome.Result)
			assert.Equal(t, tt.wantAmount, step.Outcome.Amount)
		})
	}
}

func TestApplyRejectsForeignState(t *testing.T) {
	_, err := New().Apply(&games.ApplyInput{State: "nope", Action: models.Action{Type: models.ActionChoice, Index: 1}})
	assert.ErrorIs(t, err, games.ErrUnknownState)
}
