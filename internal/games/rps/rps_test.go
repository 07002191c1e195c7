package rps

import (
	"testing"

	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestThrows(t *testing.T) {
	tests := []struct {
		player, bot int
		want        models.OutcomeResult
	}{
		{Rock, Scissors, models.OutcomeWin},
		{Paper, Rock, models.OutcomeWin},
		{Scissors, Paper, models.OutcomeWin},
		{Rock, Paper, models.OutcomeLose},
		{Paper, Scissors, models.OutcomeLose},
		{Scissors, Rock, models.OutcomeLose},
		{Rock, Rock, models.OutcomePush},
	}

	for _, tt := range tests {
		t.Run(Throws[tt.player]+"_vs_"+Throws[tt.bot], func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rng := mocks.NewMockSource(ctrl)
			rng.EXPECT().Intn(3).Return(tt.bot)

			step, err := New().Apply(&games.ApplyInput{
				State:  &State{Player: -1, Bot: -1},
				Action: models.Action{Type: models.ActionChoice, Index: tt.player},
				Wager:  25,
				Rand:   rng,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, step.Outcome.Result)
			if tt.want != models.OutcomePush {
				assert.Equal(t, int64(25), step.Outcome.Amount)
			}
		})
	}
}
