package dice

import (
	"testing"

	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDuel(t *testing.T) {
	tests := []struct {
		name        string
		player, bot int
		want        models.OutcomeResult
		wantDelta   int64
	}{
		{"higher wins", 6, 2, models.OutcomeWin, 40},
		{"lower loses", 1, 5, models.OutcomeLose, -40},
		{"tie pushes", 3, 3, models.OutcomePush, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rng := mocks.NewMockSource(ctrl)
			gomock.InOrder(
				rng.EXPECT().Intn(Sides).Return(tt.player-1),
				rng.EXPECT().Intn(Sides).Return(tt.bot-1),
			)

			play, err := New().Play(&games.PlayInput{Wager: 40, Rand: rng})
			require.NoError(t, err)
			assert.Equal(t, &Result{Player: tt.player, Bot: tt.bot}, play.Detail)
			assert.Equal(t, tt.want, play.Outcome.Result)
			assert.Equal(t, tt.wantDelta, play.Outcome.Delta())
		})
	}
}
