package game

import (
	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/games/blackjack"
	"github.com/KirkDiggler/arcade/internal/games/coinflip"
	"github.com/KirkDiggler/arcade/internal/games/dice"
	"github.com/KirkDiggler/arcade/internal/games/guess"
	"github.com/KirkDiggler/arcade/internal/games/highlow"
	"github.com/KirkDiggler/arcade/internal/games/memory"
	"github.com/KirkDiggler/arcade/internal/games/rps"
	"github.com/KirkDiggler/arcade/internal/games/scramble"
	"github.com/KirkDiggler/arcade/internal/games/slots"
	"github.com/KirkDiggler/arcade/internal/games/tictactoe"
	"github.com/KirkDiggler/arcade/internal/games/trivia"
)

// DefaultEngines returns a registry holding every built-in game
func DefaultEngines() *games.Registry {
	reg := games.NewRegistry()

	for _, e := range []games.Engine{
		blackjack.New(),
		tictactoe.New(),
		memory.New(),
		highlow.New(),
		guess.New(),
		trivia.New(),
		scramble.New(),
		coinflip.New(),
		rps.New(),
	} {
		// kinds are distinct, registration cannot fail
		_ = reg.Register(e)
	}

	_ = reg.RegisterInstant(dice.New())
	_ = reg.RegisterInstant(slots.New())

	return reg
}
