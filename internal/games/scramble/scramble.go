// Package scramble implements the word scramble game: unscramble a word in three tries.
// Answers arrive as free text.
package scramble

import (
	"strings"

	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	Attempts = 3

	maxShuffles = 10
)

// Words is the built-in word list
var Words = []string{
	"APPLE", "BANANA", "ORANGE", "GRAPE", "MANGO",
	"COMPUTER", "KEYBOARD", "MONITOR", "MOUSE", "SPEAKER",
	"ELEPHANT", "GIRAFFE", "PENGUIN", "DOLPHIN", "TIGER",
	"MOUNTAIN", "OCEAN", "FOREST", "DESERT", "RIVER",
	"DIAMOND", "EMERALD", "RUBY", "SAPPHIRE", "CRYSTAL",
	"THUNDER", "LIGHTNING", "RAINBOW", "SUNSHINE", "MOONLIGHT",
	"ADVENTURE", "MYSTERY", "FANTASY", "MAGIC", "DRAGON",
	"CHAMPION", "VICTORY", "TRIUMPH", "GLORY", "LEGEND",
}

// Scramble shuffles the letters of word, retrying until the result differs from it
func Scramble(word string, rng random.Source) string {
	letters := []rune(word)
	out := word
	for i := 0; i < maxShuffles && out == word; i++ {
		random.Shuffle(rng, letters)
		out = string(letters)
	}
	return out
}

// Normalize trims surrounding whitespace and upper-cases a guess
func Normalize(guess string) string {
	// Casers keep state and are not safe to share
	return cases.Upper(language.Und).String(strings.TrimSpace(guess))
}

// Matches reports whether a guess is the word
func Matches(word, guess string) bool {
	return Normalize(guess) == word
}

// State is the scramble game state
type State struct {
	Word         string
	Scrambled    string
	AttemptsLeft int
	LastGuess    string
}

// Engine implements games.Engine
type Engine struct {
	words []string
}

// New creates an engine over the built-in word list
func New() *Engine {
	return &Engine{words: Words}
}

// Kind returns models.GameKindScramble
func (e *Engine) Kind() models.GameKind {
	return models.GameKindScramble
}

// Start picks a word and shows it scrambled
func (e *Engine) Start(input *games.StartInput) (*games.Step, error) {
	word := e.words[input.Rand.Intn(len(e.words))]
	return &games.Step{
		State: &State{
			Word:         word,
			Scrambled:    Scramble(word, input.Rand),
			AttemptsLeft: Attempts,
		},
	}, nil
}

// Apply checks a typed answer against the word
func (e *Engine) Apply(input *games.ApplyInput) (*games.Step, error) {
	state, ok := input.State.(*State)
	if !ok {
		return nil, games.ErrUnknownState
	}

	guess := Normalize(input.Action.Text)
	if input.Action.Type != models.ActionAnswer || guess == "" {
		return nil, games.ErrInvalidAction
	}

	next := *state
	next.LastGuess = guess

	if guess == state.Word {
		// pays 1.5x in total
		return &games.Step{State: &next, Outcome: models.Win(input.Wager*3/2-input.Wager, "solved")}, nil
	}

	next.AttemptsLeft--
	if next.AttemptsLeft <= 0 {
		return &games.Step{State: &next, Outcome: models.Lose(input.Wager, "out_of_attempts")}, nil
	}
	return &games.Step{State: &next}, nil
}
