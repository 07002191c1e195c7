// Package trivia implements a single multiple-choice question per session.
package trivia

import (
	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
)

// State is the trivia game state
type State struct {
	Prompt  string
	Answers []string
	Correct int

	// Picked is the chosen answer, -1 until one is chosen
	Picked int
}

// Engine implements games.Engine
type Engine struct {
	questions []Question
}

// New creates an engine over the built-in question bank
func New() *Engine {
	return &Engine{questions: Questions}
}

// Kind returns models.GameKindTrivia
func (e *Engine) Kind() models.GameKind {
	return models.GameKindTrivia
}

// Start picks a question and shuffles its answers
func (e *Engine) Start(input *games.StartInput) (*games.Step, error) {
	q := e.questions[input.Rand.Intn(len(e.questions))]

	answers := append([]string{q.Correct}, q.Wrong[:]...)
	random.Shuffle(input.Rand, answers)

	state := &State{Prompt: q.Prompt, Answers: answers, Picked: -1}
	for i, a := range answers {
		if a == q.Correct {
			state.Correct = i
		}
	}
	return &games.Step{State: state}, nil
}

// Apply settles on the first answer given
func (e *Engine) Apply(input *games.ApplyInput) (*games.Step, error) {
	state, ok := input.State.(*State)
	if !ok {
		return nil, games.ErrUnknownState
	}

	pick := input.Action.Index
	if input.Action.Type != models.ActionChoice || pick < 0 || pick >= len(state.Answers) || state.Picked >= 0 {
		return nil, games.ErrInvalidAction
	}

	next := *state
	next.Picked = pick

	if pick == state.Correct {
		// pays 1.5x in total
		return &games.Step{State: &next, Outcome: models.Win(input.Wager*3/2-input.Wager, "correct")}, nil
	}
	return &games.Step{State: &next, Outcome: models.Lose(input.Wager, "wrong")}, nil
}
