// Package tictactoe implements tic-tac-toe against a rule-based bot.
package tictactoe

import (
	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
)

// Mark is the content of a cell
type Mark int

const (
	Empty Mark = iota
	Player
	Bot
)

const Cells = 9

// Board is a 3x3 grid in row-major order
type Board [Cells]Mark

// Lines are the eight winning lines
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

var corners = []int{0, 2, 6, 8}

const center = 4

// Winner returns the mark holding a full line and the line, or Empty
func (b Board) Winner() (Mark, [3]int) {
	for _, line := range Lines {
		m := b[line[0]]
		if m != Empty && b[line[1]] == m && b[line[2]] == m {
			return m, line
		}
	}
	return Empty, [3]int{}
}

// Full reports whether no cell is empty
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Open returns the indexes of empty cells among candidates, or all cells when candidates is nil
func (b Board) Open(candidates []int) []int {
	if candidates == nil {
		candidates = []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	}
	var open []int
	for _, i := range candidates {
		if b[i] == Empty {
			open = append(open, i)
		}
	}
	return open
}

// CompletingCell returns a cell that would give mark three in a row, or -1
func (b Board) CompletingCell(mark Mark) int {
	for _, line := range Lines {
		count, empty := 0, -1
		for _, i := range line {
			switch b[i] {
			case mark:
				count++
			case Empty:
				empty = i
			}
		}
		if count == 2 && empty >= 0 {
			return empty
		}
	}
	return -1
}

// BotMove picks the bot's cell: block, win, center, random corner, random cell.
// It returns -1 on a full board.
func BotMove(b Board, rng random.Source) int {
	if cell := b.CompletingCell(Player); cell >= 0 {
		return cell
	}
	if cell := b.CompletingCell(Bot); cell >= 0 {
		return cell
	}
	if b[center] == Empty {
		return center
	}
	if open := b.Open(corners); len(open) > 0 {
		return open[rng.Intn(len(open))]
	}
	if open := b.Open(nil); len(open) > 0 {
		return open[rng.Intn(len(open))]
	}
	return -1
}

// State is the tic-tac-toe game state
type State struct {
	Board Board

	// LastBotMove is the bot's latest cell, -1 before its first move
	LastBotMove int

	// WinningLine is set once a player completes a line
	WinningLine []int
}

// Engine implements games.Engine
type Engine struct{}

// New creates a new tic-tac-toe engine
func New() *Engine {
	return &Engine{}
}

// Kind returns models.GameKindTicTacToe
func (e *Engine) Kind() models.GameKind {
	return models.GameKindTicTacToe
}

// Start opens an empty board with the player moving first
func (e *Engine) Start(input *games.StartInput) (*games.Step, error) {
	return &games.Step{State: &State{LastBotMove: -1}}, nil
}

// Apply places the player mark and answers with the bot move
func (e *Engine) Apply(input *games.ApplyInput) (*games.Step, error) {
	state, ok := input.State.(*State)
	if !ok {
		return nil, games.ErrUnknownState
	}

	cell := input.Action.Index
	if input.Action.Type != models.ActionCell || cell < 0 || cell >= Cells || state.Board[cell] != Empty {
		return nil, games.ErrInvalidAction
	}

	next := &State{Board: state.Board, LastBotMove: state.LastBotMove}
	next.Board[cell] = Player

	if outcome := next.resolve(input.Wager); outcome != nil {
		return &games.Step{State: next, Outcome: outcome}, nil
	}

	move := BotMove(next.Board, input.Rand)
	next.Board[move] = Bot
	next.LastBotMove = move

	return &games.Step{State: next, Outcome: next.resolve(input.Wager)}, nil
}

func (s *State) resolve(wager int64) *models.Outcome {
	winner, line := s.Board.Winner()
	switch winner {
	case Player:
		s.WinningLine = line[:]
		return models.Win(wager, "three_in_a_row")
	case Bot:
		s.WinningLine = line[:]
		return models.Lose(wager, "bot_three_in_a_row")
	}
	if s.Board.Full() {
		return models.Push("draw")
	}
	return nil
}
