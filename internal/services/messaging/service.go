package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

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
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
)

// ErrUnknownPayload is returned for a session whose payload no renderer knows
var ErrUnknownPayload = errors.New("no renderer for session payload")

var (
	memorySymbols = []string{"🍎", "🍋", "🍇", "🍒", "🍉", "🍓"}
	slotSymbols   = map[string]string{
		"Cherry":  "🍒",
		"Lemon":   "🍋",
		"Orange":  "🍊",
		"Grape":   "🍇",
		"Bell":    "🔔",
		"Diamond": "💎",
		"Seven":   "7️⃣",
	}
	throwEmoji = []string{"🪨", "📄", "✂️"}
	diceFaces  = []string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting flavor lines
	rand random.Source
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	var src random.Source
	if cfg != nil && cfg.Rand != nil {
		src = cfg.Rand
	} else {
		src = random.New(nil)
	}

	return &service{
		rand: src,
	}, nil
}

func (s *service) pick(lines []string) string {
	return lines[s.rand.Intn(len(lines))]
}

// flavor returns a random one-liner for an outcome
func (s *service) flavor(result models.OutcomeResult) string {
	switch result {
	case models.OutcomeWin:
		return s.pick([]string{
			"The house weeps. 🎉",
			"Fortune favors the bold! 💰",
			"Somebody call security, we have a winner! 🚨",
			"Cha-ching! 🤑",
			"Luck was on your side this time. 🍀",
		})
	case models.OutcomeLose:
		return s.pick([]string{
			"The house always wins... eventually. 🏠",
			"Better luck next time! 🎲",
			"Ouch. Your wallet felt that one. 💸",
			"That's how they get you. 😬",
			"Shake it off and try again! 🔁",
		})
	default:
		return s.pick([]string{
			"Nobody wins, nobody loses. 🤝",
			"A perfectly balanced outcome. ⚖️",
			"Call it even. 😐",
		})
	}
}

func option(key, label string, style models.OptionStyle, action models.ActionType, index int) models.Option {
	return models.Option{
		Label: label,
		Style: style,
		Action: models.Action{
			SessionKey: key,
			Type:       action,
			Index:      index,
		},
	}
}

func outcomeColor(o *models.Outcome) int {
	switch o.Result {
	case models.OutcomeWin:
		return models.ColorSuccess
	case models.OutcomeLose:
		return models.ColorError
	default:
		return models.ColorWarning
	}
}

// settlementLine summarizes what a settlement did to the balance
func settlementLine(st *models.Settlement) string {
	var line string
	switch {
	case st.Applied > 0:
		line = fmt.Sprintf("You won **%s**!", FormatCoins(st.Applied))
	case st.Applied < 0:
		line = fmt.Sprintf("You lost **%s**.", FormatCoins(-st.Applied))
	default:
		line = "Your bet was returned."
	}

	if st.Record != nil {
		line += fmt.Sprintf("\nBalance: **%s**", FormatCoins(st.Record.Balance))
	}
	return line
}

// finish decorates a display with the settlement result
func (s *service) finish(d *models.Display, st *models.Settlement) {
	d.Color = outcomeColor(st.Outcome)
	d.Description = strings.TrimSpace(d.Description + "\n\n" + settlementLine(st))
	d.Footer = s.flavor(st.Outcome.Result)
}

func betLine(wager int64) string {
	return fmt.Sprintf("Bet: **%s**", FormatCoins(wager))
}

// RenderSession presents a live session, or its final state when a settlement is given
func (s *service) RenderSession(ctx context.Context, input *RenderSessionInput) (*RenderOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilInput
	}

	sess := input.Session
	st := input.Settlement
	done := st != nil

	var d *models.Display
	switch state := sess.Payload.(type) {
	case *guess.State:
		d = renderGuess(sess, state, done)
	case *tictactoe.State:
		d = renderTicTacToe(sess, state, st)
	case *memory.State:
		d = renderMemory(sess, state, st)
	case *highlow.State:
		d = renderHighLow(sess, state, st)
	case *blackjack.State:
		d = renderBlackjack(sess, state, st)
	case *trivia.State:
		d = renderTrivia(sess, state, done)
	case *scramble.State:
		d = renderScramble(sess, state, st)
	case *coinflip.State:
		d = renderCoinFlip(sess, state, done)
	case *rps.State:
		d = renderRPS(sess, state, st)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownPayload, sess.Payload)
	}

	if done {
		s.finish(d, st)
	}

	return &RenderOutput{
		Display: d,
	}, nil
}

func renderGuess(sess *models.Session, state *guess.State, done bool) *models.Display {
	d := &models.Display{
		Title: "🔢 Number Guess",
		Color: models.ColorInfo,
	}

	switch {
	case done && state.Guessed(state.Secret):
		d.Title = "🎯 Correct!"
		d.Description = fmt.Sprintf("The number was **%d**!", state.Secret)
	case done:
		d.Title = "💀 Game Over!"
		d.Description = fmt.Sprintf("The number was **%d**!", state.Secret)
	case state.LastHint != guess.HintNone:
		last := state.Guesses[len(state.Guesses)-1]
		d.Title = "❌ Wrong Guess!"
		d.Color = models.ColorWarning
		d.Description = fmt.Sprintf("The number is **%s** than %d!\n\nAttempts remaining: **%d**\n%s",
			state.LastHint, last, state.AttemptsLeft, betLine(sess.Wager))
	default:
		d.Description = fmt.Sprintf("Guess a number between **1** and **%d**!\n\n%s\nAttempts remaining: **%d**\n\nCorrect guess wins **%dx** your bet!",
			guess.MaxNumber, betLine(sess.Wager), state.AttemptsLeft, guess.Payout)
	}

	if done {
		return d
	}

	row := []models.Option{}
	for n := 1; n <= guess.MaxNumber; n++ {
		opt := option(sess.Key, fmt.Sprint(n), models.OptionSecondary, models.ActionChoice, n)
		opt.Disabled = state.Guessed(n)
		row = append(row, opt)
		if len(row) == 5 {
			d.Options = append(d.Options, row)
			row = []models.Option{}
		}
	}

	return d
}

func renderTicTacToe(sess *models.Session, state *tictactoe.State, st *models.Settlement) *models.Display {
	d := &models.Display{
		Title:       "❌⭕ Tic-Tac-Toe",
		Color:       models.ColorInfo,
		Description: fmt.Sprintf("You are **X**. Get three in a row to win!\n\n%s", betLine(sess.Wager)),
	}

	if st != nil {
		switch st.Outcome.Result {
		case models.OutcomeWin:
			d.Title = "🏆 You Win!"
		case models.OutcomeLose:
			d.Title = "🤖 Bot Wins!"
		default:
			d.Title = "🤝 It's a Tie!"
		}
		d.Description = betLine(sess.Wager)
	}

	winning := make(map[int]bool)
	for _, c := range state.WinningLine {
		winning[c] = true
	}

	for r := 0; r < 3; r++ {
		row := []models.Option{}
		for c := 0; c < 3; c++ {
			cell := r*3 + c
			label, style := "·", models.OptionSecondary
			switch state.Board[cell] {
			case tictactoe.Player:
				label, style = "X", models.OptionPrimary
			case tictactoe.Bot:
				label, style = "O", models.OptionDanger
			}
			if winning[cell] {
				style = models.OptionSuccess
			}

			opt := option(sess.Key, label, style, models.ActionCell, cell)
			opt.Disabled = st != nil || state.Board[cell] != tictactoe.Empty
			row = append(row, opt)
		}
		d.Options = append(d.Options, row)
	}

	return d
}

func renderMemory(sess *models.Session, state *memory.State, st *models.Settlement) *models.Display {
	d := &models.Display{
		Title: "🧠 Memory Match",
		Color: models.ColorInfo,
		Description: fmt.Sprintf("Find all pairs in **%d moves or less** to win!\n\n%s\nMoves: **%d/%d**",
			memory.MoveBudget, betLine(sess.Wager), state.Moves, memory.MoveBudget),
	}

	if len(state.LastMismatch) > 0 && st == nil {
		d.Description = "No match! Those cards flip back on your next pick.\n\n" + d.Description
	}

	if st != nil {
		if st.Outcome.Result == models.OutcomeWin {
			d.Title = "🏆 You Win!"
			d.Description = fmt.Sprintf("You found all pairs in **%d** moves!\nSpeed Bonus: **%s**",
				state.Moves, FormatCoins(state.Bonus()))
		} else {
			d.Title = "⌛ Out of Moves!"
			d.Description = fmt.Sprintf("You matched **%d** of %d pairs.", state.MatchedCount()/2, memory.Pairs)
		}
	}

	for r := 0; r < 3; r++ {
		row := []models.Option{}
		for c := 0; c < 4; c++ {
			cell := r*4 + c
			label, style := "❓", models.OptionSecondary
			if state.FaceUp(cell) || st != nil {
				label = memorySymbols[state.Cards[cell]%len(memorySymbols)]
				style = models.OptionPrimary
			}
			if state.Matched[cell] {
				style = models.OptionSuccess
			}

			opt := option(sess.Key, label, style, models.ActionCell, cell)
			opt.Disabled = st != nil || state.Matched[cell]
			row = append(row, opt)
		}
		d.Options = append(d.Options, row)
	}

	return d
}

func renderHighLow(sess *models.Session, state *highlow.State, st *models.Settlement) *models.Display {
	d := &models.Display{
		Title: "📈 Higher or Lower",
		Color: models.ColorInfo,
	}

	if state.Previous > 0 {
		d.Description = fmt.Sprintf("The number was **%d** (you called %s on %d).\n\n", state.Current, state.LastCall, state.Previous)
	}

	if st != nil {
		switch st.Outcome.Reason {
		case "cash_out":
			d.Title = "💰 Cashed Out!"
			d.Description = fmt.Sprintf("You cashed out with a **%d** streak at **%.1fx**!", state.Streak, highlow.Multiplier(state.Streak))
		case "same_number":
			d.Title = "😐 Same Number!"
			d.Description += "Same as before!"
		default:
			d.Title = "❌ Wrong!"
			d.Description += fmt.Sprintf("Your streak ended at **%d**.", state.Streak)
		}
		return d
	}

	if state.Previous > 0 {
		d.Title = "✅ Correct!"
		d.Color = models.ColorSuccess
	}

	d.Description += fmt.Sprintf("Current Number: **%d**\n\nWill the next number (%d-%d) be **higher** or **lower**?\n\n%s\nStreak: **%d**\nMultiplier: **%.1fx**\nPotential Win: **%s**",
		state.Current, highlow.MinValue, highlow.MaxValue, betLine(sess.Wager), state.Streak,
		highlow.Multiplier(state.Streak), FormatCoins(highlow.CashOut(sess.Wager, state.Streak)))

	cashOut := option(sess.Key, "Cash Out", models.OptionSuccess, models.ActionCashOut, 0)
	cashOut.Disabled = state.Streak == 0
	d.Options = [][]models.Option{{
		option(sess.Key, "⬆️ Higher", models.OptionPrimary, models.ActionHigher, 0),
		option(sess.Key, "⬇️ Lower", models.OptionPrimary, models.ActionLower, 0),
		cashOut,
	}}

	return d
}

func formatHand(hand []blackjack.Card, hideHole bool) string {
	parts := make([]string, 0, len(hand))
	for i, c := range hand {
		if hideHole && i == 1 {
			parts = append(parts, "🂠")
			continue
		}
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

func renderBlackjack(sess *models.Session, state *blackjack.State, st *models.Settlement) *models.Display {
	hidden := st == nil && !state.DealerDone
	player := blackjack.HandValue(state.Player)

	dealer := fmt.Sprintf("**Dealer:** %s", formatHand(state.Dealer, hidden))
	if !hidden {
		dealer += fmt.Sprintf(" (%d)", blackjack.HandValue(state.Dealer))
	}

	d := &models.Display{
		Title: "🃏 Blackjack",
		Color: models.ColorInfo,
		Description: fmt.Sprintf("**Your Hand:** %s (%d)\n%s\n\n%s",
			formatHand(state.Player, false), player, dealer, betLine(state.Stake(sess.Wager))),
	}

	if st != nil {
		switch st.Outcome.Reason {
		case "blackjack":
			d.Title = "🃏 BLACKJACK!"
		case "bust":
			d.Title = "💥 Bust! You Lose!"
		case "dealer_bust":
			d.Title = "🎉 Dealer Busts! You Win!"
		case "higher_hand":
			d.Title = "🏆 You Win!"
		case "lower_hand":
			d.Title = "🏠 Dealer Wins!"
		default:
			d.Title = "🤝 Push!"
		}
		return d
	}

	double := option(sess.Key, "Double Down", models.OptionSuccess, models.ActionDouble, 0)
	double.Disabled = !state.CanDouble()
	d.Options = [][]models.Option{{
		option(sess.Key, "Hit", models.OptionPrimary, models.ActionHit, 0),
		option(sess.Key, "Stand", models.OptionSecondary, models.ActionStand, 0),
		double,
	}}

	return d
}

func renderTrivia(sess *models.Session, state *trivia.State, done bool) *models.Display {
	d := &models.Display{
		Title:       "❓ Trivia",
		Color:       models.ColorInfo,
		Description: fmt.Sprintf("**%s**\n\n%s\nCorrect answer wins **1.5x** your bet!", state.Prompt, betLine(sess.Wager)),
	}

	if done {
		if state.Picked == state.Correct {
			d.Title = "✅ Correct!"
		} else {
			d.Title = "❌ Wrong!"
		}
		d.Description = fmt.Sprintf("**%s**\n\nThe answer was **%s**.", state.Prompt, state.Answers[state.Correct])
		return d
	}

	row := []models.Option{}
	for i, a := range state.Answers {
		row = append(row, option(sess.Key, fmt.Sprintf("%c) %s", 'A'+i, a), models.OptionPrimary, models.ActionChoice, i))
	}
	d.Options = [][]models.Option{row}

	return d
}

func renderScramble(sess *models.Session, state *scramble.State, st *models.Settlement) *models.Display {
	d := &models.Display{
		Title: "🔤 Word Scramble",
		Color: models.ColorInfo,
		Description: fmt.Sprintf("Unscramble this word: **%s**\n\nType your answer in chat!\nAttempts remaining: **%d**\n%s",
			state.Scrambled, state.AttemptsLeft, betLine(sess.Wager)),
	}

	if st == nil && state.LastGuess != "" {
		d.Color = models.ColorWarning
		d.Description = fmt.Sprintf("**%s** is not it!\n\n", state.LastGuess) + d.Description
	}

	if st != nil {
		if st.Outcome.Result == models.OutcomeWin {
			d.Title = "✅ Solved!"
		} else {
			d.Title = "❌ Out of Attempts!"
		}
		d.Description = fmt.Sprintf("The word was **%s**.", state.Word)
	}

	return d
}

func renderCoinFlip(sess *models.Session, state *coinflip.State, done bool) *models.Display {
	d := &models.Display{
		Title:       "🪙 Coin Flip",
		Color:       models.ColorInfo,
		Description: fmt.Sprintf("%s\n\nChoose heads or tails!", betLine(sess.Wager)),
	}

	if done {
		d.Description = fmt.Sprintf("You called **%s**. The coin landed on **%s**!",
			coinflip.Sides[state.Call], coinflip.Sides[state.Result])
		return d
	}

	d.Options = [][]models.Option{{
		option(sess.Key, "Heads", models.OptionPrimary, models.ActionChoice, coinflip.Heads),
		option(sess.Key, "Tails", models.OptionPrimary, models.ActionChoice, coinflip.Tails),
	}}

	return d
}

func renderRPS(sess *models.Session, state *rps.State, st *models.Settlement) *models.Display {
	d := &models.Display{
		Title:       "✊ Rock Paper Scissors",
		Color:       models.ColorInfo,
		Description: fmt.Sprintf("%s\n\nMake your choice!", betLine(sess.Wager)),
	}

	if st != nil {
		d.Description = fmt.Sprintf("You: %s **%s**\nBot: %s **%s**",
			throwEmoji[state.Player], rps.Throws[state.Player], throwEmoji[state.Bot], rps.Throws[state.Bot])
		return d
	}

	row := []models.Option{}
	for i, name := range rps.Throws {
		row = append(row, option(sess.Key, throwEmoji[i]+" "+name, models.OptionPrimary, models.ActionChoice, i))
	}
	d.Options = [][]models.Option{row}

	return d
}

// RenderInstant presents the result of a single-shot game
func (s *service) RenderInstant(ctx context.Context, input *RenderInstantInput) (*RenderOutput, error) {
	if input == nil || input.Play == nil || input.Settlement == nil {
		return nil, ErrNilInput
	}

	var d *models.Display
	switch detail := input.Play.Detail.(type) {
	case *dice.Result:
		d = &models.Display{
			Title: "🎲 Dice Roll",
			Description: fmt.Sprintf("You rolled %s **%d**\nBot rolled %s **%d**\n\n%s",
				diceFaces[detail.Player-1], detail.Player, diceFaces[detail.Bot-1], detail.Bot, betLine(input.Wager)),
		}
	case *slots.Result:
		reels := make([]string, 0, slots.Reels)
		for _, idx := range detail.Reels {
			reels = append(reels, slotSymbols[slots.Symbols[idx].Name])
		}
		d = &models.Display{
			Title:       "🎰 Slots",
			Description: fmt.Sprintf("[ %s ]\n\n%s", strings.Join(reels, " | "), betLine(input.Wager)),
		}
		if detail.Jackpot() {
			d.Title = "🎰 JACKPOT!"
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownPayload, input.Play.Detail)
	}

	s.finish(d, input.Settlement)
	if input.Kind == models.GameKindSlots && input.Settlement.Outcome.Result == models.OutcomeWin {
		d.Color = models.ColorGold
	}

	return &RenderOutput{
		Display: d,
	}, nil
}

// RenderExpired presents a session that ran out of time
func (s *service) RenderExpired(ctx context.Context, input *RenderExpiredInput) (*RenderOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilInput
	}

	d := &models.Display{
		Title:       "⏰ Time's Up!",
		Color:       models.ColorWarning,
		Description: fmt.Sprintf("Your %s game timed out.", input.Session.Kind),
	}

	switch state := input.Session.Payload.(type) {
	case *guess.State:
		d.Description += fmt.Sprintf(" The number was **%d**.", state.Secret)
	case *trivia.State:
		d.Description += fmt.Sprintf(" The answer was **%s**.", state.Answers[state.Correct])
	case *scramble.State:
		d.Description += fmt.Sprintf(" The word was **%s**.", state.Word)
	}

	if input.Settlement != nil {
		d.Color = models.ColorError
		d.Description += "\n\n" + settlementLine(input.Settlement)
	}

	return &RenderOutput{
		Display: d,
	}, nil
}
