package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/games/blackjack"
	"github.com/KirkDiggler/arcade/internal/games/dice"
	"github.com/KirkDiggler/arcade/internal/games/guess"
	"github.com/KirkDiggler/arcade/internal/games/highlow"
	"github.com/KirkDiggler/arcade/internal/games/memory"
	"github.com/KirkDiggler/arcade/internal/games/slots"
	"github.com/KirkDiggler/arcade/internal/games/tictactoe"
	"github.com/KirkDiggler/arcade/internal/games/trivia"
	"github.com/KirkDiggler/arcade/internal/models"
	randomMocks "github.com/KirkDiggler/arcade/internal/random/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRand *randomMocks.MockSource
	svc      *service
	ctx      context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRand = randomMocks.NewMockSource(s.ctrl)
	s.mockRand.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()
	s.ctx = context.Background()

	svc, err := New(&Config{Rand: s.mockRand})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) session(kind models.GameKind, payload any) *models.Session {
	return &models.Session{Key: "abc", Kind: kind, OwnerID: "u1", Wager: 10, Payload: payload}
}

func settled(outcome *models.Outcome, balance int64) *models.Settlement {
	return &models.Settlement{
		Outcome: outcome,
		Applied: outcome.Delta(),
		Record:  &models.UserRecord{Balance: balance},
	}
}

func (s *MessagingServiceTestSuite) TestFormatCoins() {
	s.Equal("1 coin", FormatCoins(1))
	s.Equal("0 coins", FormatCoins(0))
	s.Equal("1,250 coins", FormatCoins(1250))
	s.Equal("999,999,999 coins", FormatCoins(999_999_999))
	s.Equal("12,345", FormatNumber(12345))
}

func (s *MessagingServiceTestSuite) TestFormatWait() {
	s.Equal("5s", FormatWait(4200*time.Millisecond))
	s.Equal("12m", FormatWait(12*time.Minute))
	s.Equal("3h 30m", FormatWait(3*time.Hour+30*time.Minute))
}

func (s *MessagingServiceTestSuite) TestRenderGuessLive() {
	state := &guess.State{Secret: 7, AttemptsLeft: 2, Guesses: []int{3}, LastHint: guess.HintHigher}

	out, err := s.svc.RenderSession(s.ctx, &RenderSessionInput{Session: s.session(models.GameKindGuess, state)})
	s.Require().NoError(err)

	d := out.Display
	s.Contains(d.Description, "higher")
	s.Require().Len(d.Options, 2)
	s.Len(d.Options[0], 5)
	s.True(d.Options[0][2].Disabled)
	s.False(d.Options[0][0].Disabled)
	s.Equal(models.Action{SessionKey: "abc", Type: models.ActionChoice, Index: 10}, d.Options[1][4].Action)
}

func (s *MessagingServiceTestSuite) TestRenderGuessWin() {
	state := &guess.State{Secret: 7, AttemptsLeft: 2, Guesses: []int{7}}

	out, err := s.svc.RenderSession(s.ctx, &RenderSessionInput{
		Session:    s.session(models.GameKindGuess, state),
		Settlement: settled(models.Win(40, "correct"), 140),
	})
	s.Require().NoError(err)

	d := out.Display
	s.Contains(d.Title, "Correct")
	s.Contains(d.Description, "40 coins")
	s.Contains(d.Description, "140 coins")
	s.Equal(models.ColorSuccess, d.Color)
	s.Empty(d.Options)
	s.NotEmpty(d.Footer)
}

func (s *MessagingServiceTestSuite) TestRenderTicTacToeBoard() {
	state := &tictactoe.State{LastBotMove: 4}
	state.Board[0] = tictactoe.Player
	state.Board[4] = tictactoe.Bot

	out, err := s.svc.RenderSession(s.ctx, &RenderSessionInput{Session: s.session(models.GameKindTicTacToe, state)})
	s.Require().NoError(err)

	d := out.Display
	s.Require().Len(d.Options, 3)
	s.Equal("X", d.Options[0][0].Label)
	s.True(d.Options[0][0].Disabled)
	s.Equal("O", d.Options[1][1].Label)
	s.False(d.Options[2][2].Disabled)
	s.Equal(8, d.Options[2][2].Action.Index)
}

func (s *MessagingServiceTestSuite) TestRenderTicTacToePush() {
	state := &tictactoe.State{}

	out, err := s.svc.RenderSession(s.ctx, &RenderSessionInput{
		Session:    s.session(models.GameKindTicTacToe, state),
		Settlement: settled(models.Push("draw"), 100),
	})
	s.Require().NoError(err)

	s.Contains(out.Display.Title, "Tie")
	s.Contains(out.Display.Description, "returned")
	s.Equal(models.ColorWarning, out.Display.Color)
	for _, row := range out.Display.Options {
		for _, opt := range row {
			s.True(opt.Disabled)
		}
	}
}

func (s *MessagingServiceTestSuite) TestRenderMemoryHidesCards() {
	state := &memory.State{Revealed: []int{3}}
	state.Cards[3] = 2

	out, err := s.svc.RenderSession(s.ctx, &RenderSessionInput{Session: s.session(models.GameKindMemory, state)})
	s.Require().NoError(err)

	d := out.Display
	s.Require().Len(d.Options, 3)
	s.Len(d.Options[0], 4)
	s.Equal("❓", d.Options[0][0].Label)
	s.Equal(memorySymbols[2], d.Options[0][3].Label)
}

func (s *MessagingServiceTestSuite) TestRenderHighLowCashOutDisabledAtZero() {
	out, err := s.svc.RenderSession(s.ctx, &RenderSessionInput{
		Session: s.session(models.GameKindHighLow, &highlow.State{Current: 50}),
	})
	s.Require().NoError(err)

	row := out.Display.Options[0]
	s.Require().Len(row, 3)
	s.Equal(models.ActionCashOut, row[2].Action.Type)
	s.True(row[2].Disabled)

	out, err = s.svc.RenderSession(s.ctx, &RenderSessionInput{
		Session: s.session(models.GameKindHighLow, &highlow.State{Current: 50, Streak: 2, Previous: 40, LastCall: models.ActionHigher}),
	})
	s.Require().NoError(err)
	s.False(out.Display.Options[0][2].Disabled)
	s.Contains(out.Display.Description, "2.0x")
	s.Contains(out.Display.Description, "20 coins")
}

func (s *MessagingServiceTestSuite) TestRenderBlackjackHidesHoleCard() {
	state := &blackjack.State{
		Player: []blackjack.Card{{Rank: "10", Suit: "♠"}, {Rank: "7", Suit: "♥"}},
		Dealer: []blackjack.Card{{Rank: "K", Suit: "♦"}, {Rank: "9", Suit: "♣"}},
	}

	out, err := s.svc.RenderSession(s.ctx, &RenderSessionInput{Session: s.session(models.GameKindBlackjack, state)})
	s.Require().NoError(err)

	s.NotContains(out.Display.Description, "9♣")
	s.Contains(out.Display.Description, "(17)")
	s.Len(out.Display.Options[0], 3)

	out, err = s.svc.RenderSession(s.ctx, &RenderSessionInput{
		Session:    s.session(models.GameKindBlackjack, state),
		Settlement: settled(models.Lose(10, "lower_hand"), 90),
	})
	s.Require().NoError(err)
	s.Contains(out.Display.Description, "9♣")
	s.Contains(out.Display.Title, "Dealer Wins")
}

func (s *MessagingServiceTestSuite) TestRenderTriviaAnswers() {
	state := &trivia.State{Prompt: "2+2?", Answers: []string{"3", "4", "5", "22"}, Correct: 1, Picked: -1}

	out, err := s.svc.RenderSession(s.ctx, &RenderSessionInput{Session: s.session(models.GameKindTrivia, state)})
	s.Require().NoError(err)

	s.Require().Len(out.Display.Options[0], 4)
	s.Equal("B) 4", out.Display.Options[0][1].Label)
}

func (s *MessagingServiceTestSuite) TestRenderUnknownPayload() {
	_, err := s.svc.RenderSession(s.ctx, &RenderSessionInput{Session: s.session(models.GameKindGuess, "nope")})
	s.ErrorIs(err, ErrUnknownPayload)
}

func (s *MessagingServiceTestSuite) TestRenderInstantDice() {
	out, err := s.svc.RenderInstant(s.ctx, &RenderInstantInput{
		Kind:       models.GameKindDice,
		Wager:      10,
		Play:       &games.Play{Detail: &dice.Result{Player: 6, Bot: 2}, Outcome: models.Win(10, "higher_roll")},
		Settlement: settled(models.Win(10, "higher_roll"), 110),
	})
	s.Require().NoError(err)

	s.Contains(out.Display.Description, "**6**")
	s.Contains(out.Display.Description, "110 coins")
}

func (s *MessagingServiceTestSuite) TestRenderInstantSlotsJackpot() {
	result := &slots.Result{Reels: [3]int{6, 6, 6}, Payout: 500}

	out, err := s.svc.RenderInstant(s.ctx, &RenderInstantInput{
		Kind:       models.GameKindSlots,
		Wager:      10,
		Play:       &games.Play{Detail: result, Outcome: models.Win(490, "match")},
		Settlement: settled(models.Win(490, "match"), 590),
	})
	s.Require().NoError(err)

	s.Contains(out.Display.Title, "JACKPOT")
	s.Equal(models.ColorGold, out.Display.Color)
}

func (s *MessagingServiceTestSuite) TestRenderExpiredShowsAnswer() {
	out, err := s.svc.RenderExpired(s.ctx, &RenderExpiredInput{
		Session:    s.session(models.GameKindGuess, &guess.State{Secret: 4}),
		Settlement: settled(models.Lose(10, "timeout"), 90),
	})
	s.Require().NoError(err)

	s.Contains(out.Display.Title, "Time's Up")
	s.Contains(out.Display.Description, "**4**")
	s.Contains(out.Display.Description, "10 coins")
}

func (s *MessagingServiceTestSuite) TestRenderTradePending() {
	out, err := s.svc.RenderTrade(s.ctx, &RenderTradeInput{
		SessionKey: "t1",
		Offer:      &models.TradeOffer{SenderID: "a", TargetID: "b", OfferCoins: 1500},
		OfferItem:  nil,
		Status:     TradePending,
	})
	s.Require().NoError(err)

	d := out.Display
	s.Contains(d.Description, "<@a>")
	s.Equal("1,500 coins", d.Fields[0].Value)
	s.Equal("Nothing", d.Fields[1].Value)
	s.Require().Len(d.Options[0], 2)
	s.Equal(models.Action{SessionKey: "t1", Type: models.ActionDecline}, d.Options[0][1].Action)
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	out, err := s.svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: ErrorTypeOnCooldown, Remaining: 6500 * time.Millisecond})
	s.Require().NoError(err)
	s.Equal("Cooldown", out.Title)
	s.Contains(out.Message, "**7** seconds")

	out, err = s.svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: ErrorTypeInvalidBet, MinAmount: 10, Amount: 1000})
	s.Require().NoError(err)
	s.Contains(out.Message, "1,000 coins")

	out, err = s.svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: ErrorTypeSessionActive, Kind: models.GameKindBlackjack})
	s.Require().NoError(err)
	s.Contains(out.Message, "blackjack")

	out, err = s.svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: ErrorTypeInvalidTrade, Detail: "You cannot trade with yourself!"})
	s.Require().NoError(err)
	s.Equal("You cannot trade with yourself!", out.Message)
}

func (s *MessagingServiceTestSuite) TestRenderError() {
	out, err := s.svc.RenderError(s.ctx, &GetErrorMessageInput{ErrorType: ErrorTypeNotOwner})
	s.Require().NoError(err)

	s.Equal(models.ColorError, out.Display.Color)
	s.Contains(out.Display.Title, "Not Yours")
}
