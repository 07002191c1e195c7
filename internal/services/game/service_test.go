package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/arcade/internal/common/clock"
	clockMocks "github.com/KirkDiggler/arcade/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/arcade/internal/common/uuid/mocks"
	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/games/guess"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
	randomMocks "github.com/KirkDiggler/arcade/internal/random/mocks"
	ledgerRepo "github.com/KirkDiggler/arcade/internal/repositories/ledger"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/KirkDiggler/arcade/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/arcade/internal/services/messaging/mocks"
	"github.com/KirkDiggler/arcade/internal/services/session"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// scriptedEngine lets a test decide every transition
type scriptedEngine struct {
	kind  models.GameKind
	start func(input *games.StartInput) (*games.Step, error)
	apply func(input *games.ApplyInput) (*games.Step, error)
}

func (e *scriptedEngine) Kind() models.GameKind { return e.kind }

func (e *scriptedEngine) Start(input *games.StartInput) (*games.Step, error) {
	if e.start != nil {
		return e.start(input)
	}
	return &games.Step{State: 0}, nil
}

func (e *scriptedEngine) Apply(input *games.ApplyInput) (*games.Step, error) {
	return e.apply(input)
}

type GameServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockClock    *clockMocks.MockClock
	mockKeys     *uuidMocks.MockKeyGenerator
	mockRand     *randomMocks.MockSource
	mockNotifier *messagingMocks.MockNotifier
	mr           *miniredis.Miniredis
	client       *redis.Client
	ledger       ledger.Service
	registry     session.Registry
	messaging    messaging.Service
	svc          *service
	ctx          context.Context

	mu     sync.Mutex
	now    time.Time
	timers []func()
	keyN   int
}

func (s *GameServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.ctrl)
	s.mockKeys = uuidMocks.NewMockKeyGenerator(s.ctrl)
	s.mockRand = randomMocks.NewMockSource(s.ctrl)
	s.mockNotifier = messagingMocks.NewMockNotifier(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.timers = nil
	s.keyN = 0

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.now
	}).AnyTimes()
	s.mockClock.EXPECT().AfterFunc(gomock.Any(), gomock.Any()).DoAndReturn(func(d time.Duration, fn func()) clock.Timer {
		s.mu.Lock()
		s.timers = append(s.timers, fn)
		s.mu.Unlock()

		timer := clockMocks.NewMockTimer(s.ctrl)
		timer.EXPECT().Stop().Return(true).AnyTimes()
		return timer
	}).AnyTimes()
	s.mockKeys.EXPECT().NewKey().DoAndReturn(func() string {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.keyN++
		return fmt.Sprintf("game%d", s.keyN)
	}).AnyTimes()

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	repo, err := ledgerRepo.NewRedis(&ledgerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	l, err := ledger.New(&ledger.Config{Repository: repo, Clock: s.mockClock})
	s.Require().NoError(err)
	s.ledger = l

	reg, err := session.New(&session.Config{Clock: s.mockClock, KeyGenerator: s.mockKeys})
	s.Require().NoError(err)
	s.registry = reg

	msg, err := messaging.New(&messaging.Config{Rand: random.New(&random.Config{Seed: 1})})
	s.Require().NoError(err)
	s.messaging = msg

	s.svc = s.newService(nil, msg)
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.ctrl.Finish()
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) newService(engines *games.Registry, msg messaging.Service) *service {
	svc, err := New(&Config{
		Ledger:    s.ledger,
		Registry:  s.registry,
		Messaging: msg,
		Engines:   engines,
		Rand:      s.mockRand,
		Notifier:  s.mockNotifier,
	})
	s.Require().NoError(err)
	return svc
}

// scripted builds a service running a single scripted engine with stubbed rendering
func (s *GameServiceTestSuite) scripted(engine *scriptedEngine) *service {
	engines := games.NewRegistry()
	s.Require().NoError(engines.Register(engine))

	msg := messagingMocks.NewMockService(s.ctrl)
	msg.EXPECT().RenderSession(gomock.Any(), gomock.Any()).
		Return(&messaging.RenderOutput{Display: &models.Display{Title: "scripted"}}, nil).AnyTimes()
	msg.EXPECT().RenderExpired(gomock.Any(), gomock.Any()).
		Return(&messaging.RenderOutput{Display: &models.Display{Title: "expired"}}, nil).AnyTimes()

	return s.newService(engines, msg)
}

func (s *GameServiceTestSuite) advance(d time.Duration) {
	s.mu.Lock()
	s.now = s.now.Add(d)
	s.mu.Unlock()
}

func (s *GameServiceTestSuite) fireTimers() {
	s.mu.Lock()
	timers := s.timers
	s.timers = nil
	s.mu.Unlock()

	for _, fn := range timers {
		fn()
	}
}

func (s *GameServiceTestSuite) user(userID string) *models.UserRecord {
	out, err := s.ledger.GetUser(s.ctx, &ledger.GetUserInput{UserID: userID})
	s.Require().NoError(err)
	return out.User
}

func (s *GameServiceTestSuite) setBalance(userID string, balance int64) {
	_, err := s.ledger.SetBalance(s.ctx, &ledger.SetBalanceInput{UserID: userID, Balance: balance})
	s.Require().NoError(err)
}

// startGuess starts a number guess whose secret is 7
func (s *GameServiceTestSuite) startGuess(userID string, wager int64) *models.Session {
	s.mockRand.EXPECT().Intn(guess.MaxNumber).Return(6)

	out, err := s.svc.StartGame(s.ctx, &StartGameInput{
		UserID:    userID,
		ChannelID: "chan",
		Kind:      models.GameKindGuess,
		Wager:     wager,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Session)
	return out.Session
}

func (s *GameServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Registry: s.registry, Messaging: s.messaging})
	s.ErrorIs(err, ErrNilLedger)

	_, err = New(&Config{Ledger: s.ledger, Messaging: s.messaging})
	s.ErrorIs(err, ErrNilRegistry)

	_, err = New(&Config{Ledger: s.ledger, Registry: s.registry})
	s.ErrorIs(err, ErrNilMessaging)
}

func (s *GameServiceTestSuite) TestDefaultEnginesCoverCatalog() {
	engines := DefaultEngines()
	for _, kind := range games.Kinds() {
		rules, err := games.RulesFor(kind)
		s.Require().NoError(err)

		if rules.Instant() {
			_, ok := engines.Instant(kind)
			s.True(ok, kind)
		} else {
			_, ok := engines.Engine(kind)
			s.True(ok, kind)
		}
	}
}

func (s *GameServiceTestSuite) TestGuessCorrectFirstTry() {
	sess := s.startGuess("alice", 10)
	s.Equal("alice", sess.OwnerID)
	s.Equal(int64(10), sess.Wager)

	out, err := s.svc.HandleAction(s.ctx, &HandleActionInput{
		ActorID: "alice",
		Action:  models.Action{SessionKey: sess.Key, Type: models.ActionChoice, Index: 7},
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Settlement)
	s.Equal(models.OutcomeWin, out.Settlement.Outcome.Result)
	s.Equal(int64(40), out.Settlement.Applied)
	s.Equal("🎯 Correct!", out.Display.Title)

	user := s.user("alice")
	s.Equal(int64(140), user.Balance)
	s.Equal(int64(1), user.Stats.GamesWon)
	s.Equal(int64(1), user.Stats.GamesPlayed)
	s.Equal(0, s.registry.Count())
}

func (s *GameServiceTestSuite) TestWrongGuessKeepsSessionOpen() {
	sess := s.startGuess("alice", 10)

	out, err := s.svc.HandleAction(s.ctx, &HandleActionInput{
		ActorID: "alice",
		Action:  models.Action{SessionKey: sess.Key, Type: models.ActionChoice, Index: 3},
	})
	s.Require().NoError(err)
	s.Nil(out.Settlement)

	state, ok := out.Session.Payload.(*guess.State)
	s.Require().True(ok)
	s.Equal(guess.HintHigher, state.LastHint)
	s.Equal(guess.Attempts-1, state.AttemptsLeft)

	s.Equal(int64(100), s.user("alice").Balance)
	s.Equal(1, s.registry.Count())
}

func (s *GameServiceTestSuite) TestInvalidActionLeavesSessionUntouched() {
	sess := s.startGuess("alice", 10)

	_, err := s.svc.HandleAction(s.ctx, &HandleActionInput{
		ActorID: "alice",
		Action:  models.Action{SessionKey: sess.Key, Type: models.ActionChoice, Index: 0},
	})
	s.ErrorIs(err, games.ErrInvalidAction)

	current, err := s.registry.Get(s.ctx, &session.GetInput{Key: sess.Key})
	s.Require().NoError(err)
	s.Equal(guess.Attempts, current.Payload.(*guess.State).AttemptsLeft)
}

func (s *GameServiceTestSuite) TestOnlyOwnerMayAct() {
	sess := s.startGuess("alice", 10)

	_, err := s.svc.HandleAction(s.ctx, &HandleActionInput{
		ActorID: "mallory",
		Action:  models.Action{SessionKey: sess.Key, Type: models.ActionChoice, Index: 7},
	})
	s.ErrorIs(err, session.ErrNotOwner)
	s.Equal(1, s.registry.Count())
	s.False(s.mr.Exists("user:mallory"), "rejected action must not create a ledger record")
	s.Equal(int64(100), s.user("alice").Balance)
}

func (s *GameServiceTestSuite) TestHandleActionUnknownSession() {
	_, err := s.svc.HandleAction(s.ctx, &HandleActionInput{
		ActorID: "alice",
		Action:  models.Action{SessionKey: "missing", Type: models.ActionChoice, Index: 1},
	})
	s.ErrorIs(err, session.ErrSessionNotFound)

	_, err = s.svc.HandleAction(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.svc.HandleAction(s.ctx, &HandleActionInput{})
	s.ErrorIs(err, ErrInvalidUser)
}

func (s *GameServiceTestSuite) TestBetRangeCheckedFirst() {
	// broke, on cooldown and already playing
	s.startGuess("alice", 10)
	s.setBalance("alice", 0)

	_, err := s.svc.StartGame(s.ctx, &StartGameInput{UserID: "alice", Kind: models.GameKindGuess, Wager: 5000})
	s.ErrorIs(err, games.ErrBetOutOfRange)

	var rangeErr *games.BetRangeError
	s.Require().True(errors.As(err, &rangeErr))
	s.Equal(int64(10), rangeErr.Min)
	s.Equal(int64(500), rangeErr.Max)
}

func (s *GameServiceTestSuite) TestSecondSessionOfKindRejected() {
	first := s.startGuess("alice", 10)

	_, err := s.svc.StartGame(s.ctx, &StartGameInput{UserID: "alice", Kind: models.GameKindGuess, Wager: 10})
	s.ErrorIs(err, session.ErrSessionActive)

	var active *session.ActiveError
	s.Require().True(errors.As(err, &active))
	s.Equal(first.Key, active.Key)

	// other users are unaffected
	s.startGuess("bob", 10)
	s.Equal(2, s.registry.Count())
}

func (s *GameServiceTestSuite) TestCooldownAfterSettlement() {
	sess := s.startGuess("alice", 10)
	_, err := s.svc.HandleAction(s.ctx, &HandleActionInput{
		ActorID: "alice",
		Action:  models.Action{SessionKey: sess.Key, Type: models.ActionChoice, Index: 7},
	})
	s.Require().NoError(err)

	s.advance(4 * time.Second)
	_, err = s.svc.StartGame(s.ctx, &StartGameInput{UserID: "alice", Kind: models.GameKindGuess, Wager: 10})
	s.ErrorIs(err, ledger.ErrOnCooldown)

	var cooldown *ledger.CooldownError
	s.Require().True(errors.As(err, &cooldown))
	s.Equal(6, cooldown.RemainingSeconds())

	s.advance(6 * time.Second)
	s.startGuess("alice", 10)
}

func (s *GameServiceTestSuite) TestInsufficientFunds() {
	s.setBalance("alice", 5)

	_, err := s.svc.StartGame(s.ctx, &StartGameInput{UserID: "alice", Kind: models.GameKindGuess, Wager: 10})
	s.ErrorIs(err, ledger.ErrInsufficientFunds)

	var funds *ledger.InsufficientFundsError
	s.Require().True(errors.As(err, &funds))
	s.Equal(int64(10), funds.Need)
	s.Equal(int64(5), funds.Have)
	s.Equal(0, s.registry.Count())
}

func (s *GameServiceTestSuite) TestStartGameKindMismatch() {
	_, err := s.svc.StartGame(s.ctx, &StartGameInput{UserID: "alice", Kind: models.GameKindDice, Wager: 10})
	s.ErrorIs(err, ErrInstantKind)

	_, err = s.svc.PlayInstant(s.ctx, &PlayInstantInput{UserID: "alice", Kind: models.GameKindGuess, Wager: 10})
	s.ErrorIs(err, ErrSessionKind)

	_, err = s.svc.StartGame(s.ctx, &StartGameInput{UserID: "alice", Kind: "poker", Wager: 10})
	s.ErrorIs(err, games.ErrUnknownKind)

	_, err = s.svc.StartGame(s.ctx, &StartGameInput{Kind: models.GameKindGuess, Wager: 10})
	s.ErrorIs(err, ErrInvalidUser)
}

func (s *GameServiceTestSuite) TestPushLeavesBalance() {
	svc := s.scripted(&scriptedEngine{
		kind: models.GameKindTicTacToe,
		apply: func(input *games.ApplyInput) (*games.Step, error) {
			return &games.Step{State: 1, Outcome: models.Push("draw")}, nil
		},
	})

	started, err := svc.StartGame(s.ctx, &StartGameInput{UserID: "alice", Kind: models.GameKindTicTacToe, Wager: 50})
	s.Require().NoError(err)

	out, err := svc.HandleAction(s.ctx, &HandleActionInput{
		ActorID: "alice",
		Action:  models.Action{SessionKey: started.Session.Key, Type: models.ActionCell, Index: 4},
	})
	s.Require().NoError(err)
	s.Equal(models.OutcomePush, out.Settlement.Outcome.Result)
	s.Equal(int64(0), out.Settlement.Applied)

	user := s.user("alice")
	s.Equal(int64(100), user.Balance)
	s.Equal(int64(1), user.Stats.GamesPlayed)
	s.Equal(int64(0), user.Stats.GamesWon)
}

func (s *GameServiceTestSuite) TestTerminalDealSettlesWithoutSession() {
	svc := s.scripted(&scriptedEngine{
		kind: models.GameKindBlackjack,
		start: func(input *games.StartInput) (*games.Step, error) {
			return &games.Step{State: 0, Outcome: models.Win(input.Wager*3/2, "blackjack")}, nil
		},
	})

	out, err := svc.StartGame(s.ctx, &StartGameInput{UserID: "alice", Kind: models.GameKindBlackjack, Wager: 20})
	s.Require().NoError(err)
	s.Nil(out.Session)
	s.Require().NotNil(out.Settlement)
	s.Equal(int64(30), out.Settlement.Applied)
	s.Equal(int64(130), s.user("alice").Balance)
	s.Equal(0, s.registry.Count())
}

func (s *GameServiceTestSuite) TestBalancePassedToEngine() {
	var seen int64
	svc := s.scripted(&scriptedEngine{
		kind: models.GameKindBlackjack,
		apply: func(input *games.ApplyInput) (*games.Step, error) {
			seen = input.Balance
			if input.Balance < 2*input.Wager {
				return nil, games.ErrCannotAfford
			}
			return &games.Step{State: 1, Outcome: models.Lose(2*input.Wager, "bust")}, nil
		},
	})

	started, err := svc.StartGame(s.ctx, &StartGameInput{UserID: "alice", Kind: models.GameKindBlackjack, Wager: 60})
	s.Require().NoError(err)

	_, err = svc.HandleAction(s.ctx, &HandleActionInput{
		ActorID: "alice",
		Action:  models.Action{SessionKey: started.Session.Key, Type: models.ActionDouble},
	})
	s.ErrorIs(err, games.ErrCannotAfford)
	s.Equal(int64(100), seen)
	s.Equal(1, s.registry.Count())
}

func (s *GameServiceTestSuite) TestTimeoutForfeitsWager() {
	sess := s.startGuess("alice", 25)
	s.Require().NoError(s.svc.SetMessage(s.ctx, &SetMessageInput{Key: sess.Key, ChannelID: "chan", MessageID: "msg1"}))

	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *messaging.NotifyInput) error {
			s.Equal("chan", input.ChannelID)
			s.Equal("msg1", input.MessageID)
			s.Equal("⏰ Time's Up!", input.Display.Title)
			return nil
		})

	s.advance(time.Minute)
	s.fireTimers()

	user := s.user("alice")
	s.Equal(int64(75), user.Balance)
	s.Equal(int64(1), user.Stats.GamesPlayed)
	s.Equal(0, s.registry.Count())

	_, err := s.svc.HandleAction(s.ctx, &HandleActionInput{
		ActorID: "alice",
		Action:  models.Action{SessionKey: sess.Key, Type: models.ActionChoice, Index: 7},
	})
	s.ErrorIs(err, session.ErrSessionNotFound)
}

func (s *GameServiceTestSuite) TestTimeoutWithoutMessageSkipsNotify() {
	s.startGuess("alice", 10)

	s.fireTimers()

	s.Equal(int64(90), s.user("alice").Balance)
}

func (s *GameServiceTestSuite) TestSettledSessionNeverForfeits() {
	sess := s.startGuess("alice", 10)
	_, err := s.svc.HandleAction(s.ctx, &HandleActionInput{
		ActorID: "alice",
		Action:  models.Action{SessionKey: sess.Key, Type: models.ActionChoice, Index: 7},
	})
	s.Require().NoError(err)

	s.fireTimers()

	s.Equal(int64(140), s.user("alice").Balance)
}

func (s *GameServiceTestSuite) TestConcurrentActionsSettleOnce() {
	svc := s.scripted(&scriptedEngine{
		kind: models.GameKindCoinFlip,
		apply: func(input *games.ApplyInput) (*games.Step, error) {
			return &games.Step{State: 1, Outcome: models.Win(input.Wager, "called_it")}, nil
		},
	})

	started, err := svc.StartGame(s.ctx, &StartGameInput{UserID: "alice", Kind: models.GameKindCoinFlip, Wager: 20})
	s.Require().NoError(err)

	const workers = 16
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		settled  int
		notFound int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.HandleAction(s.ctx, &HandleActionInput{
				ActorID: "alice",
				Action:  models.Action{SessionKey: started.Session.Key, Type: models.ActionChoice, Index: 0},
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				settled++
			case errors.Is(err, session.ErrSessionNotFound):
				notFound++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, settled)
	s.Equal(workers-1, notFound)

	user := s.user("alice")
	s.Equal(int64(120), user.Balance)
	s.Equal(int64(1), user.Stats.GamesPlayed)
}

func (s *GameServiceTestSuite) TestPlayInstantDice() {
	gomock.InOrder(
		s.mockRand.EXPECT().Intn(6).Return(5),
		s.mockRand.EXPECT().Intn(6).Return(0),
	)

	out, err := s.svc.PlayInstant(s.ctx, &PlayInstantInput{UserID: "alice", Kind: models.GameKindDice, Wager: 10})
	s.Require().NoError(err)
	s.Equal(models.OutcomeWin, out.Play.Outcome.Result)
	s.Equal(int64(10), out.Settlement.Applied)
	s.NotNil(out.Display)

	s.Equal(int64(110), s.user("alice").Balance)

	_, err = s.svc.PlayInstant(s.ctx, &PlayInstantInput{UserID: "alice", Kind: models.GameKindDice, Wager: 10})
	s.ErrorIs(err, ledger.ErrOnCooldown)
}

func (s *GameServiceTestSuite) TestPlayInstantChecks() {
	_, err := s.svc.PlayInstant(s.ctx, &PlayInstantInput{UserID: "alice", Kind: models.GameKindSlots, Wager: 1})
	s.ErrorIs(err, games.ErrBetOutOfRange)

	s.setBalance("alice", 3)
	_, err = s.svc.PlayInstant(s.ctx, &PlayInstantInput{UserID: "alice", Kind: models.GameKindSlots, Wager: 10})
	s.ErrorIs(err, ledger.ErrInsufficientFunds)

	_, err = s.svc.PlayInstant(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *GameServiceTestSuite) TestFindActiveSession() {
	_, err := s.svc.FindActiveSession(s.ctx, &FindActiveSessionInput{UserID: "alice", Kind: models.GameKindGuess})
	s.ErrorIs(err, session.ErrSessionNotFound)

	started := s.startGuess("alice", 10)

	found, err := s.svc.FindActiveSession(s.ctx, &FindActiveSessionInput{UserID: "alice", Kind: models.GameKindGuess})
	s.Require().NoError(err)
	s.Equal(started.Key, found.Key)
}
