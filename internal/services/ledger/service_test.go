package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/arcade/internal/common/clock/mocks"
	"github.com/KirkDiggler/arcade/internal/models"
	ledgerRepo "github.com/KirkDiggler/arcade/internal/repositories/ledger"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *clockMocks.MockClock
	mr        *miniredis.Miniredis
	client    *redis.Client
	repo      ledgerRepo.Repository
	svc       *service
	ctx       context.Context
	now       time.Time
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	repo, err := ledgerRepo.NewRedis(&ledgerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.repo = repo

	svc, err := New(&Config{
		Repository: repo,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.ctrl.Finish()
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) balance(userID string) int64 {
	out, err := s.svc.GetUser(s.ctx, &GetUserInput{UserID: userID})
	s.Require().NoError(err)
	return out.User.Balance
}

func (s *LedgerServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock})
	s.ErrorIs(err, ErrNilRepository)

	_, err = New(&Config{Repository: s.repo})
	s.ErrorIs(err, ErrNilClock)
}

func (s *LedgerServiceTestSuite) TestGetUserCreatesDefault() {
	out, err := s.svc.GetUser(s.ctx, &GetUserInput{UserID: "u1"})
	s.Require().NoError(err)

	s.Equal(int64(100), out.User.Balance)
	s.Empty(out.User.Inventory)
	s.Empty(out.User.Cooldowns)
	s.Zero(out.User.Stats.GamesPlayed)
	s.True(out.User.CreatedAt.Equal(s.now))

	stored, err := s.repo.GetUser(s.ctx, &ledgerRepo.GetUserInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Equal(int64(100), stored.Balance)
}

func (s *LedgerServiceTestSuite) TestGetUserEmptyID() {
	_, err := s.svc.GetUser(s.ctx, &GetUserInput{})
	s.ErrorIs(err, ErrInvalidUserID)

	_, err = s.svc.GetUser(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *LedgerServiceTestSuite) TestCreditAndDebit() {
	out, err := s.svc.Credit(s.ctx, &CreditInput{UserID: "u1", Amount: 50})
	s.Require().NoError(err)
	s.Equal(int64(150), out.Balance)

	out, err = s.svc.Debit(s.ctx, &DebitInput{UserID: "u1", Amount: 30})
	s.Require().NoError(err)
	s.Equal(int64(120), out.Balance)
	s.Equal(int64(-30), out.Applied)

	user, err := s.svc.GetUser(s.ctx, &GetUserInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Equal(int64(50), user.User.Stats.TotalEarned)
	s.Equal(int64(30), user.User.Stats.TotalSpent)
}

func (s *LedgerServiceTestSuite) TestDebitInsufficientFunds() {
	_, err := s.svc.Debit(s.ctx, &DebitInput{UserID: "u1", Amount: 101})
	s.ErrorIs(err, ErrInsufficientFunds)

	var fundsErr *InsufficientFundsError
	s.Require().ErrorAs(err, &fundsErr)
	s.Equal(int64(101), fundsErr.Need)
	s.Equal(int64(100), fundsErr.Have)

	s.Equal(int64(100), s.balance("u1"))
}

func (s *LedgerServiceTestSuite) TestInvalidAmounts() {
	_, err := s.svc.Credit(s.ctx, &CreditInput{UserID: "u1", Amount: 0})
	s.ErrorIs(err, ErrInvalidAmount)

	_, err = s.svc.Debit(s.ctx, &DebitInput{UserID: "u1", Amount: -5})
	s.ErrorIs(err, ErrInvalidAmount)

	_, err = s.svc.SetBalance(s.ctx, &SetBalanceInput{UserID: "u1", Balance: -1})
	s.ErrorIs(err, ErrNegativeBalance)
}

func (s *LedgerServiceTestSuite) TestSetBalance() {
	out, err := s.svc.SetBalance(s.ctx, &SetBalanceInput{UserID: "u1", Balance: GodmodeBalance})
	s.Require().NoError(err)
	s.Equal(GodmodeBalance, out.Balance)
	s.Equal(GodmodeBalance-100, out.Applied)
}

func (s *LedgerServiceTestSuite) TestApplyGameResultWin() {
	settlement, err := s.svc.ApplyGameResult(s.ctx, &ApplyGameResultInput{
		UserID:  "u1",
		Kind:    models.GameKindGuess,
		Outcome: models.Win(40, "guessed"),
	})
	s.Require().NoError(err)

	s.Equal(int64(40), settlement.Applied)
	s.Equal(int64(140), settlement.Record.Balance)
	s.Equal(int64(1), settlement.Record.Stats.GamesPlayed)
	s.Equal(int64(1), settlement.Record.Stats.GamesWon)
	s.Equal(int64(40), settlement.Record.Stats.TotalEarned)
	s.True(settlement.Record.Cooldowns[models.GameKindGuess].Equal(s.now))
}

func (s *LedgerServiceTestSuite) TestApplyGameResultPush() {
	settlement, err := s.svc.ApplyGameResult(s.ctx, &ApplyGameResultInput{
		UserID:  "u1",
		Kind:    models.GameKindTicTacToe,
		Outcome: models.Push("tie"),
	})
	s.Require().NoError(err)

	s.Zero(settlement.Applied)
	s.Equal(int64(100), settlement.Record.Balance)
	s.Equal(int64(1), settlement.Record.Stats.GamesPlayed)
	s.Zero(settlement.Record.Stats.GamesWon)
}

func (s *LedgerServiceTestSuite) TestApplyGameResultLossIsClamped() {
	_, err := s.svc.SetBalance(s.ctx, &SetBalanceInput{UserID: "u1", Balance: 30})
	s.Require().NoError(err)

	settlement, err := s.svc.ApplyGameResult(s.ctx, &ApplyGameResultInput{
		UserID:  "u1",
		Kind:    models.GameKindBlackjack,
		Outcome: models.Lose(50, "bust"),
	})
	s.Require().NoError(err)

	s.Equal(int64(-30), settlement.Applied)
	s.Zero(settlement.Record.Balance)
	s.Equal(int64(30), settlement.Record.Stats.TotalSpent)
}

func (s *LedgerServiceTestSuite) TestCooldown() {
	out, err := s.svc.CheckCooldown(s.ctx, &CheckCooldownInput{UserID: "u1", Kind: models.GameKindGuess, Window: 10 * time.Second})
	s.Require().NoError(err)
	s.True(out.CanPlay)

	s.Require().NoError(s.svc.StampCooldown(s.ctx, &StampCooldownInput{UserID: "u1", Kind: models.GameKindGuess}))

	s.now = s.now.Add(3500 * time.Millisecond)
	out, err = s.svc.CheckCooldown(s.ctx, &CheckCooldownInput{UserID: "u1", Kind: models.GameKindGuess, Window: 10 * time.Second})
	s.Require().NoError(err)
	s.False(out.CanPlay)
	s.Equal(7, out.RemainingSeconds())

	out, err = s.svc.CheckCooldown(s.ctx, &CheckCooldownInput{UserID: "u1", Kind: models.GameKindSlots, Window: 10 * time.Second})
	s.Require().NoError(err)
	s.True(out.CanPlay)

	s.now = s.now.Add(6500 * time.Millisecond)
	out, err = s.svc.CheckCooldown(s.ctx, &CheckCooldownInput{UserID: "u1", Kind: models.GameKindGuess, Window: 10 * time.Second})
	s.Require().NoError(err)
	s.True(out.CanPlay)
}

func (s *LedgerServiceTestSuite) TestClaimDailyStreak() {
	out, err := s.svc.ClaimDaily(s.ctx, &ClaimDailyInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Equal(1, out.Streak)
	s.Equal(int64(30), out.Reward)
	s.Equal(int64(130), out.Balance)

	s.now = s.now.Add(24 * time.Hour)
	out, err = s.svc.ClaimDaily(s.ctx, &ClaimDailyInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Equal(2, out.Streak)
	s.Equal(int64(35), out.Reward)

	s.now = s.now.Add(72 * time.Hour)
	out, err = s.svc.ClaimDaily(s.ctx, &ClaimDailyInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Equal(1, out.Streak)
}

func (s *LedgerServiceTestSuite) TestClaimDailyTwiceSameDay() {
	_, err := s.svc.ClaimDaily(s.ctx, &ClaimDailyInput{UserID: "u1"})
	s.Require().NoError(err)

	s.now = s.now.Add(2 * time.Hour)
	_, err = s.svc.ClaimDaily(s.ctx, &ClaimDailyInput{UserID: "u1"})
	s.ErrorIs(err, ErrAlreadyClaimed)

	var claimed *AlreadyClaimedError
	s.Require().ErrorAs(err, &claimed)
	s.Equal(12*time.Hour, claimed.Remaining)

	s.Equal(int64(130), s.balance("u1"))
}

func (s *LedgerServiceTestSuite) TestClaimDailyCrossesMidnight() {
	s.now = time.Date(2025, 4, 5, 23, 59, 0, 0, time.UTC)
	_, err := s.svc.ClaimDaily(s.ctx, &ClaimDailyInput{UserID: "u1"})
	s.Require().NoError(err)

	s.now = s.now.Add(2 * time.Minute)
	out, err := s.svc.ClaimDaily(s.ctx, &ClaimDailyInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Equal(2, out.Streak)
}

func (s *LedgerServiceTestSuite) TestDailyRewardCap() {
	s.Equal(int64(30), s.svc.DailyReward(1))
	s.Equal(int64(75), s.svc.DailyReward(10))
	s.Equal(int64(75), s.svc.DailyReward(100))
}

func (s *LedgerServiceTestSuite) TestItems() {
	gem := &models.Item{ID: "item_gem", Name: "Mystic Gem", Price: 500}
	s.Require().NoError(s.svc.AddItem(s.ctx, &AddItemInput{UserID: "u1", Item: gem}))

	out, err := s.svc.RemoveItem(s.ctx, &RemoveItemInput{UserID: "u1", ItemID: "item_gem"})
	s.Require().NoError(err)
	s.Equal("Mystic Gem", out.Item.Name)

	_, err = s.svc.RemoveItem(s.ctx, &RemoveItemInput{UserID: "u1", ItemID: "item_gem"})
	s.ErrorIs(err, ErrItemNotOwned)
}

func (s *LedgerServiceTestSuite) TestResetUser() {
	_, err := s.svc.Credit(s.ctx, &CreditInput{UserID: "u1", Amount: 900})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.ResetUser(s.ctx, &ResetUserInput{UserID: "u1"}))
	s.Equal(int64(100), s.balance("u1"))
}

func (s *LedgerServiceTestSuite) TestMutateIsAllOrNothing() {
	_, err := s.svc.Mutate(s.ctx, &MutateInput{
		UserIDs: []string{"a", "b"},
		Apply: func(users map[string]*models.UserRecord) error {
			users["a"].Balance += 10
			users["b"].Balance -= 500
			return nil
		},
	})
	s.ErrorIs(err, ErrNegativeBalance)

	s.Equal(int64(100), s.balance("a"))
	s.Equal(int64(100), s.balance("b"))
}

func (s *LedgerServiceTestSuite) TestLeaderboard() {
	_, err := s.svc.Credit(s.ctx, &CreditInput{UserID: "rich", Amount: 1000})
	s.Require().NoError(err)
	_, err = s.svc.GetUser(s.ctx, &GetUserInput{UserID: "poor"})
	s.Require().NoError(err)

	out, err := s.svc.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Equal(models.LeaderboardBalance, out.Metric)
	s.Require().Len(out.Entries, 2)
	s.Equal("rich", out.Entries[0].UserID)
	s.Equal(int64(1100), out.Entries[0].Score)
}

func (s *LedgerServiceTestSuite) TestConcurrentCreditsAreSerialized() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.svc.Credit(s.ctx, &CreditInput{UserID: "u1", Amount: 5})
			s.NoError(err)
		}()
	}
	wg.Wait()

	s.Equal(int64(200), s.balance("u1"))
}
