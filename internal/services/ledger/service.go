package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/arcade/internal/common/clock"
	"github.com/KirkDiggler/arcade/internal/common/lock"
	"github.com/KirkDiggler/arcade/internal/models"
	ledgerRepo "github.com/KirkDiggler/arcade/internal/repositories/ledger"
	"github.com/rs/zerolog/log"
)

// service implements the Service interface
type service struct {
	repo            ledgerRepo.Repository
	clock           clock.Clock
	locks           *lock.UserLock
	startingBalance int64
	location        *time.Location
	dailyBase       int64
	streakBonus     int64
	maxStreakBonus  int64
}

// New creates a new ledger service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	s := &service{
		repo:            cfg.Repository,
		clock:           cfg.Clock,
		locks:           cfg.Locks,
		startingBalance: cfg.StartingBalance,
		location:        cfg.Location,
		dailyBase:       cfg.DailyBase,
		streakBonus:     cfg.StreakBonus,
		maxStreakBonus:  cfg.MaxStreakBonus,
	}

	if s.locks == nil {
		s.locks = lock.NewUserLock()
	}
	if s.startingBalance <= 0 {
		s.startingBalance = DefaultStartingBalance
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.dailyBase <= 0 {
		s.dailyBase = DefaultDailyBase
	}
	if s.streakBonus <= 0 {
		s.streakBonus = DefaultStreakBonus
	}
	if s.maxStreakBonus <= 0 {
		s.maxStreakBonus = DefaultMaxStreakBonus
	}

	return s, nil
}

// load reads a user record, returning a fresh default record when none is stored
func (s *service) load(ctx context.Context, userID string) (*models.UserRecord, bool, error) {
	user, err := s.repo.GetUser(ctx, &ledgerRepo.GetUserInput{
		UserID: userID,
	})
	if err == nil {
		return user, false, nil
	}

	if !errors.Is(err, ledgerRepo.ErrUserNotFound) {
		return nil, false, err
	}

	return models.NewUserRecord(userID, s.startingBalance, s.clock.Now()), true, nil
}

// GetUser returns a user's record, creating the default record on first sight
func (s *service) GetUser(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.UserID == "" {
		return nil, ErrInvalidUserID
	}

	user, created, err := s.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if created {
		// Another caller may have created the record while we were reading
		out, err := s.Mutate(ctx, &MutateInput{
			UserIDs: []string{input.UserID},
			Apply:   func(map[string]*models.UserRecord) error { return nil },
		})
		if err != nil {
			return nil, err
		}
		user = out.Users[input.UserID]
	}

	return &GetUserOutput{
		User: user,
	}, nil
}

// Mutate runs a read-modify-write over one or more users under their locks
func (s *service) Mutate(ctx context.Context, input *MutateInput) (*MutateOutput, error) {
	if input == nil || input.Apply == nil {
		return nil, ErrInvalidInput
	}

	if len(input.UserIDs) == 0 {
		return nil, ErrInvalidUserID
	}

	for _, id := range input.UserIDs {
		if id == "" {
			return nil, ErrInvalidUserID
		}
	}

	users := make(map[string]*models.UserRecord, len(input.UserIDs))
	err := s.locks.WithLocks(input.UserIDs, func() error {
		for _, id := range input.UserIDs {
			if _, ok := users[id]; ok {
				continue
			}

			user, _, err := s.load(ctx, id)
			if err != nil {
				return err
			}
			users[id] = user
		}

		if err := input.Apply(users); err != nil {
			return err
		}

		records := make([]*models.UserRecord, 0, len(users))
		for _, user := range users {
			if user.Balance < 0 {
				return ErrNegativeBalance
			}
			records = append(records, user)
		}

		if err := s.repo.SaveUsers(ctx, &ledgerRepo.SaveUsersInput{
			Users: records,
		}); err != nil {
			log.Error().Err(err).Strs("users", input.UserIDs).Msg("Failed to save ledger mutation")
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &MutateOutput{
		Users: users,
	}, nil
}

// mutateOne is Mutate for a single user
func (s *service) mutateOne(ctx context.Context, userID string, apply func(user *models.UserRecord) error) (*models.UserRecord, error) {
	out, err := s.Mutate(ctx, &MutateInput{
		UserIDs: []string{userID},
		Apply: func(users map[string]*models.UserRecord) error {
			return apply(users[userID])
		},
	})
	if err != nil {
		return nil, err
	}

	return out.Users[userID], nil
}

// Credit adds coins to a user's balance
func (s *service) Credit(ctx context.Context, input *CreditInput) (*BalanceOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	user, err := s.mutateOne(ctx, input.UserID, func(user *models.UserRecord) error {
		user.Balance += input.Amount
		user.Stats.TotalEarned += input.Amount
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &BalanceOutput{
		Balance: user.Balance,
		Applied: input.Amount,
	}, nil
}

// Debit removes coins, failing with InsufficientFunds when the balance is too low
func (s *service) Debit(ctx context.Context, input *DebitInput) (*BalanceOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	user, err := s.mutateOne(ctx, input.UserID, func(user *models.UserRecord) error {
		if user.Balance < input.Amount {
			return &InsufficientFundsError{Need: input.Amount, Have: user.Balance}
		}
		user.Balance -= input.Amount
		user.Stats.TotalSpent += input.Amount
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &BalanceOutput{
		Balance: user.Balance,
		Applied: -input.Amount,
	}, nil
}

// SetBalance overwrites a user's balance
func (s *service) SetBalance(ctx context.Context, input *SetBalanceInput) (*BalanceOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.Balance < 0 {
		return nil, ErrNegativeBalance
	}

	var applied int64
	user, err := s.mutateOne(ctx, input.UserID, func(user *models.UserRecord) error {
		applied = input.Balance - user.Balance
		user.Balance = input.Balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &BalanceOutput{
		Balance: user.Balance,
		Applied: applied,
	}, nil
}

// ApplyGameResult settles a terminal outcome: balance, stats and cooldown in one write.
// A loss larger than the balance is clamped so the balance stops at zero.
func (s *service) ApplyGameResult(ctx context.Context, input *ApplyGameResultInput) (*models.Settlement, error) {
	if input == nil || input.Outcome == nil {
		return nil, ErrInvalidInput
	}

	outcome := input.Outcome
	if outcome.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	var applied int64
	user, err := s.mutateOne(ctx, input.UserID, func(user *models.UserRecord) error {
		switch outcome.Result {
		case models.OutcomeWin:
			user.Balance += outcome.Amount
			user.Stats.TotalEarned += outcome.Amount
			user.Stats.GamesWon++
			applied = outcome.Amount
		case models.OutcomeLose:
			debit := min(outcome.Amount, user.Balance)
			user.Balance -= debit
			user.Stats.TotalSpent += debit
			applied = -debit
		}

		user.Stats.GamesPlayed++
		if input.Kind != "" {
			user.Cooldowns[input.Kind] = s.clock.Now()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.Settlement{
		Outcome: outcome,
		Applied: applied,
		Record:  user,
	}, nil
}

// CheckCooldown reports whether a user may start a game kind
func (s *service) CheckCooldown(ctx context.Context, input *CheckCooldownInput) (*CheckCooldownOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	out, err := s.GetUser(ctx, &GetUserInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	last, ok := out.User.Cooldowns[input.Kind]
	if !ok {
		return &CheckCooldownOutput{CanPlay: true}, nil
	}

	elapsed := s.clock.Now().Sub(last)
	if elapsed >= input.Window {
		return &CheckCooldownOutput{CanPlay: true}, nil
	}

	return &CheckCooldownOutput{
		CanPlay:   false,
		Remaining: input.Window - elapsed,
	}, nil
}

// StampCooldown records now as the last play of a game kind
func (s *service) StampCooldown(ctx context.Context, input *StampCooldownInput) error {
	if input == nil {
		return ErrInvalidInput
	}

	_, err := s.mutateOne(ctx, input.UserID, func(user *models.UserRecord) error {
		user.Cooldowns[input.Kind] = s.clock.Now()
		return nil
	})
	return err
}

// GetLeaderboard returns the top users by a metric
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	metric := input.Metric
	if metric == "" {
		metric = models.LeaderboardBalance
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}

	out, err := s.repo.GetLeaderboard(ctx, &ledgerRepo.GetLeaderboardInput{
		Metric: metric,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{
		Metric:  metric,
		Entries: out.Entries,
	}, nil
}

// AddItem appends a copy of the item to a user's inventory
func (s *service) AddItem(ctx context.Context, input *AddItemInput) error {
	if input == nil || input.Item == nil {
		return ErrInvalidInput
	}

	item := *input.Item
	_, err := s.mutateOne(ctx, input.UserID, func(user *models.UserRecord) error {
		user.Inventory = append(user.Inventory, &item)
		return nil
	})
	return err
}

// RemoveItem takes the first matching item out of a user's inventory
func (s *service) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	var removed *models.Item
	_, err := s.mutateOne(ctx, input.UserID, func(user *models.UserRecord) error {
		idx := user.FindItem(input.ItemID)
		if idx < 0 {
			return ErrItemNotOwned
		}
		removed = user.Inventory[idx]
		user.Inventory = append(user.Inventory[:idx], user.Inventory[idx+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RemoveItemOutput{
		Item: removed,
	}, nil
}

// ResetUser deletes a user's record so the next read starts fresh
func (s *service) ResetUser(ctx context.Context, input *ResetUserInput) error {
	if input == nil {
		return ErrInvalidInput
	}

	if input.UserID == "" {
		return ErrInvalidUserID
	}

	return s.locks.WithLock(input.UserID, func() error {
		return s.repo.DeleteUser(ctx, &ledgerRepo.DeleteUserInput{
			UserID: input.UserID,
		})
	})
}

// CountUsers returns the number of known users
func (s *service) CountUsers(ctx context.Context) (int64, error) {
	return s.repo.CountUsers(ctx)
}
