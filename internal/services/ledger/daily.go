package ledger

import (
	"context"
	"time"

	"github.com/KirkDiggler/arcade/internal/models"
)

// ClaimDaily grants the daily reward once per calendar day.
// Claiming on the day after the previous claim extends the streak, any longer gap resets it to one.
func (s *service) ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	now := s.clock.Now().In(s.location)
	today := startOfDay(now)

	var reward int64
	user, err := s.mutateOne(ctx, input.UserID, func(user *models.UserRecord) error {
		if user.LastDaily.IsZero() {
			user.DailyStreak = 1
		} else {
			last := startOfDay(user.LastDaily.In(s.location))
			switch {
			case !today.After(last):
				return &AlreadyClaimedError{Remaining: today.AddDate(0, 0, 1).Sub(now)}
			case last.Equal(today.AddDate(0, 0, -1)):
				user.DailyStreak++
			default:
				user.DailyStreak = 1
			}
		}

		reward = s.DailyReward(user.DailyStreak)
		user.Balance += reward
		user.Stats.TotalEarned += reward
		user.LastDaily = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ClaimDailyOutput{
		Reward:  reward,
		Streak:  user.DailyStreak,
		Balance: user.Balance,
	}, nil
}

// DailyReward returns the reward for a streak length
func (s *service) DailyReward(streak int) int64 {
	return s.dailyBase + min(int64(streak)*s.streakBonus, s.maxStreakBonus)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
