package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	userKeyPrefix        = "user:"
	leaderboardKeyPrefix = "leaderboard:"
	usersKey             = "users"
)

// ErrUserNotFound is returned when a user is not found
var ErrUserNotFound = errors.New("user not found")

var metrics = []models.LeaderboardMetric{
	models.LeaderboardBalance,
	models.LeaderboardWins,
	models.LeaderboardGames,
}

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func userKey(userID string) string {
	return userKeyPrefix + userID
}

func leaderboardKey(metric models.LeaderboardMetric) string {
	return leaderboardKeyPrefix + string(metric)
}

// GetUser retrieves a user record by ID from Redis
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.UserRecord, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userJSON, err := r.client.Get(ctx, userKey(input.UserID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.UserRecord
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	if user.Cooldowns == nil {
		user.Cooldowns = make(map[models.GameKind]time.Time)
	}
	if user.Inventory == nil {
		user.Inventory = []*models.Item{}
	}

	return &user, nil
}

// SaveUser persists a user record and its leaderboard scores in one transaction
func (r *redisRepository) SaveUser(ctx context.Context, input *SaveUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	return r.SaveUsers(ctx, &SaveUsersInput{
		Users: []*models.UserRecord{input.User},
	})
}

// SaveUsers persists every record and its leaderboard scores in one transaction
func (r *redisRepository) SaveUsers(ctx context.Context, input *SaveUsersInput) error {
	if input == nil || len(input.Users) == 0 {
		return errors.New("input and users cannot be empty")
	}

	pipe := r.client.TxPipeline()
	for _, user := range input.Users {
		if user == nil || user.ID == "" {
			return errors.New("user ID cannot be empty")
		}

		userJSON, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to marshal user: %w", err)
		}

		pipe.Set(ctx, userKey(user.ID), userJSON, 0)
		pipe.SAdd(ctx, usersKey, user.ID)
		for _, metric := range metrics {
			pipe.ZAdd(ctx, leaderboardKey(metric), redis.Z{
				Score:  float64(metric.Value(user)),
				Member: user.ID,
			})
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}

	return nil
}

// DeleteUser removes a user record and its leaderboard scores
func (r *redisRepository) DeleteUser(ctx context.Context, input *DeleteUserInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, userKey(input.UserID))
	pipe.SRem(ctx, usersKey, input.UserID)
	for _, metric := range metrics {
		pipe.ZRem(ctx, leaderboardKey(metric), input.UserID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// GetLeaderboard reads the top entries of a metric's sorted set
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input cannot be nil and limit must be positive")
	}

	metric := input.Metric
	if metric == "" {
		metric = models.LeaderboardBalance
	}

	scores, err := r.client.ZRevRangeWithScores(ctx, leaderboardKey(metric), 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]*models.LeaderboardEntry, 0, len(scores))
	for i, z := range scores {
		userID, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, &models.LeaderboardEntry{
			Rank:   i + 1,
			UserID: userID,
			Score:  int64(z.Score),
		})
	}

	return &GetLeaderboardOutput{
		Entries: entries,
	}, nil
}

// CountUsers returns the number of stored users
func (r *redisRepository) CountUsers(ctx context.Context) (int64, error) {
	n, err := r.client.SCard(ctx, usersKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
