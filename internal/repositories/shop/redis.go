package shop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key for the catalog hash, field is the item ID
	itemsKey = "shop:items"

	// Key set once the catalog has been written
	seededKey = "shop:seeded"
)

// ErrItemNotFound is returned when a catalog item is not found
var ErrItemNotFound = errors.New("shop item not found")

// Config holds configuration for the Redis shop repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed shop repository
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

// ListItems returns the catalog with roles first, then by price descending
func (r *redisRepository) ListItems(ctx context.Context) ([]*models.Item, error) {
	raw, err := r.client.HGetAll(ctx, itemsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list shop items: %w", err)
	}

	items := make([]*models.Item, 0, len(raw))
	for _, itemJSON := range raw {
		var item models.Item
		if err := json.Unmarshal([]byte(itemJSON), &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shop item: %w", err)
		}
		items = append(items, &item)
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Type != b.Type {
			if a.Type == models.ItemTypeRole || b.Type == models.ItemTypeRole {
				return a.Type == models.ItemTypeRole
			}
		}
		if a.Price != b.Price {
			return a.Price > b.Price
		}
		return a.ID < b.ID
	})

	return items, nil
}

// GetItem finds an item by item ID, falling back to a role ID scan
func (r *redisRepository) GetItem(ctx context.Context, input *GetItemInput) (*models.Item, error) {
	if input == nil || input.ID == "" {
		return nil, errors.New("input and ID cannot be empty")
	}

	itemJSON, err := r.client.HGet(ctx, itemsKey, input.ID).Result()
	if err == nil {
		var item models.Item
		if err := json.Unmarshal([]byte(itemJSON), &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shop item: %w", err)
		}
		return &item, nil
	}
	if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get shop item: %w", err)
	}

	item, err := r.findByRoleID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	return item, nil
}

func (r *redisRepository) findByRoleID(ctx context.Context, roleID string) (*models.Item, error) {
	items, err := r.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.RoleID != "" && item.RoleID == roleID {
			return item, nil
		}
	}

	return nil, nil
}

// SaveItem writes an item, replacing any entry that shares its role ID
func (r *redisRepository) SaveItem(ctx context.Context, input *SaveItemInput) error {
	if input == nil || input.Item == nil {
		return errors.New("input and item cannot be nil")
	}

	item := input.Item
	if item.ID == "" {
		return errors.New("item ID cannot be empty")
	}

	itemJSON, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal shop item: %w", err)
	}

	var stale *models.Item
	if item.RoleID != "" {
		stale, err = r.findByRoleID(ctx, item.RoleID)
		if err != nil {
			return err
		}
	}

	pipe := r.client.TxPipeline()
	if stale != nil && stale.ID != item.ID {
		pipe.HDel(ctx, itemsKey, stale.ID)
	}
	pipe.HSet(ctx, itemsKey, item.ID, itemJSON)
	pipe.Set(ctx, seededKey, "1", 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save shop item: %w", err)
	}

	return nil
}

// RemoveItem deletes an item and returns what was removed
func (r *redisRepository) RemoveItem(ctx context.Context, input *RemoveItemInput) (*models.Item, error) {
	if input == nil || input.ID == "" {
		return nil, errors.New("input and ID cannot be empty")
	}

	item, err := r.GetItem(ctx, &GetItemInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	if err := r.client.HDel(ctx, itemsKey, item.ID).Err(); err != nil {
		return nil, fmt.Errorf("failed to remove shop item: %w", err)
	}

	return item, nil
}

// Seed writes the items only when the catalog has never been written
func (r *redisRepository) Seed(ctx context.Context, input *SeedInput) (*SeedOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ok, err := r.client.SetNX(ctx, seededKey, "1", 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to mark shop seeded: %w", err)
	}
	if !ok {
		return &SeedOutput{}, nil
	}

	pipe := r.client.TxPipeline()
	for _, item := range input.Items {
		itemJSON, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal shop item: %w", err)
		}
		pipe.HSet(ctx, itemsKey, item.ID, itemJSON)
	}

	if len(input.Items) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to seed shop: %w", err)
		}
	}

	return &SeedOutput{
		Seeded: true,
		Count:  len(input.Items),
	}, nil
}
