package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/arcade/internal/common/clock"
	"github.com/KirkDiggler/arcade/internal/common/uuid"
	"github.com/KirkDiggler/arcade/internal/config"
	ledgerRepo "github.com/KirkDiggler/arcade/internal/repositories/ledger"
	shopRepo "github.com/KirkDiggler/arcade/internal/repositories/shop"
	"github.com/KirkDiggler/arcade/internal/services/admin"
	"github.com/KirkDiggler/arcade/internal/services/game"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/KirkDiggler/arcade/internal/services/messaging"
	"github.com/KirkDiggler/arcade/internal/services/session"
	"github.com/KirkDiggler/arcade/internal/services/shop"
	"github.com/KirkDiggler/arcade/internal/services/trade"
	"github.com/redis/go-redis/v9"
)

// services is the wired service graph shared by serve and the operator commands
type services struct {
	redis     *redis.Client
	registry  session.Registry
	ledger    ledger.Service
	shop      shop.Service
	admin     admin.Service
	messaging messaging.Service
	game      game.Service
	trade     trade.Service
}

// platform holds the chat collaborators, all optional outside serve
type platform struct {
	notifier    messaging.Notifier
	roleGranter shop.RoleGranter
}

func newRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Addr, err)
	}

	return client, nil
}

func wireServices(ctx context.Context, cfg *config.Config, client *redis.Client, p *platform) (*services, error) {
	if p == nil {
		p = &platform{}
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	clk := &clock.DefaultClock{}

	ledgerStore, err := ledgerRepo.NewRedis(&ledgerRepo.Config{RedisClient: client})
	if err != nil {
		return nil, fmt.Errorf("wire ledger repository: %w", err)
	}

	shopStore, err := shopRepo.NewRedis(&shopRepo.Config{RedisClient: client})
	if err != nil {
		return nil, fmt.Errorf("wire shop repository: %w", err)
	}

	ledgerSvc, err := ledger.New(&ledger.Config{
		Repository:      ledgerStore,
		Clock:           clk,
		StartingBalance: cfg.Economy.StartingBalance,
		Location:        loc,
		DailyBase:       cfg.Daily.BaseReward,
		StreakBonus:     cfg.Daily.StreakBonus,
		MaxStreakBonus:  cfg.Daily.MaxStreakBonus,
	})
	if err != nil {
		return nil, fmt.Errorf("wire ledger service: %w", err)
	}

	shopSvc, err := shop.New(&shop.Config{
		Repository:  shopStore,
		Ledger:      ledgerSvc,
		RoleGranter: p.roleGranter,
	})
	if err != nil {
		return nil, fmt.Errorf("wire shop service: %w", err)
	}

	if err := shopSvc.Seed(ctx); err != nil {
		return nil, fmt.Errorf("seed shop catalog: %w", err)
	}

	registry, err := session.New(&session.Config{
		Clock:        clk,
		KeyGenerator: uuid.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("wire session registry: %w", err)
	}

	msg, err := messaging.New(&messaging.Config{})
	if err != nil {
		return nil, fmt.Errorf("wire messaging service: %w", err)
	}

	gameSvc, err := game.New(&game.Config{
		Ledger:    ledgerSvc,
		Registry:  registry,
		Messaging: msg,
		Notifier:  p.notifier,
	})
	if err != nil {
		return nil, fmt.Errorf("wire game service: %w", err)
	}

	tradeSvc, err := trade.New(&trade.Config{
		Ledger:    ledgerSvc,
		Registry:  registry,
		Messaging: msg,
		Notifier:  p.notifier,
	})
	if err != nil {
		return nil, fmt.Errorf("wire trade service: %w", err)
	}

	adminSvc, err := admin.New(&admin.Config{
		Ledger:   ledgerSvc,
		Shop:     shopSvc,
		Registry: registry,
		AdminIDs: cfg.AdminIDs(),
		KeyHash:  cfg.Admin.KeyHash,
	})
	if err != nil {
		return nil, fmt.Errorf("wire admin service: %w", err)
	}

	return &services{
		redis:     client,
		registry:  registry,
		ledger:    ledgerSvc,
		shop:      shopSvc,
		admin:     adminSvc,
		messaging: msg,
		game:      gameSvc,
		trade:     tradeSvc,
	}, nil
}
