package discord

import (
	"context"

	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/services/game"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/KirkDiggler/arcade/internal/services/messaging"
	"github.com/KirkDiggler/arcade/internal/services/shop"
	"github.com/KirkDiggler/arcade/internal/services/trade"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// BalanceCommand handles the /balance command
type BalanceCommand struct {
	BaseCommand
	ledger    ledger.Service
	messaging messaging.Service
}

// NewBalanceCommand creates a new balance command handler
func NewBalanceCommand(ledgerService ledger.Service, msg messaging.Service) *BalanceCommand {
	return &BalanceCommand{
		BaseCommand: BaseCommand{
			Name:        "balance",
			Description: "Check your coin balance and stats",
			Options: []*discordgo.ApplicationCommandOption{
				userCommandOption("user", "User to check", false),
			},
		},
		ledger:    ledgerService,
		messaging: msg,
	}
}

// Handle processes a Discord interaction for the balance command
func (c *BalanceCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := commandOptions(i.ApplicationCommandData().Options)

	target := userOption(i, opts, "user")
	if target == nil {
		target = interactionUser(i)
	}

	out, err := c.ledger.GetUser(context.Background(), &ledger.GetUserInput{UserID: target.ID})
	if err != nil {
		return RespondWithError(s, i, c.messaging, err)
	}

	return RespondWithDisplay(s, i, balanceView(displayName(target), out.User))
}

// DailyCommand handles the /daily command
type DailyCommand struct {
	BaseCommand
	ledger    ledger.Service
	messaging messaging.Service
}

// NewDailyCommand creates a new daily command handler
func NewDailyCommand(ledgerService ledger.Service, msg messaging.Service) *DailyCommand {
	return &DailyCommand{
		BaseCommand: BaseCommand{
			Name:        "daily",
			Description: "Claim your daily reward",
		},
		ledger:    ledgerService,
		messaging: msg,
	}
}

// Handle processes a Discord interaction for the daily command
func (c *DailyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.ledger.ClaimDaily(context.Background(), &ledger.ClaimDailyInput{UserID: interactionUserID(i)})
	if err != nil {
		return RespondWithError(s, i, c.messaging, err)
	}

	return RespondWithDisplay(s, i, dailyView(out))
}

// LeaderboardCommand handles the /leaderboard command
type LeaderboardCommand struct {
	BaseCommand
	ledger    ledger.Service
	messaging messaging.Service
}

// NewLeaderboardCommand creates a new leaderboard command handler
func NewLeaderboardCommand(ledgerService ledger.Service, msg messaging.Service) *LeaderboardCommand {
	return &LeaderboardCommand{
		BaseCommand: BaseCommand{
			Name:        "leaderboard",
			Description: "View top players",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "Leaderboard type",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Balance", Value: string(models.LeaderboardBalance)},
						{Name: "Wins", Value: string(models.LeaderboardWins)},
						{Name: "Games Played", Value: string(models.LeaderboardGames)},
					},
				},
			},
		},
		ledger:    ledgerService,
		messaging: msg,
	}
}

// Handle processes a Discord interaction for the leaderboard command
func (c *LeaderboardCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := commandOptions(i.ApplicationCommandData().Options)

	metric := models.LeaderboardMetric(stringOption(opts, "type"))
	if metric == "" {
		metric = models.LeaderboardBalance
	}

	out, err := c.ledger.GetLeaderboard(context.Background(), &ledger.GetLeaderboardInput{Metric: metric})
	if err != nil {
		return RespondWithError(s, i, c.messaging, err)
	}

	return RespondWithDisplay(s, i, leaderboardView(interactionUserID(i), out))
}

// ShopCommand handles the /shop command
type ShopCommand struct {
	BaseCommand
	shop      shop.Service
	ledger    ledger.Service
	messaging messaging.Service
}

// NewShopCommand creates a new shop command handler
func NewShopCommand(shopService shop.Service, ledgerService ledger.Service, msg messaging.Service) *ShopCommand {
	return &ShopCommand{
		BaseCommand: BaseCommand{
			Name:        "shop",
			Description: "Browse and buy items",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "category",
					Description: "Shop category",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Roles", Value: categoryRoles},
						{Name: "Items", Value: categoryItems},
						{Name: "All", Value: categoryAll},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "buy",
					Description: "Item ID to buy",
				},
			},
		},
		shop:      shopService,
		ledger:    ledgerService,
		messaging: msg,
	}
}

// Handle processes a Discord interaction for the shop command
func (c *ShopCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := withGuild(context.Background(), i.GuildID)
	opts := commandOptions(i.ApplicationCommandData().Options)
	userID := interactionUserID(i)

	if itemID := stringOption(opts, "buy"); itemID != "" {
		out, err := c.shop.Buy(ctx, &shop.BuyInput{UserID: userID, ItemID: itemID})
		if err != nil {
			return RespondWithError(s, i, c.messaging, err)
		}
		return RespondWithDisplay(s, i, buyView(out))
	}

	user, err := c.ledger.GetUser(ctx, &ledger.GetUserInput{UserID: userID})
	if err != nil {
		return RespondWithError(s, i, c.messaging, err)
	}

	items, err := c.shop.ListItems(ctx)
	if err != nil {
		return RespondWithError(s, i, c.messaging, err)
	}

	return RespondWithDisplay(s, i, shopView(user.User.Balance, stringOption(opts, "category"), items))
}

// InventoryCommand handles the /inventory command
type InventoryCommand struct {
	BaseCommand
	shop      shop.Service
	messaging messaging.Service
}

// NewInventoryCommand creates a new inventory command handler
func NewInventoryCommand(shopService shop.Service, msg messaging.Service) *InventoryCommand {
	return &InventoryCommand{
		BaseCommand: BaseCommand{
			Name:        "inventory",
			Description: "View your inventory",
			Options: []*discordgo.ApplicationCommandOption{
				userCommandOption("user", "User to check", false),
			},
		},
		shop:      shopService,
		messaging: msg,
	}
}

// Handle processes a Discord interaction for the inventory command
func (c *InventoryCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := commandOptions(i.ApplicationCommandData().Options)

	target := userOption(i, opts, "user")
	if target == nil {
		target = interactionUser(i)
	}

	out, err := c.shop.GetInventory(context.Background(), &shop.GetInventoryInput{UserID: target.ID})
	if err != nil {
		return RespondWithError(s, i, c.messaging, err)
	}

	return RespondWithDisplay(s, i, inventoryView(displayName(target), out))
}

// TradeCommand handles the /trade command
type TradeCommand struct {
	BaseCommand
	trade     trade.Service
	games     game.Service
	messaging messaging.Service
}

// NewTradeCommand creates a new trade command handler
func NewTradeCommand(tradeService trade.Service, gameService game.Service, msg messaging.Service) *TradeCommand {
	return &TradeCommand{
		BaseCommand: BaseCommand{
			Name:        "trade",
			Description: "Trade with another user",
			Options: []*discordgo.ApplicationCommandOption{
				userCommandOption("user", "User to trade with", true),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "offer_item",
					Description: "Item ID you offer",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "offer_coins",
					Description: "Coins you offer",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "request_item",
					Description: "Item ID you want",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "request_coins",
					Description: "Coins you want",
				},
			},
		},
		trade:     tradeService,
		games:     gameService,
		messaging: msg,
	}
}

// Handle processes a Discord interaction for the trade command
func (c *TradeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	opts := commandOptions(i.ApplicationCommandData().Options)

	target := userOption(i, opts, "user")
	if target == nil {
		return RespondWithError(s, i, c.messaging, trade.ErrInvalidUser)
	}

	out, err := c.trade.Propose(ctx, &trade.ProposeInput{
		SenderID:      interactionUserID(i),
		TargetID:      target.ID,
		TargetIsBot:   target.Bot,
		ChannelID:     i.ChannelID,
		OfferItemID:   stringOption(opts, "offer_item"),
		OfferCoins:    intOption(opts, "offer_coins"),
		RequestItemID: stringOption(opts, "request_item"),
		RequestCoins:  intOption(opts, "request_coins"),
	})
	if err != nil {
		return RespondWithError(s, i, c.messaging, err)
	}

	if err := RespondWithDisplay(s, i, out.Display); err != nil {
		return err
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.Warn().Err(err).Str("key", out.Session.Key).Msg("Failed to fetch trade message")
		return nil
	}

	// the expiry edit needs the message, an offer answered already is gone
	_ = c.games.SetMessage(ctx, &game.SetMessageInput{
		Key:       out.Session.Key,
		ChannelID: msg.ChannelID,
		MessageID: msg.ID,
	})
	return nil
}

// HelpCommand handles the /help command
type HelpCommand struct {
	BaseCommand
}

// NewHelpCommand creates a new help command handler
func NewHelpCommand() *HelpCommand {
	return &HelpCommand{
		BaseCommand: BaseCommand{
			Name:        "help",
			Description: "View all available commands",
		},
	}
}

// Handle processes a Discord interaction for the help command
func (c *HelpCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return RespondWithDisplay(s, i, helpView())
}

func displayName(u *discordgo.User) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	if u.Username != "" {
		return u.Username
	}
	return messaging.Mention(u.ID)
}
