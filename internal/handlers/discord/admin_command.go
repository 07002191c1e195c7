package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/services/admin"
	"github.com/KirkDiggler/arcade/internal/services/messaging"
	"github.com/KirkDiggler/arcade/internal/services/shop"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// AdminCommand handles the /admin command
type AdminCommand struct {
	BaseCommand
	admin     admin.Service
	messaging messaging.Service
}

// NewAdminCommand creates a new admin command handler
func NewAdminCommand(adminService admin.Service, msg messaging.Service) *AdminCommand {
	userAmount := func(name, description string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        name,
			Description: description,
			Options: []*discordgo.ApplicationCommandOption{
				userCommandOption("user", "Target user", true),
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount of coins",
					Required:    true,
				},
			},
		}
	}
	userOnly := func(name, description string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        name,
			Description: description,
			Options: []*discordgo.ApplicationCommandOption{
				userCommandOption("user", "Target user", true),
			},
		}
	}
	stringOpt := func(name, description string, required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        name,
			Description: description,
			Required:    required,
		}
	}

	rarities := []*discordgo.ApplicationCommandOptionChoice{}
	for _, r := range rarityOrder {
		rarities = append(rarities, &discordgo.ApplicationCommandOptionChoice{Name: string(r), Value: string(r)})
	}

	return &AdminCommand{
		BaseCommand: BaseCommand{
			Name:        "admin",
			Description: "Admin panel",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "login",
					Description: "Login to the admin panel",
					Options:     []*discordgo.ApplicationCommandOption{stringOpt("key", "Admin key", true)},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "panel",
					Description: "Open the admin control panel",
				},
				userAmount("give", "Give coins to a user"),
				userAmount("take", "Take coins from a user"),
				userAmount("setbalance", "Set a user's balance"),
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "giveitem",
					Description: "Give an item to a user",
					Options: []*discordgo.ApplicationCommandOption{
						userCommandOption("user", "Target user", true),
						stringOpt("item", "Item ID to give", true),
					},
				},
				userOnly("reset", "Reset a user's data completely"),
				userOnly("godmode", "Max out a user's stats"),
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "broadcast",
					Description: "Send an announcement to this channel",
					Options:     []*discordgo.ApplicationCommandOption{stringOpt("message", "Message to broadcast", true)},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "addrole",
					Description: "Add or update a shop role",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionRole,
							Name:        "role",
							Description: "Role to sell",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "price",
							Description: "Price in coins",
							Required:    true,
						},
						stringOpt("description", "Shop description", false),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "rarity",
							Description: "Rarity tier",
							Choices:     rarities,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "removerole",
					Description: "Remove a shop role",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionRole,
							Name:        "role",
							Description: "Role to remove",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show economy stats",
				},
			},
		},
		admin:     adminService,
		messaging: msg,
	}
}

// Handle processes a Discord interaction for the admin command
func (c *AdminCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return ErrUnknownCommand
	}

	sub := data.Options[0]
	opts := commandOptions(sub.Options)
	userID := interactionUserID(i)

	if sub.Name == "login" {
		if err := c.admin.Login(ctx, &admin.LoginInput{UserID: userID, Key: stringOption(opts, "key")}); err != nil {
			return RespondWithError(s, i, c.messaging, err)
		}
		return RespondWithEphemeralDisplay(s, i, adminNoticeView("🔓 Admin Access Granted",
			"Welcome, Administrator! You now have access to all admin commands."))
	}

	if err := c.admin.Authorize(ctx, &admin.AuthorizeInput{UserID: userID}); err != nil {
		return RespondWithError(s, i, c.messaging, err)
	}

	log.Info().Str("admin", userID).Str("subcommand", sub.Name).Msg("Admin command")

	display, err := c.run(ctx, s, i, sub.Name, opts)
	if err != nil {
		return RespondWithError(s, i, c.messaging, err)
	}

	return RespondWithEphemeralDisplay(s, i, display)
}

func (c *AdminCommand) run(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, name string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*models.Display, error) {
	var targetID string
	if target := userOption(i, opts, "user"); target != nil {
		targetID = target.ID
	}

	switch name {
	case "panel":
		return adminPanelView(), nil

	case "give":
		out, err := c.admin.Give(ctx, &admin.AmountInput{UserID: targetID, Amount: intOption(opts, "amount")})
		if err != nil {
			return nil, err
		}
		return adminBalanceView("💸 Coins Given!", "Gave", targetID, out), nil

	case "take":
		out, err := c.admin.Take(ctx, &admin.AmountInput{UserID: targetID, Amount: intOption(opts, "amount")})
		if err != nil {
			return nil, err
		}
		return adminBalanceView("🏦 Coins Taken!", "Took", targetID, out), nil

	case "setbalance":
		out, err := c.admin.SetBalance(ctx, &admin.AmountInput{UserID: targetID, Amount: intOption(opts, "amount")})
		if err != nil {
			return nil, err
		}
		return adminNoticeView("⚖️ Balance Set!", fmt.Sprintf("%s now has **%s**.",
			messaging.Mention(targetID), messaging.FormatCoins(out.Balance))), nil

	case "giveitem":
		out, err := c.admin.GiveItem(ctx, &admin.GiveItemInput{UserID: targetID, ItemID: stringOption(opts, "item")})
		if err != nil {
			return nil, err
		}
		return adminNoticeView("🎁 Item Given!", fmt.Sprintf("Gave **%s** to %s.",
			messaging.ItemLabel(out.Item), messaging.Mention(targetID))), nil

	case "reset":
		if err := c.admin.Reset(ctx, &admin.ResetInput{UserID: targetID}); err != nil {
			return nil, err
		}
		return adminNoticeView("🔄 User Reset", fmt.Sprintf("%s's data has been completely reset.", messaging.Mention(targetID))), nil

	case "godmode":
		out, err := c.admin.Godmode(ctx, &admin.GodmodeInput{UserID: targetID})
		if err != nil {
			return nil, err
		}
		return adminNoticeView("👑 GODMODE ACTIVATED", fmt.Sprintf("%s now has:\n\n- **%s**\n- **All items in the shop**\n- **%s games played/won**\n- **%d day streak**",
			messaging.Mention(targetID), messaging.FormatCoins(out.User.Balance),
			messaging.FormatNumber(out.User.Stats.GamesPlayed), out.User.DailyStreak)), nil

	case "broadcast":
		author := interactionUser(i)
		_, err := s.ChannelMessageSendEmbed(i.ChannelID, renderEmbed(broadcastView(displayName(author), stringOption(opts, "message"))))
		if err != nil {
			return nil, err
		}
		return adminNoticeView("📢 Broadcast Sent", "Your announcement was posted."), nil

	case "addrole":
		role := roleOption(i, opts, "role")
		out, err := c.admin.SaveRole(ctx, &shop.SaveRoleInput{
			RoleID:      role.ID,
			Name:        role.Name,
			Description: stringOption(opts, "description"),
			Price:       intOption(opts, "price"),
			Rarity:      models.Rarity(stringOption(opts, "rarity")),
		})
		if err != nil {
			return nil, err
		}
		verb := "added to"
		if out.Updated {
			verb = "updated in"
		}
		return adminNoticeView("🏷️ Shop Role Saved", fmt.Sprintf("**%s** %s the shop for **%s**.",
			messaging.ItemLabel(out.Item), verb, messaging.FormatCoins(out.Item.Price))), nil

	case "removerole":
		role := roleOption(i, opts, "role")
		out, err := c.admin.RemoveRole(ctx, &shop.RemoveRoleInput{RoleID: role.ID})
		if err != nil {
			return nil, err
		}
		return adminNoticeView("🗑️ Shop Role Removed", fmt.Sprintf("**%s** was removed from the shop.", messaging.ItemLabel(out.Item))), nil

	case "stats":
		out, err := c.admin.Stats(ctx)
		if err != nil {
			return nil, err
		}
		return statsView(out), nil
	}

	return nil, fmt.Errorf("%w: admin %s", ErrUnknownCommand, name)
}
