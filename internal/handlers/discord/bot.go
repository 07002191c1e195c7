package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/services/admin"
	"github.com/KirkDiggler/arcade/internal/services/game"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/KirkDiggler/arcade/internal/services/messaging"
	"github.com/KirkDiggler/arcade/internal/services/session"
	"github.com/KirkDiggler/arcade/internal/services/shop"
	"github.com/KirkDiggler/arcade/internal/services/trade"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config

	games     game.Service
	ledger    ledger.Service
	shop      shop.Service
	trade     trade.Service
	admin     admin.Service
	messaging messaging.Service
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Session is an already created discord session, one is created from Token when nil
	Session *discordgo.Session

	GameService   game.Service
	LedgerService ledger.Service
	ShopService   shop.Service
	TradeService  trade.Service
	AdminService  admin.Service
	Messaging     messaging.Service
}

// NewSession creates an unopened discord session with the intents the bot needs
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	s.Identify.Intents = discordgo.IntentGuilds | discordgo.IntentGuildMessages | discordgo.IntentMessageContent
	return s, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Session == nil && cfg.Token == "" {
		return nil, ErrEmptyToken
	}

	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}

	if cfg.LedgerService == nil {
		return nil, ErrNilLedgerService
	}

	if cfg.ShopService == nil {
		return nil, ErrNilShopService
	}

	if cfg.TradeService == nil {
		return nil, ErrNilTradeService
	}

	if cfg.AdminService == nil {
		return nil, ErrNilAdminService
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	s := cfg.Session
	if s == nil {
		var err error
		s, err = NewSession(cfg.Token)
		if err != nil {
			return nil, err
		}
	}

	bot := &Bot{
		session:    s,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		games:      cfg.GameService,
		ledger:     cfg.LedgerService,
		shop:       cfg.ShopService,
		trade:      cfg.TradeService,
		admin:      cfg.AdminService,
		messaging:  cfg.Messaging,
	}

	s.AddHandler(bot.handleInteraction)
	s.AddHandler(bot.handleMessage)

	return bot, nil
}

// Commands returns every command the bot serves
func (b *Bot) Commands() []CommandHandler {
	commands := NewGameCommands(b.games, b.messaging)
	return append(commands,
		NewBalanceCommand(b.ledger, b.messaging),
		NewDailyCommand(b.ledger, b.messaging),
		NewLeaderboardCommand(b.ledger, b.messaging),
		NewShopCommand(b.shop, b.ledger, b.messaging),
		NewInventoryCommand(b.shop, b.messaging),
		NewTradeCommand(b.trade, b.games, b.messaging),
		NewAdminCommand(b.admin, b.messaging),
		NewHelpCommand(),
	)
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range b.Commands() {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	log.Info().Int("commands", len(b.commands)).Msg("Bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Warn().Err(err).Str("command", cmdName).Str("id", cmdID).Msg("Failed to delete command")
		} else {
			log.Debug().Str("command", cmdName).Str("id", cmdID).Msg("Deleted command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// commands are global unless a guild is configured
	if b.config.GuildID != "" {
		log.Debug().Str("command", cmd.GetName()).Str("guild", b.config.GuildID).Msg("Registering guild command")
	} else {
		log.Debug().Str("command", cmd.GetName()).Msg("Registering global command")
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Info().Str("command", cmd.GetName()).Str("id", createdCmd.ID).Msg("Registered command")

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Error().Err(err).Str("command", name).Msg("Error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponent(s, i); err != nil {
			log.Error().Err(err).Str("custom_id", i.MessageComponentData().CustomID).Msg("Error handling component interaction")
		}
	}
}

// handleComponent routes a button click to the session it was rendered for
func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	action, err := ParseAction(i.MessageComponentData().CustomID)
	if err != nil {
		return RespondWithError(s, i, b.messaging, err)
	}

	ctx := context.Background()
	actorID := interactionUserID(i)

	if action.Type == models.ActionAccept || action.Type == models.ActionDecline {
		out, err := b.trade.Respond(ctx, &trade.RespondInput{
			Key:     action.SessionKey,
			ActorID: actorID,
			Accept:  action.Type == models.ActionAccept,
		})
		if err != nil {
			return respondWithErrorInput(s, i, b.messaging, err, classifyTradeError(err))
		}
		return UpdateWithDisplay(s, i, out.Display)
	}

	out, err := b.games.HandleAction(ctx, &game.HandleActionInput{
		ActorID: actorID,
		Action:  action,
	})
	if err != nil {
		if isSilent(err) {
			return Acknowledge(s, i)
		}
		return RespondWithError(s, i, b.messaging, err)
	}

	return UpdateWithDisplay(s, i, out.Display)
}

// handleMessage collects typed scramble answers
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	answer := strings.TrimSpace(m.Content)
	if answer == "" {
		return
	}

	ctx := context.Background()
	sess, err := b.games.FindActiveSession(ctx, &game.FindActiveSessionInput{
		UserID: m.Author.ID,
		Kind:   models.GameKindScramble,
	})
	if err != nil {
		if !errors.Is(err, session.ErrSessionNotFound) {
			log.Error().Err(err).Str("user", m.Author.ID).Msg("Failed to look up scramble session")
		}
		return
	}

	if sess.ChannelID != m.ChannelID {
		return
	}

	out, err := b.games.HandleAction(ctx, &game.HandleActionInput{
		ActorID: m.Author.ID,
		Action: models.Action{
			SessionKey: sess.Key,
			Type:       models.ActionAnswer,
			Text:       answer,
		},
	})
	if err != nil {
		if !isSilent(err) && !errors.Is(err, session.ErrSessionNotFound) {
			log.Error().Err(err).Str("key", sess.Key).Msg("Failed to apply scramble answer")
		}
		return
	}

	if sess.MessageID != "" {
		_, err := s.ChannelMessageEditComplex(renderMessageEdit(sess.ChannelID, sess.MessageID, out.Display))
		if err == nil {
			return
		}
		log.Warn().Err(err).Str("key", sess.Key).Msg("Failed to edit scramble message, sending a new one")
	}

	components := renderComponents(out.Display)
	_, err = s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{renderEmbed(out.Display)},
		Components: components,
		Reference:  m.Reference(),
	})
	if err != nil {
		log.Error().Err(err).Str("key", sess.Key).Msg("Failed to send scramble result")
	}
}
