package discord

import (
	"context"
	"errors"

	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/services/game"
	"github.com/KirkDiggler/arcade/internal/services/messaging"
	"github.com/KirkDiggler/arcade/internal/services/session"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

var gameDescriptions = map[models.GameKind]string{
	models.GameKindBlackjack: "Play 21 against the dealer",
	models.GameKindTicTacToe: "Classic Tic Tac Toe against the bot",
	models.GameKindMemory:    "Match all the pairs",
	models.GameKindHighLow:   "Higher or lower streak",
	models.GameKindGuess:     "Guess a number from 1 to 10",
	models.GameKindTrivia:    "Answer a trivia question",
	models.GameKindScramble:  "Unscramble the word",
	models.GameKindCoinFlip:  "Heads or tails",
	models.GameKindRPS:       "Rock paper scissors",
	models.GameKindDice:      "Roll dice against the bot",
	models.GameKindSlots:     "Spin the slot machine",
}

// GameCommand starts a session game, e.g. /blackjack bet:50
type GameCommand struct {
	BaseCommand
	kind      models.GameKind
	games     game.Service
	messaging messaging.Service
}

// InstantCommand plays a single-shot game, e.g. /slots bet:20
type InstantCommand struct {
	BaseCommand
	kind      models.GameKind
	games     game.Service
	messaging messaging.Service
}

// NewGameCommands creates a command for every game in the catalog
func NewGameCommands(gameService game.Service, msg messaging.Service) []CommandHandler {
	commands := []CommandHandler{}

	for _, kind := range games.Kinds() {
		rules, err := games.RulesFor(kind)
		if err != nil {
			continue
		}

		base := BaseCommand{
			Name:        string(kind),
			Description: gameDescriptions[kind],
			Options:     []*discordgo.ApplicationCommandOption{betOption()},
		}

		if rules.Instant() {
			commands = append(commands, &InstantCommand{BaseCommand: base, kind: kind, games: gameService, messaging: msg})
		} else {
			commands = append(commands, &GameCommand{BaseCommand: base, kind: kind, games: gameService, messaging: msg})
		}
	}

	return commands
}

// Handle processes a Discord interaction for a session game
func (c *GameCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	opts := commandOptions(i.ApplicationCommandData().Options)

	out, err := c.games.StartGame(ctx, &game.StartGameInput{
		UserID:    interactionUserID(i),
		ChannelID: i.ChannelID,
		Kind:      c.kind,
		Wager:     intOption(opts, "bet"),
	})
	if err != nil {
		return RespondWithError(s, i, c.messaging, err)
	}

	if err := RespondWithDisplay(s, i, out.Display); err != nil {
		return err
	}

	// settled on the deal, nothing left to track
	if out.Session == nil {
		return nil
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.Warn().Err(err).Str("key", out.Session.Key).Msg("Failed to fetch game message")
		return nil
	}

	err = c.games.SetMessage(ctx, &game.SetMessageInput{
		Key:       out.Session.Key,
		ChannelID: msg.ChannelID,
		MessageID: msg.ID,
	})
	if err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		return err
	}
	return nil
}

// Handle processes a Discord interaction for an instant game
func (c *InstantCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := commandOptions(i.ApplicationCommandData().Options)

	out, err := c.games.PlayInstant(context.Background(), &game.PlayInstantInput{
		UserID: interactionUserID(i),
		Kind:   c.kind,
		Wager:  intOption(opts, "bet"),
	})
	if err != nil {
		return RespondWithError(s, i, c.messaging, err)
	}

	return RespondWithDisplay(s, i, out.Display)
}
