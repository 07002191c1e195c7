package discord

import (
	"context"
	"errors"

	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// RespondWithDisplay sends a display as a new message
func RespondWithDisplay(s *discordgo.Session, i *discordgo.InteractionCreate, d *models.Display) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: renderResponseData(d, false),
	})
}

// RespondWithEphemeralDisplay sends a display only the invoking user can see
func RespondWithEphemeralDisplay(s *discordgo.Session, i *discordgo.InteractionCreate, d *models.Display) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: renderResponseData(d, true),
	})
}

// UpdateWithDisplay replaces the message a component belongs to
func UpdateWithDisplay(s *discordgo.Session, i *discordgo.InteractionCreate, d *models.Display) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: renderResponseData(d, false),
	})
}

// Acknowledge answers a component interaction without changing its message
func Acknowledge(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
}

// RespondWithError explains a service error to the invoking user
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, msg messaging.Service, err error) error {
	return respondWithErrorInput(s, i, msg, err, classifyError(err))
}

func respondWithErrorInput(s *discordgo.Session, i *discordgo.InteractionCreate, msg messaging.Service, err error, input *messaging.GetErrorMessageInput) error {
	if input.ErrorType == messaging.ErrorTypeUnknown {
		log.Error().Err(err).Str("user", interactionUserID(i)).Msg("Unexpected error handling interaction")
	}

	rendered, renderErr := msg.RenderError(context.Background(), input)
	if renderErr != nil {
		return errors.Join(err, renderErr)
	}

	return RespondWithEphemeralDisplay(s, i, rendered.Display)
}

// interactionUser returns the invoking user in guilds and DMs
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if u := interactionUser(i); u != nil {
		return u.ID
	}
	return ""
}

// commandOptions indexes the options of a command or of its subcommand
func commandOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int64 {
	if opt, ok := opts[name]; ok {
		return opt.IntValue()
	}
	return 0
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}

// userOption returns the resolved user of a user option, falling back to its bare ID
func userOption(i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.User {
	opt, ok := opts[name]
	if !ok {
		return nil
	}

	id, _ := opt.Value.(string)
	if resolved := i.ApplicationCommandData().Resolved; resolved != nil {
		if u, ok := resolved.Users[id]; ok {
			return u
		}
	}
	return &discordgo.User{ID: id}
}

// betOption is the bet option shared by every game command
func betOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "bet",
		Description: "Amount to bet",
		Required:    true,
	}
}

func userCommandOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

// roleOption returns the resolved role of a role option, falling back to its bare ID
func roleOption(i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.Role {
	opt, ok := opts[name]
	if !ok {
		return nil
	}

	id, _ := opt.Value.(string)
	if resolved := i.ApplicationCommandData().Resolved; resolved != nil {
		if r, ok := resolved.Roles[id]; ok {
			return r
		}
	}
	return &discordgo.Role{ID: id, Name: id}
}
