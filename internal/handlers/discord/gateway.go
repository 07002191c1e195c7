package discord

import (
	"context"

	"github.com/KirkDiggler/arcade/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

type guildKey struct{}

// withGuild attaches the guild an interaction came from
func withGuild(ctx context.Context, guildID string) context.Context {
	if guildID == "" {
		return ctx
	}
	return context.WithValue(ctx, guildKey{}, guildID)
}

func guildFrom(ctx context.Context) string {
	guildID, _ := ctx.Value(guildKey{}).(string)
	return guildID
}

// Notifier edits session messages in place when they change outside an interaction
type Notifier struct {
	session *discordgo.Session
}

// NewNotifier creates a notifier backed by a discord session
func NewNotifier(s *discordgo.Session) *Notifier {
	return &Notifier{session: s}
}

// Notify implements messaging.Notifier
func (n *Notifier) Notify(ctx context.Context, input *messaging.NotifyInput) error {
	if input == nil || input.Display == nil {
		return ErrNilDisplay
	}

	_, err := n.session.ChannelMessageEditComplex(renderMessageEdit(input.ChannelID, input.MessageID, input.Display),
		discordgo.WithContext(ctx))
	return err
}

// RoleGranter adds purchased shop roles to guild members
type RoleGranter struct {
	session *discordgo.Session

	// guildID is used when the purchase did not carry a guild
	guildID string
}

// NewRoleGranter creates a role granter for the given default guild
func NewRoleGranter(s *discordgo.Session, guildID string) *RoleGranter {
	return &RoleGranter{session: s, guildID: guildID}
}

// GrantRole implements shop.RoleGranter
func (g *RoleGranter) GrantRole(ctx context.Context, userID, roleID string) error {
	guildID := guildFrom(ctx)
	if guildID == "" {
		guildID = g.guildID
	}
	if guildID == "" {
		return ErrNoGuild
	}

	return g.session.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx))
}
