package discord

import (
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/bwmarrin/discordgo"
)

// maxButtonsPerRow is Discord's limit on buttons in one action row
const maxButtonsPerRow = 5

// renderEmbed converts a display into a Discord embed
func renderEmbed(d *models.Display) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       d.Title,
		Description: d.Description,
		Color:       d.Color,
	}

	for _, f := range d.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}

	if d.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: d.Footer}
	}

	return embed
}

// renderComponents lays a display's options out as action rows of buttons
func renderComponents(d *models.Display) []discordgo.MessageComponent {
	components := []discordgo.MessageComponent{}

	for _, row := range d.Options {
		for start := 0; start < len(row); start += maxButtonsPerRow {
			end := min(start+maxButtonsPerRow, len(row))

			buttons := make([]discordgo.MessageComponent, 0, end-start)
			for _, opt := range row[start:end] {
				buttons = append(buttons, discordgo.Button{
					Label:    opt.Label,
					Style:    buttonStyle(opt.Style),
					CustomID: EncodeAction(opt.Action),
					Disabled: opt.Disabled,
				})
			}

			components = append(components, discordgo.ActionsRow{Components: buttons})
		}
	}

	return components
}

func buttonStyle(style models.OptionStyle) discordgo.ButtonStyle {
	switch style {
	case models.OptionSuccess:
		return discordgo.SuccessButton
	case models.OptionDanger:
		return discordgo.DangerButton
	case models.OptionSecondary:
		return discordgo.SecondaryButton
	default:
		return discordgo.PrimaryButton
	}
}

// renderResponseData builds interaction response data for a display
func renderResponseData(d *models.Display, ephemeral bool) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{renderEmbed(d)},
		Components: renderComponents(d),
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return data
}

// renderMessageEdit builds an edit replacing a message with a display.
// Components are always set so finished games lose their buttons.
func renderMessageEdit(channelID, messageID string, d *models.Display) *discordgo.MessageEdit {
	embeds := []*discordgo.MessageEmbed{renderEmbed(d)}
	components := renderComponents(d)

	return &discordgo.MessageEdit{
		Channel:    channelID,
		ID:         messageID,
		Embeds:     &embeds,
		Components: &components,
	}
}
