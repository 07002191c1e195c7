package messaging

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/arcade/internal/models"
)

var rarityEmoji = map[models.Rarity]string{
	models.RarityCommon:    "⚪",
	models.RarityUncommon:  "🟢",
	models.RarityRare:      "🔵",
	models.RarityEpic:      "🟣",
	models.RarityLegendary: "🟡",
}

// ItemLabel renders an item name with its rarity marker
func ItemLabel(item *models.Item) string {
	if item == nil {
		return ""
	}
	emoji, ok := rarityEmoji[item.Rarity]
	if !ok {
		emoji = rarityEmoji[models.RarityCommon]
	}
	return emoji + " " + item.Name
}

// Mention renders a user reference
func Mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

func tradeSide(item *models.Item, coins int64) string {
	parts := []string{}
	if item != nil {
		parts = append(parts, ItemLabel(item))
	}
	if coins > 0 {
		parts = append(parts, FormatCoins(coins))
	}
	if len(parts) == 0 {
		return "Nothing"
	}
	return strings.Join(parts, "\n")
}

// RenderTrade presents a trade offer in the given status
func (s *service) RenderTrade(ctx context.Context, input *RenderTradeInput) (*RenderOutput, error) {
	if input == nil || input.Offer == nil {
		return nil, ErrNilInput
	}

	offer := input.Offer
	d := &models.Display{
		Fields: []models.DisplayField{
			{Name: "Offers", Value: tradeSide(input.OfferItem, offer.OfferCoins), Inline: true},
			{Name: "Requests", Value: tradeSide(input.RequestItem, offer.RequestCoins), Inline: true},
		},
	}

	switch input.Status {
	case TradeAccepted:
		d.Title = "🤝 Trade Complete!"
		d.Description = "The trade was successfully completed."
		d.Color = models.ColorSuccess
	case TradeDeclined:
		d.Title = "🚫 Trade Declined"
		d.Description = fmt.Sprintf("%s declined the trade.", Mention(offer.TargetID))
		d.Color = models.ColorError
	case TradeExpired:
		d.Title = "⌛ Trade Expired"
		d.Description = "This trade request has expired."
		d.Color = models.ColorError
	default:
		d.Title = "📦 Trade Request"
		d.Description = fmt.Sprintf("%s wants to trade with %s", Mention(offer.SenderID), Mention(offer.TargetID))
		d.Color = models.ColorInfo
		d.Footer = "This trade will expire in 60 seconds"
		d.Options = [][]models.Option{{
			option(input.SessionKey, "Accept", models.OptionSuccess, models.ActionAccept, 0),
			option(input.SessionKey, "Decline", models.OptionDanger, models.ActionDecline, 0),
		}}
	}

	return &RenderOutput{
		Display: d,
	}, nil
}
