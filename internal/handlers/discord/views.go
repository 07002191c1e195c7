package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/services/admin"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/KirkDiggler/arcade/internal/services/messaging"
	"github.com/KirkDiggler/arcade/internal/services/shop"
)

// Shop listing categories
const (
	categoryAll   = "all"
	categoryRoles = "roles"
	categoryItems = "items"
)

var rarityOrder = []models.Rarity{
	models.RarityCommon,
	models.RarityUncommon,
	models.RarityRare,
	models.RarityEpic,
	models.RarityLegendary,
}

var itemTypeNames = map[models.ItemType]string{
	models.ItemTypeRole:        "Roles",
	models.ItemTypeConsumable:  "Consumables",
	models.ItemTypeCollectible: "Collectibles",
}

var leaderboardTitles = map[models.LeaderboardMetric]string{
	models.LeaderboardBalance: "💰 Richest Players",
	models.LeaderboardWins:    "🏆 Top Winners",
	models.LeaderboardGames:   "🎮 Most Active Players",
}

func balanceView(name string, user *models.UserRecord) *models.Display {
	var value int64
	counts := make(map[models.Rarity]int)
	for _, item := range user.Inventory {
		value += item.Price
		counts[item.Rarity]++
	}

	summary := "No items"
	if len(user.Inventory) > 0 {
		lines := []string{}
		for _, rarity := range rarityOrder {
			if counts[rarity] > 0 {
				label := messaging.ItemLabel(&models.Item{Name: string(rarity), Rarity: rarity})
				lines = append(lines, fmt.Sprintf("%s: %d", label, counts[rarity]))
			}
		}
		summary = strings.Join(lines, "\n")
	}

	return &models.Display{
		Title: fmt.Sprintf("%s's Profile", name),
		Color: models.ColorInfo,
		Fields: []models.DisplayField{
			{Name: "Balance", Value: messaging.FormatCoins(user.Balance), Inline: true},
			{Name: "Daily Streak", Value: fmt.Sprintf("%d days", user.DailyStreak), Inline: true},
			{Name: "Inventory Value", Value: messaging.FormatCoins(value), Inline: true},
			{Name: "Games Played", Value: messaging.FormatNumber(user.Stats.GamesPlayed), Inline: true},
			{Name: "Games Won", Value: messaging.FormatNumber(user.Stats.GamesWon), Inline: true},
			{Name: "Win Rate", Value: fmt.Sprintf("%.1f%%", user.Stats.WinRate()), Inline: true},
			{Name: "Total Earned", Value: messaging.FormatCoins(user.Stats.TotalEarned), Inline: true},
			{Name: "Total Spent", Value: messaging.FormatCoins(user.Stats.TotalSpent), Inline: true},
			{Name: "Items Owned", Value: fmt.Sprintf("%d", len(user.Inventory)), Inline: true},
			{Name: "Inventory Summary", Value: summary},
		},
	}
}

func dailyView(out *ledger.ClaimDailyOutput) *models.Display {
	return &models.Display{
		Title:       "📅 Daily Reward Claimed!",
		Description: fmt.Sprintf("You received **%s**!", messaging.FormatCoins(out.Reward)),
		Color:       models.ColorSuccess,
		Fields: []models.DisplayField{
			{Name: "Current Streak", Value: fmt.Sprintf("%d days", out.Streak), Inline: true},
			{Name: "New Balance", Value: messaging.FormatCoins(out.Balance), Inline: true},
		},
		Footer: "Keep your streak going for bigger bonuses!",
	}
}

func leaderboardView(viewerID string, out *ledger.GetLeaderboardOutput) *models.Display {
	title, ok := leaderboardTitles[out.Metric]
	if !ok {
		title = "Leaderboard"
	}

	if len(out.Entries) == 0 {
		return &models.Display{
			Title:       title,
			Description: "No data yet! Start playing games to appear on the leaderboard.",
			Color:       models.ColorInfo,
		}
	}

	medals := []string{"🥇", "🥈", "🥉"}
	footer := "Keep playing to climb the ranks!"

	lines := make([]string, 0, len(out.Entries))
	for _, e := range out.Entries {
		prefix := fmt.Sprintf("**%d.**", e.Rank)
		if e.Rank >= 1 && e.Rank <= len(medals) {
			prefix = medals[e.Rank-1]
		}
		lines = append(lines, fmt.Sprintf("%s %s - %s", prefix, messaging.Mention(e.UserID), scoreLabel(out.Metric, e.Score)))

		if e.UserID == viewerID {
			footer = fmt.Sprintf("Your rank: #%d", e.Rank)
		}
	}

	return &models.Display{
		Title:       title,
		Description: strings.Join(lines, "\n"),
		Color:       models.ColorGold,
		Footer:      footer,
	}
}

func scoreLabel(metric models.LeaderboardMetric, score int64) string {
	switch metric {
	case models.LeaderboardWins:
		return fmt.Sprintf("%s wins", messaging.FormatNumber(score))
	case models.LeaderboardGames:
		return fmt.Sprintf("%s games", messaging.FormatNumber(score))
	default:
		return messaging.FormatCoins(score)
	}
}

func shopView(balance int64, category string, out *shop.ListItemsOutput) *models.Display {
	d := &models.Display{
		Title:       "🛒 Shop",
		Description: fmt.Sprintf("Your balance: **%s**\n\nUse `/shop buy:<item_id>` to purchase an item.", messaging.FormatCoins(balance)),
		Color:       models.ColorInfo,
	}

	if category == "" {
		category = categoryAll
	}

	if category == categoryAll || category == categoryRoles {
		d.Fields = append(d.Fields, models.DisplayField{Name: "Roles", Value: "━━━━━━━━━━━━━━━"})
		d.Fields = append(d.Fields, shopFields(out.Roles)...)
	}

	if category == categoryAll || category == categoryItems {
		d.Fields = append(d.Fields, models.DisplayField{Name: "Items", Value: "━━━━━━━━━━━━━━━"})
		d.Fields = append(d.Fields, shopFields(out.Items)...)
	}

	return d
}

func shopFields(items []*models.Item) []models.DisplayField {
	fields := make([]models.DisplayField, 0, len(items))
	for _, item := range items {
		fields = append(fields, models.DisplayField{
			Name:   messaging.ItemLabel(item),
			Value:  fmt.Sprintf("%s\nPrice: **%s**\nID: `%s`", item.Description, messaging.FormatCoins(item.Price), item.ID),
			Inline: true,
		})
	}
	return fields
}

func buyView(out *shop.BuyOutput) *models.Display {
	d := &models.Display{
		Title: "✅ Purchase Successful!",
		Description: fmt.Sprintf("You bought **%s** for **%s**!\n\nNew balance: **%s**",
			messaging.ItemLabel(out.Item), messaging.FormatCoins(out.Item.Price), messaging.FormatCoins(out.Balance)),
		Color: out.Item.Rarity.Color(),
	}
	if out.RoleGranted {
		d.Footer = "Your new role has been assigned."
	}
	return d
}

func inventoryView(name string, out *shop.GetInventoryOutput) *models.Display {
	d := &models.Display{
		Title: fmt.Sprintf("%s's Inventory", name),
		Color: models.ColorInfo,
	}

	if out.Count == 0 {
		d.Description = "Inventory is empty! Visit the `/shop` to buy items."
		return d
	}

	for _, group := range out.Groups {
		lines := make([]string, 0, len(group.Items))
		for _, item := range group.Items {
			lines = append(lines, "**"+messaging.ItemLabel(item)+"**")
		}

		name, ok := itemTypeNames[group.Type]
		if !ok {
			name = string(group.Type)
		}
		d.Fields = append(d.Fields, models.DisplayField{Name: name, Value: strings.Join(lines, "\n")})
	}

	d.Fields = append(d.Fields, models.DisplayField{Name: "Total Value", Value: messaging.FormatCoins(out.TotalValue)})
	d.Footer = fmt.Sprintf("Total items: %d", out.Count)
	return d
}

func helpView() *models.Display {
	return &models.Display{
		Title:       "Arcade Commands",
		Description: "Here are all available commands:",
		Color:       models.ColorInfo,
		Fields: []models.DisplayField{
			{Name: "Economy", Value: strings.Join([]string{
				"`/balance` - Check your coin balance and stats",
				"`/daily` - Claim your daily reward",
				"`/shop` - Browse and buy items",
				"`/inventory` - View your inventory",
				"`/trade` - Trade with other users",
				"`/leaderboard` - View top players",
			}, "\n")},
			{Name: "Games (Bet to Play)", Value: strings.Join([]string{
				"`/rps` - Rock Paper Scissors",
				"`/coinflip` - Heads or Tails",
				"`/dice` - Roll dice against the bot",
				"`/slots` - Spin the slot machine",
				"`/blackjack` - Play 21 against the dealer",
				"`/tictactoe` - Classic Tic Tac Toe",
				"`/guess` - Guess a number 1-10",
				"`/trivia` - Answer trivia questions",
				"`/memory` - Memory matching game",
				"`/scramble` - Unscramble words",
				"`/highlow` - Higher or lower streak",
			}, "\n")},
		},
		Footer: "Start with /daily to get coins!",
	}
}

func adminPanelView() *models.Display {
	return &models.Display{
		Title:       "🛠️ Admin Control Panel",
		Description: "Welcome to the admin panel!",
		Color:       models.ColorError,
		Fields: []models.DisplayField{
			{Name: "Economy Controls", Value: "`/admin give` - Give coins\n`/admin take` - Take coins\n`/admin setbalance` - Set balance", Inline: true},
			{Name: "Item Controls", Value: "`/admin giveitem` - Give any item\n`/admin godmode` - Max everything", Inline: true},
			{Name: "Shop Controls", Value: "`/admin addrole` - Add or update a role\n`/admin removerole` - Remove a role", Inline: true},
			{Name: "User Controls", Value: "`/admin reset` - Reset user\n`/admin broadcast` - Announce\n`/admin stats` - Economy stats", Inline: true},
		},
		Footer: "Admin Panel - Use responsibly",
	}
}

func adminBalanceView(title, verb, userID string, out *ledger.BalanceOutput) *models.Display {
	amount := out.Applied
	if amount < 0 {
		amount = -amount
	}
	return &models.Display{
		Title: title,
		Description: fmt.Sprintf("%s **%s** %s.\n\nTheir new balance: **%s**",
			verb, messaging.FormatCoins(amount), messaging.Mention(userID), messaging.FormatCoins(out.Balance)),
		Color: models.ColorSuccess,
	}
}

func adminNoticeView(title, description string) *models.Display {
	return &models.Display{
		Title:       title,
		Description: description,
		Color:       models.ColorSuccess,
	}
}

func statsView(out *admin.StatsOutput) *models.Display {
	return &models.Display{
		Title: "📊 Economy Stats",
		Color: models.ColorInfo,
		Fields: []models.DisplayField{
			{Name: "Users", Value: messaging.FormatNumber(out.Users), Inline: true},
			{Name: "Active Sessions", Value: fmt.Sprintf("%d", out.ActiveSessions), Inline: true},
		},
	}
}

func broadcastView(authorName, message string) *models.Display {
	return &models.Display{
		Title:       "📢 Announcement",
		Description: message,
		Color:       models.ColorGold,
		Footer:      "From " + authorName,
	}
}
