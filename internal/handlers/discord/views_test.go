package discord

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/KirkDiggler/arcade/internal/services/shop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceViewSummarizesInventory(t *testing.T) {
	user := models.NewUserRecord("u1", 1250, time.Now())
	user.DailyStreak = 3
	user.Inventory = []*models.Item{
		{ID: "a", Name: "Gem", Price: 100, Rarity: models.RarityRare},
		{ID: "b", Name: "Cookie", Price: 10, Rarity: models.RarityCommon},
		{ID: "c", Name: "Crown", Price: 900, Rarity: models.RarityRare},
	}

	d := balanceView("Ada", user)

	assert.Equal(t, "Ada's Profile", d.Title)
	fields := map[string]string{}
	for _, f := range d.Fields {
		fields[f.Name] = f.Value
	}
	assert.Equal(t, "1,250 coins", fields["Balance"])
	assert.Equal(t, "3 days", fields["Daily Streak"])
	assert.Equal(t, "1,010 coins", fields["Inventory Value"])
	assert.Equal(t, "3", fields["Items Owned"])
	assert.Contains(t, fields["Inventory Summary"], "common: 1")
	assert.Contains(t, fields["Inventory Summary"], "rare: 2")
}

func TestBalanceViewEmptyInventory(t *testing.T) {
	d := balanceView("Ada", models.NewUserRecord("u1", 0, time.Now()))

	last := d.Fields[len(d.Fields)-1]
	assert.Equal(t, "Inventory Summary", last.Name)
	assert.Equal(t, "No items", last.Value)
}

func TestLeaderboardView(t *testing.T) {
	out := &ledger.GetLeaderboardOutput{
		Metric: models.LeaderboardWins,
		Entries: []*models.LeaderboardEntry{
			{Rank: 1, UserID: "a", Score: 12},
			{Rank: 2, UserID: "b", Score: 9},
			{Rank: 3, UserID: "c", Score: 4},
			{Rank: 4, UserID: "d", Score: 1},
		},
	}

	d := leaderboardView("d", out)

	assert.Equal(t, "🏆 Top Winners", d.Title)
	assert.Contains(t, d.Description, "🥇 <@a> - 12 wins")
	assert.Contains(t, d.Description, "**4.** <@d> - 1 wins")
	assert.Equal(t, "Your rank: #4", d.Footer)

	d = leaderboardView("nobody", out)
	assert.Equal(t, "Keep playing to climb the ranks!", d.Footer)
}

func TestLeaderboardViewEmpty(t *testing.T) {
	d := leaderboardView("a", &ledger.GetLeaderboardOutput{Metric: models.LeaderboardBalance})

	assert.Equal(t, "💰 Richest Players", d.Title)
	assert.Contains(t, d.Description, "No data yet")
}

func TestShopViewCategories(t *testing.T) {
	out := &shop.ListItemsOutput{
		Roles: []*models.Item{{ID: "r1", Name: "VIP", Price: 500, Type: models.ItemTypeRole, Rarity: models.RarityEpic}},
		Items: []*models.Item{{ID: "i1", Name: "Cookie", Price: 10, Type: models.ItemTypeConsumable, Rarity: models.RarityCommon}},
	}

	all := shopView(100, "", out)
	require.Len(t, all.Fields, 4)
	assert.Equal(t, "Roles", all.Fields[0].Name)
	assert.Equal(t, "Items", all.Fields[2].Name)
	assert.Contains(t, all.Fields[3].Value, "ID: `i1`")

	roles := shopView(100, categoryRoles, out)
	require.Len(t, roles.Fields, 2)
	assert.Contains(t, roles.Fields[1].Value, "Price: **500 coins**")

	items := shopView(100, categoryItems, out)
	require.Len(t, items.Fields, 2)
	assert.Equal(t, "Items", items.Fields[0].Name)
}

func TestInventoryView(t *testing.T) {
	empty := inventoryView("Ada", &shop.GetInventoryOutput{})
	assert.Contains(t, empty.Description, "Inventory is empty")
	assert.Empty(t, empty.Fields)

	d := inventoryView("Ada", &shop.GetInventoryOutput{
		Groups: []*shop.InventoryGroup{
			{Type: models.ItemTypeCollectible, Items: []*models.Item{{Name: "Gem", Rarity: models.RarityRare}}},
		},
		Count:      1,
		TotalValue: 100,
	})
	require.Len(t, d.Fields, 2)
	assert.Equal(t, "Collectibles", d.Fields[0].Name)
	assert.Equal(t, "100 coins", d.Fields[1].Value)
	assert.Equal(t, "Total items: 1", d.Footer)
}

func TestAdminBalanceViewShowsMagnitude(t *testing.T) {
	d := adminBalanceView("🏦 Coins Taken!", "Took", "u1", &ledger.BalanceOutput{Balance: 40, Applied: -60})

	assert.Contains(t, d.Description, "Took **60 coins** <@u1>")
	assert.Contains(t, d.Description, "**40 coins**")
}

func TestBuyViewRoleFooter(t *testing.T) {
	item := &models.Item{Name: "VIP", Price: 500, Rarity: models.RarityEpic}

	d := buyView(&shop.BuyOutput{Item: item, Balance: 20, RoleGranted: true})
	assert.Equal(t, models.RarityEpic.Color(), d.Color)
	assert.NotEmpty(t, d.Footer)

	d = buyView(&shop.BuyOutput{Item: item, Balance: 20})
	assert.Empty(t, d.Footer)
}

func TestGuildContext(t *testing.T) {
	ctx := withGuild(context.Background(), "g1")
	assert.Equal(t, "g1", guildFrom(ctx))

	assert.Equal(t, "", guildFrom(withGuild(context.Background(), "")))
}

func TestRoleGranterNeedsGuild(t *testing.T) {
	g := NewRoleGranter(nil, "")

	err := g.GrantRole(context.Background(), "u1", "r1")
	assert.ErrorIs(t, err, ErrNoGuild)
}
