package shop

import "github.com/KirkDiggler/arcade/internal/models"

// DefaultCatalog returns the items a fresh shop starts with
func DefaultCatalog() []*models.Item {
	return []*models.Item{
		{ID: "role_strawberry_elephant", Name: "Strawberry Elephant", Description: "A sweet elephant role - Top Tier Reward!", Price: 10000, Type: models.ItemTypeRole, Rarity: models.RarityLegendary, RoleID: "1446495830965096591"},
		{ID: "role_dragon_cannelloli", Name: "Dragon Cannelloli", Description: "A delicious dragon role - Elite Reward!", Price: 5000, Type: models.ItemTypeRole, Rarity: models.RarityEpic, RoleID: "1446495803056197833"},
		{ID: "role_los_mobilis", Name: "Los Mobilis", Description: "The mobile legends - Premium Reward!", Price: 3500, Type: models.ItemTypeRole, Rarity: models.RarityEpic, RoleID: "1446495771913617498"},
		{ID: "role_tortugini_dragonfrutini", Name: "Tortuggini", Description: "Turtle dragon fruit fusion - Advanced Reward!", Price: 3000, Type: models.ItemTypeRole, Rarity: models.RarityRare, RoleID: "1446495739147452597"},
		{ID: "role_cocofanto_elefanto", Name: "Cocofanto", Description: "Coconut elephant vibes - Intermediate Reward!", Price: 2500, Type: models.ItemTypeRole, Rarity: models.RarityRare, RoleID: "1446495693848969392"},
		{ID: "role_noobini_pizzanini", Name: "Noobini", Description: "Pizza noob supreme - Starter Reward!", Price: 2000, Type: models.ItemTypeRole, Rarity: models.RarityUncommon, RoleID: "1446495657639809207"},
		{ID: "item_lucky_coin", Name: "Lucky Coin", Description: "+10% win chance for 1 hour", Price: 200, Type: models.ItemTypeConsumable, Rarity: models.RarityUncommon},
		{ID: "item_double_xp", Name: "Double Coins", Description: "2x coins for next game", Price: 150, Type: models.ItemTypeConsumable, Rarity: models.RarityUncommon},
		{ID: "item_trophy", Name: "Golden Trophy", Description: "A symbol of excellence", Price: 3000, Type: models.ItemTypeCollectible, Rarity: models.RarityEpic},
		{ID: "item_crown", Name: "Royal Crown", Description: "Fit for royalty", Price: 7500, Type: models.ItemTypeCollectible, Rarity: models.RarityLegendary},
		{ID: "item_gem", Name: "Mystic Gem", Description: "A rare gemstone", Price: 500, Type: models.ItemTypeCollectible, Rarity: models.RarityRare},
		{ID: "item_sword", Name: "Diamond Sword", Description: "A legendary weapon", Price: 4000, Type: models.ItemTypeCollectible, Rarity: models.RarityEpic},
		{ID: "item_shield", Name: "Dragon Shield", Description: "Forged in dragon fire", Price: 4500, Type: models.ItemTypeCollectible, Rarity: models.RarityEpic},
		{ID: "item_pet_dragon", Name: "Baby Dragon", Description: "A cute dragon pet", Price: 10000, Type: models.ItemTypeCollectible, Rarity: models.RarityLegendary},
	}
}
