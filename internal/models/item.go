package models

// ItemType classifies shop items
type ItemType string

const (
	ItemTypeRole        ItemType = "role"
	ItemTypeConsumable  ItemType = "consumable"
	ItemTypeCollectible ItemType = "collectible"
)

// Rarity is the rarity tier of an item
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Color returns the embed color used for the rarity
func (r Rarity) Color() int {
	switch r {
	case RarityUncommon:
		return 0x4CAF50
	case RarityRare:
		return 0x2196F3
	case RarityEpic:
		return 0x9C27B0
	case RarityLegendary:
		return 0xFFC107
	default:
		return 0x9E9E9E
	}
}

// Item is a shop catalog entry, also stored in user inventories
type Item struct {
	// ID is the catalog identifier, e.g. item_gem
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Description is shown in the shop listing
	Description string `json:"description"`

	// Price is the cost in coins
	Price int64 `json:"price"`

	// Type is role, consumable or collectible
	Type ItemType `json:"type"`

	// Rarity is the rarity tier
	Rarity Rarity `json:"rarity"`

	// RoleID is the Discord role granted on purchase, only for role items
	RoleID string `json:"roleId,omitempty"`
}

// IsRole reports whether buying the item grants a Discord role
func (i *Item) IsRole() bool {
	return i.Type == ItemTypeRole && i.RoleID != ""
}
