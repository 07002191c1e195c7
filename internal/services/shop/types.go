package shop

import (
	"github.com/KirkDiggler/arcade/internal/models"
	shopRepo "github.com/KirkDiggler/arcade/internal/repositories/shop"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
)

// Config holds configuration for the shop service
type Config struct {
	Repository shopRepo.Repository
	Ledger     ledger.Service

	// RoleGranter is optional, role purchases only update the inventory without it
	RoleGranter RoleGranter

	// Catalog is seeded on first start, the default catalog when nil
	Catalog []*models.Item
}

// ListItemsOutput contains the catalog
type ListItemsOutput struct {
	Roles []*models.Item
	Items []*models.Item
}

// GetItemInput contains parameters for a catalog lookup
type GetItemInput struct {
	ID string
}

// GetItemOutput contains the catalog item
type GetItemOutput struct {
	Item *models.Item
}

// BuyInput contains parameters for a purchase
type BuyInput struct {
	UserID string
	ItemID string
}

// BuyOutput contains the purchase result
type BuyOutput struct {
	Item    *models.Item
	Balance int64

	// RoleGranted is set when a role item was also granted on the platform
	RoleGranted bool
}

// GetInventoryInput contains parameters for an inventory read
type GetInventoryInput struct {
	UserID string
}

// InventoryGroup is the items of one type
type InventoryGroup struct {
	Type  models.ItemType
	Items []*models.Item
}

// GetInventoryOutput contains a user's inventory
type GetInventoryOutput struct {
	// Groups are ordered roles, consumables, collectibles
	Groups []*InventoryGroup

	Count int

	// TotalValue is the summed price of every owned item
	TotalValue int64
}

// SaveRoleInput contains a role entry to add or update
type SaveRoleInput struct {
	RoleID      string
	Name        string
	Description string
	Price       int64
	Rarity      models.Rarity
}

// SaveRoleOutput contains the stored role
type SaveRoleOutput struct {
	Item *models.Item

	// Updated is set when an existing entry was replaced
	Updated bool
}

// RemoveRoleInput contains parameters for removing a role
type RemoveRoleInput struct {
	RoleID string
}

// RemoveRoleOutput contains the removed role
type RemoveRoleOutput struct {
	Item *models.Item
}
