package shop

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/arcade/internal/services/shop Service,RoleGranter

import (
	"context"
)

// Service defines the interface for the shop and inventories
type Service interface {
	// ListItems returns the catalog split into roles and other items
	ListItems(ctx context.Context) (*ListItemsOutput, error)

	// GetItem finds a catalog item by item ID or role ID
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)

	// Buy charges the price and adds the item to the buyer's inventory
	Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error)

	// GetInventory returns a user's items grouped by type
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)

	// SaveRole adds a role to the catalog or updates the entry for the same role
	SaveRole(ctx context.Context, input *SaveRoleInput) (*SaveRoleOutput, error)

	// RemoveRole deletes a role from the catalog
	RemoveRole(ctx context.Context, input *RemoveRoleInput) (*RemoveRoleOutput, error)

	// Seed writes the default catalog once
	Seed(ctx context.Context) error
}

// RoleGranter gives a chat platform role to a user
type RoleGranter interface {
	GrantRole(ctx context.Context, userID, roleID string) error
}
