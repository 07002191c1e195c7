package shop

import "github.com/KirkDiggler/arcade/internal/models"

// GetItemInput contains parameters for looking up a catalog item
type GetItemInput struct {
	// ID matches either the item ID or the Discord role ID
	ID string
}

// SaveItemInput contains parameters for saving a catalog item
type SaveItemInput struct {
	Item *models.Item
}

// RemoveItemInput contains parameters for removing a catalog item
type RemoveItemInput struct {
	// ID matches either the item ID or the Discord role ID
	ID string
}

// SeedInput contains the items written to an empty catalog
type SeedInput struct {
	Items []*models.Item
}

// SeedOutput reports whether seeding wrote anything
type SeedOutput struct {
	Seeded bool
	Count  int
}
