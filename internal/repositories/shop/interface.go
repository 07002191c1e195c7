package shop

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/arcade/internal/repositories/shop Repository

import (
	"context"

	"github.com/KirkDiggler/arcade/internal/models"
)

// Repository defines the interface for shop catalog persistence
type Repository interface {
	// ListItems returns the whole catalog, roles first
	ListItems(ctx context.Context) ([]*models.Item, error)

	// GetItem finds a catalog item by item ID or Discord role ID
	GetItem(ctx context.Context, input *GetItemInput) (*models.Item, error)

	// SaveItem inserts an item or replaces the entry with the same item or role ID
	SaveItem(ctx context.Context, input *SaveItemInput) error

	// RemoveItem deletes a catalog item by item ID or Discord role ID
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*models.Item, error)

	// Seed writes the given items if the catalog has never been written
	Seed(ctx context.Context, input *SeedInput) (*SeedOutput, error)
}
