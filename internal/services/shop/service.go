package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/arcade/internal/models"
	shopRepo "github.com/KirkDiggler/arcade/internal/repositories/shop"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/rs/zerolog/log"
)

// inventoryOrder is the display order of inventory groups
var inventoryOrder = []models.ItemType{
	models.ItemTypeRole,
	models.ItemTypeConsumable,
	models.ItemTypeCollectible,
}

// service implements the Service interface
type service struct {
	repo    shopRepo.Repository
	ledger  ledger.Service
	granter RoleGranter
	catalog []*models.Item
}

// New creates a new shop service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = shopRepo.DefaultCatalog()
	}

	return &service{
		repo:    cfg.Repository,
		ledger:  cfg.Ledger,
		granter: cfg.RoleGranter,
		catalog: catalog,
	}, nil
}

// Seed writes the configured catalog if the shop has never been written
func (s *service) Seed(ctx context.Context) error {
	out, err := s.repo.Seed(ctx, &shopRepo.SeedInput{
		Items: s.catalog,
	})
	if err != nil {
		return err
	}

	if out.Seeded {
		log.Info().Int("items", out.Count).Msg("Seeded shop catalog")
	}

	return nil
}

// ListItems returns the catalog split into roles and other items
func (s *service) ListItems(ctx context.Context) (*ListItemsOutput, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	out := &ListItemsOutput{
		Roles: []*models.Item{},
		Items: []*models.Item{},
	}
	for _, item := range items {
		if item.Type == models.ItemTypeRole {
			out.Roles = append(out.Roles, item)
		} else {
			out.Items = append(out.Items, item)
		}
	}

	return out, nil
}

// GetItem finds a catalog item by item ID or role ID
func (s *service) GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.ID == "" {
		return nil, ErrInvalidItemID
	}

	item, err := s.repo.GetItem(ctx, &shopRepo.GetItemInput{
		ID: input.ID,
	})
	if err != nil {
		if errors.Is(err, shopRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	return &GetItemOutput{
		Item: item,
	}, nil
}

// Buy charges the price and adds the item to the buyer's inventory
func (s *service) Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.UserID == "" {
		return nil, ErrInvalidUserID
	}

	found, err := s.GetItem(ctx, &GetItemInput{ID: input.ItemID})
	if err != nil {
		return nil, err
	}
	item := found.Item

	mutated, err := s.ledger.Mutate(ctx, &ledger.MutateInput{
		UserIDs: []string{input.UserID},
		Apply: func(users map[string]*models.UserRecord) error {
			user := users[input.UserID]
			if user.HasItem(item.ID) {
				return ErrAlreadyOwned
			}
			if user.Balance < item.Price {
				return &ledger.InsufficientFundsError{Need: item.Price, Have: user.Balance}
			}

			owned := *item
			user.Balance -= item.Price
			user.Stats.TotalSpent += item.Price
			user.Inventory = append(user.Inventory, &owned)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	out := &BuyOutput{
		Item:    item,
		Balance: mutated.Users[input.UserID].Balance,
	}

	log.Info().
		Str("user", input.UserID).
		Str("item", item.ID).
		Int64("price", item.Price).
		Msg("Item purchased")

	if item.IsRole() && s.granter != nil {
		// The purchase stands even when the platform refuses the role
		if err := s.granter.GrantRole(ctx, input.UserID, item.RoleID); err != nil {
			log.Warn().Err(err).
				Str("user", input.UserID).
				Str("role", item.RoleID).
				Msg("Failed to grant purchased role")
		} else {
			out.RoleGranted = true
		}
	}

	return out, nil
}

// GetInventory returns a user's items grouped by type
func (s *service) GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.UserID == "" {
		return nil, ErrInvalidUserID
	}

	user, err := s.ledger.GetUser(ctx, &ledger.GetUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	byType := make(map[models.ItemType][]*models.Item)
	out := &GetInventoryOutput{
		Groups: []*InventoryGroup{},
	}
	for _, item := range user.User.Inventory {
		if item == nil {
			continue
		}
		byType[item.Type] = append(byType[item.Type], item)
		out.Count++
		out.TotalValue += item.Price
	}

	for _, t := range inventoryOrder {
		if items := byType[t]; len(items) > 0 {
			out.Groups = append(out.Groups, &InventoryGroup{Type: t, Items: items})
		}
		delete(byType, t)
	}
	for t, items := range byType {
		out.Groups = append(out.Groups, &InventoryGroup{Type: t, Items: items})
	}

	return out, nil
}

// SaveRole adds a role to the catalog or updates the entry for the same role
func (s *service) SaveRole(ctx context.Context, input *SaveRoleInput) (*SaveRoleOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.RoleID == "" {
		return nil, ErrInvalidRole
	}

	if input.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	item := &models.Item{
		ID:          fmt.Sprintf("role_%s", input.RoleID),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Type:        models.ItemTypeRole,
		Rarity:      input.Rarity,
		RoleID:      input.RoleID,
	}
	if item.Rarity == "" {
		item.Rarity = models.RarityCommon
	}

	updated := false
	existing, err := s.GetItem(ctx, &GetItemInput{ID: input.RoleID})
	switch {
	case err == nil:
		updated = true
		item.ID = existing.Item.ID
		if item.Name == "" {
			item.Name = existing.Item.Name
		}
		if item.Description == "" {
			item.Description = existing.Item.Description
		}
	case !errors.Is(err, ErrItemNotFound):
		return nil, err
	}

	if item.Name == "" {
		item.Name = input.RoleID
	}

	if err := s.repo.SaveItem(ctx, &shopRepo.SaveItemInput{
		Item: item,
	}); err != nil {
		return nil, err
	}

	log.Info().
		Str("role", item.RoleID).
		Int64("price", item.Price).
		Bool("updated", updated).
		Msg("Saved shop role")

	return &SaveRoleOutput{
		Item:    item,
		Updated: updated,
	}, nil
}

// RemoveRole deletes a role from the catalog
func (s *service) RemoveRole(ctx context.Context, input *RemoveRoleInput) (*RemoveRoleOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.RoleID == "" {
		return nil, ErrInvalidRole
	}

	found, err := s.GetItem(ctx, &GetItemInput{ID: input.RoleID})
	if err != nil {
		return nil, err
	}
	if found.Item.Type != models.ItemTypeRole {
		return nil, ErrItemNotFound
	}

	item, err := s.repo.RemoveItem(ctx, &shopRepo.RemoveItemInput{
		ID: found.Item.ID,
	})
	if err != nil {
		if errors.Is(err, shopRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	log.Info().Str("role", item.RoleID).Msg("Removed shop role")

	return &RemoveRoleOutput{
		Item: item,
	}, nil
}
