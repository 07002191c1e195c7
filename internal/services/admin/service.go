package admin

import (
	"context"
	"sync"

	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/KirkDiggler/arcade/internal/services/session"
	"github.com/KirkDiggler/arcade/internal/services/shop"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// HashKey returns the bcrypt hash to configure as the admin key hash
func HashKey(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// service implements the Service interface
type service struct {
	ledger   ledger.Service
	shop     shop.Service
	registry session.Registry
	keyHash  []byte

	mu       sync.RWMutex
	admins   map[string]struct{}
	loggedIn map[string]struct{}
}

// New creates a new admin service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}

	if cfg.Shop == nil {
		return nil, ErrNilShop
	}

	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	s := &service{
		ledger:   cfg.Ledger,
		shop:     cfg.Shop,
		registry: cfg.Registry,
		admins:   make(map[string]struct{}),
		loggedIn: make(map[string]struct{}),
	}
	if cfg.KeyHash != "" {
		s.keyHash = []byte(cfg.KeyHash)
	}
	for _, id := range cfg.AdminIDs {
		if id != "" {
			s.admins[id] = struct{}{}
		}
	}

	return s, nil
}

// Login grants admin rights for the process lifetime when the key matches
func (s *service) Login(ctx context.Context, input *LoginInput) error {
	if input == nil {
		return ErrInvalidInput
	}

	if input.UserID == "" {
		return ErrInvalidUser
	}

	if len(s.keyHash) == 0 {
		return ErrNotEnabled
	}

	if err := bcrypt.CompareHashAndPassword(s.keyHash, []byte(input.Key)); err != nil {
		log.Warn().Str("user", input.UserID).Msg("Rejected admin login")
		return ErrInvalidKey
	}

	s.mu.Lock()
	s.loggedIn[input.UserID] = struct{}{}
	s.mu.Unlock()

	log.Info().Str("user", input.UserID).Msg("Admin logged in")
	return nil
}

// Authorize fails with ErrAccessDenied unless the user is an admin
func (s *service) Authorize(ctx context.Context, input *AuthorizeInput) error {
	if input == nil {
		return ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.admins[input.UserID]; ok {
		return nil
	}
	if _, ok := s.loggedIn[input.UserID]; ok {
		return nil
	}
	return ErrAccessDenied
}

func checkAmount(input *AmountInput) error {
	if input == nil {
		return ErrInvalidInput
	}
	if input.UserID == "" {
		return ErrInvalidUser
	}
	return nil
}

// Give credits coins to a user
func (s *service) Give(ctx context.Context, input *AmountInput) (*ledger.BalanceOutput, error) {
	if err := checkAmount(input); err != nil {
		return nil, err
	}

	out, err := s.ledger.Credit(ctx, &ledger.CreditInput{
		UserID: input.UserID,
		Amount: input.Amount,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("user", input.UserID).Int64("amount", input.Amount).Msg("Admin gave coins")
	return out, nil
}

// Take debits coins from a user, stopping at zero
func (s *service) Take(ctx context.Context, input *AmountInput) (*ledger.BalanceOutput, error) {
	if err := checkAmount(input); err != nil {
		return nil, err
	}

	if input.Amount <= 0 {
		return nil, ledger.ErrInvalidAmount
	}

	var taken int64
	out, err := s.ledger.Mutate(ctx, &ledger.MutateInput{
		UserIDs: []string{input.UserID},
		Apply: func(users map[string]*models.UserRecord) error {
			user := users[input.UserID]
			taken = min(input.Amount, user.Balance)
			user.Balance -= taken
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("user", input.UserID).Int64("amount", taken).Msg("Admin took coins")

	return &ledger.BalanceOutput{
		Balance: out.Users[input.UserID].Balance,
		Applied: -taken,
	}, nil
}

// SetBalance overwrites a user's balance
func (s *service) SetBalance(ctx context.Context, input *AmountInput) (*ledger.BalanceOutput, error) {
	if err := checkAmount(input); err != nil {
		return nil, err
	}

	out, err := s.ledger.SetBalance(ctx, &ledger.SetBalanceInput{
		UserID:  input.UserID,
		Balance: input.Amount,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("user", input.UserID).Int64("balance", input.Amount).Msg("Admin set balance")
	return out, nil
}

// GiveItem grants a catalog item without charging
func (s *service) GiveItem(ctx context.Context, input *GiveItemInput) (*GiveItemOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.UserID == "" {
		return nil, ErrInvalidUser
	}

	found, err := s.shop.GetItem(ctx, &shop.GetItemInput{ID: input.ItemID})
	if err != nil {
		return nil, err
	}

	if err := s.ledger.AddItem(ctx, &ledger.AddItemInput{
		UserID: input.UserID,
		Item:   found.Item,
	}); err != nil {
		return nil, err
	}

	log.Info().Str("user", input.UserID).Str("item", found.Item.ID).Msg("Admin gave item")

	return &GiveItemOutput{
		Item: found.Item,
	}, nil
}

// Reset wipes a user back to the default record
func (s *service) Reset(ctx context.Context, input *ResetInput) error {
	if input == nil {
		return ErrInvalidInput
	}

	if input.UserID == "" {
		return ErrInvalidUser
	}

	if err := s.ledger.ResetUser(ctx, &ledger.ResetUserInput{UserID: input.UserID}); err != nil {
		return err
	}

	log.Info().Str("user", input.UserID).Msg("Admin reset user")
	return nil
}

// Godmode maxes out a user's balance, inventory and stats
func (s *service) Godmode(ctx context.Context, input *GodmodeInput) (*GodmodeOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.UserID == "" {
		return nil, ErrInvalidUser
	}

	catalog, err := s.shop.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	out, err := s.ledger.Mutate(ctx, &ledger.MutateInput{
		UserIDs: []string{input.UserID},
		Apply: func(users map[string]*models.UserRecord) error {
			user := users[input.UserID]
			user.Balance = ledger.GodmodeBalance
			user.Inventory = make([]*models.Item, 0, len(catalog.Roles)+len(catalog.Items))
			for _, items := range [][]*models.Item{catalog.Roles, catalog.Items} {
				for _, item := range items {
					owned := *item
					user.Inventory = append(user.Inventory, &owned)
				}
			}
			user.Stats = models.Stats{
				GamesPlayed: GodmodeGames,
				GamesWon:    GodmodeGames,
				TotalEarned: GodmodeEarned,
			}
			user.DailyStreak = GodmodeStreak
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("user", input.UserID).Msg("Admin granted godmode")

	return &GodmodeOutput{
		User: out.Users[input.UserID],
	}, nil
}

// SaveRole adds or updates a shop role
func (s *service) SaveRole(ctx context.Context, input *shop.SaveRoleInput) (*shop.SaveRoleOutput, error) {
	return s.shop.SaveRole(ctx, input)
}

// RemoveRole deletes a shop role
func (s *service) RemoveRole(ctx context.Context, input *shop.RemoveRoleInput) (*shop.RemoveRoleOutput, error) {
	return s.shop.RemoveRole(ctx, input)
}

// Stats summarizes the running economy
func (s *service) Stats(ctx context.Context) (*StatsOutput, error) {
	users, err := s.ledger.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsOutput{
		Users:          users,
		ActiveSessions: s.registry.Count(),
	}, nil
}
