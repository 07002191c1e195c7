package trade

import (
	"context"
	"time"

	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/KirkDiggler/arcade/internal/services/messaging"
	"github.com/KirkDiggler/arcade/internal/services/session"
	"github.com/rs/zerolog/log"
)

// service implements the Service interface
type service struct {
	ledger    ledger.Service
	registry  session.Registry
	messaging messaging.Service
	notifier  messaging.Notifier
	ttl       time.Duration
}

// New creates a new trade service and registers its expiry handler
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}

	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	s := &service{
		ledger:    cfg.Ledger,
		registry:  cfg.Registry,
		messaging: cfg.Messaging,
		notifier:  cfg.Notifier,
		ttl:       cfg.TTL,
	}
	if s.ttl <= 0 {
		s.ttl = DefaultTTL
	}

	s.registry.OnExpire(models.GameKindTrade, s.handleExpired)

	return s, nil
}

// Propose validates an offer and holds it for the target to answer
func (s *service) Propose(ctx context.Context, input *ProposeInput) (*ProposeOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.SenderID == "" || input.TargetID == "" {
		return nil, ErrInvalidUser
	}

	if input.SenderID == input.TargetID {
		return nil, ErrSelfTrade
	}

	if input.TargetIsBot {
		return nil, ErrBotTrade
	}

	if input.OfferCoins < 0 || input.RequestCoins < 0 {
		return nil, ErrNegativeCoins
	}

	offer := &models.TradeOffer{
		SenderID:      input.SenderID,
		TargetID:      input.TargetID,
		OfferItemID:   input.OfferItemID,
		OfferCoins:    input.OfferCoins,
		RequestItemID: input.RequestItemID,
		RequestCoins:  input.RequestCoins,
	}
	if offer.IsEmpty() {
		return nil, ErrEmptyTrade
	}

	sender, err := s.ledger.GetUser(ctx, &ledger.GetUserInput{UserID: offer.SenderID})
	if err != nil {
		return nil, err
	}

	target, err := s.ledger.GetUser(ctx, &ledger.GetUserInput{UserID: offer.TargetID})
	if err != nil {
		return nil, err
	}

	pending := &Pending{Offer: offer}
	pending.OfferItem, pending.RequestItem, err = validate(offer, sender.User, target.User)
	if err != nil {
		return nil, err
	}

	sess, err := s.registry.Create(ctx, &session.CreateInput{
		Kind:      models.GameKindTrade,
		OwnerID:   offer.TargetID,
		ChannelID: input.ChannelID,
		TTL:       s.ttl,
		Payload:   pending,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("key", sess.Key).
		Str("sender", offer.SenderID).
		Str("target", offer.TargetID).
		Msg("Trade proposed")

	rendered, err := s.messaging.RenderTrade(ctx, &messaging.RenderTradeInput{
		SessionKey:  sess.Key,
		Offer:       offer,
		OfferItem:   pending.OfferItem,
		RequestItem: pending.RequestItem,
		Status:      messaging.TradePending,
	})
	if err != nil {
		return nil, err
	}

	return &ProposeOutput{
		Session: sess,
		Pending: pending,
		Display: rendered.Display,
	}, nil
}

// Respond accepts or declines a pending offer. Only the target may respond.
// The offer is consumed either way, an accept that no longer validates fails without changes.
func (s *service) Respond(ctx context.Context, input *RespondInput) (*RespondOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	var pending *Pending
	_, err := s.registry.Act(ctx, &session.ActInput{
		Key:     input.Key,
		ActorID: input.ActorID,
		Apply: func(sess *models.Session) (*session.Transition, error) {
			p, ok := sess.Payload.(*Pending)
			if !ok || sess.Kind != models.GameKindTrade {
				return nil, ErrNotTrade
			}
			pending = p
			return &session.Transition{Payload: p, Terminal: true}, nil
		},
	})
	if err != nil {
		return nil, err
	}

	status := messaging.TradeDeclined
	if input.Accept {
		if err := s.swap(ctx, pending.Offer); err != nil {
			log.Info().Err(err).
				Str("key", input.Key).
				Msg("Trade failed validation on accept")
			return nil, err
		}
		status = messaging.TradeAccepted
	}

	log.Info().
		Str("key", input.Key).
		Str("status", string(status)).
		Msg("Trade resolved")

	rendered, err := s.messaging.RenderTrade(ctx, &messaging.RenderTradeInput{
		Offer:       pending.Offer,
		OfferItem:   pending.OfferItem,
		RequestItem: pending.RequestItem,
		Status:      status,
	})
	if err != nil {
		return nil, err
	}

	return &RespondOutput{
		Pending:  pending,
		Accepted: input.Accept,
		Display:  rendered.Display,
	}, nil
}

// swap moves both sides of the offer under both users' locks
func (s *service) swap(ctx context.Context, offer *models.TradeOffer) error {
	_, err := s.ledger.Mutate(ctx, &ledger.MutateInput{
		UserIDs: []string{offer.SenderID, offer.TargetID},
		Apply: func(users map[string]*models.UserRecord) error {
			sender, target := users[offer.SenderID], users[offer.TargetID]
			if _, _, err := validate(offer, sender, target); err != nil {
				return err
			}

			if offer.OfferItemID != "" {
				target.Inventory = append(target.Inventory, takeItem(sender, offer.OfferItemID))
			}
			if offer.RequestItemID != "" {
				sender.Inventory = append(sender.Inventory, takeItem(target, offer.RequestItemID))
			}
			transfer(sender, target, offer.OfferCoins)
			transfer(target, sender, offer.RequestCoins)
			return nil
		},
	})
	return err
}

func (s *service) handleExpired(ctx context.Context, sess *models.Session) {
	pending, ok := sess.Payload.(*Pending)
	if !ok || s.notifier == nil || sess.MessageID == "" {
		return
	}

	rendered, err := s.messaging.RenderTrade(ctx, &messaging.RenderTradeInput{
		Offer:       pending.Offer,
		OfferItem:   pending.OfferItem,
		RequestItem: pending.RequestItem,
		Status:      messaging.TradeExpired,
	})
	if err != nil {
		log.Error().Err(err).Str("key", sess.Key).Msg("Failed to render expired trade")
		return
	}

	if err := s.notifier.Notify(ctx, &messaging.NotifyInput{
		ChannelID: sess.ChannelID,
		MessageID: sess.MessageID,
		Display:   rendered.Display,
	}); err != nil {
		log.Warn().Err(err).Str("key", sess.Key).Msg("Failed to edit expired trade message")
	}
}

// validate checks both sides can still deliver and returns the items involved
func validate(offer *models.TradeOffer, sender, target *models.UserRecord) (*models.Item, *models.Item, error) {
	var offerItem, requestItem *models.Item

	if offer.OfferItemID != "" {
		idx := sender.FindItem(offer.OfferItemID)
		if idx < 0 {
			return nil, nil, ErrOfferItemMissing
		}
		offerItem = sender.Inventory[idx]
	}

	if offer.OfferCoins > sender.Balance {
		return nil, nil, ErrSenderFunds
	}

	if offer.RequestItemID != "" {
		idx := target.FindItem(offer.RequestItemID)
		if idx < 0 {
			return nil, nil, ErrRequestItemMissing
		}
		requestItem = target.Inventory[idx]
	}

	if offer.RequestCoins > target.Balance {
		return nil, nil, ErrTargetFunds
	}

	return offerItem, requestItem, nil
}

func takeItem(user *models.UserRecord, itemID string) *models.Item {
	idx := user.FindItem(itemID)
	item := user.Inventory[idx]
	user.Inventory = append(user.Inventory[:idx:idx], user.Inventory[idx+1:]...)
	return item
}

func transfer(from, to *models.UserRecord, amount int64) {
	if amount <= 0 {
		return
	}
	from.Balance -= amount
	from.Stats.TotalSpent += amount
	to.Balance += amount
	to.Stats.TotalEarned += amount
}
