package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/arcade/internal/common/lock"
	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
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
	engines   *games.Registry
	rand      random.Source
	locks     *lock.UserLock
	notifier  messaging.Notifier
}

// New creates a new game service and registers the timeout handler of every session game
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
		engines:   cfg.Engines,
		rand:      cfg.Rand,
		locks:     cfg.Locks,
		notifier:  cfg.Notifier,
	}

	if s.engines == nil {
		s.engines = DefaultEngines()
	}
	if s.rand == nil {
		s.rand = random.New(nil)
	}
	if s.locks == nil {
		s.locks = lock.NewUserLock()
	}

	for _, kind := range games.Kinds() {
		if _, ok := s.engines.Engine(kind); ok {
			s.registry.OnExpire(kind, s.handleExpired)
		}
	}

	return s, nil
}

// StartGame opens a session for a game kind.
// Checks run in order: bet range, active session, cooldown, balance.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.UserID == "" {
		return nil, ErrInvalidUser
	}

	rules, err := games.RulesFor(input.Kind)
	if err != nil {
		return nil, err
	}

	if rules.Instant() {
		return nil, ErrInstantKind
	}

	if err := rules.CheckBet(input.Wager); err != nil {
		return nil, err
	}

	engine, ok := s.engines.Engine(input.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoEngine, input.Kind)
	}

	var output *StartGameOutput
	err = s.locks.WithLock(input.UserID, func() error {
		active, err := s.registry.FindByOwner(ctx, &session.FindByOwnerInput{
			OwnerID: input.UserID,
			Kind:    input.Kind,
		})
		if err == nil {
			return &session.ActiveError{Kind: active.Kind, Key: active.Key}
		}
		if !errors.Is(err, session.ErrSessionNotFound) {
			return err
		}

		if err := s.checkPlayable(ctx, input.UserID, rules, input.Wager); err != nil {
			return err
		}

		step, err := engine.Start(&games.StartInput{
			Wager: input.Wager,
			Rand:  s.rand,
		})
		if err != nil {
			return err
		}

		if step.Terminal() {
			output, err = s.settleOnDeal(ctx, input, step)
			return err
		}

		sess, err := s.registry.Create(ctx, &session.CreateInput{
			Kind:      input.Kind,
			OwnerID:   input.UserID,
			ChannelID: input.ChannelID,
			Wager:     input.Wager,
			TTL:       rules.TTL,
			Payload:   step.State,
		})
		if err != nil {
			return err
		}

		log.Info().
			Str("key", sess.Key).
			Str("user", input.UserID).
			Str("kind", string(input.Kind)).
			Int64("wager", input.Wager).
			Msg("Game started")

		rendered, err := s.messaging.RenderSession(ctx, &messaging.RenderSessionInput{Session: sess})
		if err != nil {
			return err
		}

		output = &StartGameOutput{
			Session: sess,
			Display: rendered.Display,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// settleOnDeal settles a game the engine decided while dealing
func (s *service) settleOnDeal(ctx context.Context, input *StartGameInput, step *games.Step) (*StartGameOutput, error) {
	settlement, err := s.ledger.ApplyGameResult(ctx, &ledger.ApplyGameResultInput{
		UserID:  input.UserID,
		Kind:    input.Kind,
		Outcome: step.Outcome,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("user", input.UserID).
		Str("kind", string(input.Kind)).
		Str("result", string(step.Outcome.Result)).
		Str("reason", step.Outcome.Reason).
		Msg("Game settled on deal")

	sess := &models.Session{
		Kind:      input.Kind,
		OwnerID:   input.UserID,
		ChannelID: input.ChannelID,
		Wager:     input.Wager,
		Payload:   step.State,
	}

	rendered, err := s.messaging.RenderSession(ctx, &messaging.RenderSessionInput{
		Session:    sess,
		Settlement: settlement,
	})
	if err != nil {
		return nil, err
	}

	return &StartGameOutput{
		Settlement: settlement,
		Display:    rendered.Display,
	}, nil
}

// HandleAction applies one action. Only the caller whose action ends the session settles it.
func (s *service) HandleAction(ctx context.Context, input *HandleActionInput) (*HandleActionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.ActorID == "" {
		return nil, ErrInvalidUser
	}

	current, err := s.registry.Get(ctx, &session.GetInput{Key: input.Action.SessionKey})
	if err != nil {
		return nil, err
	}

	if current.OwnerID != input.ActorID {
		return nil, session.ErrNotOwner
	}

	engine, ok := s.engines.Engine(current.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoEngine, current.Kind)
	}

	var output *HandleActionOutput
	err = s.locks.WithLock(current.OwnerID, func() error {
		user, err := s.ledger.GetUser(ctx, &ledger.GetUserInput{UserID: current.OwnerID})
		if err != nil {
			return err
		}

		var step *games.Step
		acted, err := s.registry.Act(ctx, &session.ActInput{
			Key:     input.Action.SessionKey,
			ActorID: input.ActorID,
			Apply: func(sess *models.Session) (*session.Transition, error) {
				next, err := engine.Apply(&games.ApplyInput{
					State:   sess.Payload,
					Action:  input.Action,
					Wager:   sess.Wager,
					Balance: user.User.Balance,
					Rand:    s.rand,
				})
				if err != nil {
					return nil, err
				}
				step = next
				return &session.Transition{Payload: next.State, Terminal: next.Terminal()}, nil
			},
		})
		if err != nil {
			return err
		}

		output = &HandleActionOutput{Session: acted.Session}

		if acted.Terminal {
			output.Settlement, err = s.ledger.ApplyGameResult(ctx, &ledger.ApplyGameResultInput{
				UserID:  acted.Session.OwnerID,
				Kind:    acted.Session.Kind,
				Outcome: step.Outcome,
			})
			if err != nil {
				return err
			}

			log.Info().
				Str("key", acted.Session.Key).
				Str("user", acted.Session.OwnerID).
				Str("kind", string(acted.Session.Kind)).
				Str("result", string(step.Outcome.Result)).
				Int64("applied", output.Settlement.Applied).
				Msg("Game settled")
		}

		rendered, err := s.messaging.RenderSession(ctx, &messaging.RenderSessionInput{
			Session:    acted.Session,
			Settlement: output.Settlement,
		})
		if err != nil {
			return err
		}
		output.Display = rendered.Display
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// PlayInstant plays and settles a single-shot game
func (s *service) PlayInstant(ctx context.Context, input *PlayInstantInput) (*PlayInstantOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.UserID == "" {
		return nil, ErrInvalidUser
	}

	rules, err := games.RulesFor(input.Kind)
	if err != nil {
		return nil, err
	}

	if !rules.Instant() {
		return nil, ErrSessionKind
	}

	if err := rules.CheckBet(input.Wager); err != nil {
		return nil, err
	}

	game, ok := s.engines.Instant(input.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoEngine, input.Kind)
	}

	var output *PlayInstantOutput
	err = s.locks.WithLock(input.UserID, func() error {
		if err := s.checkPlayable(ctx, input.UserID, rules, input.Wager); err != nil {
			return err
		}

		play, err := game.Play(&games.PlayInput{
			Wager: input.Wager,
			Rand:  s.rand,
		})
		if err != nil {
			return err
		}

		settlement, err := s.ledger.ApplyGameResult(ctx, &ledger.ApplyGameResultInput{
			UserID:  input.UserID,
			Kind:    input.Kind,
			Outcome: play.Outcome,
		})
		if err != nil {
			return err
		}

		log.Info().
			Str("user", input.UserID).
			Str("kind", string(input.Kind)).
			Str("result", string(play.Outcome.Result)).
			Int64("applied", settlement.Applied).
			Msg("Instant game played")

		rendered, err := s.messaging.RenderInstant(ctx, &messaging.RenderInstantInput{
			Kind:       input.Kind,
			Wager:      input.Wager,
			Play:       play,
			Settlement: settlement,
		})
		if err != nil {
			return err
		}

		output = &PlayInstantOutput{
			Play:       play,
			Settlement: settlement,
			Display:    rendered.Display,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// FindActiveSession returns the user's live session of a kind
func (s *service) FindActiveSession(ctx context.Context, input *FindActiveSessionInput) (*models.Session, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	return s.registry.FindByOwner(ctx, &session.FindByOwnerInput{
		OwnerID: input.UserID,
		Kind:    input.Kind,
	})
}

// SetMessage records the message presenting a session
func (s *service) SetMessage(ctx context.Context, input *SetMessageInput) error {
	if input == nil {
		return ErrInvalidInput
	}

	return s.registry.SetMessage(ctx, &session.SetMessageInput{
		Key:       input.Key,
		ChannelID: input.ChannelID,
		MessageID: input.MessageID,
	})
}

// checkPlayable enforces the cooldown and the balance cover. Callers hold the user's lock.
func (s *service) checkPlayable(ctx context.Context, userID string, rules games.Rules, wager int64) error {
	cooldown, err := s.ledger.CheckCooldown(ctx, &ledger.CheckCooldownInput{
		UserID: userID,
		Kind:   rules.Kind,
		Window: rules.Cooldown,
	})
	if err != nil {
		return err
	}

	if !cooldown.CanPlay {
		return &ledger.CooldownError{Remaining: cooldown.Remaining}
	}

	user, err := s.ledger.GetUser(ctx, &ledger.GetUserInput{UserID: userID})
	if err != nil {
		return err
	}

	if user.User.Balance < wager {
		return &ledger.InsufficientFundsError{Need: wager, Have: user.User.Balance}
	}

	return nil
}
