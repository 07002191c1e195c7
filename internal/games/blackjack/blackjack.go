// Package blackjack implements single-deck blackjack against a dealer that draws to 17.
package blackjack

import (
	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/random"
)

// DealerStand is the total at which the dealer stops drawing
const DealerStand = 17

// State is the blackjack game state. The deck is drawn from its end.
type State struct {
	Deck   []Card
	Player []Card
	Dealer []Card

	// Doubled is set after a double down, doubling the stake
	Doubled bool

	// DealerDone is set once the dealer's hand has been played and revealed
	DealerDone bool
}

// Stake returns the amount riding on the hand
func (s *State) Stake(wager int64) int64 {
	if s.Doubled {
		return wager * 2
	}
	return wager
}

// CanDouble reports whether a double down is still allowed by the hand
func (s *State) CanDouble() bool {
	return len(s.Player) == 2 && !s.Doubled && !s.DealerDone
}

func (s *State) clone() *State {
	return &State{
		Deck:       append([]Card(nil), s.Deck...),
		Player:     append([]Card(nil), s.Player...),
		Dealer:     append([]Card(nil), s.Dealer...),
		Doubled:    s.Doubled,
		DealerDone: s.DealerDone,
	}
}

func (s *State) draw(rng random.Source) Card {
	if len(s.Deck) == 0 {
		s.Deck = ShuffledDeck(rng)
	}
	c := s.Deck[len(s.Deck)-1]
	s.Deck = s.Deck[:len(s.Deck)-1]
	return c
}

// PlayDealer draws for the dealer while its total is below DealerStand
func (s *State) PlayDealer(rng random.Source) {
	for HandValue(s.Dealer) < DealerStand {
		s.Dealer = append(s.Dealer, s.draw(rng))
	}
	s.DealerDone = true
}

// Engine implements games.Engine
type Engine struct{}

// New creates a new blackjack engine
func New() *Engine {
	return &Engine{}
}

// Kind returns models.GameKindBlackjack
func (e *Engine) Kind() models.GameKind {
	return models.GameKindBlackjack
}

// Start shuffles a deck and deals two cards each. A player natural settles at once.
func (e *Engine) Start(input *games.StartInput) (*games.Step, error) {
	state := &State{Deck: ShuffledDeck(input.Rand)}
	state.Player = []Card{state.draw(input.Rand), state.draw(input.Rand)}
	state.Dealer = []Card{state.draw(input.Rand), state.draw(input.Rand)}

	if IsNatural(state.Player) {
		state.DealerDone = true
		// pays 2.5x in total
		return &games.Step{State: state, Outcome: models.Win(input.Wager*5/2-input.Wager, "blackjack")}, nil
	}

	return &games.Step{State: state}, nil
}

// Apply handles hit, stand and double. Standing plays out the dealer and settles the hand.
func (e *Engine) Apply(input *games.ApplyInput) (*games.Step, error) {
	state, ok := input.State.(*State)
	if !ok {
		return nil, games.ErrUnknownState
	}
	if state.DealerDone {
		return nil, games.ErrInvalidAction
	}

	next := state.clone()

	switch input.Action.Type {
	case models.ActionHit:
		next.Player = append(next.Player, next.draw(input.Rand))
		total := HandValue(next.Player)
		if total > 21 {
			next.DealerDone = true
			return &games.Step{State: next, Outcome: models.Lose(next.Stake(input.Wager), "bust")}, nil
		}
		if total < 21 {
			return &games.Step{State: next}, nil
		}

	case models.ActionStand:

	case models.ActionDouble:
		if !next.CanDouble() {
			return nil, games.ErrInvalidAction
		}
		if input.Balance < input.Wager*2 {
			return nil, games.ErrCannotAfford
		}
		next.Doubled = true
		next.Player = append(next.Player, next.draw(input.Rand))
		if HandValue(next.Player) > 21 {
			next.DealerDone = true
			return &games.Step{State: next, Outcome: models.Lose(next.Stake(input.Wager), "bust")}, nil
		}

	default:
		return nil, games.ErrInvalidAction
	}

	next.PlayDealer(input.Rand)
	return &games.Step{State: next, Outcome: next.compare(input.Wager)}, nil
}

func (s *State) compare(wager int64) *models.Outcome {
	player, dealer := HandValue(s.Player), HandValue(s.Dealer)
	stake := s.Stake(wager)

	switch {
	case dealer > 21:
		return models.Win(stake, "dealer_bust")
	case player > dealer:
		return models.Win(stake, "higher_hand")
	case player < dealer:
		return models.Lose(stake, "lower_hand")
	default:
		return models.Push("tie")
	}
}
