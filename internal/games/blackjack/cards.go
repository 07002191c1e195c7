package blackjack

import (
	"github.com/KirkDiggler/arcade/internal/random"
)

// Suits and ranks of a standard deck
var (
	Suits = []string{"♠", "♥", "♦", "♣"}
	Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

// Card is a single playing card
type Card struct {
	Rank string
	Suit string
}

// String renders the card as rank and suit
func (c Card) String() string {
	return c.Rank + c.Suit
}

// Value is the card's blackjack value with aces counted as 11
func (c Card) Value() int {
	switch c.Rank {
	case "A":
		return 11
	case "J", "Q", "K", "10":
		return 10
	default:
		return int(c.Rank[0] - '0')
	}
}

// NewDeck returns an ordered 52-card deck
func NewDeck() []Card {
	deck := make([]Card, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// ShuffledDeck returns a Fisher-Yates shuffled deck
func ShuffledDeck(rng random.Source) []Card {
	deck := NewDeck()
	random.Shuffle(rng, deck)
	return deck
}

// HandValue returns the best total of a hand. Aces count as 11 and are demoted to 1
// while the total is over 21.
func HandValue(hand []Card) int {
	total, aces := 0, 0
	for _, c := range hand {
		total += c.Value()
		if c.Rank == "A" {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsNatural reports whether a two-card hand totals 21
func IsNatural(hand []Card) bool {
	return len(hand) == 2 && HandValue(hand) == 21
}
