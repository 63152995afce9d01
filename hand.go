package blackjack

import (
	"slices"
	"strings"
)

// Target is the best possible hand value.
const Target = 21

// Hand is the ordered, append only, list of cards held by the player or the dealer.
type Hand struct {
	// Dealer marks the house hand. Only changes how much of it is shown.
	Dealer bool
	cards  []Card
}

// Add appends a card to the hand.
func (h *Hand) Add(card Card) {
	h.cards = append(h.cards, card)
}

// Value computes the hand total from scratch: aces count 11 and, if the
// total is over 21, a single ace is demoted to 1. Only one ace is ever
// demoted, so A A K is 22.
func (h *Hand) Value() int {
	total := 0
	hasAce := false
	for _, c := range h.cards {
		if c.Rank == Ace {
			hasAce = true
		}
		total += c.Rank.Points()
	}
	if hasAce && total > Target {
		total -= 10
	}
	return total
}

// IsBust is true when the value is over 21.
func (h *Hand) IsBust() bool {
	return h.Value() > Target
}

// Is21 is true when the value is exactly 21.
func (h *Hand) Is21() bool {
	return h.Value() == Target
}

// Len is the number of cards in the hand.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards.
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

func (h *Hand) String() string {
	parts := make([]string, 0, len(h.cards))
	for _, c := range h.cards {
		parts = append(parts, c.Short())
	}
	return strings.Join(parts, " ")
}
