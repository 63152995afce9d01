package blackjack

import (
	"math/rand/v2"
	"slices"
)

// DeckSize is the number of cards in a fresh deck.
const DeckSize = 52

// Deck is an ordered sequence of cards, dealt from the front.
type Deck struct {
	cards []Card
}

// NewDeck returns a full, unshuffled deck in suit then rank order.
func NewDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, DeckSize)}
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, Card{Suit: suit, Rank: rank})
		}
	}
	return d
}

// NewDeckFrom returns a stacked deck dealing the given cards in order.
func NewDeckFrom(cards ...Card) *Deck {
	return &Deck{cards: slices.Clone(cards)}
}

// Shuffle randomizes the order of the remaining cards (Fisher-Yates).
// A nil rnd uses the global math/rand/v2 source.
func (d *Deck) Shuffle(rnd *rand.Rand) {
	if len(d.cards) <= 1 {
		return
	}
	swap := func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	if rnd == nil {
		rand.Shuffle(len(d.cards), swap)
		return
	}
	rnd.Shuffle(len(d.cards), swap)
}

// Deal removes and returns the front card. It refuses (returns false) unless
// at least 2 cards remain, so the last card of a deck is never dealt.
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) < 2 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// Len is the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, front first.
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}
