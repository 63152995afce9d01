// Package blackjack is the rules engine shared by the console and the table view:
// cards, deck, hands and the round state machine.
package blackjack // import "fortio.org/blackjack"

import "strconv"

// Suit of a card.
type Suit uint8

const (
	Spades Suit = iota
	Clubs
	Hearts
	Diamonds
)

// Suits in deck construction order.
var Suits = []Suit{Spades, Clubs, Hearts, Diamonds}

var suitNames = []string{"Spades", "Clubs", "Hearts", "Diamonds"}

var suitSymbols = []string{"♠", "♣", "♥", "♦"}

func (s Suit) String() string {
	if int(s) >= len(suitNames) {
		return "Suit(" + strconv.Itoa(int(s)) + ")"
	}
	return suitNames[s]
}

// Symbol returns the unicode suit symbol (♠ ♣ ♥ ♦).
func (s Suit) Symbol() string {
	if int(s) >= len(suitSymbols) {
		return "?"
	}
	return suitSymbols[s]
}

// Red is true for hearts and diamonds.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Rank of a card.
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks in deck construction order.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var rankNames = []string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func (r Rank) String() string {
	if r == 0 || int(r) >= len(rankNames) {
		return "Rank(" + strconv.Itoa(int(r)) + ")"
	}
	return rankNames[r]
}

// Points is the nominal value of the rank: 11 for an Ace, 10 for face cards.
func (r Rank) Points() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	default:
		return int(r)
	}
}

// Card is an immutable (suit, rank) pair.
type Card struct {
	Suit Suit
	Rank Rank
}

// String is the long form, e.g. "A of Spades".
func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// Short form, e.g. "A♠" or "10♥".
func (c Card) Short() string {
	return c.Rank.String() + c.Suit.Symbol()
}
