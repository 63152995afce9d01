package blackjack

import (
	"errors"
	"math/rand/v2"
	"strconv"

	"fortio.org/log"
)

var (
	// ErrRoundOver is returned when hitting or sticking after the round ended.
	ErrRoundOver = errors.New("round is over")
	// ErrDeckExhausted is returned when the deck refuses to deal.
	ErrDeckExhausted = errors.New("deck exhausted")
)

// Winner of a round.
type Winner int

const (
	NoWinner Winner = iota
	PlayerWins
	DealerWins
	Tie
)

func (w Winner) String() string {
	switch w {
	case NoWinner:
		return "none"
	case PlayerWins:
		return "player"
	case DealerWins:
		return "dealer"
	case Tie:
		return "tie"
	}
	return "Winner(" + strconv.Itoa(int(w)) + ")"
}

// State of a round.
type State int

const (
	StateDealing State = iota
	StateInProgress
	StateTerminal
)

func (s State) String() string {
	switch s {
	case StateDealing:
		return "dealing"
	case StateInProgress:
		return "in progress"
	case StateTerminal:
		return "terminal"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Round is one game: a deck, the player and dealer hands and the outcome.
type Round struct {
	deck      *Deck
	player    *Hand
	dealer    *Hand
	winner    Winner
	blackjack bool
	state     State
}

// TableState is a snapshot of the round for rendering.
type TableState struct {
	PlayerCards []Card
	DealerCards []Card
	PlayerValue int
	DealerValue int
	Winner      Winner
	Blackjack   bool
	State       State
}

// NewRound deals two cards each, alternating player then dealer, from the
// given deck (which is used as is, not shuffled).
func NewRound(deck *Deck) (*Round, error) {
	r := &Round{
		deck:   deck,
		player: &Hand{},
		dealer: &Hand{Dealer: true},
		state:  StateDealing,
	}
	for range 2 {
		for _, h := range []*Hand{r.player, r.dealer} {
			c, ok := r.deck.Deal()
			if !ok {
				return nil, ErrDeckExhausted
			}
			h.Add(c)
		}
	}
	r.state = StateInProgress
	log.Debugf("New round: player %v (%d), dealer %v (%d)", r.player, r.player.Value(), r.dealer, r.dealer.Value())
	return r, nil
}

// NewShuffledRound starts a round on a fresh deck shuffled with rnd
// (nil rnd for the global source).
func NewShuffledRound(rnd *rand.Rand) *Round {
	d := NewDeck()
	d.Shuffle(rnd)
	r, err := NewRound(d)
	if err != nil {
		panic("full deck can't be exhausted by the initial deal")
	}
	return r
}

// Player hand. Callers must not Add to it, use Hit.
func (r *Round) Player() *Hand {
	return r.player
}

// Dealer hand.
func (r *Round) Dealer() *Hand {
	return r.dealer
}

// Deck remaining for this round.
func (r *Round) Deck() *Deck {
	return r.deck
}

// Winner marker, NoWinner until the round is over.
func (r *Round) Winner() Winner {
	return r.winner
}

// Blackjack is true when the round ended on a 21.
func (r *Round) Blackjack() bool {
	return r.blackjack
}

// State of the round.
func (r *Round) State() State {
	return r.state
}

// Over is true once a winner (or tie) is decided.
func (r *Round) Over() bool {
	return r.state == StateTerminal
}

func (r *Round) finish(w Winner, blackjack bool) Winner {
	r.winner = w
	r.blackjack = blackjack
	r.state = StateTerminal
	log.S(log.Verbose, "Round over", log.Any("winner", w.String()), log.Any("blackjack", blackjack),
		log.Any("player", r.player.Value()), log.Any("dealer", r.dealer.Value()))
	return w
}

// CheckForBlackjack reports which side currently has 21.
func (r *Round) CheckForBlackjack() (player, dealer bool) {
	return r.player.Is21(), r.dealer.Is21()
}

// SettleBlackjack ends the round right after the deal if either side has 21:
// both is a tie, otherwise the side with 21 wins. Returns NoWinner and leaves
// the round in progress when neither has 21 (or the round is already over).
func (r *Round) SettleBlackjack() Winner {
	if r.state != StateInProgress {
		return NoWinner
	}
	player, dealer := r.CheckForBlackjack()
	switch {
	case player && dealer:
		return r.finish(Tie, true)
	case player:
		return r.finish(PlayerWins, true)
	case dealer:
		return r.finish(DealerWins, true)
	}
	return NoWinner
}

// Hit deals one card to the player. Reaching exactly 21 wins the round,
// going over 21 loses it. Returns the winner marker, NoWinner if the round
// continues.
func (r *Round) Hit() (Winner, error) {
	if r.state != StateInProgress {
		return r.winner, ErrRoundOver
	}
	c, ok := r.deck.Deal()
	if !ok {
		return NoWinner, ErrDeckExhausted
	}
	r.player.Add(c)
	log.Debugf("Hit %v: player now %v (%d)", c, r.player, r.player.Value())
	switch v := r.player.Value(); {
	case v == Target:
		return r.finish(PlayerWins, true), nil
	case v > Target:
		return r.finish(DealerWins, false), nil
	}
	return NoWinner, nil
}

// Stick ends the player's turn and compares the hands. A bust hand loses
// regardless of the other value, otherwise the higher value wins and equal
// values tie. The dealer does not draw.
func (r *Round) Stick() (Winner, error) {
	if r.state != StateInProgress {
		return r.winner, ErrRoundOver
	}
	p, d := r.player.Value(), r.dealer.Value()
	switch {
	case p > Target:
		return r.finish(DealerWins, false), nil
	case d > Target:
		return r.finish(PlayerWins, false), nil
	case p == d:
		return r.finish(Tie, false), nil
	case p > d:
		return r.finish(PlayerWins, false), nil
	default:
		return r.finish(DealerWins, false), nil
	}
}

// TableState returns a snapshot of the round.
func (r *Round) TableState() TableState {
	return TableState{
		PlayerCards: r.player.Cards(),
		DealerCards: r.dealer.Cards(),
		PlayerValue: r.player.Value(),
		DealerValue: r.dealer.Value(),
		Winner:      r.winner,
		Blackjack:   r.blackjack,
		State:       r.state,
	}
}

// PlayerScoreAsText is the "Score: N" line shown under the player's hand.
func (r *Round) PlayerScoreAsText() string {
	return "Score: " + strconv.Itoa(r.player.Value())
}
