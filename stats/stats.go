// Package stats keeps the session tally (wins, losses, ties) and optionally
// records every finished round in a SQLite database.
package stats // import "fortio.org/blackjack/stats"

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fortio.org/blackjack"
)

// Result of one finished round.
type Result struct {
	ID          string
	PlayedAt    time.Time
	Winner      blackjack.Winner
	Blackjack   bool
	PlayerValue int
	DealerValue int
	PlayerCards []blackjack.Card
	DealerCards []blackjack.Card
}

// ResultOf extracts the result of a round, which should be over.
func ResultOf(r *blackjack.Round) Result {
	ts := r.TableState()
	return Result{
		PlayedAt:    time.Now(),
		Winner:      ts.Winner,
		Blackjack:   ts.Blackjack,
		PlayerValue: ts.PlayerValue,
		DealerValue: ts.DealerValue,
		PlayerCards: ts.PlayerCards,
		DealerCards: ts.DealerCards,
	}
}

// Tally of the rounds played, from the player's point of view.
type Tally struct {
	Rounds     int
	Wins       int
	Losses     int
	Ties       int
	Blackjacks int
}

// Add counts one more result. Rounds without a winner are ignored.
func (t *Tally) Add(res Result) {
	switch res.Winner {
	case blackjack.PlayerWins:
		t.Wins++
	case blackjack.DealerWins:
		t.Losses++
	case blackjack.Tie:
		t.Ties++
	case blackjack.NoWinner:
		return
	}
	t.Rounds++
	if res.Blackjack {
		t.Blackjacks++
	}
}

func (t Tally) String() string {
	return fmt.Sprintf("Rounds: %d, Wins: %d, Losses: %d, Ties: %d, Blackjacks: %d",
		t.Rounds, t.Wins, t.Losses, t.Ties, t.Blackjacks)
}

// Rows is the tally as a header and a value row, for table rendering.
func (t Tally) Rows() [][]string {
	return [][]string{
		{"Rounds", "Wins", "Losses", "Ties", "Blackjacks"},
		{
			fmt.Sprint(t.Rounds), fmt.Sprint(t.Wins), fmt.Sprint(t.Losses),
			fmt.Sprint(t.Ties), fmt.Sprint(t.Blackjacks),
		},
	}
}

// Store records results and reports totals.
type Store interface {
	Record(ctx context.Context, res Result) error
	Totals(ctx context.Context) (Tally, error)
	Close() error
}

// Memory is the default Store: only the current session's tally.
type Memory struct {
	tally Tally
}

func (m *Memory) Record(_ context.Context, res Result) error {
	m.tally.Add(res)
	return nil
}

func (m *Memory) Totals(_ context.Context) (Tally, error) {
	return m.tally, nil
}

func (m *Memory) Close() error {
	return nil
}

func cardsText(cards []blackjack.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, c.Short())
	}
	return strings.Join(parts, " ")
}
