package console_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"fortio.org/blackjack"
	"fortio.org/blackjack/console"
	"fortio.org/blackjack/stats"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		cmd   console.Command
		ok    bool
	}{
		{"hit", console.Hit, true},
		{"H", console.Hit, true},
		{" HiT ", console.Hit, true},
		{"stick", console.Stick, true},
		{"s", console.Stick, true},
		{"STICK", console.Stick, true},
		{"", 0, false},
		{"stand", 0, false},
		{"hits", 0, false},
		{"y", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, ok := console.ParseCommand(tt.input)
			if cmd != tt.cmd || ok != tt.ok {
				t.Errorf("ParseCommand(%q) = %v, %v; want %v, %v", tt.input, cmd, ok, tt.cmd, tt.ok)
			}
		})
	}
}

func TestParseReplay(t *testing.T) {
	tests := []struct {
		input     string
		again, ok bool
	}{
		{"y", true, true},
		{"Y", true, true},
		{"n", false, true},
		{"N ", false, true},
		{"yes", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			again, ok := console.ParseReplay(tt.input)
			if again != tt.again || ok != tt.ok {
				t.Errorf("ParseReplay(%q) = %v, %v; want %v, %v", tt.input, again, ok, tt.again, tt.ok)
			}
		})
	}
}

// scripted answers lines in order, then io.EOF, and records the prompts.
type scripted struct {
	lines   []string
	prompt  string
	prompts []string
}

func (s *scripted) SetPrompt(p string) {
	s.prompt = p
}

func (s *scripted) ReadLine() (string, error) {
	s.prompts = append(s.prompts, s.prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	l := s.lines[0]
	s.lines = s.lines[1:]
	return l, nil
}

func c(r blackjack.Rank, s blackjack.Suit) blackjack.Card {
	return blackjack.Card{Suit: s, Rank: r}
}

// rounds returns a NewRound that plays the given decks in order.
func rounds(t *testing.T, decks ...[]blackjack.Card) func() (*blackjack.Round, error) {
	t.Helper()
	return func() (*blackjack.Round, error) {
		if len(decks) == 0 {
			t.Fatalf("no more decks")
		}
		d := blackjack.NewDeckFrom(decks[0]...)
		decks = decks[1:]
		return blackjack.NewRound(d)
	}
}

var (
	// player A K = 21, dealer 9 8
	playerBlackjack = []blackjack.Card{
		c(blackjack.Ace, blackjack.Spades), c(blackjack.Nine, blackjack.Hearts),
		c(blackjack.King, blackjack.Spades), c(blackjack.Eight, blackjack.Hearts),
		c(blackjack.Two, blackjack.Clubs),
	}
	// player 10 8 = 18, dealer 10 7 = 17, then 5 6 to hit
	stick18 = []blackjack.Card{
		c(blackjack.Ten, blackjack.Spades), c(blackjack.Ten, blackjack.Hearts),
		c(blackjack.Eight, blackjack.Spades), c(blackjack.Seven, blackjack.Hearts),
		c(blackjack.Five, blackjack.Clubs), c(blackjack.Six, blackjack.Clubs),
		c(blackjack.Two, blackjack.Clubs),
	}
)

func TestInitialBlackjackNoPrompt(t *testing.T) {
	in := &scripted{lines: []string{"n"}}
	var out strings.Builder
	store := &stats.Memory{}
	s := &console.Session{In: in, Out: &out, NewRound: rounds(t, playerBlackjack), Store: store}
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(in.prompts) != 1 || in.prompts[0] != console.PromptAgain {
		t.Errorf("only the play again prompt expected, got %q", in.prompts)
	}
	got := out.String()
	for _, want := range []string{
		"Your hand is:\nA of Spades\nK of Spades\nValue: 21\n\nDealer's hand is:\nHidden\n8 of Hearts\n",
		"You have blackjack! You win!\n",
		"Thanks for playing!\n",
		"Rounds: 1, Wins: 1, Losses: 0, Ties: 0, Blackjacks: 1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestStickAfterRetries(t *testing.T) {
	in := &scripted{lines: []string{"what", "", "S", "maybe", "N"}}
	var out strings.Builder
	s := &console.Session{In: in, Out: &out, NewRound: rounds(t, stick18)}
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{
		console.PromptChoice, console.PromptChoiceRetry, console.PromptChoiceRetry,
		console.PromptAgain, console.PromptAgainRetry,
	}
	if strings.Join(in.prompts, "|") != strings.Join(want, "|") {
		t.Errorf("prompts %q, want %q", in.prompts, want)
	}
	if !strings.Contains(out.String(), "Final Results\nYour hand: 18\nDealer's hand: 17\nYou win!\n") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestHitUntilBustThenReplay(t *testing.T) {
	in := &scripted{lines: []string{"h", "hit", "y", "s", "n"}}
	var out strings.Builder
	store := &stats.Memory{}
	s := &console.Session{In: in, Out: &out, NewRound: rounds(t, stick18, stick18), Store: store}
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	// 18 + 5 = 23 busts on the first hit, so the second "hit" answers the replay
	// prompt: invalid, then y.
	if !strings.Contains(got, "5 of Clubs\nValue: 23\nYou have lost!\n") {
		t.Errorf("missing bust:\n%s", got)
	}
	if strings.Count(got, "Your hand is:") != 2 {
		t.Errorf("expected 2 rounds:\n%s", got)
	}
	totals, _ := store.Totals(context.Background())
	want := stats.Tally{Rounds: 2, Wins: 1, Losses: 1}
	if totals != want {
		t.Errorf("tally %+v, want %+v", totals, want)
	}
}

func TestEOFEndsCleanly(t *testing.T) {
	in := &scripted{}
	var out strings.Builder
	s := &console.Session{In: in, Out: &out, NewRound: rounds(t, stick18)}
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("EOF should not be an error: %v", err)
	}
	if !strings.HasSuffix(out.String(), "Thanks for playing!\n") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out strings.Builder
	s := &console.Session{In: &scripted{lines: []string{"s"}}, Out: &out, NewRound: rounds(t, stick18)}
	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDeckErrorPropagates(t *testing.T) {
	s := &console.Session{
		In:  &scripted{},
		Out: io.Discard,
		NewRound: func() (*blackjack.Round, error) {
			return blackjack.NewRound(blackjack.NewDeckFrom(c(blackjack.Ace, blackjack.Spades)))
		},
	}
	if err := s.Run(context.Background()); !errors.Is(err, blackjack.ErrDeckExhausted) {
		t.Errorf("expected ErrDeckExhausted, got %v", err)
	}
}
