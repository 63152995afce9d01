// Package console is the line oriented blackjack game: it prints the hands
// and prompts for hit/stick then play again answers.
package console // import "fortio.org/blackjack/console"

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"fortio.org/blackjack"
	"fortio.org/blackjack/stats"
	"fortio.org/log"
)

// Command is a player decision.
type Command int

const (
	Hit Command = iota + 1
	Stick
)

func (c Command) String() string {
	switch c {
	case Hit:
		return "hit"
	case Stick:
		return "stick"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

const (
	PromptChoice      = "Please choose [Hit / Stick]: "
	PromptChoiceRetry = "Please enter 'hit' or 'stick' (or H/S) "
	PromptAgain       = "Play Again? [Y/N] "
	PromptAgainRetry  = "Please enter Y or N "
)

// ParseCommand accepts hit, h, stick or s in any case. ok is false for
// anything else, the caller should ask again.
func ParseCommand(line string) (cmd Command, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "hit", "h":
		return Hit, true
	case "stick", "s":
		return Stick, true
	}
	return 0, false
}

// ParseReplay accepts y or n in any case.
func ParseReplay(line string) (again, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y":
		return true, true
	case "n":
		return false, true
	}
	return false, false
}

// LineReader is the input side, implemented by terminal.Terminal.
type LineReader interface {
	SetPrompt(prompt string)
	ReadLine() (string, error)
}

// Session plays rounds until the player declines to play again or the
// input ends.
type Session struct {
	In  LineReader
	Out io.Writer
	// NewRound starts each round, already dealt.
	NewRound func() (*blackjack.Round, error)
	// Store records the finished rounds, nil for none.
	Store stats.Store
}

func (s *Session) println(args ...any) {
	_, _ = fmt.Fprintln(s.Out, args...)
}

// ask prompts until parse accepts the answer.
func ask[T any](ctx context.Context, s *Session, prompt, retry string, parse func(string) (T, bool)) (T, error) {
	var zero T
	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		s.In.SetPrompt(prompt)
		line, err := s.In.ReadLine()
		if err != nil {
			return zero, err
		}
		if v, ok := parse(line); ok {
			return v, nil
		}
		log.Debugf("Invalid answer %q", line)
		prompt = retry
	}
}

func (s *Session) showPlayer(h *blackjack.Hand) {
	for _, c := range h.Cards() {
		s.println(c)
	}
	s.println("Value:", h.Value())
}

func (s *Session) showDealer(h *blackjack.Hand) {
	s.println("Hidden")
	s.println(h.Cards()[1])
}

func (s *Session) showBlackjack(w blackjack.Winner) {
	switch w {
	case blackjack.Tie:
		s.println("Both players have blackjack! Draw!")
	case blackjack.PlayerWins:
		s.println("You have blackjack! You win!")
	case blackjack.DealerWins:
		s.println("Dealer has blackjack! Dealer wins!")
	case blackjack.NoWinner:
	}
}

func (s *Session) showFinal(r *blackjack.Round) {
	s.println("Final Results")
	s.println("Your hand:", r.Player().Value())
	s.println("Dealer's hand:", r.Dealer().Value())
	switch r.Winner() {
	case blackjack.PlayerWins:
		s.println("You win!")
	case blackjack.DealerWins:
		s.println("Dealer wins!")
	case blackjack.Tie:
		s.println("Draw!")
	case blackjack.NoWinner:
	}
}

// PlayRound plays one round to its end.
func (s *Session) PlayRound(ctx context.Context, r *blackjack.Round) error {
	s.println("Your hand is:")
	s.showPlayer(r.Player())
	s.println()
	s.println("Dealer's hand is:")
	s.showDealer(r.Dealer())
	if w := r.SettleBlackjack(); w != blackjack.NoWinner {
		s.showBlackjack(w)
		return nil
	}
	for !r.Over() {
		cmd, err := ask(ctx, s, PromptChoice, PromptChoiceRetry, ParseCommand)
		if err != nil {
			return err
		}
		if cmd == Stick {
			if _, err = r.Stick(); err != nil {
				return err
			}
			s.showFinal(r)
			return nil
		}
		w, err := r.Hit()
		if err != nil {
			return err
		}
		s.showPlayer(r.Player())
		switch w {
		case blackjack.DealerWins:
			s.println("You have lost!")
		case blackjack.PlayerWins:
			s.showBlackjack(w)
		case blackjack.NoWinner, blackjack.Tie:
		}
	}
	return nil
}

func (s *Session) record(ctx context.Context, r *blackjack.Round) {
	if s.Store == nil {
		return
	}
	if err := s.Store.Record(ctx, stats.ResultOf(r)); err != nil {
		log.Errf("Error recording round: %v", err)
	}
}

// Run plays rounds until the player answers n, the input ends (EOF, which
// is not an error) or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	if errors.Is(err, io.EOF) {
		log.LogVf("EOF, ending session")
		s.println()
		err = nil
	}
	if err == nil {
		s.println("Thanks for playing!")
		if s.Store != nil {
			if t, terr := s.Store.Totals(ctx); terr == nil {
				s.println(t)
			}
		}
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	for {
		r, err := s.NewRound()
		if err != nil {
			return err
		}
		if err = s.PlayRound(ctx, r); err != nil {
			return err
		}
		s.record(ctx, r)
		again, err := ask(ctx, s, PromptAgain, PromptAgainRetry, ParseReplay)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
