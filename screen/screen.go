// Package screen is the full screen (table view) blackjack game: both hands
// drawn as cards, one key press per action.
package screen // import "fortio.org/blackjack/screen"

import (
	"context"
	"errors"
	"fmt"

	"fortio.org/blackjack"
	"fortio.org/blackjack/ansipixels"
	"fortio.org/blackjack/ansipixels/table"
	"fortio.org/blackjack/assets"
	"fortio.org/blackjack/stats"
	"fortio.org/log"
)

const (
	cardBack = "░░░░░"
	// Text cards.
	textCardWidth  = 5
	textCardHeight = 3
	// Image cards, in terminal cells (2 pixels per line).
	imageCardWidth  = 10
	imageCardHeight = 7
)

// Game is the table view state around the current round.
type Game struct {
	AP *ansipixels.AnsiPixels
	// Assets for image cards, nil for text cards.
	Assets *assets.Cache
	// BorderColor sequence for the card borders, "" for none.
	BorderColor string
	NewRound    func() (*blackjack.Round, error)
	// Store records the finished rounds, nil for none.
	Store   stats.Store
	Playing bool

	round    *blackjack.Round
	tally    stats.Tally
	recorded bool
	message  string
}

// Round in play.
func (g *Game) Round() *blackjack.Round {
	return g.round
}

// Tally of the session so far.
func (g *Game) Tally() stats.Tally {
	return g.tally
}

// Banner for the outcome of the round, "" while in progress.
func Banner(w blackjack.Winner) string {
	switch w {
	case blackjack.PlayerWins:
		return "YOU WIN!"
	case blackjack.DealerWins:
		return "DEALER WINS!"
	case blackjack.Tie:
		return "TIE!"
	case blackjack.NoWinner:
	}
	return ""
}

// StartRound deals a new round and settles an initial blackjack.
func (g *Game) StartRound(ctx context.Context) error {
	r, err := g.NewRound()
	if err != nil {
		return err
	}
	g.round = r
	g.recorded = false
	g.message = ""
	if w := r.SettleBlackjack(); w != blackjack.NoWinner {
		g.message = "Blackjack!"
		g.finish(ctx)
	}
	return nil
}

func (g *Game) finish(ctx context.Context) {
	if g.recorded || !g.round.Over() {
		return
	}
	g.recorded = true
	res := stats.ResultOf(g.round)
	g.tally.Add(res)
	if g.Store == nil {
		return
	}
	if err := g.Store.Record(ctx, res); err != nil {
		log.Errf("Error recording round: %v", err)
	}
}

// HandleKey applies one key press. Keys that don't apply to the current
// state are ignored. Sets Playing to false on quit.
func (g *Game) HandleKey(ctx context.Context, key byte) error {
	switch key {
	case 'q', 'Q', 3: // 3 is ^C in raw mode
		g.Playing = false
		return nil
	}
	if g.round.Over() {
		switch key {
		case 'p', 'P', ' ', '\r', '\n':
			return g.StartRound(ctx)
		}
		return nil
	}
	var err error
	switch key {
	case 'h', 'H':
		var w blackjack.Winner
		w, err = g.round.Hit()
		switch w {
		case blackjack.PlayerWins:
			g.message = "21!"
		case blackjack.DealerWins:
			g.message = "Bust!"
		case blackjack.NoWinner, blackjack.Tie:
		}
	case 's', 'S':
		_, err = g.round.Stick()
	default:
		log.Debugf("Ignoring key %q", key)
		return nil
	}
	if err != nil {
		return err
	}
	g.finish(ctx)
	return nil
}

func (g *Game) cardSize() (w, h int) {
	if g.Assets != nil {
		return imageCardWidth, imageCardHeight
	}
	return textCardWidth, textCardHeight
}

// drawCard draws a card with its top left corner at x, y.
func (g *Game) drawCard(x, y int, card blackjack.Card, hidden bool) {
	w, h := g.cardSize()
	if g.BorderColor != "" {
		g.AP.DrawColoredBox(x-1, y-1, w+2, h+2, g.BorderColor, false)
	}
	if g.Assets != nil {
		img, err := g.Assets.Card(card, hidden, w, 2*h)
		if err == nil {
			g.AP.DrawTrueColorImage(x, y, img)
			return
		}
		log.Errf("Card image %v: %v", card, err)
	}
	if hidden {
		for i := range h {
			g.AP.WriteAtStr(x, y+i, ansipixels.WhiteBG+ansipixels.Black+cardBack+ansipixels.Reset)
		}
		return
	}
	color := ansipixels.WhiteBG + ansipixels.Black
	if card.Suit.Red() {
		color = ansipixels.WhiteBG + ansipixels.Red
	}
	rank := card.Rank.String()
	sym := card.Suit.Symbol()
	g.AP.WriteAtStr(x, y, color+sym+"    ")
	if len(rank) == 1 {
		g.AP.WriteAtStr(x, y+1, "  "+rank+"  ")
	} else {
		g.AP.WriteAtStr(x, y+1, " "+rank+"  ")
	}
	g.AP.WriteAtStr(x, y+2, "    "+sym+ansipixels.Reset)
}

func (g *Game) leftMostCardPos(numCards int) int {
	w, _ := g.cardSize()
	width := (w+2)*numCards - 2
	return (g.AP.W - width) / 2
}

// drawHand draws the cards centered on line y, the first one face down
// when hideFirst is set.
func (g *Game) drawHand(y int, cards []blackjack.Card, hideFirst bool) {
	w, _ := g.cardSize()
	x := g.leftMostCardPos(len(cards))
	for i, card := range cards {
		g.drawCard(x+i*(w+2), y, card, hideFirst && i == 0)
	}
}

// visibleDealerValue is the dealer's value counting only the cards shown.
func visibleDealerValue(cards []blackjack.Card, hideFirst bool) int {
	var h blackjack.Hand
	for i, c := range cards {
		if hideFirst && i == 0 {
			continue
		}
		h.Add(c)
	}
	return h.Value()
}

// checkAssets switches to text cards if any of the images is missing or
// can't be decoded.
func (g *Game) checkAssets(cards []blackjack.Card) {
	if g.Assets == nil {
		return
	}
	w, h := g.cardSize()
	for _, c := range cards {
		if _, err := g.Assets.Card(c, false, w, 2*h); err != nil {
			log.Warnf("Falling back to text cards: %v", err)
			g.Assets = nil
			return
		}
	}
	if _, err := g.Assets.Get(assets.BackFileName, w, 2*h); err != nil {
		log.Warnf("Falling back to text cards: %v", err)
		g.Assets = nil
	}
}

func (g *Game) draw() {
	ap := g.AP
	r := g.round
	ts := r.TableState()
	g.checkAssets(append(ts.PlayerCards, ts.DealerCards...))
	hide := !r.Over()
	_, h := g.cardSize()
	ap.StartSyncMode()
	ap.ClearScreen()

	ap.WriteCentered(0, "Dealer's Hand")
	g.drawHand(2, ts.DealerCards, hide)
	playerY := max(h+5, ap.H-h-8)
	ap.WriteCentered(playerY-2, "Your Hand")
	g.drawHand(playerY, ts.PlayerCards, false)
	scoreY := playerY + h + 1
	ap.WriteAtStr(2, scoreY, r.PlayerScoreAsText())
	ap.WriteRight(scoreY, "Dealer: %d  ", visibleDealerValue(ts.DealerCards, hide))

	if banner := Banner(ts.Winner); banner != "" {
		msg := banner
		if g.message != "" {
			msg = g.message + "\n" + banner
		}
		// in between the two hands
		ap.WriteBoxed((h+playerY+1)/2-1, "%s", msg)
	}
	table.WriteTable(ap, scoreY+1, []table.Alignment{
		table.Center, table.Center, table.Center, table.Center, table.Center,
	}, 1, g.tally.Rows(), table.BorderNone)

	g.drawDeckIndicator(r.Deck().Len())
	if r.Over() {
		ap.WriteCentered(ap.H-1, "'p' or space to play again, 'q' to quit")
	} else {
		ap.WriteCentered(ap.H-1, "Press 'h' to hit, 's' to stick, 'q' to quit")
	}
	ap.EndSyncMode()
}

// drawDeckIndicator shows the cards left as a vertical bar on the right
// edge, using half height blocks.
func (g *Game) drawDeckIndicator(left int) {
	ap := g.AP
	ap.WriteRight(0, "%d cards ", left)
	height := 2 * (ap.H - 4) * left / blackjack.DeckSize
	for y := 0; y < height-1; y += 2 {
		ap.MoveCursor(ap.W-1, ap.H-3-y/2)
		ap.WriteRune(ansipixels.FullPixel)
	}
	if height%2 == 1 {
		ap.MoveCursor(ap.W-1, ap.H-3-height/2)
		ap.WriteRune(ansipixels.BottomHalfPixel)
	}
}

// Run is the key loop: draws, waits for a key (or resize) and applies it
// until quit.
func (g *Game) Run(ctx context.Context) error {
	g.Playing = true
	if g.round == nil {
		if err := g.StartRound(ctx); err != nil {
			return err
		}
	}
	for g.Playing {
		g.draw()
		err := g.AP.ReadOrResizeOrSignal()
		if errors.Is(err, ansipixels.ErrSignal) {
			log.Infof("Exiting: %v", err)
			return nil
		}
		if err != nil {
			return err
		}
		if len(g.AP.Data) == 0 {
			continue
		}
		if err = g.HandleKey(ctx, g.AP.Data[0]); err != nil {
			return fmt.Errorf("key %q: %w", g.AP.Data[0], err)
		}
	}
	return nil
}

// RunGame sets up redraw on resize and runs the game, returning the exit code.
func (g *Game) RunGame(ctx context.Context) int {
	ap := g.AP
	defer func() {
		ap.MoveCursor(0, ap.H-1)
		ap.Restore()
	}()
	ap.HideCursor()
	ap.OnResize = func() error {
		if g.round != nil {
			g.draw()
		}
		return nil
	}
	if err := g.Run(ctx); err != nil {
		return log.FErrf("Error: %v", err)
	}
	return 0
}
