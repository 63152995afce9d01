// Package ansipixels is the full screen ANSI renderer behind the blackjack
// table view: raw mode, cursor moves, text, boxes, images and key input.
package ansipixels // import "fortio.org/blackjack/ansipixels"

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"fortio.org/blackjack/terminal"
	"fortio.org/log"
	"fortio.org/safecast"
	"fortio.org/term"
)

type AnsiPixels struct {
	fd    int
	fdOut int
	Out   *bufio.Writer
	state *term.State
	tr    *terminal.TimeoutReader
	buf   [256]byte
	// Data read by the last ReadOrResizeOrSignal.
	Data []byte
	W, H int // Width and Height
	x, y int // Cursor position
	C    chan os.Signal
	FPS  float64
	// OnResize is called after the size changed (and once by Open).
	OnResize func() error
}

// NewAnsiPixels creates the renderer for stdin/stdout. fps sets how often
// pending signals (resize, ^C) are checked while waiting for a key.
func NewAnsiPixels(fps float64) *AnsiPixels {
	return &AnsiPixels{
		fd:    safecast.MustConvert[int](os.Stdin.Fd()),
		fdOut: safecast.MustConvert[int](os.Stdout.Fd()),
		Out:   bufio.NewWriter(os.Stdout),
		FPS:   fps,
	}
}

// Open switches the terminal to raw mode, reads the size and starts
// listening for resize/interrupt signals.
func (ap *AnsiPixels) Open() (err error) {
	ap.state, err = term.MakeRaw(ap.fd)
	if err != nil {
		return err
	}
	ap.C = make(chan os.Signal, 1)
	signal.Notify(ap.C, signalList...)
	timeout := time.Duration(float64(time.Second) / ap.FPS)
	ap.tr = terminal.NewTimeoutReader(os.Stdin, timeout)
	return ap.GetSize()
}

func (ap *AnsiPixels) GetSize() (err error) {
	ap.W, ap.H, err = term.GetSize(ap.fdOut)
	return
}

// Restore puts the terminal back in its original state.
func (ap *AnsiPixels) Restore() {
	ap.ShowCursor()
	ap.WriteString(Reset)
	ap.Out.Flush()
	if ap.C != nil {
		signal.Stop(ap.C)
	}
	if ap.state == nil {
		return
	}
	err := term.Restore(ap.fd, ap.state)
	if err != nil {
		log.Errf("Error restoring terminal: %v", err)
	}
	ap.state = nil
}

func (ap *AnsiPixels) ClearScreen() {
	_, err := ap.Out.WriteString("\033[2J")
	if err != nil {
		log.Errf("Error clearing screen: %v", err)
	}
}

func (ap *AnsiPixels) MoveCursor(x, y int) {
	ap.x, ap.y = x, y
	_, err := fmt.Fprintf(ap.Out, "\033[%d;%dH", y+1, x+1)
	if err != nil {
		log.Errf("Error moving cursor: %v", err)
	}
}

func (ap *AnsiPixels) WriteString(s string) {
	_, _ = ap.Out.WriteString(s)
}

func (ap *AnsiPixels) WriteRune(r rune) {
	_, _ = ap.Out.WriteRune(r)
}

func (ap *AnsiPixels) Printf(msg string, args ...any) {
	_, _ = fmt.Fprintf(ap.Out, msg, args...)
}

func (ap *AnsiPixels) WriteAtStr(x, y int, msg string) {
	ap.MoveCursor(x, y)
	ap.WriteString(msg)
}

func (ap *AnsiPixels) WriteAt(x, y int, msg string, args ...any) {
	ap.MoveCursor(x, y)
	ap.Printf(msg, args...)
}

// WriteCentered writes the formatted message centered on line y.
func (ap *AnsiPixels) WriteCentered(y int, msg string, args ...any) int {
	s := fmt.Sprintf(msg, args...)
	x := (ap.W - ap.ScreenWidth(s)) / 2
	ap.WriteAtStr(x, y, s)
	return x
}

// WriteRight writes the formatted message right aligned on line y.
func (ap *AnsiPixels) WriteRight(y int, msg string, args ...any) int {
	s := fmt.Sprintf(msg, args...)
	x := ap.W - ap.ScreenWidth(s)
	ap.WriteAtStr(x, y, s)
	return x
}

// WriteBoxed writes the (possibly multi line) message centered around
// line y inside a rounded box.
func (ap *AnsiPixels) WriteBoxed(y int, msg string, args ...any) {
	lines := strings.Split(fmt.Sprintf(msg, args...), "\n")
	width := 0
	for _, l := range lines {
		width = max(width, ap.ScreenWidth(l))
	}
	x := (ap.W - width) / 2
	for i, l := range lines {
		ap.WriteAtStr(x, y+i, l+strings.Repeat(" ", width-ap.ScreenWidth(l)))
	}
	ap.DrawRoundBox(x-1, y-1, width+2, len(lines)+2)
}

// DrawRoundBox draws a w x h rounded box (border included) at x, y.
func (ap *AnsiPixels) DrawRoundBox(x, y, w, h int) {
	ap.drawBox(x, y, w, h, RoundTopLeft, RoundTopRight, RoundBottomLeft, RoundBottomRight)
}

// DrawSquareBox draws a w x h square corner box at x, y.
func (ap *AnsiPixels) DrawSquareBox(x, y, w, h int) {
	ap.drawBox(x, y, w, h, SquareTopLeft, SquareTopRight, SquareBottomLeft, SquareBottomRight)
}

// DrawColoredBox draws a square box using the given color sequence; fill
// also paints the inside border lines (for wide borders).
func (ap *AnsiPixels) DrawColoredBox(x, y, w, h int, color string, fill bool) {
	ap.WriteString(color)
	if fill {
		ap.drawBox(x, y, w, h, " ", " ", " ", " ")
	} else {
		ap.DrawSquareBox(x, y, w, h)
	}
	ap.WriteString(Reset)
}

func (ap *AnsiPixels) drawBox(x, y, w, h int, tl, tr, bl, br string) {
	if w < 2 || h < 2 {
		return
	}
	horizontal := Horizontal
	vertical := Vertical
	if tl == " " {
		horizontal, vertical = " ", " "
	}
	ap.WriteAtStr(x, y, tl+strings.Repeat(horizontal, w-2)+tr)
	for i := 1; i < h-1; i++ {
		ap.WriteAtStr(x, y+i, vertical)
		ap.WriteAtStr(x+w-1, y+i, vertical)
	}
	ap.WriteAtStr(x, y+h-1, bl+strings.Repeat(horizontal, w-2)+br)
}

func (ap *AnsiPixels) ClearEndOfLine() {
	ap.WriteString("\033[K")
}

func (ap *AnsiPixels) HideCursor() {
	ap.WriteString("\033[?25l")
}

func (ap *AnsiPixels) ShowCursor() {
	ap.WriteString("\033[?25h")
}

// StartSyncMode starts a synchronized update (no tearing while redrawing).
func (ap *AnsiPixels) StartSyncMode() {
	ap.WriteString("\033[?2026h")
}

// EndSyncMode ends the synchronized update and flushes the output.
func (ap *AnsiPixels) EndSyncMode() {
	ap.WriteString("\033[?2026l")
	ap.Out.Flush()
}
