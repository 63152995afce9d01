// Package terminal is the line oriented input side of the console game:
// prompt, line editing and command history on top of fortio.org/term.
package terminal // import "fortio.org/blackjack/terminal"

import (
	"bufio"
	"errors"
	"io"
	"os"
	"slices"
	"strconv"

	"fortio.org/log"
	"fortio.org/safecast"
	"fortio.org/term"
)

// Terminal reads prompted lines from stdin (raw mode when it's a tty) and
// writes to Out.
type Terminal struct {
	fd          int
	oldState    *term.State
	term        *term.Terminal
	Out         io.Writer
	historyFile string
	capacity    int
}

// Open opens stdin as a terminal, do `defer t.Close()`
// to restore the terminal to its original state upon exit.
func Open() (*Terminal, error) {
	rw := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	t := &Terminal{
		fd: safecast.MustConvert[int](os.Stdin.Fd()),
	}
	t.term = term.NewTerminal(rw, "")
	t.Out = t.term
	if !t.IsTerminal() {
		t.Out = os.Stdout // no need to add \r for non raw mode.
		return t, nil
	}
	var err error
	t.oldState, err = term.MakeRaw(t.fd)
	if err != nil {
		return nil, err
	}
	t.term.SetBracketedPasteMode(true)
	t.capacity = term.DefaultHistoryEntries
	return t, nil
}

func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

// LoggerSetup makes the fortio logger write through the terminal
// so the prompt is preserved and \n get their \r in raw mode.
func (t *Terminal) LoggerSetup() {
	colormode := log.ColorMode()
	log.SetOutput(&CRLFWriter{Out: os.Stderr})
	log.Config.ForceColor = colormode
	log.SetColorMode()
}

// SetHistoryFile loads previous answers (hit, stick, y...) from f and
// saves them back on Close.
func (t *Terminal) SetHistoryFile(f string) error {
	if f == "" {
		log.LogVf("No history file specified")
		return nil
	}
	if t.capacity <= 0 || !t.IsTerminal() {
		log.Infof("Not a terminal, not using history file %s", f)
		return nil
	}
	t.historyFile = f
	entries, err := readOrCreateHistory(f)
	if err != nil {
		t.historyFile = "" // so we don't try to save during defer'ed close if we can't read
		return err
	}
	start := max(0, len(entries)-t.capacity)
	log.LogVf("Loaded %d history entries from %s", len(entries)-start, f)
	for _, e := range entries[start:] {
		t.term.AddToHistory(e)
	}
	return nil
}

// History returns the current history, most recent first.
func (t *Terminal) History() []string {
	return t.term.History()
}

func readOrCreateHistory(f string) ([]string, error) {
	h, err := os.OpenFile(f, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		log.Errf("Error opening history file %s: %v", f, err)
		return nil, err
	}
	defer h.Close()
	return readHistory(h, f)
}

func readHistory(r io.Reader, f string) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rl := scanner.Text()
		l, err := strconv.Unquote(rl)
		if err != nil {
			log.Errf("Error unquoting history file %s for %q: %v", f, rl, err)
			return nil, err
		}
		lines = append(lines, l)
	}
	if err := scanner.Err(); err != nil {
		log.Errf("Error reading history file %s: %v", f, err)
		return nil, err
	}
	return lines, nil
}

func writeHistory(w io.Writer, h []string) error {
	for _, l := range h {
		if _, err := io.WriteString(w, strconv.Quote(l)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// We don't return any error because this is ran through a defer at the end of the program.
// So logging errors is the best thing we can do.
func saveHistory(f string, h []string) {
	hf, err := os.OpenFile(f, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o600)
	if err != nil {
		log.Errf("Error opening history file %s: %v", f, err)
		return
	}
	defer hf.Close()
	if err = writeHistory(hf, h); err != nil {
		log.Errf("Error writing history file %s: %v", f, err)
	}
}

// Close restores the terminal and saves the history if configured.
func (t *Terminal) Close() error {
	if t.oldState == nil {
		return nil
	}
	t.term.SetPrompt("")
	err := term.Restore(t.fd, t.oldState)
	t.oldState = nil
	t.Out = os.Stdout
	if t.historyFile == "" {
		return err
	}
	h := t.term.History()
	slices.Reverse(h)
	if extra := len(h) - t.capacity; extra > 0 {
		h = h[extra:]
	}
	log.LogVf("Saving history (%d answers) to %s", len(h), t.historyFile)
	saveHistory(t.historyFile, h)
	return err
}

// ReadLine reads one line using the current prompt.
func (t *Terminal) ReadLine() (string, error) {
	c, err := t.term.ReadLine()
	// Not an error worth propagating, just the end of a paste.
	if errors.Is(err, term.ErrPasteIndicator) {
		return c, nil
	}
	return c, err
}

func (t *Terminal) SetPrompt(s string) {
	t.term.SetPrompt(s)
}
