package ansipixels

import (
	"errors"
	"fmt"

	"fortio.org/log"
	"github.com/rivo/uniseg"
)

// ErrSignal is returned (wrapped) by ReadOrResizeOrSignal for ^C/TERM signals.
var ErrSignal = errors.New("signal received")

// ReadOrResizeOrSignal blocks until some input is available in Data or a
// signal arrives. Resize signals update W/H and call OnResize, then keep waiting.
func (ap *AnsiPixels) ReadOrResizeOrSignal() error {
	ap.Data = nil
	for {
		select {
		case s := <-ap.C:
			if !ap.IsResizeSignal(s) {
				log.LogVf("Signal %v received", s)
				return fmt.Errorf("%w: %v", ErrSignal, s)
			}
			if err := ap.GetSize(); err != nil {
				return err
			}
			log.LogVf("Resized to %dx%d", ap.W, ap.H)
			if ap.OnResize != nil {
				if err := ap.OnResize(); err != nil {
					return err
				}
			}
		default:
			n, err := ap.tr.Read(ap.buf[:])
			if err != nil {
				return err
			}
			if n > 0 {
				ap.Data = ap.buf[:n]
				return nil
			}
		}
	}
}

// AnsiClean removes the ANSI escape sequences (colors, cursor moves...)
// from the input. Unterminated sequences at the end are dropped too.
func AnsiClean(str []byte) []byte {
	res := make([]byte, 0, len(str))
	inEscape := false
	inCSI := false
	for _, b := range str {
		switch {
		case b == 0x1b:
			inEscape = true
			inCSI = false
		case inEscape && !inCSI:
			if b == '[' {
				inCSI = true
				continue
			}
			inEscape = false // 2 bytes sequence, e.g. \x1b7
		case inCSI:
			if b >= 0x40 && b <= 0x7e { // final byte
				inEscape = false
				inCSI = false
			}
		default:
			res = append(res, b)
		}
	}
	return res
}

// ScreenWidth is the number of terminal columns s takes, ignoring escape
// sequences and counting wide runes (emojis) as 2.
func (ap *AnsiPixels) ScreenWidth(s string) int {
	return uniseg.StringWidth(string(AnsiClean([]byte(s))))
}
