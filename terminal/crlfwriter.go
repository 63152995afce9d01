package terminal

import (
	"bytes"
	"io"
)

// CRLFWriter turns \n into \r\n, needed for output while the tty is in raw mode.
type CRLFWriter struct {
	// Out is the underlying writer to write to.
	Out io.Writer
}

var (
	lf   = []byte{'\n'}
	crlf = []byte{'\r', '\n'}
)

// Write does a single write to Out and reports the input length on success.
func (w *CRLFWriter) Write(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	out := buf
	if bytes.IndexByte(buf, '\n') >= 0 {
		out = bytes.ReplaceAll(buf, lf, crlf)
	}
	n, err := w.Out.Write(out)
	if err != nil {
		// Can't map back exactly with the added \r, at most the input.
		return min(n, len(buf)), err
	}
	if flusher, ok := w.Out.(interface{ Flush() error }); ok {
		err = flusher.Flush()
	}
	return len(buf), err
}
