//go:build !unix

package terminal

import (
	"os"
	"time"
)

const IsUnix = false

// TimeoutReader is a plain blocking reader outside of unix, resize
// signals are then only noticed on the next key press.
type TimeoutReader struct {
	file *os.File
}

func NewTimeoutReader(stream *os.File, _ time.Duration) *TimeoutReader {
	return &TimeoutReader{
		file: stream,
	}
}

func (tr *TimeoutReader) Read(buf []byte) (int, error) {
	return tr.file.Read(buf)
}

func (tr *TimeoutReader) ChangeTimeout(_ time.Duration) {}
