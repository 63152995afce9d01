//go:build unix

package terminal

import (
	"errors"
	"io"
	"os"
	"syscall"
	"time"

	"fortio.org/log"
	"fortio.org/safecast"
	"golang.org/x/sys/unix"
)

const IsUnix = true

func TimeoutToTimeval(timeout time.Duration) *unix.Timeval {
	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	return &tv
}

// ReadWithTimeout waits up to tv for fd to be readable then reads into buf.
// Returns 0, nil on timeout or when interrupted by a signal (e.g. a resize).
func ReadWithTimeout(fd int, tv *unix.Timeval, buf []byte) (int, error) {
	var readfds unix.FdSet
	readfds.Set(fd)
	n, err := unix.Select(fd+1, &readfds, nil, nil, tv)
	if errors.Is(err, syscall.EINTR) {
		log.LogVf("Interrupted select")
		return 0, nil
	}
	if err != nil {
		log.Errf("Select error: %v", err)
		return 0, err
	}
	if n == 0 {
		return 0, nil // timeout case
	}
	n, err = unix.Read(fd, buf)
	if n == 0 && err == nil {
		err = io.EOF
	}
	return n, err
}

// TimeoutReader reads key presses without blocking for more than the
// timeout so the caller can service resize and interrupt signals.
type TimeoutReader struct {
	fd       int
	tv       *unix.Timeval
	blocking bool // timeout == 0
	ostream  *os.File
}

func NewTimeoutReader(stream *os.File, timeout time.Duration) *TimeoutReader {
	if timeout < 0 {
		panic("Timeout must be greater or equal to 0")
	}
	return &TimeoutReader{
		fd:       safecast.MustConvert[int](stream.Fd()),
		tv:       TimeoutToTimeval(timeout),
		blocking: timeout == 0,
		ostream:  stream,
	}
}

func (tr *TimeoutReader) Read(buf []byte) (int, error) {
	if tr.blocking {
		return tr.ostream.Read(buf)
	}
	tv := *tr.tv // select may update it on linux
	return ReadWithTimeout(tr.fd, &tv, buf)
}

// ChangeTimeout should be called from the same goroutine as Read.
func (tr *TimeoutReader) ChangeTimeout(timeout time.Duration) {
	if tr.blocking && timeout > 0 {
		panic("Cannot change from blocking to non-blocking mode")
	}
	tr.tv = TimeoutToTimeval(timeout)
}
