//go:build !unix

package ansipixels

import (
	"os"
	"syscall"
)

var signalList = []os.Signal{os.Interrupt, syscall.SIGTERM}

// IsResizeSignal is always false without SIGWINCH, the size is only read on Open.
func (ap *AnsiPixels) IsResizeSignal(_ os.Signal) bool { return false }
