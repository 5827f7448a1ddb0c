//go:build !windows

package stream

import (
	"os/signal"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

func isBrokenPipe(err error) bool {
	return errors.Is(err, unix.EPIPE)
}

// IgnoreBrokenPipe stops the runtime from killing the process when it
// writes to a closed stdout. The write fails with EPIPE instead.
func IgnoreBrokenPipe() {
	signal.Ignore(unix.SIGPIPE)
}
