package stream

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// IsClosed reports whether err means the other end of the stream has gone
// away, as opposed to some other failure.
func IsClosed(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, io.ErrClosedPipe),
		errors.Is(err, os.ErrClosed):
		return true
	}

	return isBrokenPipe(err)
}
