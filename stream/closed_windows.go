//go:build windows

package stream

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

func isBrokenPipe(err error) bool {
	return errors.Is(err, windows.ERROR_BROKEN_PIPE) ||
		errors.Is(err, windows.ERROR_NO_DATA)
}

// IgnoreBrokenPipe does nothing on windows, where a closed pipe is
// reported as a write error.
func IgnoreBrokenPipe() {}
