package graphic

import (
	"os"
	"strings"
)

// envFix changes one environment variable when apply says so.
type envFix struct {
	name  string
	apply func(term string) bool
	value string
	unset bool
}

// envFixes are the environment changes termbox needs to start cleanly.
var envFixes = []envFix{
	// termbox fails on tmux when TERMINFO points at the outer terminal.
	{
		name:  "TERMINFO",
		apply: func(term string) bool { return strings.HasPrefix(term, "tmux") },
		unset: true,
	},
	// with no TERM termbox cannot pick a terminfo entry at all.
	{
		name:  "TERM",
		apply: func(term string) bool { return term == "" },
		value: "xterm-256color",
	},
}

// normalizeTerminal applies envFixes and returns a function putting every
// variable it touched back the way it was.
func normalizeTerminal() (func() error, error) {
	term := os.Getenv("TERM")

	var undo []func() error

	restore := func() error {
		var first error
		for i := len(undo) - 1; i >= 0; i-- {
			if err := undo[i](); err != nil && first == nil {
				first = err
			}
		}
		return first
	}

	for _, fix := range envFixes {
		if !fix.apply(term) {
			continue
		}

		name := fix.name
		prev, had := os.LookupEnv(name)

		var err error
		if fix.unset {
			err = os.Unsetenv(name)
		} else {
			err = os.Setenv(name, fix.value)
		}

		if err != nil {
			restore()
			return nil, err
		}

		undo = append(undo, func() error {
			if !had {
				return os.Unsetenv(name)
			}
			return os.Setenv(name, prev)
		})
	}

	return restore, nil
}
