package graphic

import (
	"os"
	"testing"
)

func TestNormalizeTerminalTmux(t *testing.T) {
	t.Setenv("TERM", "tmux-256color")
	t.Setenv("TERMINFO", "/outer/terminfo")

	restore, err := normalizeTerminal()
	if err != nil {
		t.Fatalf("normalizeTerminal() error = %v", err)
	}

	if _, ok := os.LookupEnv("TERMINFO"); ok {
		t.Fatal("TERMINFO still set under tmux")
	}

	if err := restore(); err != nil {
		t.Fatalf("restore() error = %v", err)
	}

	if got := os.Getenv("TERMINFO"); got != "/outer/terminfo" {
		t.Fatalf("TERMINFO = %q after restore", got)
	}
}

func TestNormalizeTerminalNoTerm(t *testing.T) {
	t.Setenv("TERM", "")
	os.Unsetenv("TERM")

	restore, err := normalizeTerminal()
	if err != nil {
		t.Fatalf("normalizeTerminal() error = %v", err)
	}

	if got := os.Getenv("TERM"); got != "xterm-256color" {
		t.Fatalf("TERM = %q, want xterm-256color", got)
	}

	restore()

	if _, ok := os.LookupEnv("TERM"); ok {
		t.Fatal("TERM set after restore")
	}
}

func TestNormalizeTerminalNothingToDo(t *testing.T) {
	t.Setenv("TERM", "xterm")
	t.Setenv("TERMINFO", "/usr/share/terminfo")

	restore, err := normalizeTerminal()
	if err != nil {
		t.Fatalf("normalizeTerminal() error = %v", err)
	}
	defer restore()

	if got := os.Getenv("TERMINFO"); got != "/usr/share/terminfo" {
		t.Fatalf("TERMINFO = %q, want untouched", got)
	}
}
