package stream

import (
	"bytes"
	"io"
	"testing"
)

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTextWriter(&buf, 3, 2)

	if err := tw.WriteBlock([]float32{1, -0.5, 12.345}); err != nil {
		t.Fatalf("WriteBlock() error = %v", err)
	}
	if err := tw.WriteBlock([]float32{0, 0, 0}); err != nil {
		t.Fatalf("WriteBlock() error = %v", err)
	}

	want := "1.00 -0.50 12.35\n0.00 0.00 0.00\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
	if tw.Blocks() != 2 {
		t.Fatalf("Blocks() = %d, want 2", tw.Blocks())
	}
}

func TestTextWriterClosed(t *testing.T) {
	pr, pw := io.Pipe()
	pr.Close()

	tw := NewTextWriter(pw, 1, 1)
	if err := tw.WriteBlock([]float32{1}); !IsClosed(err) {
		t.Fatalf("WriteBlock() error = %v, want closed", err)
	}
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{"raw": FormatRaw, "TEXT": FormatText} {
		got, err := ParseFormat(name)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error = %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseFormat(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := ParseFormat("csv"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewBlockWriter(t *testing.T) {
	if bw, err := NewBlockWriter(io.Discard, 4, FormatRaw); err != nil {
		t.Fatalf("NewBlockWriter() error = %v", err)
	} else if _, ok := bw.(*Writer); !ok {
		t.Fatalf("raw writer is %T", bw)
	}

	if bw, err := NewBlockWriter(io.Discard, 4, FormatText); err != nil {
		t.Fatalf("NewBlockWriter() error = %v", err)
	} else if _, ok := bw.(*TextWriter); !ok {
		t.Fatalf("text writer is %T", bw)
	}

	if _, err := NewBlockWriter(io.Discard, 4, Format(9)); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
