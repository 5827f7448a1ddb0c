package sigpipe

import (
	"bytes"
	"context"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/noriah/sigpipe/dsp"
	"github.com/noriah/sigpipe/generator"
	"github.com/noriah/sigpipe/stream"
	"github.com/pkg/errors"
)

// failingWriter accepts ok writes and then fails every write with err.
type failingWriter struct {
	ok    int
	err   error
	calls int
}

func (fw *failingWriter) Write(p []byte) (int, error) {
	fw.calls++
	if fw.calls > fw.ok {
		return 0, fw.err
	}
	return len(p), nil
}

func testConfig(out io.Writer) Config {
	cfg := NewZeroConfig()
	cfg.Seed = 1
	cfg.Output = out
	return cfg
}

func TestRunBlocks(t *testing.T) {
	for _, m := range generator.Modes {
		var buf bytes.Buffer

		cfg := testConfig(&buf)
		cfg.Mode = m.Mode
		cfg.BlockSize = 128
		cfg.Blocks = 3

		if err := Run(&cfg, context.Background()); err != nil {
			t.Fatalf("%s: Run() error = %v", m.Name, err)
		}

		if want := 3 * 128 * 4; buf.Len() != want {
			t.Fatalf("%s: wrote %d bytes, want %d", m.Name, buf.Len(), want)
		}
	}
}

func TestRunDefaultBlockSize(t *testing.T) {
	var implicit, explicit bytes.Buffer

	a := testConfig(&implicit)
	a.Blocks = 2

	b := testConfig(&explicit)
	b.Blocks = 2
	b.BlockSize = 1024

	if err := Run(&a, context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := Run(&b, context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !bytes.Equal(implicit.Bytes(), explicit.Bytes()) {
		t.Fatal("default block size output differs from explicit 1024")
	}
	if implicit.Len() != 2*1024*4 {
		t.Fatalf("wrote %d bytes, want %d", implicit.Len(), 2*1024*4)
	}
}

func TestRunStopsWhenOutputCloses(t *testing.T) {
	for _, m := range generator.Modes {
		for _, closeErr := range []error{io.ErrClosedPipe, errors.Wrap(io.ErrClosedPipe, "pipe")} {
			fw := &failingWriter{ok: 4, err: closeErr}

			cfg := testConfig(fw)
			cfg.Mode = m.Mode
			cfg.BlockSize = 64

			if err := Run(&cfg, context.Background()); err != nil {
				t.Fatalf("%s: Run() error = %v, want nil", m.Name, err)
			}

			if fw.calls != 5 {
				t.Fatalf("%s: %d writes, want 5 (no write after the failure)", m.Name, fw.calls)
			}
		}
	}
}

func TestRunReturnsOtherErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	fw := &failingWriter{ok: 1, err: boom}

	cfg := testConfig(fw)
	cfg.BlockSize = 16

	err := Run(&cfg, context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}
	if fw.calls != 2 {
		t.Fatalf("%d writes, want 2", fw.calls)
	}
}

func TestRunPipeReaderCloses(t *testing.T) {
	pr, pw := io.Pipe()

	cfg := testConfig(pw)
	cfg.BlockSize = 32

	done := make(chan error, 1)
	go func() {
		done <- Run(&cfg, context.Background())
	}()

	rd := stream.NewReader(pr, cfg.BlockSize)
	block := make([]float64, cfg.BlockSize)
	for i := 0; i < 3; i++ {
		if err := rd.ReadBlock(block); err != nil {
			t.Fatalf("ReadBlock() error = %v", err)
		}
	}
	pr.Close()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not stop after the reader closed")
	}
}

func TestRunContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fw := &failingWriter{ok: math.MaxInt32}
	cfg := testConfig(fw)

	if err := Run(&cfg, ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if fw.calls != 0 {
		t.Fatalf("%d writes after cancel, want 0", fw.calls)
	}
}

func TestRunProcessRate(t *testing.T) {
	var buf bytes.Buffer

	cfg := testConfig(&buf)
	cfg.BlockSize = 8
	cfg.Blocks = 4
	cfg.ProcessRate = 100

	start := time.Now()
	if err := Run(&cfg, context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Three ticks separate four blocks.
	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Fatalf("4 blocks at 100/s took %v, want >= 25ms", elapsed)
	}
	if buf.Len() != 4*8*4 {
		t.Fatalf("wrote %d bytes, want %d", buf.Len(), 4*8*4)
	}
}

func TestRunToneReadBack(t *testing.T) {
	var buf bytes.Buffer

	cfg := testConfig(&buf)
	cfg.Blocks = 5

	if err := Run(&cfg, context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	rd := stream.NewReader(&buf, cfg.BlockSize)
	block := make([]float64, cfg.BlockSize)

	for i := 0; i < cfg.Blocks; i++ {
		if err := rd.ReadBlock(block); err != nil {
			t.Fatalf("ReadBlock() error = %v", err)
		}

		if idx, _ := dsp.Peak(block); idx < 9 || idx > 11 {
			t.Fatalf("block %d: peak at bin %d, want ~10", i, idx)
		}
	}

	if err := rd.ReadBlock(block); !errors.Is(err, io.EOF) {
		t.Fatalf("ReadBlock() error = %v, want EOF", err)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cases := map[string]func(*Config){
		"no output":     func(c *Config) { c.Output = nil },
		"zero size":     func(c *Config) { c.BlockSize = 0 },
		"bad mode":      func(c *Config) { c.Mode = generator.Mode(-1) },
		"negative":      func(c *Config) { c.Blocks = -1 },
		"negative rate": func(c *Config) { c.ProcessRate = -1 },
		"rate too high": func(c *Config) { c.ProcessRate = MaxProcessRate + 1 },
	}

	for name, mutate := range cases {
		cfg := testConfig(io.Discard)
		mutate(&cfg)

		if err := Run(&cfg, context.Background()); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestRunTextFormat(t *testing.T) {
	var buf bytes.Buffer

	cfg := testConfig(&buf)
	cfg.Mode = generator.RawNoise
	cfg.BlockSize = 4
	cfg.Blocks = 3
	cfg.Format = stream.FormatText

	if err := Run(&cfg, context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	for _, line := range lines {
		if n := len(strings.Fields(line)); n != 4 {
			t.Fatalf("line %q has %d values, want 4", line, n)
		}
	}
}
