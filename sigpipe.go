// Package sigpipe streams synthetic signal blocks to a writer until the
// reader goes away.
package sigpipe

import (
	"context"
	"time"

	"github.com/noriah/sigpipe/generator"
	"github.com/noriah/sigpipe/stream"
	"github.com/noriah/sigpipe/synth"
	"github.com/pkg/errors"
)

// Run generates blocks and writes them to cfg.Output.
//
// It returns nil when the output is closed by its reader, when cfg.Blocks
// blocks have been written or when ctx is done. No further write is made
// after a write fails.
func Run(cfg *Config, ctx context.Context) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	gen, err := generator.New(cfg.generatorConfig(), synth.New(cfg.Seed))
	if err != nil {
		return err
	}

	out, err := stream.NewBlockWriter(cfg.Output, cfg.BlockSize, cfg.Format)
	if err != nil {
		return err
	}

	block := make([]float32, cfg.BlockSize)

	var tick <-chan time.Time
	if cfg.ProcessRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.ProcessRate))
		defer ticker.Stop()

		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := gen.Next(block); err != nil {
			return errors.Wrap(err, "failed to generate block")
		}

		if err := out.WriteBlock(block); err != nil {
			if stream.IsClosed(err) {
				return nil
			}

			return err
		}

		if cfg.Blocks > 0 && out.Blocks() >= cfg.Blocks {
			return nil
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		}
	}
}
