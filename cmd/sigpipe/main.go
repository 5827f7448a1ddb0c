package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/noriah/sigpipe"
	"github.com/noriah/sigpipe/dsp/window"
	"github.com/noriah/sigpipe/generator"
	"github.com/noriah/sigpipe/graphic"
	"github.com/noriah/sigpipe/stream"

	"github.com/integrii/flaggy"
)

// AppName is the app name
const AppName = "sigpipe"

// AppDesc is the app description
const AppDesc = "Synthetic signal blocks for whatever reads stdout"

// AppSite is the app website
const AppSite = "https://github.com/noriah/sigpipe"

var version = "unknown"

func main() {
	log.SetFlags(0)

	cfg := newZeroConfig()

	cmds := newCommands(&cfg)
	chk(cmds.parse(&cfg, os.Args[1:]), "failed to parse arguments")

	if cmds.listModes.Used {
		listModes()
		return
	}

	chk(cfg.validate(), "invalid config")

	// Root Context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if cmds.view.Used {
		chk(view(&cfg, ctx), "failed to run view")
		return
	}

	chk(generate(&cfg, ctx), "failed to run sigpipe")
}

// commands is the parser and the subcommands attached to it.
type commands struct {
	parser    *flaggy.Parser
	listModes *flaggy.Subcommand
	view      *flaggy.Subcommand
}

func newCommands(cfg *config) *commands {
	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.AdditionalHelpPrepend = AppSite
	parser.AdditionalHelpAppend = "\nsigpipe [N] [flags]: N is the values per block (default 1024) and must come first"
	parser.Version = version

	listModesCmd := flaggy.NewSubcommand("list-modes")
	listModesCmd.ShortName = "lm"
	listModesCmd.Description = "list all block modes"
	listModesCmd.AdditionalHelpAppend = "\nuse the name after the '-'"

	parser.AttachSubcommand(listModesCmd, 1)

	viewCmd := flaggy.NewSubcommand("view")
	viewCmd.ShortName = "v"
	viewCmd.Description = "draw blocks read from stdin as a waterfall"
	viewCmd.AdditionalHelpAppend = "\npipe sigpipe into it: sigpipe 512 | sigpipe view 512"

	viewCmd.AddPositionalValue(&cfg.viewSize, "N", 1, false, "values per block")
	viewCmd.String(&cfg.palette, "p", "palette", "colour palette ("+paletteNames()+")")
	viewCmd.Int(&cfg.history, "hs", "history", "rows of history kept")
	viewCmd.Int(&cfg.frameRate, "fr", "fps", "frames drawn per second")

	parser.AttachSubcommand(viewCmd, 1)

	parser.String(&cfg.mode, "m", "mode", "block mode ("+strings.Join(generator.GetAllModeNames(), ", ")+")")
	parser.UInt64(&cfg.seed, "s", "seed", "seed for the random source (defaults to the clock)")
	parser.Float64(&cfg.toneFreq, "f", "freq", "tone frequency in cycles per sample")
	parser.Int(&cfg.count, "c", "count", "stop after this many blocks (0 never stops)")
	parser.Int(&cfg.rate, "r", "rate", "blocks per second (0 is as fast as possible)")
	parser.String(&cfg.window, "w", "window", "window for the spectral modes ("+strings.Join(window.Names(), ", ")+")")
	parser.String(&cfg.format, "o", "format", "output format (raw, text)")

	return &commands{
		parser:    parser,
		listModes: listModesCmd,
		view:      viewCmd,
	}
}

// parse takes the root block length off the front of args and hands the
// rest to flaggy. flaggy refuses a positional value at the position the
// subcommands are attached to, so N never reaches it.
func (c *commands) parse(cfg *config, args []string) error {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") && !c.isSubcommand(args[0]) {
		cfg.blockSize = args[0]
		args = args[1:]
	}

	return c.parser.ParseArgs(args)
}

func (c *commands) isSubcommand(arg string) bool {
	for _, sc := range []*flaggy.Subcommand{c.listModes, c.view} {
		if arg == sc.Name || arg == sc.ShortName {
			return true
		}
	}
	return false
}

func listModes() {
	for _, mode := range generator.Modes {
		fmt.Printf("- %-6s %s\n", mode.Name, mode.Description)
	}
}

func generate(cfg *config, ctx context.Context) error {
	stream.IgnoreBrokenPipe()

	sigpipeCfg := sigpipe.Config{
		BlockSize:   cfg.size,
		Mode:        cfg.genMode,
		ToneFreq:    cfg.toneFreq,
		Window:      cfg.winFunc,
		Seed:        cfg.seed,
		Blocks:      cfg.count,
		ProcessRate: cfg.rate,
		Format:      cfg.outFormat,
		Output:      os.Stdout,
	}

	return sigpipe.Run(&sigpipeCfg, ctx)
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}

func paletteNames() string {
	names := make([]string, 0, len(graphic.Palettes))
	for _, p := range graphic.Palettes {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
