// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"io"

	"github.com/lgbarn/movegen-go/internal/config"
)

// options holds parsed command-line flags.
type options struct {
	// Position
	fen    string
	square string

	// Move table
	all    bool
	colour string

	// Output
	jsonOutput bool
	noColor    bool
	plain      bool
	lineLength int

	// Processing
	workers int

	// Server
	listen string

	// Logging
	logFile   string
	appendLog string
	verbosity int
	quiet     bool

	// Other
	envHelp bool
	version bool
}

// newFlagSet registers every flag on a fresh FlagSet writing errors to w.
func newFlagSet(opts *options, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("movegen", flag.ContinueOnError)
	fs.SetOutput(w)

	fs.StringVar(&opts.fen, "fen", "", "Piece placement or full FEN (default: initial position)")
	fs.StringVar(&opts.square, "square", "", "Square to generate moves for, e.g. e2")

	fs.BoolVar(&opts.all, "all", false, "Generate moves for every piece")
	fs.StringVar(&opts.colour, "colour", "all", "With -all: white, black or all")

	fs.BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	fs.BoolVar(&opts.noColor, "nocolor", false, "Disable ANSI colours")
	fs.BoolVar(&opts.plain, "plain", false, "Print the board in framed plain text")
	fs.IntVar(&opts.lineLength, "w", 80, "Maximum line length for move lists")

	fs.IntVar(&opts.workers, "workers", 1, "Worker goroutines for -all")

	fs.StringVar(&opts.listen, "serve", "", "Serve the HTTP API on this address, e.g. :8080")

	fs.StringVar(&opts.logFile, "l", "", "Write diagnostics to this file")
	fs.StringVar(&opts.appendLog, "L", "", "Append diagnostics to this file")
	fs.IntVar(&opts.verbosity, "v", 1, "Verbosity: 0, 1 or 2")
	fs.BoolVar(&opts.quiet, "s", false, "Silent mode (verbosity 0)")

	fs.BoolVar(&opts.envHelp, "env", false, "List recognised environment variables")
	fs.BoolVar(&opts.version, "version", false, "Show version")

	return fs
}

// applyFlags applies explicitly set flags on top of the configuration, so
// flags win over MOVEGEN_* environment variables.
func applyFlags(cfg *config.Config, opts *options, fs *flag.FlagSet) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	applyOutputFlags(cfg, opts, set)

	if set["fen"] {
		cfg.FEN = opts.fen
	}
	if set["workers"] {
		cfg.Workers = opts.workers
	}
	if set["serve"] {
		cfg.Server.Listen = opts.listen
	}
	if set["v"] {
		cfg.Verbosity = opts.verbosity
	}
	if opts.quiet {
		cfg.Verbosity = 0
	}
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config, opts *options, set map[string]bool) {
	if set["json"] {
		cfg.Output.JSONFormat = opts.jsonOutput
	}
	if set["nocolor"] {
		cfg.Output.NoColor = opts.noColor
	}
	if set["w"] {
		cfg.Output.MaxLineLength = opts.lineLength
	}
}
