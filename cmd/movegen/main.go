// movegen lists the pseudo-legal moves of chess pieces on a board.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lgbarn/movegen-go/internal/api"
	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/output"
	"github.com/lgbarn/movegen-go/internal/processing"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) int {
	opts := &options{}
	fs := newFlagSet(opts, stderr)
	fs.Usage = func() { usage(fs, stderr) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if opts.version {
		fmt.Fprintf(stdout, "movegen version %s\n", programVersion)
		return exitOK
	}
	if opts.envHelp {
		if err := config.EnvUsage(stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
		return exitOK
	}

	// A lone positional argument is taken as the square.
	if opts.square == "" && fs.NArg() == 1 {
		opts.square = fs.Arg(0)
	} else if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments %v\n", fs.Args())
		return exitUsage
	}

	cfg := config.NewConfig()
	cfg.SetOutput(stdout)
	cfg.SetLog(stderr)
	if err := config.LoadEnv(cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	applyFlags(cfg, opts, fs)

	closeLog, err := setupLogFile(cfg, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	defer closeLog()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return exitUsage
	}

	if cfg.Server.Enabled() {
		if err := serve(cfg); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			return exitError
		}
		return exitOK
	}

	if err := query(cfg, opts); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		if errors.Is(err, errors.ErrEmptySquare) {
			return exitError
		}
		return exitUsage
	}
	return exitOK
}

// setupLogFile redirects diagnostics when -l or -L is given. The returned
// function closes any file opened.
func setupLogFile(cfg *config.Config, opts *options) (func(), error) {
	var file *os.File
	var err error

	switch {
	case opts.appendLog != "":
		file, err = os.OpenFile(opts.appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	case opts.logFile != "":
		file, err = os.Create(opts.logFile)
	default:
		return func() {}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	cfg.LogFile = file
	return func() { file.Close() }, nil
}

// loadBoard returns the configured position.
func loadBoard(cfg *config.Config) (*chess.Board, error) {
	if cfg.FEN == "" {
		return engine.NewInitialBoard(), nil
	}
	return engine.LoadFEN(cfg.FEN)
}

// query answers a single -square or -all request, or prints the board.
func query(cfg *config.Config, opts *options) error {
	board, err := loadBoard(cfg)
	if err != nil {
		return err
	}

	writer := output.NewMovesWriter(cfg.OutputFile, cfg.Output.JSONFormat, cfg.Output.NoColor, opts.colour)
	if tw, ok := writer.(*output.TextWriter); ok {
		tw.SetLineLength(cfg.Output.MaxLineLength)
	}

	switch {
	case opts.all:
		filter, ok := processing.ParseFilter(opts.colour)
		if !ok {
			return fmt.Errorf("colour must be white, black or all, got %q", opts.colour)
		}
		start := time.Now()
		table := processing.MoveTable(board, filter, cfg.Workers)
		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "%d pieces with %d workers in %v\n", len(table), cfg.Workers, time.Since(start))
		}
		return writer.WriteTable(board, table)

	case opts.square != "":
		from, err := chess.ParseSquare(opts.square)
		if err != nil {
			return err
		}
		moves, err := engine.GenerateMoves(board, from)
		if err != nil {
			return err
		}
		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "%s on %s: %d moves\n", board.Get(from), from, len(moves))
		}
		return writer.WriteMoves(board, from, moves)

	case opts.plain:
		_, err := io.WriteString(cfg.OutputFile, output.FormatBoard(board))
		return err
	}
	return output.RenderBoard(cfg.OutputFile, board, output.RenderOptions{NoColor: cfg.Output.NoColor})
}

// serve runs the HTTP API until SIGINT or SIGTERM.
func serve(cfg *config.Config) error {
	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(api.NewMovesApi(cfg))

	srv := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "Listening on %s\n", cfg.Server.Listen)
		}
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: movegen [options] [square]\n\n")
	fmt.Fprintf(w, "Lists the squares a chess piece can move to.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nSquares use algebraic names a1-h8. Without -square or -all the board is printed.\n")
	fmt.Fprintf(w, "Every option can also be set with a MOVEGEN_* environment variable; see -env.\n")
}
