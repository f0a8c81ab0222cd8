// chesscore plays, generates and searches chess moves for FEN positions.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/output"
	"github.com/lgbarn/chesscore-go/internal/search"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogFile, cfg.Verbosity)

	fens, err := collectPositions(cfg, flag.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading positions: %v\n", err)
		os.Exit(1)
	}

	searcher := search.NewSearcher(
		search.WithWorkers(cfg.Search.Workers),
		search.WithLogger(logger),
	)

	failed := run(cfg, fens, actionsFromFlags(cfg), searcher, logger)
	if failed > 0 {
		os.Exit(1)
	}
}

// run writes one report per position and returns how many of them failed.
func run(cfg *config.Config, fens []string, act actions, searcher *search.Searcher, logger zerolog.Logger) int {
	writer := output.NewWriter(cfg.OutputFile, cfg)
	defer writer.Close() //nolint:errcheck // G104: flushed explicitly below

	failed := 0
	for _, fen := range fens {
		report := processPosition(fen, act, searcher, cfg.Search.Depth)
		if report.Error != "" {
			failed++
			logger.Warn().Str("fen", fen).Str("error", report.Error).Msg("position failed")
		}
		if err := writer.WriteReport(report); err != nil {
			logger.Error().Err(err).Msg("write report")
			return failed + 1
		}
	}

	if err := writer.Flush(); err != nil {
		logger.Error().Err(err).Msg("flush output")
		return failed + 1
	}

	logger.Debug().Int("positions", len(fens)).Int("failed", failed).Msg("done")
	return failed
}

// collectPositions gathers the positions to work on: stdin lines with
// -stdin, otherwise the positional arguments, otherwise the configured
// start position.
func collectPositions(cfg *config.Config, args []string, stdin io.Reader) ([]string, error) {
	if *readStdin {
		return readPositions(stdin)
	}
	if len(args) > 0 {
		return args, nil
	}
	return []string{cfg.StartFEN}, nil
}

// newLogger builds a console logger on w. Verbosity 0 silences it and
// verbosity 2 adds search detail.
func newLogger(w io.Writer, verbosity int) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case verbosity <= 0:
		level = zerolog.Disabled
	case verbosity >= 2:
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().
		Logger()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile) //nolint:gosec // G304: CLI tool writes user-specified files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesscore [options] [fen...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays, generates and searches chess moves for FEN positions.\n")
	fmt.Fprintf(os.Stderr, "Without an action flag the best move is searched.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove formats (-move, -analyze):\n")
	fmt.Fprintf(os.Stderr, "  e2 e4   From and to squares separated by a space\n")
	fmt.Fprintf(os.Stderr, "  e2e4    UCI form\n")
	fmt.Fprintf(os.Stderr, "  e7e8n   UCI form with promotion piece (default queen)\n")
}
