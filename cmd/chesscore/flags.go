package main

import (
	"flag"

	"github.com/lgbarn/chesscore-go/internal/config"
)

// Command-line flags
var (
	// Position input
	fenText   = flag.String("fen", "", "Position to work on, as FEN (default: the initial position)")
	readStdin = flag.Bool("stdin", false, "Read positions from stdin, one FEN per line (# for comments)")

	// Actions
	moveText    = flag.String("move", "", "Play a move given as \"e2 e4\" or \"e7e8n\" and report the outcome")
	analyzeText = flag.String("analyze", "", "Search the position and report whether this move is the best one")
	doSearch    = flag.Bool("search", false, "Search for the best move")
	searchDepth = flag.Int("depth", 0, "Search depth in plies (0 = default)")
	workers     = flag.Int("workers", 0, "Number of root search workers (0 = default)")
	perftDepth  = flag.Int("perft", 0, "Count leaf nodes of the move tree to this depth")
	divide      = flag.Bool("divide", false, "Split the perft count by root move")
	showLegal   = flag.Bool("legal", false, "List legal moves")
	showEval    = flag.Bool("eval", false, "Report the static evaluation and game status")
	showAttacks = flag.Bool("attacks", false, "List squares attacked by each side")
	showBoard   = flag.Bool("board", false, "Print a board diagram")

	// Output options
	jsonOutput = flag.Bool("J", false, "Output reports in JSON format")
	outputFile = flag.String("o", "", "Write output to file")
	logFile    = flag.String("l", "", "Write log to file")
	verbose    = flag.Bool("v", false, "Log search details")
	quiet      = flag.Bool("q", false, "Quiet mode (no log output)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// actions selects which reports are computed for each position.
type actions struct {
	move    string
	analyze string
	search  bool
	perft   int
	divide  bool
	legal   bool
	eval    bool
	attacks bool
	board   bool
}

// none reports whether nothing was asked for beyond the diagram.
func (a actions) none() bool {
	return a.move == "" && a.analyze == "" && !a.search && a.perft <= 0 && !a.legal && !a.eval && !a.attacks
}

// actionsFromFlags collects the requested actions. A bare invocation
// searches.
func actionsFromFlags(cfg *config.Config) actions {
	a := actions{
		move:    *moveText,
		analyze: *analyzeText,
		search:  *doSearch,
		perft:   *perftDepth,
		divide:  *divide,
		legal:   *showLegal,
		eval:    *showEval,
		attacks: *showAttacks,
		board:   cfg.Output.ShowBoard,
	}
	if a.none() {
		a.search = true
	}
	return a
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applySearchFlags(cfg)
	applyOutputFlags(cfg)

	if *fenText != "" {
		cfg.StartFEN = *fenText
	}

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applySearchFlags configures search depth and workers.
func applySearchFlags(cfg *config.Config) {
	if *searchDepth != 0 {
		cfg.Search.Depth = *searchDepth
	}
	if *workers != 0 {
		cfg.Search.Workers = *workers
	}
}

// applyOutputFlags configures the output format.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSON = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
}
