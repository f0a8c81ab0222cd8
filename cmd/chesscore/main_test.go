package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/search"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestReadPositions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input", "", nil},
		{"single line", testutil.StartFEN + "\n", []string{testutil.StartFEN}},
		{"comments and blank lines", "# positions\n\n" + testutil.KiwipeteFEN + "\n\n# end\n", []string{testutil.KiwipeteFEN}},
		{"surrounding spaces trimmed", "  " + testutil.StalemateFEN + "  \n", []string{testutil.StalemateFEN}},
		{"no trailing newline", testutil.StartFEN + "\n" + testutil.EndgameFEN, []string{testutil.StartFEN, testutil.EndgameFEN}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readPositions(strings.NewReader(tt.input))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestCollectPositions(t *testing.T) {
	cfg := config.NewConfig()

	t.Run("arguments win over start position", func(t *testing.T) {
		got, err := collectPositions(cfg, []string{testutil.KiwipeteFEN}, strings.NewReader(""))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, []string{testutil.KiwipeteFEN})
	})

	t.Run("start position without arguments", func(t *testing.T) {
		got, err := collectPositions(cfg, nil, strings.NewReader(""))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, []string{cfg.StartFEN})
	})
}

func TestActions(t *testing.T) {
	tests := []struct {
		name string
		act  actions
		want bool
	}{
		{"nothing", actions{}, true},
		{"board only", actions{board: true}, true},
		{"divide without perft", actions{divide: true}, true},
		{"move", actions{move: "e2 e4"}, false},
		{"analyze", actions{analyze: "e2 e4"}, false},
		{"search", actions{search: true}, false},
		{"perft", actions{perft: 1}, false},
		{"legal", actions{legal: true}, false},
		{"eval", actions{eval: true}, false},
		{"attacks", actions{attacks: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.act.none(), tt.want)
		})
	}
}

func TestProcessPosition_InvalidFEN(t *testing.T) {
	report := processPosition("not a fen", actions{search: true}, search.NewSearcher(), 2)

	testutil.AssertContains(t, report.Error, "invalid FEN")
	testutil.AssertTrue(t, report.Search == nil, "no search on a bad position")
}

func TestProcessPosition_Move(t *testing.T) {
	t.Run("legal move analyses the new position", func(t *testing.T) {
		report := processPosition(testutil.StartFEN, actions{move: "e2 e4", legal: true}, search.NewSearcher(), 1)

		testutil.AssertEqual(t, report.Error, "")
		testutil.AssertEqual(t, report.FEN, testutil.StartFEN)
		testutil.AssertEqual(t, report.Play.Outcome, "move made")
		testutil.AssertEqual(t, report.Play.FEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
		testutil.AssertEqual(t, len(report.Legal), 20)
		testutil.AssertEqual(t, report.Legal[0], "a7a5")
	})

	t.Run("mating move", func(t *testing.T) {
		report := processPosition(testutil.BackRankMateFEN, actions{move: "a1a8", eval: true}, search.NewSearcher(), 1)

		testutil.AssertEqual(t, report.Play.Outcome, "checkmate")
		testutil.AssertEqual(t, report.Eval.Status, "checkmate")
		testutil.AssertTrue(t, report.Eval.InCheck, "mated side is in check")
	})

	t.Run("illegal move stops the report", func(t *testing.T) {
		report := processPosition(testutil.StartFEN, actions{move: "e2 e5", legal: true}, search.NewSearcher(), 1)

		testutil.AssertContains(t, report.Error, "illegal move")
		testutil.AssertEqual(t, report.Play.Outcome, "illegal move")
		testutil.AssertEqual(t, report.Play.FEN, testutil.StartFEN)
		testutil.AssertTrue(t, report.Legal == nil, "no legal list after a failed move")
	})
}

func TestProcessPosition_Analyze(t *testing.T) {
	tests := []struct {
		name       string
		act        actions
		wantBest   string
		wantIsBest bool
		wantPlay   string
	}{
		{"best move", actions{analyze: "a1 a8"}, "a1 a8", true, ""},
		{"weaker move", actions{analyze: "h2 h3"}, "a1 a8", false, ""},
		{"analysis before the move is played", actions{analyze: "a1 a8", move: "a1 a8"}, "a1 a8", true, "checkmate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := processPosition(testutil.BackRankMateFEN, tt.act, search.NewSearcher(), 2)

			testutil.AssertEqual(t, report.Error, "")
			testutil.AssertEqual(t, report.Analysis.BestMove, tt.wantBest)
			testutil.AssertEqual(t, report.Analysis.IsBest, tt.wantIsBest)
			testutil.AssertEqual(t, report.Analysis.Score, search.MateScore+1)
			if tt.wantPlay != "" {
				testutil.AssertEqual(t, report.Play.Outcome, tt.wantPlay)
			}
		})
	}

	t.Run("illegal move", func(t *testing.T) {
		report := processPosition(testutil.StartFEN, actions{analyze: "e2 e5"}, search.NewSearcher(), 2)
		testutil.AssertContains(t, report.Error, "illegal move")
		testutil.AssertTrue(t, report.Analysis == nil, "no analysis for an illegal move")
	})
}

func TestProcessPosition_Search(t *testing.T) {
	t.Run("finds mate", func(t *testing.T) {
		report := processPosition(testutil.BackRankMateFEN, actions{search: true}, search.NewSearcher(), 2)

		testutil.AssertEqual(t, report.Error, "")
		testutil.AssertEqual(t, report.Search.BestMove, "a1 a8")
		testutil.AssertEqual(t, report.Search.Score, search.MateScore+1)
		testutil.AssertEqual(t, report.Search.Depth, 2)
	})

	t.Run("no legal moves is not an error", func(t *testing.T) {
		report := processPosition(testutil.StalemateFEN, actions{search: true}, search.NewSearcher(), 2)

		testutil.AssertEqual(t, report.Error, "")
		testutil.AssertEqual(t, report.Search.BestMove, "")
		testutil.AssertEqual(t, report.Search.Status, "stalemate")
	})

	t.Run("bad depth", func(t *testing.T) {
		report := processPosition(testutil.StartFEN, actions{search: true}, search.NewSearcher(), 0)

		testutil.AssertContains(t, report.Error, "invalid search depth")
		testutil.AssertTrue(t, report.Search == nil, "no search section")
	})
}

func TestProcessPosition_Analysis(t *testing.T) {
	act := actions{perft: 2, divide: true, eval: true, attacks: true, board: true}
	report := processPosition(testutil.StartFEN, act, search.NewSearcher(), 1)

	testutil.AssertEqual(t, report.Error, "")
	testutil.AssertEqual(t, report.Perft.Nodes, uint64(400))
	testutil.AssertEqual(t, len(report.Perft.Divide), 20)
	testutil.AssertEqual(t, report.Perft.Divide[0].Move, "a2a3")
	testutil.AssertEqual(t, report.Perft.Divide[0].Nodes, uint64(20))

	testutil.AssertEqual(t, report.Eval.Score, 0)
	testutil.AssertEqual(t, report.Eval.Status, "in progress")
	testutil.AssertFalse(t, report.Eval.Endgame)
	testutil.AssertFalse(t, report.Eval.InCheck)

	testutil.AssertTrue(t, contains(report.Attacks.White, "f3"), "knight covers f3")
	testutil.AssertFalse(t, contains(report.Attacks.White, "e4"))
	testutil.AssertTrue(t, contains(report.Attacks.Black, "c6"), "knight covers c6")

	testutil.AssertContains(t, report.Board, "1  R N B Q K B N R")
}

func TestRun(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithJSONOutput(true).
		WithOutput(&out).
		WithLog(&logs).
		Build()
	logger := newLogger(&logs, 1)

	fens := []string{testutil.StartFEN, "8/8/8/8/8/8/8/8 w - - 0 1"}
	failed := run(cfg, fens, actions{legal: true}, search.NewSearcher(), logger)

	testutil.AssertEqual(t, failed, 1)
	testutil.AssertContains(t, out.String(), `"results"`)
	testutil.AssertContains(t, out.String(), `"b1a3"`)
	testutil.AssertContains(t, logs.String(), "position failed")
}

func TestRun_Text(t *testing.T) {
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&out).Build()

	failed := run(cfg, []string{testutil.BackRankMateFEN}, actions{search: true}, search.NewSearcher(), zerolog.Nop())

	testutil.AssertEqual(t, failed, 0)
	testutil.AssertContains(t, out.String(), "Position: "+testutil.BackRankMateFEN)
	testutil.AssertContains(t, out.String(), "Best move: a1 a8")
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantInfo  bool
		wantDebug bool
	}{
		{"quiet", 0, false, false},
		{"normal", 1, true, false},
		{"verbose", 2, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.verbosity)
			logger.Info().Msg("info line")
			logger.Debug().Msg("debug line")

			testutil.AssertEqual(t, strings.Contains(buf.String(), "info line"), tt.wantInfo)
			testutil.AssertEqual(t, strings.Contains(buf.String(), "debug line"), tt.wantDebug)
		})
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
