package main

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/eval"
	"github.com/lgbarn/chesscore-go/internal/output"
	"github.com/lgbarn/chesscore-go/internal/search"
)

// readPositions reads one FEN per line, skipping blank lines and # comments.
func readPositions(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return fens, nil
}

// processPosition computes the requested reports for one position.
// Move analysis always looks at the given position. When a move is played
// successfully, the remaining reports describe the position after it.
func processPosition(fen string, act actions, searcher *search.Searcher, depth int) *output.Report {
	report := &output.Report{FEN: fen}

	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	if act.analyze != "" {
		analysis, err := searcher.AnalyzeMove(fen, act.analyze, depth)
		if err != nil {
			report.Error = err.Error()
			return report
		}
		report.Analysis = output.NewAnalysisReport(act.analyze, analysis)
	}

	if act.move != "" {
		result, err := engine.PlayMove(fen, act.move)
		report.Play = output.NewPlayReport(act.move, result, err)
		if err != nil {
			report.Error = err.Error()
			return report
		}
		if board, err = engine.NewBoardFromFEN(result.FEN); err != nil {
			report.Error = err.Error()
			return report
		}
	}

	if act.board {
		report.Board = output.Diagram(board)
	}

	if act.legal {
		report.Legal = output.MoveStrings(engine.LegalMoves(board))
	}

	if act.eval {
		report.Eval = &output.EvalReport{
			Score:   eval.Evaluate(board),
			Endgame: eval.IsEndgame(board),
			Status:  engine.Status(board).String(),
			InCheck: engine.IsInCheck(board, board.SideToMove()),
		}
	}

	if act.attacks {
		report.Attacks = output.NewAttacksReport(
			engine.AttackMap(board, chess.White),
			engine.AttackMap(board, chess.Black),
		)
	}

	if act.perft > 0 {
		var split map[string]uint64
		if act.divide {
			split = engine.Divide(board, act.perft)
		}
		report.Perft = output.NewPerftReport(act.perft, engine.Perft(board, act.perft), split)
	}

	if act.search {
		result, err := searcher.Search(board, depth)
		switch {
		case err == nil, errors.Is(err, chesserrors.ErrNoLegalMoves):
			report.Search = output.NewSearchReport(result)
		default:
			report.Error = err.Error()
		}
	}

	return report
}
