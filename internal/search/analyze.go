package search

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Analysis compares a played move with the search's choice in the
// position it was played from.
type Analysis struct {
	Played chess.Move
	Best   Result
	IsBest bool
}

// AnalyzeMove analyses a move with a default Searcher.
func AnalyzeMove(fen, moveText string, depth int) (Analysis, error) {
	return NewSearcher().AnalyzeMove(fen, moveText, depth)
}

// AnalyzeMove searches the position before moveText is played and reports
// whether the move matches the best move found. The move must be legal in
// that position; otherwise the error wraps errors.ErrIllegalMove.
func (s *Searcher) AnalyzeMove(fen, moveText string, depth int) (Analysis, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return Analysis{}, err
	}

	played, err := chess.ParseMove(moveText)
	if err != nil {
		return Analysis{}, fmt.Errorf("%w: %w", errors.ErrIllegalMove, err)
	}
	if err := engine.ApplyMove(board.Copy(), played); err != nil {
		return Analysis{}, err
	}

	best, err := s.Search(board, depth)
	if err != nil {
		return Analysis{}, err
	}

	return Analysis{
		Played: played,
		Best:   best,
		IsBest: sameMove(board, played, best.Move),
	}, nil
}

// sameMove compares a played move with a generated one. A pawn reaching
// the last rank without a promotion piece promotes to a queen.
func sameMove(board *chess.Board, played, generated chess.Move) bool {
	if played.From != generated.From || played.To != generated.To {
		return false
	}
	if played.Promotion == chess.NoKind && board.Get(played.From).Kind() == chess.Pawn &&
		(played.To.Rank == 0 || played.To.Rank == chess.BoardSize-1) {
		played.Promotion = chess.Queen
	}
	return played.Promotion == generated.Promotion
}
