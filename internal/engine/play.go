package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Outcome classifies the result of a move request.
type Outcome int

const (
	MoveMade Outcome = iota
	IllegalMove
	Checkmate
	Stalemate
)

// String returns the outcome text reported to callers.
func (o Outcome) String() string {
	switch o {
	case MoveMade:
		return "move made"
	case IllegalMove:
		return "illegal move"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// PlayResult is the position after a move request and its classification.
type PlayResult struct {
	FEN     string
	Outcome Outcome
	Move    chess.Move
}

// PlayMove decodes a position, applies the move given as text ("e2 e4",
// "e2e4", "e7e8q") and classifies the position for the side now to move.
// An unparsable position is an error with no result. A malformed or illegal
// move returns IllegalMove with the original FEN and the error.
func PlayMove(fen, moveText string) (PlayResult, error) {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return PlayResult{}, err
	}

	result := PlayResult{FEN: fen, Outcome: IllegalMove}
	move, err := chess.ParseMove(moveText)
	if err != nil {
		// Matches both ErrIllegalMove and the parse error's ErrInvalidNotation.
		return result, fmt.Errorf("%w: %w", errors.ErrIllegalMove, err)
	}
	result.Move = move

	if err := ApplyMove(board, move); err != nil {
		return result, err
	}

	result.FEN = BoardToFEN(board)
	switch Status(board) {
	case chess.Checkmate:
		result.Outcome = Checkmate
	case chess.Stalemate:
		result.Outcome = Stalemate
	default:
		result.Outcome = MoveMade
	}
	return result, nil
}
