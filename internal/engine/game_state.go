package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Status classifies the position for the side to move.
func Status(board *chess.Board) chess.GameStatus {
	if HasLegalMoves(board) {
		return chess.InProgress
	}
	if IsInCheck(board, board.SideToMove()) {
		return chess.Checkmate
	}
	return chess.Stalemate
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board, board.SideToMove()) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board, board.SideToMove()) && !HasLegalMoves(board)
}
