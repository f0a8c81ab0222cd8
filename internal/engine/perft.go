package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Depth 0 counts the position itself.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		undo := MakeMove(board, move)
		nodes += Perft(board, depth-1)
		UnmakeMove(board, move, undo)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by the move in
// UCI form.
func Divide(board *chess.Board, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, move := range LegalMoves(board) {
		undo := MakeMove(board, move)
		counts[move.UCI()] = Perft(board, depth-1)
		UnmakeMove(board, move, undo)
	}
	return counts
}
