package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// pawnStartRank returns the rank a colour's pawns start on.
func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return chess.BoardSize - 2
}

// promotionRank returns the rank a colour's pawns promote on.
func promotionRank(colour chess.Colour) int {
	if colour == chess.White {
		return chess.BoardSize - 1
	}
	return 0
}

// canPawnMove checks the pawn movement rule: a single push onto an empty
// square, a double push from the start rank through two empty squares, or a
// diagonal capture of an enemy piece or of the en passant target.
func canPawnMove(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	dir := colour.Direction()
	rankDiff := to.Rank - from.Rank
	fileDiff := abs(to.File - from.File)

	// Forward move
	if fileDiff == 0 {
		if rankDiff == dir && board.IsEmpty(to) {
			return true
		}
		// Double move from starting position
		return rankDiff == 2*dir &&
			from.Rank == pawnStartRank(colour) &&
			board.IsEmpty(to) &&
			board.IsEmpty(from.Offset(0, dir))
	}

	// Capture
	if fileDiff != 1 || rankDiff != dir {
		return false
	}
	if !board.IsEmpty(to) {
		return true
	}
	return isEnPassantCapture(board, colour, from, to)
}

// isEnPassantCapture reports whether a diagonal pawn step onto an empty
// square takes the enemy pawn that just advanced two squares. The captured
// pawn stands beside the mover, not on the target square.
func isEnPassantCapture(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	state := &board.State
	if !state.EnPassant || to != state.EPSquare || !board.IsEmpty(to) {
		return false
	}
	victim := board.Get(chess.NewSquare(to.File, from.Rank))
	return victim == chess.MakePiece(colour.Opposite(), chess.Pawn)
}

// pawnAttacks reports whether a pawn of the given colour on from attacks to.
func pawnAttacks(colour chess.Colour, from, to chess.Square) bool {
	return abs(to.File-from.File) == 1 && to.Rank-from.Rank == colour.Direction()
}
