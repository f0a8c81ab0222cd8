package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// CanMoveTo reports whether the piece on from may move to to by its own
// movement rule. It checks geometry, occupancy, path clearance and the
// castling preconditions, but not whether the mover's king would be left
// in check afterwards; LegalMoves and ApplyMove add that test.
func CanMoveTo(board *chess.Board, from, to chess.Square) bool {
	piece := board.Get(from)
	if piece == chess.NoPiece {
		return false
	}
	if !from.IsValid() || !to.IsValid() || from == to {
		return false
	}
	if target := board.Get(to); target != chess.NoPiece && target.Colour() == piece.Colour() {
		return false
	}

	switch piece.Kind() {
	case chess.Pawn:
		return canPawnMove(board, piece.Colour(), from, to)
	case chess.Knight:
		return isKnightStep(from, to)
	case chess.Bishop, chess.Rook, chess.Queen:
		return canSlide(board, piece.Kind(), from, to)
	case chess.King:
		if isKingStep(from, to) {
			return true
		}
		return canCastle(board, piece.Colour(), from, to)
	default:
		return false
	}
}

// CanAttack reports whether the piece on from attacks the square to.
// Unlike CanMoveTo it ignores what stands on to, and a pawn attacks its two
// forward diagonals whether or not anything is there.
func CanAttack(board *chess.Board, from, to chess.Square) bool {
	piece := board.Get(from)
	if piece == chess.NoPiece || !to.IsValid() || from == to {
		return false
	}

	switch piece.Kind() {
	case chess.Pawn:
		return pawnAttacks(piece.Colour(), from, to)
	case chess.Knight:
		return isKnightStep(from, to)
	case chess.Bishop, chess.Rook, chess.Queen:
		return canSlide(board, piece.Kind(), from, to)
	case chess.King:
		return isKingStep(from, to)
	default:
		return false
	}
}

// isKnightStep checks for one of the eight L-shaped offsets.
func isKnightStep(from, to chess.Square) bool {
	fileDiff := abs(to.File - from.File)
	rankDiff := abs(to.Rank - from.Rank)
	return (fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)
}

// isKingStep checks for a one-square step in any direction.
func isKingStep(from, to chess.Square) bool {
	fileDiff := abs(to.File - from.File)
	rankDiff := abs(to.Rank - from.Rank)
	return fileDiff <= 1 && rankDiff <= 1 && (fileDiff|rankDiff) != 0
}

// canSlide checks the geometry of a sliding piece and that its path is clear.
func canSlide(board *chess.Board, kind chess.Kind, from, to chess.Square) bool {
	fileDiff := abs(to.File - from.File)
	rankDiff := abs(to.Rank - from.Rank)
	diagonal := fileDiff == rankDiff
	straight := fileDiff == 0 || rankDiff == 0

	switch kind {
	case chess.Bishop:
		if !diagonal {
			return false
		}
	case chess.Rook:
		if !straight {
			return false
		}
	case chess.Queen:
		if !diagonal && !straight {
			return false
		}
	default:
		return false
	}
	return isPathClear(board, from, to)
}
