package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A colour without a king on the board is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSquare, ok := board.KingSquare(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSquare, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// It looks outward from the square (pawn, knight and king offsets, then the
// eight sliding rays) instead of testing every enemy piece, so its cost does
// not depend on how many pieces are on the board.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: an attacking pawn sits one rank behind the square
	// from its own point of view.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	pawnRank := sq.Rank - byColour.Direction()
	if board.Get(chess.NewSquare(sq.File-1, pawnRank)) == pawn ||
		board.Get(chess.NewSquare(sq.File+1, pawnRank)) == pawn {
		return true
	}

	// Check knight attacks
	knight := chess.MakePiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if board.Get(sq.Offset(off[0], off[1])) == knight {
			return true
		}
	}

	// Check king attacks
	king := chess.MakePiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if board.Get(sq.Offset(off[0], off[1])) == king {
			return true
		}
	}

	// Check sliding pieces along diagonals and straight lines
	queen := chess.MakePiece(byColour, chess.Queen)
	bishop := chess.MakePiece(byColour, chess.Bishop)
	rook := chess.MakePiece(byColour, chess.Rook)
	if firstOnRays(board, sq, diagonalDirs, bishop, queen) {
		return true
	}
	return firstOnRays(board, sq, straightDirs, rook, queen)
}

// firstOnRays reports whether the first piece met along any of the rays
// from sq is a or b.
func firstOnRays(board *chess.Board, sq chess.Square, dirs [4][2]int, a, b chess.Piece) bool {
	for _, dir := range dirs {
		cur := sq.Offset(dir[0], dir[1])
		for cur.IsValid() {
			piece := board.Get(cur)
			if piece != chess.NoPiece {
				if piece == a || piece == b {
					return true
				}
				break // Blocked
			}
			cur = cur.Offset(dir[0], dir[1])
		}
	}
	return false
}

// AttackMap returns the set of squares attacked by a colour as a 64-bit mask,
// bit i set for the square with rank-major index i. It applies CanAttack from
// every piece of that colour to every square.
func AttackMap(board *chess.Board, colour chess.Colour) uint64 {
	var attacked uint64
	board.ForEachPiece(func(from chess.Square, piece chess.Piece) {
		if piece.Colour() != colour {
			return
		}
		for i := 0; i < chess.BoardSize*chess.BoardSize; i++ {
			if CanAttack(board, from, chess.SquareFromIndex(i)) {
				attacked |= 1 << uint(i)
			}
		}
	})
	return attacked
}
