package engine

import (
	"math/bits"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// LegalMoves returns every legal move for the side to move.
// Moves are ordered by origin square, then destination square, both in
// rank-major order (a1, b1, ..., h8); promotions come queen, rook, bishop,
// knight. The board is used as scratch space and restored before returning.
func LegalMoves(board *chess.Board) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	walkLegalMoves(board, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	found := false
	walkLegalMoves(board, func(chess.Move) bool {
		found = true
		return false
	})
	return found
}

// LegalMovesFrom returns the legal moves of the piece on sq. It is empty if
// the square is empty or holds a piece of the side not to move.
func LegalMovesFrom(board *chess.Board, sq chess.Square) []chess.Move {
	var moves []chess.Move
	piece := board.Get(sq)
	if piece == chess.NoPiece || piece.Colour() != board.SideToMove() {
		return moves
	}
	walkPieceMoves(board, sq, piece, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// walkLegalMoves calls fn for each legal move in generation order until fn
// returns false.
func walkLegalMoves(board *chess.Board, fn func(chess.Move) bool) {
	colour := board.SideToMove()
	for i := 0; i < chess.BoardSize*chess.BoardSize; i++ {
		from := chess.SquareFromIndex(i)
		piece := board.Get(from)
		if piece == chess.NoPiece || piece.Colour() != colour {
			continue
		}
		if !walkPieceMoves(board, from, piece, fn) {
			return
		}
	}
}

// walkPieceMoves calls fn for each legal move of the piece on from.
// It returns false if fn asked to stop.
func walkPieceMoves(board *chess.Board, from chess.Square, piece chess.Piece, fn func(chess.Move) bool) bool {
	targets := candidateTargets(board, from, piece)
	for targets != 0 {
		to := chess.SquareFromIndex(bits.TrailingZeros64(targets))
		targets &= targets - 1

		if !CanMoveTo(board, from, to) {
			continue
		}
		move := chess.NewMove(from, to)
		if !keepsKingSafe(board, move, piece.Colour()) {
			continue
		}

		if piece.Kind() == chess.Pawn && to.Rank == promotionRank(piece.Colour()) {
			for _, kind := range chess.PromotionKinds {
				move.Promotion = kind
				if !fn(move) {
					return false
				}
			}
			continue
		}
		if !fn(move) {
			return false
		}
	}
	return true
}

// keepsKingSafe plays the move on the board, checks the mover's king, and
// takes the move back.
func keepsKingSafe(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	undo := MakeMove(board, move)
	safe := !IsInCheck(board, colour)
	UnmakeMove(board, move, undo)
	return safe
}

// candidateTargets returns a superset of the squares the piece on from may
// move to, as a rank-major bit mask. Each candidate is still checked with
// CanMoveTo.
func candidateTargets(board *chess.Board, from chess.Square, piece chess.Piece) uint64 {
	var mask uint64
	add := func(sq chess.Square) {
		if sq.IsValid() {
			mask |= 1 << uint(sq.Index())
		}
	}

	switch piece.Kind() {
	case chess.Pawn:
		dir := piece.Colour().Direction()
		add(from.Offset(0, dir))
		add(from.Offset(0, 2*dir))
		add(from.Offset(-1, dir))
		add(from.Offset(1, dir))
	case chess.Knight:
		for _, off := range knightOffsets {
			add(from.Offset(off[0], off[1]))
		}
	case chess.King:
		for _, off := range kingOffsets {
			add(from.Offset(off[0], off[1]))
		}
		add(from.Offset(-2, 0))
		add(from.Offset(2, 0))
	case chess.Bishop:
		mask = rayTargets(board, from, diagonalDirs[:])
	case chess.Rook:
		mask = rayTargets(board, from, straightDirs[:])
	case chess.Queen:
		mask = rayTargets(board, from, diagonalDirs[:]) | rayTargets(board, from, straightDirs[:])
	}
	return mask
}

// rayTargets collects squares along each ray up to and including the first
// occupied square.
func rayTargets(board *chess.Board, from chess.Square, dirs [][2]int) uint64 {
	var mask uint64
	for _, dir := range dirs {
		sq := from.Offset(dir[0], dir[1])
		for sq.IsValid() {
			mask |= 1 << uint(sq.Index())
			if !board.IsEmpty(sq) {
				break
			}
			sq = sq.Offset(dir[0], dir[1])
		}
	}
	return mask
}
