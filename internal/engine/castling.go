package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

const (
	kingHomeFile      = 4
	kingsideRookFile  = chess.BoardSize - 1
	queensideRookFile = 0
)

// canCastle checks a two-file king move against the castling preconditions:
// the right is still held, king and rook are on their home squares, the
// squares between them are empty, and the king does not start in, pass
// through, or land on an attacked square.
func canCastle(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	home := colour.HomeRank()
	if from != chess.NewSquare(kingHomeFile, home) || to.Rank != home || abs(to.File-from.File) != 2 {
		return false
	}

	kingside := to.File > from.File
	rookSquare := chess.NewSquare(queensideRookFile, home)
	if kingside {
		if !board.State.Castling.Kingside(colour) {
			return false
		}
		rookSquare = chess.NewSquare(kingsideRookFile, home)
	} else if !board.State.Castling.Queenside(colour) {
		return false
	}

	if board.Get(rookSquare) != chess.MakePiece(colour, chess.Rook) {
		return false
	}
	if !isPathClear(board, from, rookSquare) {
		return false
	}

	enemy := colour.Opposite()
	passThrough := chess.NewSquare((from.File+to.File)/2, home)
	return !IsSquareAttacked(board, from, enemy) &&
		!IsSquareAttacked(board, passThrough, enemy) &&
		!IsSquareAttacked(board, to, enemy)
}

// castlingRookSquares returns where the rook starts and lands for a castling
// king move from kingFrom to kingTo.
func castlingRookSquares(kingFrom, kingTo chess.Square) (from, to chess.Square) {
	if kingTo.File > kingFrom.File {
		return chess.NewSquare(kingsideRookFile, kingFrom.Rank), chess.NewSquare(kingTo.File-1, kingFrom.Rank)
	}
	return chess.NewSquare(queensideRookFile, kingFrom.Rank), chess.NewSquare(kingTo.File+1, kingFrom.Rank)
}

// updateCastlingRights removes rights lost by a move: a king move drops both
// of its colour's rights, and any move leaving or landing on a rook home
// corner drops the right tied to that corner, so a rook captured at home
// loses its right even if the king never moved.
func updateCastlingRights(cr *chess.CastlingRights, moved chess.Piece, from, to chess.Square) {
	if moved.Kind() == chess.King {
		cr.ClearColour(moved.Colour())
	}
	clearCornerRight(cr, from)
	clearCornerRight(cr, to)
}

// clearCornerRight clears the castling right whose rook starts on sq.
func clearCornerRight(cr *chess.CastlingRights, sq chess.Square) {
	switch sq {
	case chess.NewSquare(kingsideRookFile, 0):
		cr.WhiteKingside = false
	case chess.NewSquare(queensideRookFile, 0):
		cr.WhiteQueenside = false
	case chess.NewSquare(kingsideRookFile, chess.BoardSize-1):
		cr.BlackKingside = false
	case chess.NewSquare(queensideRookFile, chess.BoardSize-1):
		cr.BlackQueenside = false
	}
}
