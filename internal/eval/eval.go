// Package eval scores chess positions statically from White's point of view.
package eval

import "github.com/lgbarn/chesscore-go/internal/chess"

// Material values in centipawns, indexed by chess.Kind.
var pieceValues = [chess.NumKinds]int{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   20000,
}

// EndgameMaterial is the non-pawn, non-king material total below which a
// position counts as an endgame.
const EndgameMaterial = 2500

// Evaluator scores positions with material and piece-square tables.
// The zero value is ready to use.
type Evaluator struct{}

// Evaluate implements the search evaluator interface.
func (Evaluator) Evaluate(board *chess.Board) int {
	return Evaluate(board)
}

// Evaluate returns the static score of a position in centipawns. Positive
// scores favour White. The side to move does not affect the score.
func Evaluate(board *chess.Board) int {
	endgame := IsEndgame(board)
	score := 0
	board.ForEachPiece(func(sq chess.Square, piece chess.Piece) {
		value := PieceValue(piece.Kind()) + squareBonus(piece, sq, endgame)
		if piece.Colour() == chess.White {
			score += value
		} else {
			score -= value
		}
	})
	return score
}

// PieceValue returns the material value of a kind, 0 for NoKind.
func PieceValue(kind chess.Kind) int {
	if kind <= chess.NoKind || kind >= chess.NumKinds {
		return 0
	}
	return pieceValues[kind]
}

// IsEndgame reports whether the king should use its endgame table: there
// is no queen on the board, or fewer than EndgameMaterial centipawns of
// knights, bishops, rooks and queens remain.
func IsEndgame(board *chess.Board) bool {
	queens := 0
	material := 0
	board.ForEachPiece(func(_ chess.Square, piece chess.Piece) {
		switch kind := piece.Kind(); kind {
		case chess.Queen:
			queens++
			material += pieceValues[kind]
		case chess.Knight, chess.Bishop, chess.Rook:
			material += pieceValues[kind]
		}
	})
	return queens == 0 || material < EndgameMaterial
}

// squareBonus looks up the piece-square table entry for a piece. White
// reads the row of its rank index and Black reads the mirrored row.
func squareBonus(piece chess.Piece, sq chess.Square, endgame bool) int {
	row := sq.Rank
	if piece.Colour() == chess.Black {
		row = chess.BoardSize - 1 - sq.Rank
	}
	table := tableFor(piece.Kind(), endgame)
	if table == nil {
		return 0
	}
	return table[row][sq.File]
}

func tableFor(kind chess.Kind, endgame bool) *pieceSquareTable {
	switch kind {
	case chess.Pawn:
		return &pawnTable
	case chess.Knight:
		return &knightTable
	case chess.Bishop:
		return &bishopTable
	case chess.Rook:
		return &rookTable
	case chess.Queen:
		return &queenTable
	case chess.King:
		if endgame {
			return &kingEndTable
		}
		return &kingMiddleTable
	default:
		return nil
	}
}
