package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// Square is a board coordinate. File 0 is the a-file, rank 0 is the first rank.
type Square struct {
	File int
	Rank int
}

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// SquareFromIndex converts a rank-major index (a1=0, h1=7, a8=56) to a square.
func SquareFromIndex(i int) Square {
	return Square{File: i % BoardSize, Rank: i / BoardSize}
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidNotation)
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidNotation)
	}
	return Square{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for tables of constant squares.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// IsValid returns true if both coordinates lie on the 8x8 board.
func (sq Square) IsValid() bool {
	return sq.File >= 0 && sq.File < BoardSize && sq.Rank >= 0 && sq.Rank < BoardSize
}

// Index returns the rank-major index of the square (0-63).
func (sq Square) Index() int {
	return sq.Rank*BoardSize + sq.File
}

// Offset returns the square shifted by the given file and rank deltas.
// The result may be off the board; check with IsValid.
func (sq Square) Offset(df, dr int) Square {
	return Square{File: sq.File + df, Rank: sq.Rank + dr}
}

// String returns the algebraic notation of the square, or "-" when off the board.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File), byte('1' + sq.Rank)})
}

// IsLight returns true if the square is a light square.
func (sq Square) IsLight() bool {
	return (sq.File+sq.Rank)%2 == 1
}
