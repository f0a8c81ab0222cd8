// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// FENLetter returns the side-to-move letter used in FEN ('w' or 'b').
func (c Colour) FENLetter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Direction returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of a colour.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
// It returns NoKind for anything that is not a piece letter.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [...]Kind{Queen, Rook, Bishop, Knight}

// Piece is a coloured piece packed into a single value.
// The zero value is NoPiece, an empty square.
type Piece uint8

// NoPiece marks an empty square.
const NoPiece Piece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	return Piece(int(kind)<<PieceShift | int(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// Colour extracts the colour from a coloured piece.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Kind extracts the piece type from a coloured piece.
func (p Piece) Kind() Kind {
	return Kind(p >> PieceShift)
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

// FENChar returns the FEN letter of a piece, uppercase for White.
func (p Piece) FENChar() byte {
	letter := p.Kind().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p == NoPiece {
		return "Empty"
	}
	return p.Colour().String() + " " + p.Kind().String()
}

// PieceFromFENChar converts a FEN piece letter into a coloured piece.
// The second result is false if c is not a piece letter.
func PieceFromFENChar(c byte) (Piece, bool) {
	kind := KindFromLetter(c)
	if kind == NoKind {
		return NoPiece, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return MakePiece(colour, kind), true
}

// GameStatus classifies a position from the point of view of the side to move.
type GameStatus int

const (
	InProgress GameStatus = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "in progress"
	}
}
