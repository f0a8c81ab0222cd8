package chess

// CastlingRights holds the four independent castling flags.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Kingside returns the kingside right of a colour.
func (cr CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return cr.WhiteKingside
	}
	return cr.BlackKingside
}

// Queenside returns the queenside right of a colour.
func (cr CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return cr.WhiteQueenside
	}
	return cr.BlackQueenside
}

// ClearColour removes both rights of a colour.
func (cr *CastlingRights) ClearColour(colour Colour) {
	if colour == White {
		cr.WhiteKingside = false
		cr.WhiteQueenside = false
	} else {
		cr.BlackKingside = false
		cr.BlackQueenside = false
	}
}

// None reports whether no castling right remains.
func (cr CastlingRights) None() bool {
	return !cr.WhiteKingside && !cr.WhiteQueenside && !cr.BlackKingside && !cr.BlackQueenside
}

// GameState is the non-placement part of a position.
type GameState struct {
	// Who has the next move.
	ActiveColour Colour

	Castling CastlingRights

	// Is en passant capture possible? If so then EPSquare holds the square
	// the capturing pawn lands on.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, incremented after Black moves.
	FullmoveNumber uint
}

// Board represents a chess board with all state needed for the game.
type Board struct {
	// Squares[file][rank]; NoPiece marks an empty square.
	Squares [BoardSize][BoardSize]Piece

	State GameState

	// Where the two kings are, for check detection. kingPlaced is false
	// for a colour with no king on the board.
	kings      [2]Square
	kingPlaced [2]bool
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		State: GameState{
			ActiveColour:   White,
			FullmoveNumber: 1,
		},
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Set(NewSquare(file, 0), W(backRank[file]))
		b.Set(NewSquare(file, 1), W(Pawn))
		b.Set(NewSquare(file, 6), B(Pawn))
		b.Set(NewSquare(file, 7), B(backRank[file]))
	}

	b.State = GameState{
		ActiveColour: White,
		Castling: CastlingRights{
			WhiteKingside:  true,
			WhiteQueenside: true,
			BlackKingside:  true,
			BlackQueenside: true,
		},
		FullmoveNumber: 1,
	}
}

// Clear empties every square and forgets the king positions.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
	b.kingPlaced = [2]bool{}
}

// Get returns the piece on a square, or NoPiece for empty or off-board squares.
func (b *Board) Get(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b.Squares[sq.File][sq.Rank]
}

// Set places a piece (or NoPiece) on a square, keeping king tracking current.
// Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if !sq.IsValid() {
		return
	}
	old := b.Squares[sq.File][sq.Rank]
	if old.Kind() == King && b.kingPlaced[old.Colour()] && b.kings[old.Colour()] == sq {
		b.kingPlaced[old.Colour()] = false
	}
	b.Squares[sq.File][sq.Rank] = piece
	if piece.Kind() == King {
		b.kings[piece.Colour()] = sq
		b.kingPlaced[piece.Colour()] = true
	}
}

// IsEmpty reports whether a square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == NoPiece
}

// KingSquare returns where the king of a colour stands.
// The second result is false if that colour has no king on the board.
func (b *Board) KingSquare(colour Colour) (Square, bool) {
	return b.kings[colour], b.kingPlaced[colour]
}

// SideToMove returns the colour that moves next.
func (b *Board) SideToMove() Colour {
	return b.State.ActiveColour
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// ForEachPiece calls fn for every occupied square in rank-major order.
func (b *Board) ForEachPiece(fn func(sq Square, piece Piece)) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.Squares[file][rank]; p != NoPiece {
				fn(Square{File: file, Rank: rank}, p)
			}
		}
	}
}

// CountPieces returns how many pieces of a given colour and kind are on the board.
func (b *Board) CountPieces(piece Piece) int {
	n := 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Squares[file][rank] == piece {
				n++
			}
		}
	}
	return n
}
