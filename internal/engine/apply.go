package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Undo records what MakeMove changed so UnmakeMove can restore it.
type Undo struct {
	// The piece that moved, as it stood on the from square.
	Moved chess.Piece

	// The piece captured (NoPiece if none) and where it stood; for en
	// passant that is beside the destination, not on it.
	Captured       chess.Piece
	CapturedSquare chess.Square

	// Castling rights, en passant target, clocks and side to move before
	// the move.
	State chess.GameState
}

// ApplyMove validates a move for the side to move and applies it.
// The move must start on a piece of the side to move, satisfy CanMoveTo,
// and not leave the mover's king attacked. On failure the board is left
// untouched and the error wraps errors.ErrIllegalMove.
func ApplyMove(board *chess.Board, move chess.Move) error {
	if reason := tryApply(board, move); reason != "" {
		return &errors.MoveError{
			Err:    errors.ErrIllegalMove,
			FEN:    BoardToFEN(board),
			Move:   move.String(),
			Reason: reason,
		}
	}
	return nil
}

// tryApply applies the move if it is legal and returns "". Otherwise
// it leaves the board as it was and describes the broken rule.
func tryApply(board *chess.Board, move chess.Move) string {
	piece := board.Get(move.From)
	switch {
	case piece == chess.NoPiece:
		return "no piece on " + move.From.String()
	case piece.Colour() != board.SideToMove():
		return piece.Colour().String() + " is not to move"
	case !CanMoveTo(board, move.From, move.To):
		return piece.Kind().String() + " cannot move there"
	}

	if piece.Kind() == chess.Pawn && move.To.Rank == promotionRank(piece.Colour()) {
		switch move.Promotion {
		case chess.NoKind, chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		default:
			return "cannot promote to " + move.Promotion.String()
		}
	} else if move.Promotion != chess.NoKind {
		return "not a promotion"
	}

	undo := MakeMove(board, move)
	if IsInCheck(board, piece.Colour()) {
		UnmakeMove(board, move, undo)
		return "leaves the king in check"
	}
	return ""
}

// MakeMove plays a move without checking it and returns the information
// needed to take it back. The move must satisfy CanMoveTo.
// A pawn reaching the last rank becomes move.Promotion, or a queen when
// no promotion piece is given.
func MakeMove(board *chess.Board, move chess.Move) Undo {
	from, to := move.From, move.To
	piece := board.Get(from)
	colour := piece.Colour()
	state := &board.State

	undo := Undo{
		Moved:          piece,
		Captured:       board.Get(to),
		CapturedSquare: to,
		State:          *state,
	}

	// Handle en passant capture
	if piece.Kind() == chess.Pawn && isEnPassantCapture(board, colour, from, to) {
		undo.CapturedSquare = chess.NewSquare(to.File, from.Rank)
		undo.Captured = board.Get(undo.CapturedSquare)
		board.Set(undo.CapturedSquare, chess.NoPiece)
	}

	// Move the piece, promoting if needed
	placed := piece
	if piece.Kind() == chess.Pawn && to.Rank == promotionRank(colour) {
		kind := move.Promotion
		if kind == chess.NoKind {
			kind = chess.Queen // Default to queen
		}
		placed = chess.MakePiece(colour, kind)
	}
	board.Set(from, chess.NoPiece)
	board.Set(to, placed)

	// Move the rook when castling
	if piece.Kind() == chess.King && abs(to.File-from.File) == 2 {
		rookFrom, rookTo := castlingRookSquares(from, to)
		rook := board.Get(rookFrom)
		board.Set(rookFrom, chess.NoPiece)
		board.Set(rookTo, rook)
	}

	updateCastlingRights(&state.Castling, piece, from, to)

	// Set en passant square if double pawn push
	state.EnPassant = false
	if piece.Kind() == chess.Pawn && abs(to.Rank-from.Rank) == 2 {
		state.EnPassant = true
		state.EPSquare = from.Offset(0, colour.Direction())
	}

	// Update halfmove clock
	if piece.Kind() == chess.Pawn || undo.Captured != chess.NoPiece {
		state.HalfmoveClock = 0
	} else {
		state.HalfmoveClock++
	}

	if colour == chess.Black {
		state.FullmoveNumber++
	}
	state.ActiveColour = colour.Opposite()

	return undo
}

// UnmakeMove takes back a move played by MakeMove. Moves must be taken back
// in reverse order of play.
func UnmakeMove(board *chess.Board, move chess.Move, undo Undo) {
	from, to := move.From, move.To

	board.Set(to, chess.NoPiece)
	board.Set(from, undo.Moved)

	if undo.Moved.Kind() == chess.King && abs(to.File-from.File) == 2 {
		rookFrom, rookTo := castlingRookSquares(from, to)
		board.Set(rookFrom, board.Get(rookTo))
		board.Set(rookTo, chess.NoPiece)
	}

	if undo.Captured != chess.NoPiece {
		board.Set(undo.CapturedSquare, undo.Captured)
	}

	board.State = undo.State
}
