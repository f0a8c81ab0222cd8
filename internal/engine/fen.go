// Package engine provides chess move validation and board manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated fields in a complete FEN string.
const fenFields = 6

func fenError(field, expected, got string) error {
	return &errors.FENError{Err: errors.ErrInvalidFEN, Field: field, Expected: expected, Got: got}
}

// NewBoardFromFEN creates a board from a FEN string.
// All six fields are required.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return nil, fenError("fields", "6 space-separated fields", strconv.Itoa(len(parts)))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError("placement", "8 ranks", positions)
	}

	var kings [2]int
	for i, rankText := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromFENChar(c)
			if !ok {
				return fenError("placement", "piece letter or digit", string(c))
			}
			if file >= chess.BoardSize {
				return fenError("placement", "8 squares per rank", rankText)
			}
			if piece.Kind() == chess.Pawn && (rank == 0 || rank == chess.BoardSize-1) {
				return fenError("placement", "no pawns on the first or last rank", rankText)
			}
			if piece.Kind() == chess.King {
				kings[piece.Colour()]++
			}
			board.Set(chess.NewSquare(file, rank), piece)
			file++
		}
		if file != chess.BoardSize {
			return fenError("placement", "8 squares per rank", rankText)
		}
	}

	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fenError("placement", "one king per colour",
			fmt.Sprintf("%d white, %d black", kings[chess.White], kings[chess.Black]))
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, side string) error {
	switch side {
	case "w":
		board.State.ActiveColour = chess.White
	case "b":
		board.State.ActiveColour = chess.Black
	default:
		return fenError("side to move", "w or b", side)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, castling string) error {
	board.State.Castling = chess.CastlingRights{}
	if castling == "-" {
		return nil
	}

	cr := &board.State.Castling
	for _, c := range castling {
		var flag *bool
		switch c {
		case 'K':
			flag = &cr.WhiteKingside
		case 'Q':
			flag = &cr.WhiteQueenside
		case 'k':
			flag = &cr.BlackKingside
		case 'q':
			flag = &cr.BlackQueenside
		default:
			return fenError("castling", "- or letters from KQkq", castling)
		}
		if *flag {
			return fenError("castling", "each right at most once", castling)
		}
		*flag = true
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, target string) error {
	board.State.EnPassant = false
	if target == "-" {
		return nil
	}

	sq, err := chess.ParseSquare(target)
	if err != nil {
		return fenError("en passant", "- or a square", target)
	}

	// The target lies behind a pawn of the side that just moved.
	wantRank := 5
	if board.State.ActiveColour == chess.Black {
		wantRank = 2
	}
	if sq.Rank != wantRank {
		return fenError("en passant", fmt.Sprintf("a square on rank %d", wantRank+1), target)
	}

	board.State.EnPassant = true
	board.State.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, halfmove, fullmove string) error {
	h, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return fenError("halfmove clock", "a non-negative integer", halfmove)
	}
	f, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil {
		return fenError("fullmove number", "a non-negative integer", fullmove)
	}
	board.State.HalfmoveClock = uint(h)
	board.State.FullmoveNumber = uint(f)
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(board.State.ActiveColour.FENLetter())
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board.State.Castling)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.State.HalfmoveClock, board.State.FullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.NewSquare(file, rank))
			if piece == chess.NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENChar())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, cr chess.CastlingRights) {
	if cr.None() {
		sb.WriteByte('-')
		return
	}
	if cr.WhiteKingside {
		sb.WriteByte('K')
	}
	if cr.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if cr.BlackKingside {
		sb.WriteByte('k')
	}
	if cr.BlackQueenside {
		sb.WriteByte('q')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.State.EnPassant {
		sb.WriteString(board.State.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
