package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestApplyMove(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    string
		wantFEN string
	}{
		{
			name:    "pawn double push sets en passant target",
			fen:     InitialFEN,
			move:    "e2 e4",
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "black reply increments fullmove and clears target",
			fen:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			move:    "g8 f6",
			wantFEN: "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2",
		},
		{
			name:    "en passant removes the passed pawn",
			fen:     "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
			move:    "e5 d6",
			wantFEN: "4k3/8/3P4/8/8/8/8/4K3 b - - 0 2",
		},
		{
			name:    "black en passant",
			fen:     "4k3/8/8/8/3Pp3/8/8/4K3 b - d3 0 1",
			move:    "e4 d3",
			wantFEN: "4k3/8/8/8/8/3p4/8/4K3 w - - 0 2",
		},
		{
			name:    "white castles kingside",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 3 10",
			move:    "e1 g1",
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 4 10",
		},
		{
			name:    "white castles queenside",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "e1 c1",
			wantFEN: "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1",
		},
		{
			name:    "black castles queenside",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:    "e8 c8",
			wantFEN: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name:    "rook move clears its right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "h1 h5",
			wantFEN: "r3k2r/8/8/7R/8/8/8/R3K3 b Qkq - 1 1",
		},
		{
			name:    "capturing a rook at home clears that right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "a1 a8",
			wantFEN: "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:    "king move clears both rights",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "e1 f2",
			wantFEN: "r3k2r/8/8/8/8/8/5K2/R6R b kq - 1 1",
		},
		{
			name:    "promotion defaults to queen",
			fen:     "4k3/P7/8/8/8/8/8/4K3 w - - 5 30",
			move:    "a7 a8",
			wantFEN: "Q3k3/8/8/8/8/8/8/4K3 b - - 0 30",
		},
		{
			name:    "underpromotion to knight",
			fen:     "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			move:    "a7 a8 n",
			wantFEN: "N3k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:    "black capture promotion",
			fen:     "4k3/8/8/8/8/8/6p1/4K2R b K - 0 1",
			move:    "g2h1r",
			wantFEN: "4k3/8/8/8/8/8/8/4K2r w - - 0 2",
		},
		{
			name:    "capture resets halfmove clock",
			fen:     "4k3/8/8/3n4/8/8/8/3RK3 w - - 7 20",
			move:    "d1 d5",
			wantFEN: "4k3/8/8/3R4/8/8/8/4K3 b - - 0 20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			err := ApplyMove(board, testutil.MustMove(t, tt.move))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, BoardToFEN(board), tt.wantFEN)
		})
	}
}

func TestApplyMove_Illegal(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		move       string
		wantReason string
	}{
		{"empty origin", InitialFEN, "e4 e5", "no piece on e4"},
		{"wrong side", InitialFEN, "e7 e5", "Black is not to move"},
		{"bad geometry", InitialFEN, "g1 g3", "cannot move there"},
		{"pinned piece", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2 d3", "leaves the king in check"},
		{"king into check", "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1", "e1 e2", "leaves the king in check"},
		{"ignores check", testutil.FoolsMateFEN, "a2 a3", "leaves the king in check"},
		{"promotion flag on quiet move", InitialFEN, "e2e4q", "not a promotion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			err := ApplyMove(board, testutil.MustMove(t, tt.move))
			testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)

			var moveErr *chesserrors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("error %v is not a *MoveError", err)
			}
			testutil.AssertContains(t, moveErr.Reason, tt.wantReason)
			testutil.AssertEqual(t, moveErr.FEN, tt.fen)
			testutil.AssertEqual(t, BoardToFEN(board), tt.fen, "board must be untouched")
		})
	}
}

func TestMakeUnmakeMove_Restores(t *testing.T) {
	fens := []string{
		InitialFEN,
		testutil.KiwipeteFEN,
		testutil.EndgameFEN,
		testutil.PromotionFEN,
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board := mustBoard(t, fen)
			before := *board
			for _, move := range LegalMoves(board) {
				undo := MakeMove(board, move)
				UnmakeMove(board, move, undo)
				if *board != before {
					t.Fatalf("after %s: board %q, want %q", move.UCI(), BoardToFEN(board), fen)
				}
			}
		})
	}
}

func TestMakeMove_TracksKing(t *testing.T) {
	board := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	move := testutil.MustMove(t, "e1g1")

	undo := MakeMove(board, move)
	king, ok := board.KingSquare(chess.White)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, king, sq(t, "g1"))
	testutil.AssertEqual(t, board.Get(sq(t, "f1")), chess.W(chess.Rook))

	UnmakeMove(board, move, undo)
	king, _ = board.KingSquare(chess.White)
	testutil.AssertEqual(t, king, sq(t, "e1"))
	testutil.AssertEqual(t, board.Get(sq(t, "h1")), chess.W(chess.Rook))
}
