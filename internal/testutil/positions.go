package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// Well-known positions shared by the engine, eval and search tests.
const (
	StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// Kiwipete exercises castling, en passant, promotions and pins.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// White is checkmated (fool's mate).
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// Black to move has no legal move and is not in check.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

	// White mates in one with Ra8.
	BackRankMateFEN = "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"

	// Perft position 3 from the chess programming wiki: en passant pins.
	EndgameFEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	// Perft position 4: promotions and castling under check.
	PromotionFEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
)

// MustSquare parses algebraic square text or fails the test.
func MustSquare(t testing.TB, text string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("bad square %q: %v", text, err)
	}
	return sq
}

// MustMove parses move text or fails the test.
func MustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	move, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("bad move %q: %v", text, err)
	}
	return move
}

// UCIStrings returns the moves in UCI form, sorted, for set comparisons.
func UCIStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	sort.Strings(out)
	return out
}
