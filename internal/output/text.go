package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// Diagram draws the board from White's side, rank 8 at the top. Empty
// squares are dots and pieces use their FEN letters.
func Diagram(board *chess.Board) string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.NewSquare(file, rank))
			c := byte('.')
			if piece != chess.NoPiece {
				c = piece.FENChar()
			}
			sb.WriteByte(' ')
			sb.WriteByte(c)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}

// writeText prints a report section by section.
func writeText(w io.Writer, r *Report) error {
	tw := &textWriter{w: w}

	tw.printf("Position: %s\n", r.FEN)
	if r.Board != "" {
		tw.printf("%s", r.Board)
	}
	if r.Error != "" {
		tw.printf("Error: %s\n", r.Error)
	}
	if p := r.Play; p != nil {
		tw.printf("Move %s: %s\n", p.Move, p.Outcome)
		if p.Error != "" {
			tw.printf("  %s\n", p.Error)
		}
		tw.printf("Result: %s\n", p.FEN)
	}
	if a := r.Analysis; a != nil {
		verdict := "not the best move"
		if a.IsBest {
			verdict = "the best move"
		}
		tw.printf("Analysis of %s: %s; best %s (score %d, depth %d, %d nodes)\n",
			a.Move, verdict, a.BestMove, a.Score, a.Depth, a.Nodes)
	}
	if s := r.Search; s != nil {
		if s.BestMove == "" {
			tw.printf("No move: %s\n", s.Status)
		} else {
			tw.printf("Best move: %s (score %d, depth %d, %d nodes)\n", s.BestMove, s.Score, s.Depth, s.Nodes)
		}
	}
	if p := r.Perft; p != nil {
		for _, line := range p.Divide {
			tw.printf("%s: %d\n", line.Move, line.Nodes)
		}
		tw.printf("Perft(%d) = %d\n", p.Depth, p.Nodes)
	}
	if r.Legal != nil {
		tw.printf("Legal moves (%d): %s\n", len(r.Legal), strings.Join(r.Legal, " "))
	}
	if e := r.Eval; e != nil {
		phase := "middlegame"
		if e.Endgame {
			phase = "endgame"
		}
		tw.printf("Evaluation: %d (%s, %s", e.Score, phase, e.Status)
		if e.InCheck {
			tw.printf(", in check")
		}
		tw.printf(")\n")
	}
	if a := r.Attacks; a != nil {
		tw.printf("Attacked by White (%d): %s\n", len(a.White), strings.Join(a.White, " "))
		tw.printf("Attacked by Black (%d): %s\n", len(a.Black), strings.Join(a.Black, " "))
	}
	return tw.err
}

// textWriter remembers the first write error so callers check once.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}
