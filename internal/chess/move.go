package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Move is a from/to square pair, with the promotion piece for pawn moves
// onto the last rank.
type Move struct {
	From Square
	To   Square

	// The kind promoted to, NoKind if not a promotion.
	Promotion Kind
}

// NewMove creates a non-promoting move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// String returns the move as "<from> <to>", with " <piece>" appended for
// promotions (e.g. "e7 e8 q").
func (m Move) String() string {
	s := m.From.String() + " " + m.To.String()
	if m.Promotion != NoKind {
		s += " " + string(lower(m.Promotion.Letter()))
	}
	return s
}

// UCI returns the move in long algebraic form (e.g. "e2e4", "e7e8q").
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(lower(m.Promotion.Letter()))
	}
	return s
}

// ParseMove parses move text. Accepted forms are "e2 e4", "e2e4",
// "e7 e8 q", "e7 e8q", "e7e8 q" and "e7e8q"; the promotion letter may be
// either case. Whitespace may only separate the two squares or precede the
// promotion letter.
func ParseMove(text string) (Move, error) {
	fromText, toText, promo, ok := splitMoveText(text)
	if !ok {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidNotation)
	}

	from, err := ParseSquare(fromText)
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	to, err := ParseSquare(toText)
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}

	move := Move{From: from, To: to}
	if promo != "" {
		kind := KindFromLetter(promo[0])
		if kind == NoKind || kind == Pawn || kind == King {
			return Move{}, fmt.Errorf("move %q: bad promotion piece: %w", text, errors.ErrInvalidNotation)
		}
		move.Promotion = kind
	}
	return move, nil
}

// splitMoveText cuts move text into its two squares and the optional
// promotion letter.
func splitMoveText(text string) (from, to, promo string, ok bool) {
	fields := strings.Fields(text)
	switch len(fields) {
	case 1: // e2e4, e7e8q
		f := fields[0]
		if len(f) != 4 && len(f) != 5 {
			return "", "", "", false
		}
		return f[0:2], f[2:4], f[4:], true
	case 2: // e2 e4, e7 e8q, e7e8 q
		a, b := fields[0], fields[1]
		switch {
		case len(a) == 2 && (len(b) == 2 || len(b) == 3):
			return a, b[0:2], b[2:], true
		case len(a) == 4 && len(b) == 1:
			return a[0:2], a[2:4], b, true
		}
	case 3: // e7 e8 q
		if len(fields[0]) == 2 && len(fields[1]) == 2 && len(fields[2]) == 1 {
			return fields[0], fields[1], fields[2], true
		}
	}
	return "", "", "", false
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
