package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidNotation", ErrInvalidNotation, ErrInvalidNotation},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrNoLegalMoves", ErrNoLegalMoves, ErrNoLegalMoves},
		{"ErrInvalidDepth", ErrInvalidDepth, ErrInvalidDepth},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no two sentinels match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{ErrInvalidNotation, ErrInvalidFEN, ErrIllegalMove, ErrNoLegalMoves, ErrInvalidDepth, ErrInvalidConfig}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:    ErrIllegalMove,
				FEN:    "8/8/8/8/8/8/8/K6k w - - 0 1",
				Move:   "a1 a3",
				Reason: "king cannot move two squares",
			},
			contains: []string{"a1 a3", "K6k", "two squares", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrIllegalMove},
			contains: []string{"illegal move"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:  ErrIllegalMove,
		Move: "e1 g1",
	}

	wrapped := fmt.Errorf("play failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Move != "e1 g1" {
		t.Errorf("extracted.Move = %q, want %q", extracted.Move, "e1 g1")
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestFENError_Error verifies FENError formatting
func TestFENError_Error(t *testing.T) {
	err := &FENError{
		Err:      ErrInvalidFEN,
		Field:    "side to move",
		Expected: "w or b",
		Got:      "x",
	}

	msg := err.Error()
	for _, s := range []string{"side to move", "w or b", `"x"`, "invalid FEN"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("FENError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("errors.Is(fenErr, ErrInvalidFEN) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "decoding position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "decoding position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrNoLegalMoves, "search depth %d", 3)

	if !errors.Is(wrapped, ErrNoLegalMoves) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "depth 3") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
