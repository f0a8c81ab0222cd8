package config

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/search"
)

// MaxDepth bounds the configurable search depth.
const MaxDepth = 10

// SearchConfig holds settings for best-move search.
type SearchConfig struct {
	// Depth is the search depth in plies.
	Depth int

	// Workers is the number of goroutines searching root moves.
	// 1 searches sequentially.
	Workers int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:   search.DefaultDepth,
		Workers: 1,
	}
}

// Validate checks that the search configuration is usable.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 || s.Depth > MaxDepth {
		return fmt.Errorf("search depth %d outside 1..%d: %w", s.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
