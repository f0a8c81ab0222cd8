// Package config provides configuration for the chesscore command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Search SearchConfig
	Output OutputConfig

	// Position used when none is given on the command line.
	StartFEN string

	Verbosity int // 0=errors only, 1=normal, 2=debug

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     *NewSearchConfig(),
		Output:     *NewOutputConfig(),
		StartFEN:   engine.InitialFEN,
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer results are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section and the start position.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d outside 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}
