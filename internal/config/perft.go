package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	// Depth in plies; 0 disables counting
	Depth int

	// Divide reports a count per root move
	Divide bool

	// Workers count root moves concurrently
	Workers int

	// HashEntries bounds the shared node cache (0 = no cache)
	HashEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
// Counting is disabled and runs on a single worker.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: 1,
	}
}

// Enabled reports whether a count was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("perft depth (%d) < 0: %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.HashEntries < 0 {
		return fmt.Errorf("hash entries (%d) < 0: %w", p.HashEntries, errors.ErrInvalidConfig)
	}
	return nil
}
