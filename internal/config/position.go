package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PositionConfig holds the starting position and the moves to play from it.
type PositionConfig struct {
	// StartFEN is the starting position; empty means the standard initial position
	StartFEN string

	// Moves are played in order, in long algebraic form (e2e4, e7e8q)
	Moves []string
}

// NewPositionConfig creates a PositionConfig starting from the initial position.
func NewPositionConfig() *PositionConfig {
	return &PositionConfig{}
}

// AddMoves splits a space or comma separated move list and appends it.
func (p *PositionConfig) AddMoves(list string) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	p.Moves = append(p.Moves, fields...)
}

// Validate checks that the position configuration is valid.
func (p *PositionConfig) Validate() error {
	for i, move := range p.Moves {
		if len(move) != 4 && len(move) != 5 {
			return fmt.Errorf("move %d (%q) is not long algebraic: %w",
				i+1, move, errors.ErrInvalidConfig)
		}
	}
	return nil
}
