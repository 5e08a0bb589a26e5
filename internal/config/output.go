package config

// OutputConfig holds settings related to what is reported about the final position.
type OutputConfig struct {
	// ListMoves prints the legal moves of the side to move
	ListMoves bool

	// ShowFEN prints the position in FEN
	ShowFEN bool

	// ShowStatus prints check, checkmate, stalemate and draw status
	ShowStatus bool

	// ShowRepetitions prints the positions that occurred more than once
	ShowRepetitions bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ListMoves:  true,
		ShowFEN:    true,
		ShowStatus: true,
	}
}
