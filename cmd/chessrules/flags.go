// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position options
	startFEN = flag.String("fen", "", "Starting position in FEN (default: initial position)")
	moveList = flag.String("moves", "", "Moves to play, long algebraic, space or comma separated (e.g. 'e2e4 e7e5')")

	// Report options
	noMoves      = flag.Bool("nomoves", false, "Don't list the legal moves")
	noFEN        = flag.Bool("nofen", false, "Don't print the resulting FEN")
	noStatus     = flag.Bool("nostatus", false, "Don't print check, mate and draw status")
	showRepeated = flag.Bool("repetitions", false, "Print positions that occurred more than once")

	// Move-tree counting
	perftDepth  = flag.Int("perft", 0, "Count leaf nodes of the move tree to depth N")
	divide      = flag.Bool("divide", false, "Print the node count below each root move")
	workers     = flag.Int("workers", 1, "Number of workers counting root moves")
	hashEntries = flag.Int("hash", 0, "Maximum perft cache entries (0 = no cache)")

	// Output and logging
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	logFile      = flag.String("l", "", "Write diagnostics to log file")
	appendLog    = flag.String("L", "", "Append diagnostics to log file")
	verbosity    = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 per-move commentary")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Note: -A flag is handled manually before flag.Parse() in loadArgsFromFileIfSpecified
	_ = flag.String("A", "", "File containing command-line arguments (one or more per line, # for comments)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applyReportFlags(cfg)
	applyPerftFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyPositionFlags configures the starting position and the moves to play.
func applyPositionFlags(cfg *config.Config) {
	cfg.Position.StartFEN = *startFEN
	if *moveList != "" {
		cfg.Position.AddMoves(*moveList)
	}
}

// applyReportFlags configures what is printed about the final position.
func applyReportFlags(cfg *config.Config) {
	cfg.Output.ListMoves = !*noMoves
	cfg.Output.ShowFEN = !*noFEN
	cfg.Output.ShowStatus = !*noStatus
	cfg.Output.ShowRepetitions = *showRepeated
}

// applyPerftFlags configures move-tree counting.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.HashEntries = *hashEntries
}
