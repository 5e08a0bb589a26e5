package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

// run sets up the game, plays the configured moves, reports on the resulting
// position and counts its move tree when asked to.
func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	g, err := newGame(cfg.Position.StartFEN)
	if err != nil {
		return err
	}
	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "game %s from %s\n", g.ID, g.FEN())
	}

	if err := playMoves(cfg, g); err != nil {
		return err
	}

	report(cfg.OutputFile, cfg.Output, g)

	if cfg.Perft.Enabled() {
		if err := countTree(cfg, g); err != nil {
			return err
		}
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d ply played, %s\n", g.PlyCount(), g.Status())
	}
	return nil
}

// newGame starts from the given FEN, or the initial position when it is empty.
func newGame(fen string) (*game.Game, error) {
	if fen == "" {
		return game.New(), nil
	}
	return game.NewFromFEN(fen)
}

// playMoves plays the configured moves in order, stopping at the first one
// that cannot be played.
func playMoves(cfg *config.Config, g *game.Game) error {
	for _, text := range cfg.Position.Moves {
		if err := g.PlayMove(text); err != nil {
			return err
		}
		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "%d. %s: %s\n", g.PlyCount(), text, g.FEN())
		}
	}
	return nil
}

// report prints the sections of the final position that out selects.
func report(w io.Writer, out *config.OutputConfig, g *game.Game) {
	if out.ShowFEN {
		fmt.Fprintf(w, "FEN: %s\n", g.FEN())
	}
	if out.ShowStatus {
		fmt.Fprintf(w, "Status: %s\n", g.Status())
		fmt.Fprintf(w, "Check: %s\n", yesNo(g.InCheck()))
		fmt.Fprintf(w, "Draw: %s\n", yesNo(g.IsDraw()))
		if winner, ok := g.Winner(); ok {
			fmt.Fprintf(w, "Winner: %s\n", winner)
		}
		fmt.Fprintf(w, "Result: %s\n", g.Result())
	}
	if out.ListMoves {
		var moves []string
		for _, m := range g.LegalMoves() {
			moves = append(moves, m.String())
		}
		slices.Sort(moves)
		fmt.Fprintf(w, "Legal moves (%d): %s\n", len(moves), strings.Join(moves, " "))
	}
	if out.ShowRepetitions {
		for _, key := range g.RepeatedPositions() {
			fmt.Fprintf(w, "Repeated %dx: %s\n", g.PositionCount(key), key)
		}
	}
}

// countTree counts the leaf nodes below the current position.
func countTree(cfg *config.Config, g *game.Game) error {
	start := time.Now()
	result, err := perft.Divide(g.Board(), cfg.Perft.Depth,
		perft.WithWorkers(cfg.Perft.Workers),
		perft.WithHashEntries(cfg.Perft.HashEntries))
	if err != nil {
		return err
	}

	if cfg.Perft.Divide {
		fmt.Fprint(cfg.OutputFile, result)
	} else {
		fmt.Fprintf(cfg.OutputFile, "Nodes searched: %d\n", result.Nodes)
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "perft(%d): %d nodes in %v, %d cache hits\n",
			result.Depth, result.Nodes, time.Since(start).Round(time.Millisecond), result.CacheHits)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
