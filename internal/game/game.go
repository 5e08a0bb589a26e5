// Package game tracks a single chess game: the current board, the positions it
// has passed through and the conditions that end it.
package game

import (
	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// RepetitionLimit is the number of occurrences of a position that draws the game.
const RepetitionLimit = 3

// Game owns a board and its repetition history. It is not safe for concurrent
// use; clone it per goroutine.
type Game struct {
	// ID labels the game in diagnostics.
	ID string

	board *chess.Board

	// Occurrences of each position key (placement + side to move).
	history map[string]int

	// Set once any position reaches RepetitionLimit; never cleared.
	drawByRepetition bool

	// Moves executed since the starting position.
	plies []chess.Move
}

// New creates a game from the standard starting position.
func New() *Game {
	return newGame(engine.NewInitialBoard())
}

// NewFromFEN creates a game from a FEN position. Malformed FEN is an error;
// it never falls back to the initial position.
func NewFromFEN(fen string) (*Game, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(board), nil
}

func newGame(board *chess.Board) *Game {
	return &Game{
		ID:      uuid.NewString(),
		board:   board,
		history: map[string]int{engine.PositionKey(board): 1},
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.board.ToMove
}

// LegalMoves returns the legal moves of the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return engine.LegalMoves(g.board)
}

// Moves returns the moves executed so far.
func (g *Game) Moves() []chess.Move {
	return slices.Clone(g.plies)
}

// PlyCount returns the number of half-moves executed so far.
func (g *Game) PlyCount() int {
	return len(g.plies)
}

// ExecuteMove applies the move and records the resulting position. The move is
// assumed to be legal. Returns false, changing nothing, if the start square is empty.
func (g *Game) ExecuteMove(m chess.Move) bool {
	if !m.Execute(g.board) {
		return false
	}
	g.plies = append(g.plies, m)

	key := engine.PositionKey(g.board)
	g.history[key]++
	if g.history[key] >= RepetitionLimit {
		g.drawByRepetition = true
	}
	return true
}

// PlayMove decodes long algebraic move text, checks it is legal and executes it.
func (g *Game) PlayMove(text string) error {
	move, err := chess.ParseMove(text, g.board)
	if err != nil {
		return g.moveError(text, err)
	}
	if !engine.IsLegal(g.board, move) {
		return g.moveError(text, errors.ErrIllegalMove)
	}
	g.ExecuteMove(move)
	return nil
}

func (g *Game) moveError(text string, err error) error {
	return &errors.MoveError{
		Err:      err,
		Ply:      len(g.plies) + 1,
		MoveText: text,
		FEN:      g.FEN(),
	}
}

// PositionCount returns how often the position key has occurred.
func (g *Game) PositionCount(key string) int {
	return g.history[key]
}

// RepeatedPositions returns, sorted, the position keys seen more than once.
func (g *Game) RepeatedPositions() []string {
	var repeated []string
	for _, key := range maps.Keys(g.history) {
		if g.history[key] > 1 {
			repeated = append(repeated, key)
		}
	}
	slices.Sort(repeated)
	return repeated
}

// Clone returns an independent deep copy of the game under a new ID.
func (g *Game) Clone() *Game {
	return &Game{
		ID:               uuid.NewString(),
		board:            g.board.Copy(),
		history:          maps.Clone(g.history),
		drawByRepetition: g.drawByRepetition,
		plies:            slices.Clone(g.plies),
	}
}
