package game

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Status describes whether, and how, the game has ended.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	Repetition
	MoveLimit
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"ongoing", "checkmate", "stalemate", "insufficient material", "threefold repetition", "move limit"}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.IsInCheck(g.board, g.board.ToMove)
}

// IsCheckmate reports whether the side to move has no legal moves and is in check.
func (g *Game) IsCheckmate() bool {
	return !engine.HasLegalMoves(g.board) && g.InCheck()
}

// IsStalemate reports whether the side to move has no legal moves and is not in check.
func (g *Game) IsStalemate() bool {
	return !engine.HasLegalMoves(g.board) && !g.InCheck()
}

// Winner returns the side that delivered checkmate, if any.
func (g *Game) Winner() (chess.Colour, bool) {
	if !g.IsCheckmate() {
		return chess.White, false
	}
	return g.board.ToMove.Opposite(), true
}

// InsufficientMaterial reports whether only kings remain on the board.
func (g *Game) InsufficientMaterial() bool {
	return engine.HasInsufficientMaterial(g.board)
}

// DrawByRepetition reports whether any position has occurred three times.
func (g *Game) DrawByRepetition() bool {
	return g.drawByRepetition
}

// IsDraw reports whether the game is drawn by the move limit, insufficient
// material, stalemate or repetition.
func (g *Game) IsDraw() bool {
	return g.board.MoveNumber >= engine.MoveNumberDrawLimit ||
		g.InsufficientMaterial() ||
		g.IsStalemate() ||
		g.drawByRepetition
}

// Status classifies the current position. Checkmate takes precedence over
// the draw conditions.
func (g *Game) Status() Status {
	hasMoves := engine.HasLegalMoves(g.board)
	inCheck := g.InCheck()

	switch {
	case !hasMoves && inCheck:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case g.drawByRepetition:
		return Repetition
	case g.InsufficientMaterial():
		return InsufficientMaterial
	case g.board.MoveNumber >= engine.MoveNumberDrawLimit:
		return MoveLimit
	}
	return Ongoing
}

// Result returns the PGN result string: "1-0", "0-1", "1/2-1/2" or "*".
func (g *Game) Result() string {
	switch g.Status() {
	case Ongoing:
		return "*"
	case Checkmate:
		if g.board.ToMove == chess.Black {
			return "1-0"
		}
		return "0-1"
	default:
		return "1/2-1/2"
	}
}
