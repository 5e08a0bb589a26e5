package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// MoveNumberDrawLimit is the fullmove number at which a game is declared drawn.
const MoveNumberDrawLimit = 100

// HasInsufficientMaterial returns true if every occupied square holds a king,
// regardless of how many kings there are or their colours.
func HasInsufficientMaterial(board *chess.Board) bool {
	for _, piece := range board.Squares {
		if piece != chess.Empty && chess.ExtractPiece(piece) != chess.King {
			return false
		}
	}
	return true
}

