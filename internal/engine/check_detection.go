package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PlayerInCheck reports whether the side to move could capture the king of the
// side that just moved. A position without that king is never in check, which
// keeps king-less test positions usable.
func PlayerInCheck(board *chess.Board) bool {
	kingSq, ok := FindKing(board, board.ToMove.Opposite())
	if !ok {
		return false
	}

	// Castling never captures, and its safety checks would recurse back here.
	for _, move := range GenerateMoves(board, false) {
		if move.To == kingSq {
			return true
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	if board.ToMove != colour {
		return PlayerInCheck(board)
	}
	testBoard := board.Copy()
	testBoard.ToMove = colour.Opposite()
	return PlayerInCheck(testBoard)
}

// FindKing finds the king of the given colour on the board.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	return board.FindPiece(chess.MakeColouredPiece(colour, chess.King))
}
