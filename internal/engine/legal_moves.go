package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns every legal move of the side to move.
//
// Each pseudo-legal candidate is tried on a private copy of the board, so the cost
// is one copy, one execution and one opponent generation per candidate.
func LegalMoves(board *chess.Board) []chess.Move {
	moves := GenerateMoves(board, true)
	legal := moves[:0]
	for _, move := range moves {
		if !PutsSelfInCheck(board, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	for _, move := range GenerateMoves(board, true) {
		if !PutsSelfInCheck(board, move) {
			return true
		}
	}
	return false
}

// IsLegal reports whether move is one of the legal moves in the position.
func IsLegal(board *chess.Board, move chess.Move) bool {
	for _, legal := range LegalMoves(board) {
		if legal == move {
			return true
		}
	}
	return false
}

// PutsSelfInCheck makes a move on a copied board and reports whether it leaves
// the mover's king attacked.
func PutsSelfInCheck(board *chess.Board, move chess.Move) bool {
	testBoard := board.Copy()
	if !move.Execute(testBoard) {
		return false
	}
	return PlayerInCheck(testBoard)
}
