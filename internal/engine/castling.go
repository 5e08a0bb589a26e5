package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// appendCastlingMoves adds the castling moves of the king on sq, kingside first.
//
// Castling is refused without the right, with the king or rook off its home square,
// while in check, through an occupied or attacked adjacent square, or with any other
// square between king and rook occupied. Whether the destination is attacked is left
// to the legality filter.
func appendCastlingMoves(moves []chess.Move, board *chess.Board, sq chess.Square) []chess.Move {
	colour := board.ToMove
	if sq != chess.KingHome(colour) {
		return moves
	}

	checked := false
	inCheck := false
	for _, kingside := range [...]bool{true, false} {
		if !board.CanCastle(colour, kingside) {
			continue
		}
		if board.Get(chess.RookHome(colour, kingside)) != chess.MakeColouredPiece(colour, chess.Rook) {
			continue
		}

		// A zero-displacement king move hands the current position to the check detector.
		if !checked {
			inCheck = PutsSelfInCheck(board, chess.NewMove(sq, sq))
			checked = true
		}
		if inCheck {
			return moves
		}

		step := chess.Square(1)
		if !kingside {
			step = -1
		}
		adjacent := sq + step
		if !board.IsEmpty(adjacent) || PutsSelfInCheck(board, chess.NewMove(sq, adjacent)) {
			continue
		}
		dest := sq + 2*step
		if !board.IsEmpty(dest) {
			continue
		}
		if !kingside && !board.IsEmpty(sq-3) {
			continue
		}

		moves = append(moves, chess.NewSpecialMove(sq, dest, chess.Empty, false, true))
	}
	return moves
}
