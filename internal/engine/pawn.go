package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// appendPawnMoves adds the pushes and then the captures of the pawn on sq.
func appendPawnMoves(moves []chess.Move, board *chess.Board, sq chess.Square) []chess.Move {
	colour := board.ToMove
	dir := chess.ColourOffset(colour)

	steps := 1
	if sq.Rank() == chess.PawnStartRank(colour) {
		steps = 2
	}
	for dist := 1; dist <= steps; dist++ {
		target, ok := sq.Offset(0, dir*dist)
		if !ok || !board.IsEmpty(target) {
			break
		}
		moves = appendPawnMove(moves, colour, sq, target, false)
	}

	return appendPawnCaptures(moves, board, sq)
}

// appendPawnCaptures adds diagonal captures of enemy pieces and en passant captures.
func appendPawnCaptures(moves []chess.Move, board *chess.Board, sq chess.Square) []chess.Move {
	colour := board.ToMove
	dir := chess.ColourOffset(colour)
	ep, hasEP := board.EnPassantTarget()

	for _, side := range [...]int{1, -1} {
		target, ok := sq.Offset(side, dir)
		if !ok {
			continue
		}
		switch {
		case board.IsEnemy(target, colour):
			moves = appendPawnMove(moves, colour, sq, target, false)
		case hasEP && target == ep && board.IsEmpty(target):
			moves = appendPawnMove(moves, colour, sq, target, true)
		}
	}
	return moves
}

// appendPawnMove adds a pawn move, fanning out into one move per promotion piece
// when the pawn reaches the far rank.
func appendPawnMove(moves []chess.Move, colour chess.Colour, from, to chess.Square, enPassant bool) []chess.Move {
	if to.Rank() != chess.PromotionRank(colour) {
		return append(moves, chess.NewSpecialMove(from, to, chess.Empty, enPassant, false))
	}
	for _, promotion := range chess.PromotionPieces {
		moves = append(moves, chess.NewSpecialMove(from, to, promotion, enPassant, false))
	}
	return moves
}
