package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GenerateMoves returns the pseudo-legal moves of the side to move: moves that obey
// piece geometry and occupancy but may leave the mover's king attacked.
// Castling moves are only produced when withCastling is set.
//
// Moves come out in ascending order of origin square, then in each piece's own order.
func GenerateMoves(board *chess.Board, withCastling bool) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	colour := board.ToMove

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.Get(sq)
		if piece == chess.Empty || chess.ExtractColour(piece) != colour {
			continue
		}
		moves = appendPieceMoves(moves, board, sq, chess.ExtractPiece(piece), withCastling)
	}
	return moves
}

// appendPieceMoves dispatches move generation on the piece kind.
func appendPieceMoves(moves []chess.Move, board *chess.Board, sq chess.Square, kind chess.Piece, withCastling bool) []chess.Move {
	switch kind {
	case chess.Pawn:
		return appendPawnMoves(moves, board, sq)
	case chess.Knight:
		return appendKnightMoves(moves, board, sq)
	case chess.Bishop:
		return appendSlidingMoves(moves, board, sq, bishopDirs, maxRayLength)
	case chess.Rook:
		return appendSlidingMoves(moves, board, sq, rookDirs, maxRayLength)
	case chess.Queen:
		moves = appendSlidingMoves(moves, board, sq, rookDirs, maxRayLength)
		return appendSlidingMoves(moves, board, sq, bishopDirs, maxRayLength)
	case chess.King:
		moves = appendSlidingMoves(moves, board, sq, kingDirs, 1)
		if withCastling {
			moves = appendCastlingMoves(moves, board, sq)
		}
		return moves
	}
	return moves
}
