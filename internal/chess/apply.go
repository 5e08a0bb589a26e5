package chess

// Execute applies the move to the board and updates the board state.
// Returns false, leaving the board untouched, if the start square is empty.
func (m Move) Execute(board *Board) bool {
	piece := board.Get(m.From)
	if piece == Empty {
		return false
	}

	colour := ExtractColour(piece)
	kind := ExtractPiece(piece)
	captured := board.Get(m.To)

	if m.Promotion != Empty {
		piece = MakeColouredPiece(colour, m.Promotion)
	}

	if kind == King {
		board.ClearCastling(colour, true)
		board.ClearCastling(colour, false)
	}
	if kind == Rook {
		updateCastlingRightsForRook(board, colour, m.From)
	}
	if captured != Empty && ExtractPiece(captured) == Rook {
		updateCastlingRightsForRook(board, ExtractColour(captured), m.To)
	}

	board.Set(m.From, Empty)
	board.Set(m.To, piece)

	// The captured pawn stands one rank behind the target, seen from the mover.
	if m.EnPassant {
		if ep, ok := board.EnPassantTarget(); ok {
			board.Set(Square(AddRank(ep, -ColourOffset(colour))), Empty)
		}
	}

	if m.Castle {
		applyCastleRook(board, colour, m)
	}

	board.EnPassant = false
	board.EPSquare = NoSquare
	if kind == Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
		board.EnPassant = true
		board.EPSquare = Square(AddRank(m.From, ColourOffset(colour)))
	}

	if kind == Pawn || captured != Empty || m.EnPassant {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	if board.ToMove == Black {
		board.MoveNumber++
	}
	board.ToMove = board.ToMove.Opposite()

	return true
}

// applyCastleRook moves the rook that accompanies a castling king.
func applyCastleRook(board *Board, colour Colour, m Move) {
	var rookFrom, rookTo Square
	kingside := m.To > m.From
	if kingside {
		rookFrom = m.From + 3
		rookTo = m.To - 1
	} else {
		rookFrom = m.From - 4
		rookTo = m.To + 1
	}

	board.Set(rookTo, board.Get(rookFrom))
	board.Set(rookFrom, Empty)
	board.ClearCastling(colour, kingside)
}

// updateCastlingRightsForRook removes castling rights when a rook leaves or is
// captured on its original corner.
func updateCastlingRightsForRook(board *Board, colour Colour, sq Square) {
	if sq == RookHome(colour, true) {
		board.ClearCastling(colour, true)
	}
	if sq == RookHome(colour, false) {
		board.ClearCastling(colour, false)
	}
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
