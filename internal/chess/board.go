package chess

// Board represents a chess position with all state needed to generate and apply moves.
type Board struct {
	// The board squares, indexed by Square (a1 = 0 ... h8 = 63).
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// The fullmove number, starting at 1 and incremented after Black moves.
	MoveNumber uint

	// Castling rights for the 4 castling options.
	WKingCastle  bool
	WQueenCastle bool
	BKingCastle  bool
	BQueenCastle bool

	// Is EnPassant capture possible? If so then EPSquare holds the square
	// the capturing pawn lands on.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
		EPSquare:   NoSquare,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [NumSquares]Piece{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[SquareAt(file, 0)] = W(backRank[file])
		b.Squares[SquareAt(file, 1)] = W(Pawn)
		b.Squares[SquareAt(file, 6)] = B(Pawn)
		b.Squares[SquareAt(file, 7)] = B(backRank[file])
	}

	b.WKingCastle = true
	b.WQueenCastle = true
	b.BKingCastle = true
	b.BQueenCastle = true

	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.EPSquare = NoSquare
	b.HalfmoveClock = 0
}

// Get returns the piece on the square.
func (b *Board) Get(sq Square) Piece {
	return b.Squares[sq]
}

// Set places a piece on the square.
func (b *Board) Set(sq Square, piece Piece) {
	b.Squares[sq] = piece
}

// IsEmpty reports whether the square is vacant.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Squares[sq] == Empty
}

// IsEnemy reports whether the square holds a piece not belonging to colour.
func (b *Board) IsEnemy(sq Square, colour Colour) bool {
	piece := b.Squares[sq]
	return piece != Empty && ExtractColour(piece) != colour
}

// FindPiece returns the first square, in index order, holding the coloured piece.
func (b *Board) FindPiece(piece Piece) (Square, bool) {
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Squares[sq] == piece {
			return sq, true
		}
	}
	return NoSquare, false
}

// EnPassantTarget returns the en passant target square, if any.
func (b *Board) EnPassantTarget() (Square, bool) {
	if !b.EnPassant {
		return NoSquare, false
	}
	return b.EPSquare, true
}

// CanCastle reports the castling right of colour in one direction.
func (b *Board) CanCastle(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return b.WKingCastle
	case colour == White:
		return b.WQueenCastle
	case kingside:
		return b.BKingCastle
	default:
		return b.BQueenCastle
	}
}

// ClearCastling removes the castling right of colour in one direction.
func (b *Board) ClearCastling(colour Colour, kingside bool) {
	switch {
	case colour == White && kingside:
		b.WKingCastle = false
	case colour == White:
		b.WQueenCastle = false
	case kingside:
		b.BKingCastle = false
	default:
		b.BQueenCastle = false
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// KingHome returns the square the colour's king starts on.
func KingHome(colour Colour) Square {
	return SquareAt(4, HomeRank(colour))
}

// RookHome returns the corner square of the colour's castling rook.
func RookHome(colour Colour, kingside bool) Square {
	if kingside {
		return SquareAt(7, HomeRank(colour))
	}
	return SquareAt(0, HomeRank(colour))
}
