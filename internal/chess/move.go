package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move is a single ply. It carries no reference to the board it came from.
// Two moves are equal iff all fields match, so Move values compare with ==.
type Move struct {
	From Square
	To   Square

	// The piece kind promoted to (Empty if not a promotion).
	Promotion Piece

	// The captured pawn does not stand on To.
	EnPassant bool

	// A king's castling move. From and To are the king's own squares.
	Castle bool
}

// NewMove creates a move without promotion, en passant or castling.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewSpecialMove creates a move with every field given explicitly.
func NewSpecialMove(from, to Square, promotion Piece, enPassant, castle bool) Move {
	return Move{
		From:      from,
		To:        to,
		Promotion: promotion,
		EnPassant: enPassant,
		Castle:    castle,
	}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Castle
}

// IsKingside returns true for a castling move towards the h-file.
func (m Move) IsKingside() bool {
	return m.Castle && m.To > m.From
}

// promotionLetters maps promotion kinds to their lowercase long algebraic letter.
var promotionLetters = map[Piece]byte{
	Queen:  'q',
	Rook:   'r',
	Bishop: 'b',
	Knight: 'n',
}

// String returns the move as <from><to>[promotion], e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if letter, ok := promotionLetters[m.Promotion]; ok {
		sb.WriteByte(letter)
	}
	return sb.String()
}

// ParsePromotion converts a promotion letter to a piece kind.
func ParsePromotion(c byte) (Piece, error) {
	switch c {
	case 'q', 'Q':
		return Queen, nil
	case 'r', 'R':
		return Rook, nil
	case 'b', 'B':
		return Bishop, nil
	case 'n', 'N':
		return Knight, nil
	default:
		return Empty, fmt.Errorf("%q: %w", c, errors.ErrInvalidPromotion)
	}
}

// ParseMove decodes long algebraic text (e.g. "e2e4", "a7a8q") against a board.
// The board decides the en passant and castling flags; legality is not checked.
func ParseMove(text string, board *Board) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}

	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", text)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", text)
	}

	move := NewMove(from, to)
	if len(text) == 5 {
		if move.Promotion, err = ParsePromotion(text[4]); err != nil {
			return Move{}, errors.Wrapf(err, "move %q", text)
		}
	}

	piece := board.Get(from)
	if piece == Empty {
		return move, nil
	}

	switch ExtractPiece(piece) {
	case Pawn:
		if ep, ok := board.EnPassantTarget(); ok && ep == to {
			move.EnPassant = true
		}
	case King:
		colour := ExtractColour(piece)
		if from == KingHome(colour) && to.Rank() == from.Rank() {
			if delta := to.File() - from.File(); delta == 2 || delta == -2 {
				move.Castle = true
			}
		}
	}

	return move, nil
}
