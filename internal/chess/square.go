package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square is a linear board index: 0 = a1, 7 = h1, 56 = a8, 63 = h8.
type Square int8

// NoSquare marks the absence of a square.
const NoSquare Square = -1

// Rank returns the 0-based rank of the square.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// File returns the 0-based file of the square.
func (s Square) File() int {
	return int(s) % BoardSize
}

// SquareAt returns the square on the given 0-based file and rank.
func SquareAt(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

// AddRank returns the raw index delta ranks away. The result may be off the board.
func AddRank(s Square, delta int) int {
	return int(s) + delta*BoardSize
}

// AddFile returns the raw index delta files away. The result may be off the board
// or wrapped onto an adjacent rank.
func AddFile(s Square, delta int) int {
	return int(s) + delta
}

// IsOnBoard reports whether a rank/file pair lies on the board.
func IsOnBoard(rank, file int) bool {
	return rank >= 0 && rank < BoardSize && file >= 0 && file < BoardSize
}

// IsOnBoardIndex reports whether a raw linear index lies on the board.
// It cannot detect file wrap-around.
func IsOnBoardIndex(idx int) bool {
	return idx >= 0 && idx < NumSquares
}

// Offset returns the square dFile files and dRank ranks away, and false if
// that leaves the board.
func (s Square) Offset(dFile, dRank int) (Square, bool) {
	file := s.File() + dFile
	rank := s.Rank() + dRank
	if !IsOnBoard(rank, file) {
		return NoSquare, false
	}
	return SquareAt(file, rank), true
}

// String returns the square in algebraic form, e.g. "e4".
func (s Square) String() string {
	if !IsOnBoardIndex(int(s)) {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}

// ParseSquare converts algebraic text such as "e4" to a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	file := int(text[0]) - FileBase
	rank := int(text[1]) - RankBase
	if !IsOnBoard(rank, file) {
		return NoSquare, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	return SquareAt(file, rank), nil
}

// MustParseSquare is ParseSquare for known-good constants; it panics on bad input.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}
