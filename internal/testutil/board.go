package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var pieceLetters = map[byte]chess.Piece{
	'P': chess.Pawn,
	'N': chess.Knight,
	'B': chess.Bishop,
	'R': chess.Rook,
	'Q': chess.Queen,
	'K': chess.King,
}

// MustBoard builds a board from piece placements such as "Ke1" (white king on e1)
// or "pd5" (black pawn on d5). The board has no castling rights and no
// en passant target. It calls t.Fatal on a malformed placement.
func MustBoard(t testing.TB, toMove chess.Colour, placements ...string) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	board.ToMove = toMove
	for _, p := range placements {
		if len(p) != 3 {
			t.Fatalf("bad piece placement %q", p)
		}
		colour := chess.White
		letter := p[0]
		if letter >= 'a' && letter <= 'z' {
			colour = chess.Black
			letter -= 'a' - 'A'
		}
		kind, ok := pieceLetters[letter]
		if !ok {
			t.Fatalf("bad piece letter in %q", p)
		}
		sq, err := chess.ParseSquare(p[1:])
		if err != nil {
			t.Fatalf("bad square in %q: %v", p, err)
		}
		board.Set(sq, chess.MakeColouredPiece(colour, kind))
	}
	return board
}

// MoveStrings returns the long algebraic text of each move, in order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// AssertMoveSet compares moves against the wanted move texts, ignoring order.
func AssertMoveSet(t testing.TB, got []chess.Move, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	less := func(a, b string) bool { return a < b }
	if diff := cmp.Diff(want, MoveStrings(got), cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%smove set mismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}

// AssertHasMove fails unless a move with the given text is present.
func AssertHasMove(t testing.TB, moves []chess.Move, text string, msgAndArgs ...interface{}) {
	t.Helper()
	if FindMove(moves, text) == nil {
		t.Errorf("%s%s not in %v", prefix(msgAndArgs...), text, MoveStrings(moves))
	}
}

// AssertNoMove fails if a move with the given text is present.
func AssertNoMove(t testing.TB, moves []chess.Move, text string, msgAndArgs ...interface{}) {
	t.Helper()
	if FindMove(moves, text) != nil {
		t.Errorf("%s%s should not be in %v", prefix(msgAndArgs...), text, MoveStrings(moves))
	}
}

// FindMove returns the first move with the given text, or nil.
func FindMove(moves []chess.Move, text string) *chess.Move {
	for i := range moves {
		if moves[i].String() == text {
			return &moves[i]
		}
	}
	return nil
}
