package hashing

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func initialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

func TestZobristHashConsistency(t *testing.T) {
	hash1 := GenerateZobristHash(initialBoard())
	hash2 := GenerateZobristHash(initialBoard())
	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := initialBoard()
	board2 := initialBoard()
	board2.Set(chess.MustParseSquare("e2"), chess.Empty)
	board2.Set(chess.MustParseSquare("e4"), chess.W(chess.Pawn))

	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristHashState(t *testing.T) {
	base := testutil.MustBoard(t, chess.White, "Ke1", "Ra1", "Rh1", "ke8", "pd5", "Pe5")

	tests := []struct {
		name   string
		modify func(*chess.Board)
	}{
		{"side to move", func(b *chess.Board) { b.ToMove = chess.Black }},
		{"white kingside right", func(b *chess.Board) { b.WKingCastle = true }},
		{"white queenside right", func(b *chess.Board) { b.WQueenCastle = true }},
		{"black kingside right", func(b *chess.Board) { b.BKingCastle = true }},
		{"black queenside right", func(b *chess.Board) { b.BQueenCastle = true }},
		{"en passant target", func(b *chess.Board) {
			b.EnPassant = true
			b.EPSquare = chess.MustParseSquare("d6")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modified := base.Copy()
			tt.modify(modified)
			if GenerateZobristHash(base) == GenerateZobristHash(modified) {
				t.Errorf("changing the %s did not change the hash", tt.name)
			}
		})
	}
}

func TestZobristHashIgnoresClocks(t *testing.T) {
	board1 := initialBoard()
	board2 := initialBoard()
	board2.HalfmoveClock = 12
	board2.MoveNumber = 40

	if GenerateZobristHash(board1) != GenerateZobristHash(board2) {
		t.Error("move counters changed the hash")
	}
}

func TestPlacementHash(t *testing.T) {
	board1 := initialBoard()
	board2 := initialBoard()
	board2.WKingCastle = false
	board2.EnPassant = true
	board2.EPSquare = chess.MustParseSquare("e3")

	if PlacementHash(board1) != PlacementHash(board2) {
		t.Error("castling rights or en passant changed the placement hash")
	}
	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("castling rights and en passant did not change the full hash")
	}

	board2 = initialBoard()
	board2.ToMove = chess.Black
	if PlacementHash(board1) == PlacementHash(board2) {
		t.Error("side to move did not change the placement hash")
	}
}

// The placement hash agrees with the textual repetition key.
func TestPlacementHashMatchesPositionKey(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w - - 7 30",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
	}

	for i, a := range fens {
		for _, b := range fens[i+1:] {
			boardA, err := engine.NewBoardFromFEN(a)
			testutil.AssertNoError(t, err)
			boardB, err := engine.NewBoardFromFEN(b)
			testutil.AssertNoError(t, err)

			sameKey := engine.PositionKey(boardA) == engine.PositionKey(boardB)
			sameHash := PlacementHash(boardA) == PlacementHash(boardB)
			if sameKey != sameHash {
				t.Errorf("%q vs %q: same key %v, same hash %v", a, b, sameKey, sameHash)
			}
		}
	}
}

func TestSideToMoveAffectsHash(t *testing.T) {
	board1 := initialBoard()
	board2 := initialBoard()
	board2.ToMove = chess.Black

	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("Side to move should affect hash")
	}
}

func TestNodeTable(t *testing.T) {
	table := NewNodeTable(0)

	if _, ok := table.Lookup(42, 3); ok {
		t.Error("Lookup on an empty table succeeded")
	}
	table.Store(42, 3, 8902)

	nodes, ok := table.Lookup(42, 3)
	if !ok || nodes != 8902 {
		t.Errorf("Lookup(42, 3) = %d, %v; want 8902, true", nodes, ok)
	}
	if _, ok := table.Lookup(42, 2); ok {
		t.Error("Lookup at another depth succeeded")
	}

	testutil.AssertEqual(t, table.Len(), 1)
	testutil.AssertEqual(t, table.Hits(), 1)
	testutil.AssertEqual(t, table.Misses(), 2)
	testutil.AssertFalse(t, table.IsFull(), "unlimited table full")
}

func TestNodeTableReset(t *testing.T) {
	table := NewNodeTable(0)
	table.Store(1, 1, 20)
	table.Lookup(1, 1)
	table.Lookup(2, 1)

	table.Reset()

	testutil.AssertEqual(t, table.Len(), 0)
	testutil.AssertEqual(t, table.Hits(), 0)
	testutil.AssertEqual(t, table.Misses(), 0)
	if _, ok := table.Lookup(1, 1); ok {
		t.Error("entry survived Reset")
	}
}

func TestNodeTableMaxCapacity(t *testing.T) {
	table := NewNodeTable(2)
	table.Store(1, 1, 10)
	table.Store(2, 1, 20)
	testutil.AssertTrue(t, table.IsFull(), "IsFull after two stores")

	table.Store(3, 1, 30)
	testutil.AssertEqual(t, table.Len(), 2)
	if _, ok := table.Lookup(3, 1); ok {
		t.Error("entry stored past capacity")
	}
}
