package perft

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	endgameFEN   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	promotionFEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	talkchessFEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// Published perft figures.
func TestPerftKnownCounts(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
		slow  bool
	}{
		{"initial depth 0", engine.InitialFEN, 0, 1, false},
		{"initial depth 1", engine.InitialFEN, 1, 20, false},
		{"initial depth 2", engine.InitialFEN, 2, 400, false},
		{"initial depth 3", engine.InitialFEN, 3, 8902, true},
		{"kiwipete depth 1", kiwipeteFEN, 1, 48, false},
		{"kiwipete depth 2", kiwipeteFEN, 2, 2039, true},
		{"endgame depth 1", endgameFEN, 1, 14, false},
		{"endgame depth 2", endgameFEN, 2, 191, false},
		{"endgame depth 3", endgameFEN, 3, 2812, true},
		{"promotions depth 1", promotionFEN, 1, 6, false},
		{"promotions depth 2", promotionFEN, 2, 264, true},
		{"talkchess depth 1", talkchessFEN, 1, 44, false},
		{"talkchess depth 2", talkchessFEN, 2, 1486, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.slow && testing.Short() {
				t.Skip("skipping deep perft in short mode")
			}
			board := mustBoard(t, tt.fen)
			if got := Perft(board, tt.depth); got != tt.want {
				t.Errorf("Perft(%d) = %d; want %d", tt.depth, got, tt.want)
			}
		})
	}
}

func TestPerftLeavesBoardUntouched(t *testing.T) {
	board := mustBoard(t, kiwipeteFEN)
	before := *board
	Perft(board, 2)
	if diff := cmp.Diff(before, *board); diff != "" {
		t.Errorf("board modified by Perft (-before +after):\n%s", diff)
	}
}

func TestPerftNegativeDepth(t *testing.T) {
	if got := Perft(engine.NewInitialBoard(), -1); got != 0 {
		t.Errorf("Perft(-1) = %d; want 0", got)
	}
}

func TestDivide(t *testing.T) {
	board := engine.NewInitialBoard()
	result, err := Divide(board, 2, WithWorkers(4))
	if err != nil {
		t.Fatalf("Divide() error: %v", err)
	}

	if result.Nodes != 400 {
		t.Errorf("Nodes = %d; want 400", result.Nodes)
	}
	if len(result.Moves) != 20 {
		t.Fatalf("len(Moves) = %d; want 20", len(result.Moves))
	}
	for _, mc := range result.Moves {
		if mc.Nodes != 20 {
			t.Errorf("%s: %d; want 20", mc.Move, mc.Nodes)
		}
	}
	for i := 1; i < len(result.Moves); i++ {
		if result.Moves[i-1].Move.String() >= result.Moves[i].Move.String() {
			t.Errorf("moves not sorted: %s before %s", result.Moves[i-1].Move, result.Moves[i].Move)
		}
	}
}

func TestDivideSumMatchesPerft(t *testing.T) {
	for _, fen := range []string{engine.InitialFEN, kiwipeteFEN, endgameFEN, promotionFEN} {
		t.Run(fen, func(t *testing.T) {
			board := mustBoard(t, fen)
			result, err := Divide(board, 2, WithWorkers(3))
			if err != nil {
				t.Fatalf("Divide() error: %v", err)
			}
			var sum uint64
			for _, mc := range result.Moves {
				sum += mc.Nodes
			}
			if sum != result.Nodes {
				t.Errorf("sum of moves = %d; Nodes = %d", sum, result.Nodes)
			}
			if want := Perft(board, 2); result.Nodes != want {
				t.Errorf("Divide Nodes = %d; Perft = %d", result.Nodes, want)
			}
		})
	}
}

func TestDivideWithCache(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	// Transpositions first appear three plies down.
	board := mustBoard(t, endgameFEN)

	plain, err := Divide(board, 4, WithWorkers(2))
	if err != nil {
		t.Fatalf("Divide() error: %v", err)
	}
	cached, err := Divide(board, 4, WithWorkers(2), WithHashEntries(1<<16))
	if err != nil {
		t.Fatalf("Divide() with cache error: %v", err)
	}

	if diff := cmp.Diff(plain.Counts(), cached.Counts()); diff != "" {
		t.Errorf("cached counts differ (-plain +cached):\n%s", diff)
	}
	if cached.Nodes != 43238 {
		t.Errorf("cached Nodes = %d; want 43238", cached.Nodes)
	}
	if cached.CacheHits == 0 {
		t.Error("expected transpositions to hit the cache")
	}
	if plain.CacheHits != 0 {
		t.Errorf("uncached CacheHits = %d; want 0", plain.CacheHits)
	}
}

func TestDivideEdgeDepths(t *testing.T) {
	board := engine.NewInitialBoard()

	result, err := Divide(board, 0)
	if err != nil {
		t.Fatalf("Divide(0) error: %v", err)
	}
	if result.Nodes != 1 || len(result.Moves) != 0 {
		t.Errorf("Divide(0) = %+v; want 1 node, no moves", result)
	}

	_, err = Divide(board, -1)
	if !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Divide(-1) error = %v; want ErrInvalidConfig", err)
	}
}

func TestDivideNoLegalMoves(t *testing.T) {
	board := mustBoard(t, "8/8/8/8/8/5KQk/8/8 b - - 0 1")
	result, err := Divide(board, 3)
	if err != nil {
		t.Fatalf("Divide() error: %v", err)
	}
	if result.Nodes != 0 || len(result.Moves) != 0 {
		t.Errorf("Divide() on checkmate = %+v; want zero", result)
	}
}

func TestResultString(t *testing.T) {
	result, err := Divide(mustBoard(t, endgameFEN), 1)
	if err != nil {
		t.Fatalf("Divide() error: %v", err)
	}
	out := result.String()
	if !strings.Contains(out, "b4b1: 1\n") {
		t.Errorf("String() missing b4b1 line:\n%s", out)
	}
	if !strings.HasSuffix(out, "Nodes searched: 14\n") {
		t.Errorf("String() missing total:\n%s", out)
	}
}

// oracleDivide counts with an independent move generator.
func oracleDivide(b *dragontoothmg.Board, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	for _, move := range b.GenerateLegalMoves() {
		key := move.String()
		unapply := b.Apply(move)
		counts[key] = oraclePerft(b, depth-1)
		unapply()
	}
	return counts
}

func oraclePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		unapply := b.Apply(move)
		nodes += oraclePerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestDivideMatchesOracle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping oracle comparison in short mode")
	}
	for _, fen := range []string{engine.InitialFEN, kiwipeteFEN, endgameFEN} {
		t.Run(fen, func(t *testing.T) {
			result, err := Divide(mustBoard(t, fen), 2, WithWorkers(4), WithHashEntries(4096))
			if err != nil {
				t.Fatalf("Divide() error: %v", err)
			}
			oracle := dragontoothmg.ParseFen(fen)
			want := oracleDivide(&oracle, 2)
			if diff := cmp.Diff(want, result.Counts()); diff != "" {
				t.Errorf("divide mismatch (-oracle +got):\n%s", diff)
			}
		})
	}
}

func BenchmarkPerftInitial3(b *testing.B) {
	board := engine.NewInitialBoard()
	for i := 0; i < b.N; i++ {
		Perft(board, 3)
	}
}

func BenchmarkDivideKiwipete2(b *testing.B) {
	board := mustBoard(b, kiwipeteFEN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Divide(board, 2, WithWorkers(4), WithHashEntries(1<<14)); err != nil {
			b.Fatal(err)
		}
	}
}
