package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial position white", InitialFEN, chess.White, false},
		{"initial position black", InitialFEN, chess.Black, false},
		{"queen next to king", "8/8/8/8/8/5KQk/8/8 b - - 0 1", chess.Black, true},
		{"side not to move", "8/8/8/8/8/5KQk/8/8 w - - 0 1", chess.Black, true},
		{"mover's opponent is safe", "8/8/8/8/8/5KQk/8/8 b - - 0 1", chess.White, false},
		{"pawn in front does not check", "8/8/8/4k3/4P3/8/8/K7 b - - 0 1", chess.Black, false},
		{"pawn diagonal checks", "8/8/8/3k4/4P3/8/8/K7 b - - 0 1", chess.Black, true},
		{"black pawn checks downwards", "8/8/8/8/3p4/4K3/8/k7 w - - 0 1", chess.White, true},
		{"knight check", "k7/8/8/8/8/5n2/8/4K3 w - - 0 1", chess.White, true},
		{"blocked rook", "k3r3/8/8/8/4P3/8/8/4K3 w - - 0 1", chess.White, false},
		{"open rook", "k3r3/8/8/8/8/8/8/4K3 w - - 0 1", chess.White, true},
		{"no king", "8/8/8/8/8/8/8/R7 b - - 0 1", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			before := *board
			if got := IsInCheck(board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v; want %v", tt.colour, got, tt.want)
			}
			if *board != before {
				t.Error("IsInCheck modified the board")
			}
		})
	}
}

func TestPlayerInCheck(t *testing.T) {
	// Black to move with white's king capturable: white left its king en prise.
	board := mustFEN(t, "k3r3/8/8/8/8/8/8/4K3 b - - 0 1")
	if !PlayerInCheck(board) {
		t.Error("PlayerInCheck() = false; want true with the e-file open")
	}

	board = mustFEN(t, "k3r3/8/8/8/4P3/8/8/4K3 b - - 0 1")
	if PlayerInCheck(board) {
		t.Error("PlayerInCheck() = true; want false with the e-file blocked")
	}
}

func TestFindKing(t *testing.T) {
	board := NewInitialBoard()
	if got, ok := FindKing(board, chess.Black); !ok || got != sq("e8") {
		t.Errorf("FindKing(Black) = %s, %v; want e8, true", got, ok)
	}
	board = mustFEN(t, "8/8/8/8/8/8/8/R7 w - - 0 1")
	if _, ok := FindKing(board, chess.White); ok {
		t.Error("FindKing(White) found a king on a kingless board")
	}
}

// No legal move leaves the mover's own king attacked, and every rejected
// pseudo-legal move does.
func TestLegalMovesNeverLeaveKingAttacked(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"8/8/8/2k5/3q4/8/5B2/4K3 b - - 0 1",
		"8/8/8/KPp4r/8/8/8/7k w - c6 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board := mustFEN(t, fen)
			mover := board.ToMove
			legal := LegalMoves(board)

			for _, m := range legal {
				next := board.Copy()
				if !m.Execute(next) {
					t.Fatalf("legal move %s failed to execute", m)
				}
				if IsInCheck(next, mover) {
					t.Errorf("legal move %s leaves the king attacked", m)
				}
			}

			for _, m := range GenerateMoves(board, true) {
				if IsLegal(board, m) {
					continue
				}
				if !m.Castle && !PutsSelfInCheck(board, m) {
					t.Errorf("rejected move %s does not leave the king attacked", m)
				}
			}
		})
	}
}

func TestLegalMovesPreservesBoard(t *testing.T) {
	board := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := *board
	LegalMoves(board)
	HasLegalMoves(board)
	if *board != before {
		t.Error("move generation modified the board")
	}
}

func TestIsLegal(t *testing.T) {
	board := NewInitialBoard()
	tests := []struct {
		move chess.Move
		want bool
	}{
		{chess.NewMove(sq("e2"), sq("e4")), true},
		{chess.NewMove(sq("g1"), sq("f3")), true},
		{chess.NewMove(sq("e2"), sq("e5")), false},
		{chess.NewMove(sq("e7"), sq("e5")), false},
		{chess.NewSpecialMove(sq("e2"), sq("e4"), chess.Empty, true, false), false},
		{chess.NewSpecialMove(sq("e1"), sq("g1"), chess.Empty, false, true), false},
	}
	for _, tt := range tests {
		if got := IsLegal(board, tt.move); got != tt.want {
			t.Errorf("IsLegal(%+v) = %v; want %v", tt.move, got, tt.want)
		}
	}
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"initial", InitialFEN, true},
		{"checkmated", "8/8/8/8/8/5KQk/8/8 b - - 0 1", false},
		{"stalemated", "8/2k5/8/8/8/8/2q5/K7 w - - 0 1", false},
		{"empty board", "8/8/8/8/8/8/8/8 w - - 0 1", false},
		{"only blocked pawns", "8/8/8/8/4p3/4P3/8/8 w - - 0 1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			if got := HasLegalMoves(board); got != tt.want {
				t.Errorf("HasLegalMoves() = %v; want %v", got, tt.want)
			}
			if got := len(LegalMoves(board)) > 0; got != tt.want {
				t.Errorf("len(LegalMoves()) > 0 = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		wantCheckmate bool
		wantStalemate bool
	}{
		{"initial", InitialFEN, false, false},
		{"queen mate", "8/8/8/8/8/5KQk/8/8 b - - 0 1", true, false},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true, false},
		{"queen stalemate in the corner", "8/2k5/8/8/8/8/2q5/K7 w - - 0 1", false, true},
		{"queen and king stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false, true},
		{"check with an escape", "k3r3/8/8/8/8/8/8/4K3 w - - 0 1", false, false},
		{"check with a single escape", "8/8/8/8/8/5K1k/6Q1/8 b - - 0 1", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			if got := IsCheckmate(board); got != tt.wantCheckmate {
				t.Errorf("IsCheckmate() = %v; want %v", got, tt.wantCheckmate)
			}
			if got := IsStalemate(board); got != tt.wantStalemate {
				t.Errorf("IsStalemate() = %v; want %v", got, tt.wantStalemate)
			}
		})
	}
}

func TestCheckEvasions(t *testing.T) {
	// The rook on e8 checks; the king steps aside or the bishop interposes.
	board := mustFEN(t, "k3r3/8/8/8/8/8/8/4K1B1 w - - 0 1")
	testutil.AssertMoveSet(t, LegalMoves(board), []string{
		"e1d1", "e1d2", "e1f1", "e1f2", "g1e3",
	})
}

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"K vs K", "8/8/3k4/8/8/8/2K5/8 b - - 0 1", true},
		{"empty board", "8/8/8/8/8/8/8/8 w - - 0 1", true},
		{"several kings", "k6k/8/8/8/8/8/8/K6K w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", false},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"lone pawn", "8/8/8/8/8/8/4P3/8 w - - 0 1", false},
		{"initial position", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustFEN(t, tt.fen)
			if got := HasInsufficientMaterial(board); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}
