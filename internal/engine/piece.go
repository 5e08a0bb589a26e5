package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// direction is a (file, rank) step.
type direction [2]int

var (
	bishopDirs = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs   = []direction{{1, 0}, {0, -1}, {-1, 0}, {0, 1}}
	kingDirs   = []direction{{1, 0}, {0, -1}, {-1, 0}, {0, 1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	knightOffsets = []direction{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// maxRayLength is long enough to reach any board edge.
const maxRayLength = chess.BoardSize - 1

// appendSlidingMoves casts rays from sq in each direction for at most maxDist steps.
// A ray stops at the first occupied square, which is included only if it holds an enemy.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, sq chess.Square, dirs []direction, maxDist int) []chess.Move {
	colour := board.ToMove
	for _, dir := range dirs {
		for dist := 1; dist <= maxDist; dist++ {
			target, ok := sq.Offset(dir[0]*dist, dir[1]*dist)
			if !ok {
				break
			}
			if !board.IsEmpty(target) {
				if board.IsEnemy(target, colour) {
					moves = append(moves, chess.NewMove(sq, target))
				}
				break
			}
			moves = append(moves, chess.NewMove(sq, target))
		}
	}
	return moves
}

// appendKnightMoves adds the knight jumps that land on board and not on a friendly piece.
func appendKnightMoves(moves []chess.Move, board *chess.Board, sq chess.Square) []chess.Move {
	colour := board.ToMove
	for _, offset := range knightOffsets {
		target, ok := sq.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		if board.IsEmpty(target) || board.IsEnemy(target, colour) {
			moves = append(moves, chess.NewMove(sq, target))
		}
	}
	return moves
}
