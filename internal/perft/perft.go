// Package perft counts the leaf nodes of the legal move tree. The counts are
// compared against published figures to verify move generation.
package perft

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// MoveCount is the number of leaf nodes below one root move.
type MoveCount struct {
	Move  chess.Move
	Nodes uint64
}

// Result holds the outcome of a divided count.
type Result struct {
	Depth     int
	Nodes     uint64
	Moves     []MoveCount // Sorted by move text
	CacheHits int
}

// Counts returns the per-root-move counts keyed by move text.
func (r Result) Counts() map[string]uint64 {
	counts := make(map[string]uint64, len(r.Moves))
	for _, mc := range r.Moves {
		counts[mc.Move.String()] = mc.Nodes
	}
	return counts
}

// String renders one "move: nodes" line per root move followed by the total.
func (r Result) String() string {
	var sb strings.Builder
	for _, mc := range r.Moves {
		fmt.Fprintf(&sb, "%s: %d\n", mc.Move, mc.Nodes)
	}
	fmt.Fprintf(&sb, "\nNodes searched: %d\n", r.Nodes)
	return sb.String()
}

type options struct {
	workers     int
	hashEntries int
}

// Option configures Divide.
type Option func(*options)

// WithWorkers sets how many root moves are counted concurrently.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithHashEntries enables a shared node cache of at most n entries.
// Zero disables caching.
func WithHashEntries(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.hashEntries = n
		}
	}
}

// Perft returns the number of leaf nodes of the legal move tree at depth.
// The board is not modified.
func Perft(board *chess.Board, depth int) uint64 {
	if depth < 0 {
		return 0
	}
	return count(board, depth, nil)
}

// Divide counts the leaf nodes below each legal root move. Root moves are
// executed on private board copies and counted by a worker pool.
func Divide(board *chess.Board, depth int, opts ...Option) (Result, error) {
	if depth < 0 {
		return Result{}, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	result := Result{Depth: depth}
	if depth == 0 {
		result.Nodes = 1
		return result, nil
	}

	var table *hashing.ThreadSafeNodeTable
	if o.hashEntries > 0 {
		table = hashing.NewThreadSafeNodeTable(o.hashEntries)
	}

	roots := engine.LegalMoves(board)
	bufferSize := len(roots)
	if bufferSize == 0 {
		return result, nil
	}

	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		res := worker.ProcessResult{Index: item.Index, Move: item.Move}
		if !item.Move.Execute(item.Board) {
			res.Error = errors.Wrapf(errors.ErrIllegalMove, "root move %s", item.Move)
			return res
		}
		res.Nodes = count(item.Board, item.Depth, table)
		return res
	}
	pool := worker.NewPool(processFunc, worker.WithWorkers(o.workers), worker.WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for i, move := range roots {
			pool.Submit(worker.WorkItem{Board: board.Copy(), Move: move, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	// Results are consumed by this goroutine only.
	byText := make(map[string]MoveCount, len(roots))
	var firstErr error
	for res := range pool.Results() {
		if res.Error != nil && firstErr == nil {
			firstErr = res.Error
			pool.Stop()
			continue
		}
		byText[res.Move.String()] = MoveCount{Move: res.Move, Nodes: res.Nodes}
		result.Nodes += res.Nodes
	}
	if firstErr != nil {
		return Result{}, firstErr
	}

	keys := maps.Keys(byText)
	slices.Sort(keys)
	for _, key := range keys {
		result.Moves = append(result.Moves, byText[key])
	}
	if table != nil {
		result.CacheHits = table.Hits()
	}
	return result, nil
}

// count walks the legal move tree. Subtree totals are cached in table when it
// is not nil.
func count(board *chess.Board, depth int, table *hashing.ThreadSafeNodeTable) uint64 {
	if depth == 0 {
		return 1
	}

	var hash uint64
	if table != nil {
		hash = hashing.GenerateZobristHash(board)
		if nodes, ok := table.Lookup(hash, depth); ok {
			return nodes
		}
	}

	moves := engine.LegalMoves(board)
	var nodes uint64
	if depth == 1 {
		nodes = uint64(len(moves))
	} else {
		for _, move := range moves {
			child := board.Copy()
			move.Execute(child)
			nodes += count(child, depth-1, table)
		}
	}

	if table != nil {
		table.Store(hash, depth, nodes)
	}
	return nodes
}
