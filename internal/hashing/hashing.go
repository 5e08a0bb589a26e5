// Package hashing provides Zobrist position hashing and a node-count cache for
// move-tree counting.
package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var (
	zobristOnce sync.Once

	zobristPieces   [2][chess.NumPieceValues][chess.NumSquares]uint64
	zobristSide     uint64
	zobristCastling [4]uint64
	zobristEPFile   [chess.BoardSize]uint64
)

// initZobrist fills the key tables from a fixed splitmix64 sequence so hashes
// are stable across runs.
func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for colour := 0; colour < 2; colour++ {
			for kind := chess.Pawn; kind < chess.NumPieceValues; kind++ {
				for sq := 0; sq < chess.NumSquares; sq++ {
					zobristPieces[colour][kind][sq] = next()
				}
			}
		}
		zobristSide = next()
		for i := range zobristCastling {
			zobristCastling[i] = next()
		}
		for i := range zobristEPFile {
			zobristEPFile[i] = next()
		}
	})
}

// PlacementHash hashes piece placement and side to move only, the same identity
// used for repetition counting.
func PlacementHash(board *chess.Board) uint64 {
	initZobrist()

	var hash uint64
	for sq, piece := range board.Squares {
		if piece == chess.Empty {
			continue
		}
		hash ^= zobristPieces[chess.ExtractColour(piece)][chess.ExtractPiece(piece)][sq]
	}
	if board.ToMove == chess.Black {
		hash ^= zobristSide
	}
	return hash
}

// GenerateZobristHash hashes everything that affects the legal moves of a
// position: placement, side to move, castling rights and en passant file.
func GenerateZobristHash(board *chess.Board) uint64 {
	hash := PlacementHash(board)

	rights := [...]bool{board.WKingCastle, board.WQueenCastle, board.BKingCastle, board.BQueenCastle}
	for i, ok := range rights {
		if ok {
			hash ^= zobristCastling[i]
		}
	}
	if ep, ok := board.EnPassantTarget(); ok {
		hash ^= zobristEPFile[ep.File()]
	}
	return hash
}
