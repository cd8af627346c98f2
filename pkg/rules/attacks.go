// Package rules implements pseudo-legal move generation, legality filtering via check
// detection, castling and en-passant generation, and terminal-state detection. Search
// correctness depends on this package being right, so it is kept small and literal rather
// than clever.
package rules

import "github.com/riftsquare/chesscore/pkg/board"

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {-1, 2}, {-2, 1},
	{1, -2}, {2, -1}, {-1, -2}, {-2, -1},
}

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// IsAttacked reports whether sq is attacked by any piece of color by. Scans outward from sq:
// pawn diagonals (colour-dependent), knight offsets, bishop/queen diagonal rays, rook/queen
// orthogonal rays, and king adjacency.
func IsAttacked(b *board.Board, sq board.Square, by board.Color) bool {
	if pawnAttacks(b, sq, by) {
		return true
	}
	for _, off := range knightOffsets {
		at := board.NewSquare(sq.File+off[0], sq.Rank+off[1])
		if !at.IsValid() {
			continue
		}
		p := b.At(at)
		if p.Kind == board.Knight && p.Color == by {
			return true
		}
	}
	if rayAttack(b, sq, by, bishopDirs, board.Bishop) {
		return true
	}
	if rayAttack(b, sq, by, rookDirs, board.Rook) {
		return true
	}
	for _, off := range kingOffsets {
		at := board.NewSquare(sq.File+off[0], sq.Rank+off[1])
		if !at.IsValid() {
			continue
		}
		p := b.At(at)
		if p.Kind == board.King && p.Color == by {
			return true
		}
	}
	return false
}

// pawnAttacks reports whether a pawn of color `by` attacks sq diagonally.
func pawnAttacks(b *board.Board, sq board.Square, by board.Color) bool {
	dir := -1 // white pawns attack from one rank below
	if by == board.Black {
		dir = 1 // black pawns attack from one rank above
	}
	for _, df := range []int{-1, 1} {
		at := board.NewSquare(sq.File+df, sq.Rank+dir)
		if !at.IsValid() {
			continue
		}
		p := b.At(at)
		if p.Kind == board.Pawn && p.Color == by {
			return true
		}
	}
	return false
}

// rayAttack walks each direction from sq until blocked, reporting true if the first piece hit
// is either a slider of `kind` or a queen, owned by `by`.
func rayAttack(b *board.Board, sq board.Square, by board.Color, dirs [4][2]int, kind board.Kind) bool {
	for _, d := range dirs {
		f, r := sq.File+d[0], sq.Rank+d[1]
		for {
			at := board.NewSquare(f, r)
			if !at.IsValid() {
				break
			}
			p := b.At(at)
			if !p.IsEmpty() {
				if p.Color == by && (p.Kind == kind || p.Kind == board.Queen) {
					return true
				}
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return false
}

// IsInCheck reports whether side's king is attacked. A missing king returns false, matching
// the spec's propagation policy for malformed positions.
func IsInCheck(b *board.Board, side board.Color) bool {
	kingSq, ok := b.KingSquare(side)
	if !ok {
		return false
	}
	return IsAttacked(b, kingSq, side.Opponent())
}
