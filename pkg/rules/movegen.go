package rules

import (
	"github.com/riftsquare/chesscore/pkg/board"
	"github.com/riftsquare/chesscore/pkg/position"
)

// pseudoLegalMoves enumerates every pseudo-legal move for side on pos, per the per-piece table
// in the spec: pawn pushes/captures/en passant, knight offsets, bishop/rook/queen rays, king
// steps plus castling.
func pseudoLegalMoves(pos *position.Position, side board.Color) board.MoveList {
	moves := make(board.MoveList, 0, board.MaxMoves)
	b := &pos.Board

	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			sq := board.NewSquare(f, r)
			p := b.At(sq)
			if p.IsEmpty() || p.Color != side {
				continue
			}
			switch p.Kind {
			case board.Pawn:
				moves = appendPawnMoves(moves, pos, sq, side)
			case board.Knight:
				moves = appendOffsetMoves(moves, b, sq, side, knightOffsets)
			case board.Bishop:
				moves = appendRayMoves(moves, b, sq, side, bishopDirs)
			case board.Rook:
				moves = appendRayMoves(moves, b, sq, side, rookDirs)
			case board.Queen:
				moves = appendRayMoves(moves, b, sq, side, bishopDirs)
				moves = appendRayMoves(moves, b, sq, side, rookDirs)
			case board.King:
				moves = appendOffsetMoves(moves, b, sq, side, kingOffsets)
				moves = appendCastlingMoves(moves, pos, sq, side)
			}
		}
	}
	return moves
}

func appendOffsetMoves(moves board.MoveList, b *board.Board, sq board.Square, side board.Color, offsets [8][2]int) board.MoveList {
	for _, off := range offsets {
		to := board.NewSquare(sq.File+off[0], sq.Rank+off[1])
		if !to.IsValid() {
			continue
		}
		target := b.At(to)
		if target.IsEmpty() || target.Color != side {
			moves = append(moves, board.Move{From: sq, To: to})
		}
	}
	return moves
}

func appendRayMoves(moves board.MoveList, b *board.Board, sq board.Square, side board.Color, dirs [4][2]int) board.MoveList {
	for _, d := range dirs {
		f, r := sq.File+d[0], sq.Rank+d[1]
		for {
			to := board.NewSquare(f, r)
			if !to.IsValid() {
				break
			}
			target := b.At(to)
			if target.IsEmpty() {
				moves = append(moves, board.Move{From: sq, To: to})
				f += d[0]
				r += d[1]
				continue
			}
			if target.Color != side {
				moves = append(moves, board.Move{From: sq, To: to})
			}
			break
		}
	}
	return moves
}

func appendPawnMoves(moves board.MoveList, pos *position.Position, sq board.Square, side board.Color) board.MoveList {
	b := &pos.Board

	dir, startRank := 1, 1
	if side == board.Black {
		dir, startRank = -1, 6
	}

	one := board.NewSquare(sq.File, sq.Rank+dir)
	if one.IsValid() && b.IsEmpty(one) {
		moves = append(moves, board.Move{From: sq, To: one})

		if sq.Rank == startRank {
			two := board.NewSquare(sq.File, sq.Rank+2*dir)
			if b.IsEmpty(two) {
				moves = append(moves, board.Move{From: sq, To: two})
			}
		}
	}

	for _, df := range []int{-1, 1} {
		to := board.NewSquare(sq.File+df, sq.Rank+dir)
		if !to.IsValid() {
			continue
		}
		target := b.At(to)
		if !target.IsEmpty() && target.Color != side {
			moves = append(moves, board.Move{From: sq, To: to})
			continue
		}
		if target.IsEmpty() && isEnPassantTarget(pos, side, sq, to) {
			moves = append(moves, board.Move{From: sq, To: to})
		}
	}
	return moves
}

// isEnPassantTarget reports whether `to`, a diagonal step from sq, is a legal en passant
// destination: the destination pawn is adjacent on the same rank as sq, and last_move shows an
// opponent pawn that just advanced two squares.
func isEnPassantTarget(pos *position.Position, side board.Color, sq, to board.Square) bool {
	if !pos.HasLastMove {
		return false
	}
	lm := pos.LastMove
	if abs(lm.To.Rank-lm.From.Rank) != 2 {
		return false
	}
	captured := pos.Board.At(lm.To)
	if captured.Kind != board.Pawn || captured.Color == side {
		return false
	}
	if lm.To.Rank != sq.Rank || lm.To.File != to.File {
		return false
	}
	return true
}

// appendCastlingMoves appends any legal castling moves for the king on sq. Conditions: king
// and the corresponding rook have not moved, the intermediate squares are empty, the king is
// not currently in check, does not pass through an attacked square, and does not land on an
// attacked square.
func appendCastlingMoves(moves board.MoveList, pos *position.Position, sq board.Square, side board.Color) board.MoveList {
	b := &pos.Board
	king := b.At(sq)
	if king.HasMoved {
		return moves
	}
	homeRank := 0
	if side == board.Black {
		homeRank = 7
	}
	if sq.File != 4 || sq.Rank != homeRank {
		return moves
	}
	if IsInCheck(b, side) {
		return moves
	}

	// King-side: rook on h-file, king travels e->f->g.
	if canCastle(b, side, homeRank, 7, []int{5, 6}, []int{5, 6}) {
		moves = append(moves, board.Move{From: sq, To: board.NewSquare(6, homeRank)})
	}
	// Queen-side: rook on a-file, king travels e->d->c, rook path needs b,c,d empty.
	if canCastle(b, side, homeRank, 0, []int{1, 2, 3}, []int{3, 2}) {
		moves = append(moves, board.Move{From: sq, To: board.NewSquare(2, homeRank)})
	}
	return moves
}

func canCastle(b *board.Board, side board.Color, homeRank, rookFile int, emptyFiles, kingPathFiles []int) bool {
	rook := b.At(board.NewSquare(rookFile, homeRank))
	if rook.Kind != board.Rook || rook.Color != side || rook.HasMoved {
		return false
	}
	for _, f := range emptyFiles {
		if !b.IsEmpty(board.NewSquare(f, homeRank)) {
			return false
		}
	}
	for _, f := range kingPathFiles {
		if IsAttacked(b, board.NewSquare(f, homeRank), side.Opponent()) {
			return false
		}
	}
	return true
}
