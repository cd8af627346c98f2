package rules

import (
	"github.com/riftsquare/chesscore/pkg/board"
	"github.com/riftsquare/chesscore/pkg/position"
)

// applyToBoard performs the execution semantics a search must reproduce when applying a chosen
// move on a scratch board:
//  1. Copy the moving piece to the destination; clear the source.
//  2. Set the destination's HasMoved true.
//  3. If the move is a king translation by two files, relocate the corresponding rook.
//  4. If a pawn reaches the final rank, auto-promote to Queen unless an explicit promotion
//     piece was supplied.
//
// En passant is detected here, at application time, as a pawn landing on an empty diagonal
// square; the captured opponent pawn is removed from its original rank. Returns whether the
// move was a capture (including en passant) and whether the moving piece was a pawn, which
// together determine the halfmove clock reset rule.
func applyToBoard(b *board.Board, m board.Move) (capture, pawnMove bool) {
	piece := b.At(m.From)
	pawnMove = piece.Kind == board.Pawn
	capture = !b.IsEmpty(m.To)

	if pawnMove && b.IsEmpty(m.To) && m.From.File != m.To.File {
		// Diagonal pawn move onto an empty square: en passant.
		capturedSq := board.NewSquare(m.To.File, m.From.Rank)
		b.Clear(capturedSq)
		capture = true
	}

	if piece.Kind == board.King && abs(m.From.File-m.To.File) == 2 {
		rank := m.From.Rank
		if m.To.File > m.From.File {
			rook := b.At(board.NewSquare(7, rank))
			b.Clear(board.NewSquare(7, rank))
			rook.HasMoved = true
			b.Set(board.NewSquare(5, rank), rook)
		} else {
			rook := b.At(board.NewSquare(0, rank))
			b.Clear(board.NewSquare(0, rank))
			rook.HasMoved = true
			b.Set(board.NewSquare(3, rank), rook)
		}
	}

	b.Clear(m.From)
	piece.HasMoved = true

	if pawnMove && (m.To.Rank == 0 || m.To.Rank == 7) {
		promo := m.Promotion
		if promo == board.NoKind {
			promo = board.Queen
		}
		piece.Kind = promo
	}

	b.Set(m.To, piece)
	return capture, pawnMove
}

// Apply applies m to pos for search purposes: it updates the board, last move, and halfmove
// clock, but never touches history. The search kernel calls this on a cloned, stack-scoped
// Position at every recursion node.
func Apply(pos *position.Position, m board.Move) {
	capture, pawnMove := applyToBoard(&pos.Board, m)
	pos.LastMove = m
	pos.HasLastMove = true
	if capture || pawnMove {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
}

// ApplyConfirmed applies m to pos as a confirmed game move: it records the pre-move board into
// history (bounded per position.MaxHistory) before mutating, in addition to everything Apply
// does. Only the puzzle harness, between plies, should call this.
func ApplyConfirmed(pos *position.Position, m board.Move) {
	pos.PushHistory(pos.Board)
	Apply(pos, m)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
