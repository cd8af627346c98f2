package rules

import (
	"github.com/riftsquare/chesscore/pkg/board"
	"github.com/riftsquare/chesscore/pkg/position"
)

// GenerateMoves returns every move legal for side on pos: pseudo-legal moves that additionally
// leave side's king not in check after application. Ordering is not guaranteed.
func GenerateMoves(pos *position.Position, side board.Color) board.MoveList {
	candidates := pseudoLegalMoves(pos, side)

	legal := make(board.MoveList, 0, len(candidates))
	for _, m := range candidates {
		scratch := pos.Board
		applyToBoard(&scratch, m)
		if !IsInCheck(&scratch, side) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsCheckmate reports whether side is in check with no legal move.
func IsCheckmate(pos *position.Position, side board.Color) bool {
	return IsInCheck(&pos.Board, side) && len(GenerateMoves(pos, side)) == 0
}

// IsStalemate reports whether side is not in check but has no legal move.
func IsStalemate(pos *position.Position, side board.Color) bool {
	return !IsInCheck(&pos.Board, side) && len(GenerateMoves(pos, side)) == 0
}

// Outcome reports the terminal status of pos for side to move, checking checkmate, stalemate,
// threefold repetition and the 50-move rule in that order. Returns board.Undecided if none
// apply, leaving the position live.
func Outcome(pos *position.Position, side board.Color) board.Result {
	if IsCheckmate(pos, side) {
		return board.Checkmate
	}
	if IsStalemate(pos, side) {
		return board.Stalemate
	}
	if pos.CountRepetitions() >= 3 {
		return board.DrawByRepetition
	}
	if pos.HalfmoveClock >= 100 {
		return board.DrawByFiftyMoveRule
	}
	return board.Undecided
}
