package rules

import (
	"github.com/riftsquare/chesscore/pkg/board"
	"github.com/riftsquare/chesscore/pkg/position"
)

// TryExecuteUCI applies a move given in pure coordinate notation ("e2e4", "e7e8q") if the
// source square is occupied and the geometry parses. It does NOT re-check legality — this is a
// harness primitive for scripted/recorded moves, not a move validator.
func TryExecuteUCI(pos *position.Position, uci string) bool {
	m, err := board.ParseMove(uci)
	if err != nil {
		return false
	}
	if pos.Board.IsEmpty(m.From) {
		return false
	}
	ApplyConfirmed(pos, m)
	return true
}

// FindAndApplyMateInOne enumerates side's legal moves and applies the first one that delivers
// checkmate to the opponent, returning true if one was found and applied. An opportunistic
// shortcut; it does not search beyond one ply.
func FindAndApplyMateInOne(pos *position.Position, side board.Color) bool {
	for _, m := range GenerateMoves(pos, side) {
		trial := pos.ShallowClone()
		Apply(trial, m)
		if IsCheckmate(trial, side.Opponent()) {
			ApplyConfirmed(pos, m)
			return true
		}
	}
	return false
}
